package ui

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Status panel layout, below the map.
const (
	BarWidth    = 20
	LogWidth    = 40
	LogLines    = 5
	panelMargin = 2
)

// Menu is an overlay listing choices, drawn over the map.
type Menu struct {
	Title   string
	Entries []string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the entities in view, the status panel and an
// optional menu.
func (r *Renderer) Render(s *world.State, menu *Menu) {
	r.screen.Clear()

	r.drawMap(s.Map)
	r.drawEntities(s.Map)

	top := s.Map.Height + panelMargin
	r.drawHealthBar(0, top, s.Player)
	if names := namesUnder(s.Map, s.Player); names != "" {
		r.screen.SetString(0, top+1, BarWidth, names, tcell.StyleDefault.Foreground(messages.White))
	}
	r.drawLog(BarWidth+panelMargin, top, s.Log)

	if menu != nil {
		r.drawMenu(menu)
	}

	r.screen.Show()
}

func (r *Renderer) drawMap(m *world.GameMap) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			g := m.Graphic(geom.At(x, y))
			r.screen.SetContent(x, y, g.Glyph, tcell.StyleDefault.Foreground(g.FG).Background(g.BG))
		}
	}
}

// drawEntities draws visible entities lowest render order first, so
// actors end up on top of items and corpses.
func (r *Renderer) drawEntities(m *world.GameMap) {
	var visible []*world.Entity
	for _, e := range m.Entities() {
		if m.IsVisible(e.Location) {
			visible = append(visible, e)
		}
	}
	slices.SortStableFunc(visible, func(a, b *world.Entity) int {
		return int(a.RenderOrder) - int(b.RenderOrder)
	})

	for _, e := range visible {
		bg := m.Graphic(e.Location).BG
		r.screen.SetContent(e.Location.X, e.Location.Y, e.Glyph,
			tcell.StyleDefault.Foreground(e.Color).Background(bg))
	}
}

func (r *Renderer) drawHealthBar(x, y int, player *world.Entity) {
	f := player.Fighter
	filled := 0
	if f.MaxHP > 0 {
		filled = f.HP() * BarWidth / f.MaxHP
	}

	fill := barColor(f.HP(), f.MaxHP)
	for i := 0; i < BarWidth; i++ {
		bg := messages.BarEmpty
		if i < filled {
			bg = fill
		}
		r.screen.SetContent(x+i, y, ' ', tcell.StyleDefault.Background(bg))
	}

	text := messages.Textf("HP: %d/%d", f.HP(), f.MaxHP)
	for i, ch := range text {
		bg := messages.BarEmpty
		if i < filled {
			bg = fill
		}
		r.screen.SetContent(x+1+i, y, ch, tcell.StyleDefault.Foreground(messages.BarText).Background(bg))
	}
}

// drawLog draws the newest messages, oldest at the top.
func (r *Renderer) drawLog(x, y int, log *messages.Log) {
	for i, msg := range log.Recent(LogLines) {
		r.screen.SetString(x, y+i, LogWidth, msg.FullText(), tcell.StyleDefault.Foreground(msg.Color))
	}
}

func (r *Renderer) drawMenu(menu *Menu) {
	width := len(menu.Title) + 4
	for _, e := range menu.Entries {
		width = max(width, len(e)+2)
	}
	style := tcell.StyleDefault.Foreground(messages.White).Background(messages.Black)

	for row := 0; row < len(menu.Entries)+2; row++ {
		for col := 0; col < width; col++ {
			r.screen.SetContent(col, row, ' ', style)
		}
	}
	r.screen.SetString(2, 0, width-2, menu.Title, style.Bold(true))
	for i, e := range menu.Entries {
		r.screen.SetString(1, i+1, width-1, e, style)
	}
}

// barColor fades the filled part of the health bar from the empty colour
// towards the full colour as HP rises.
func barColor(hp, maxHP int) tcell.Color {
	if maxHP <= 0 {
		return messages.BarEmpty
	}
	t := float64(hp) / float64(maxHP)
	switch {
	case t <= 0:
		return messages.Red
	case t >= 1:
		return messages.BarFilled
	}
	from := gamedata.ToColorful(messages.Red)
	return gamedata.FromColorful(from.BlendLab(gamedata.ToColorful(messages.BarFilled), t))
}

// namesUnder lists what lies on the player's cell besides the player.
func namesUnder(m *world.GameMap, player *world.Entity) string {
	var names []string
	for _, e := range m.EntitiesAt(player.Location) {
		if e != player {
			names = append(names, e.Name)
		}
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
