package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/consumable"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Game ties the engine to the terminal: it reads keys, turns them into
// actions and redraws after each one.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	state    State
	running  bool
}

// New creates a game with a freshly generated dungeon and an initialised
// terminal screen.
func New(ctx context.Context, cfg Config) (*Game, error) {
	factory, err := entity.LoadFactory()
	if err != nil {
		return nil, fmt.Errorf("loading entity templates: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}

	g := newGame(NewEngine(ctx, cfg, factory))
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

func newGame(e *Engine) *Game {
	g := &Game{engine: e, state: StatePlaying, running: true}
	if e.PlayerDead() {
		g.state = StateDead
	}
	return g
}

// Seed returns the seed the dungeon was generated from.
func (g *Game) Seed() int64 {
	return g.engine.Seed
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	for g.running {
		g.renderer.Render(g.engine.State, g.menu())

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if err := g.execute(ctx, Translate(g.state, ev.Key(), ev.Rune())); err != nil {
				return err
			}
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			// Screen finalised underneath us.
			return nil
		}
	}
	return nil
}

// execute applies one command in the current mode.
func (g *Game) execute(ctx context.Context, cmd Command) error {
	s := g.engine.State
	player := s.Player

	switch cmd.Kind {
	case CmdQuit:
		g.running = false
	case CmdMove:
		return g.act(ctx, action.Bump{Entity: player, DX: cmd.DX, DY: cmd.DY})
	case CmdWait:
		return g.act(ctx, action.Wait{Entity: player})
	case CmdPickup:
		return g.act(ctx, action.Pickup{Entity: player})
	case CmdOpenUse, CmdOpenDrop:
		if player.Inventory == nil || player.Inventory.Len() == 0 {
			s.Log.Add(messages.Textf("Your inventory is empty."), messages.Impossible)
			return nil
		}
		g.state = StateUseMenu
		if cmd.Kind == CmdOpenDrop {
			g.state = StateDropMenu
		}
	case CmdCancel:
		g.state = StatePlaying
	case CmdSelect:
		return g.selectItem(ctx, cmd.Index)
	}
	return nil
}

func (g *Game) selectItem(ctx context.Context, index int) error {
	s := g.engine.State
	player := s.Player
	mode := g.state
	g.state = StatePlaying

	items := player.Inventory.Items()
	if index < 0 || index >= len(items) {
		s.Log.Add(messages.Textf("Invalid entry."), messages.Impossible)
		return nil
	}
	item := items[index]

	if mode == StateDropMenu {
		return g.act(ctx, action.Drop{Entity: player, Item: item})
	}

	use := action.Item{Entity: player, Item: item}
	if consumable.NeedsTarget(item) {
		target := g.engine.NearestVisibleEnemy()
		if target == nil {
			s.Log.Add(messages.Textf("There is nothing in view to target."), messages.NeedsTarget)
			return nil
		}
		use.Target = target
	}
	return g.act(ctx, use)
}

func (g *Game) act(ctx context.Context, a action.Action) error {
	_, err := g.engine.HandlePlayerAction(ctx, a)
	if g.engine.PlayerDead() {
		g.state = StateDead
	}
	return err
}

func (g *Game) menu() *ui.Menu {
	var title string
	switch g.state {
	case StateUseMenu:
		title = messages.Textf("Select an item to use")
	case StateDropMenu:
		title = messages.Textf("Select an item to drop")
	default:
		return nil
	}

	items := g.engine.State.Player.Inventory.Items()
	entries := make([]string, len(items))
	for i, item := range items {
		entries[i] = fmt.Sprintf("(%c) %s", 'a'+i, item.Name)
	}
	return &ui.Menu{Title: title, Entries: entries}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
