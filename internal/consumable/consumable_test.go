package consumable

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/ai"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func newActor(name string, hp, defense, power int) *world.Entity {
	e := world.NewEntity(name, 'x', 0)
	e.BlocksMovement = true
	e.RenderOrder = world.RenderActor
	e.Fighter = world.NewFighter(hp, defense, power)
	return e
}

// newState builds an open 20x20 room with the player at (5,5) and its FOV computed.
func newState() *world.State {
	m := world.NewGameMap(20, 20)
	for x := 1; x < 19; x++ {
		for y := 1; y < 19; y++ {
			m.SetTile(geom.At(x, y), world.Floor())
		}
	}
	player := newActor("player", 30, 2, 5)
	player.Inventory = world.NewInventory(player, 26)
	player.Place(geom.At(5, 5), m)
	return &world.State{
		Map:    m,
		Player: player,
		Log:    messages.NewLog(),
		Rng:    rand.New(rand.NewSource(1)),
	}
}

// carry gives the player an item backed by c and returns it.
func carry(t *testing.T, s *world.State, name string, c world.Consumable) *world.Entity {
	t.Helper()
	item := world.NewEntity(name, '!', 0)
	item.RenderOrder = world.RenderItem
	item.Consumable = c
	if err := s.Player.Inventory.Add(item); err != nil {
		t.Fatal(err)
	}
	return item
}

func use(s *world.State, item *world.Entity, target geom.Coords) error {
	return action.Item{Entity: s.Player, Item: item, Target: &target}.Perform(s)
}

func reason(err error) string {
	var imp *action.Impossible
	if errors.As(err, &imp) {
		return imp.Reason
	}
	return ""
}

func TestHealing(t *testing.T) {
	s := newState()
	potion := carry(t, s, "health potion", Healing{Amount: 4})

	err := action.Item{Entity: s.Player, Item: potion}.Perform(s)
	if reason(err) != "Your health is already full." {
		t.Fatalf("full-health error = %v", err)
	}
	if !s.Player.Inventory.Has(potion) {
		t.Fatal("a failed use must not spend the item")
	}

	s.Player.Fighter.SetHP(28)
	if err := (action.Item{Entity: s.Player, Item: potion}).Perform(s); err != nil {
		t.Fatal(err)
	}
	if s.Player.Fighter.HP() != 30 {
		t.Errorf("HP = %d, want 30", s.Player.Fighter.HP())
	}
	if s.Player.Inventory.Has(potion) || s.Player.Inventory.Len() != 0 {
		t.Error("used potion should be removed from the inventory")
	}
	last, _ := s.Log.Last()
	if last.Text != "You consume the health potion, and recover 2 HP!" || last.Color != messages.HealthRecovered {
		t.Errorf("message = %+v", last)
	}
}

func TestLightningStrikesClosestVisible(t *testing.T) {
	s := newState()
	near := newActor("orc", 20, 0, 3)
	near.Place(geom.At(7, 5), s.Map)
	far := newActor("troll", 20, 0, 3)
	far.Place(geom.At(9, 5), s.Map)
	s.UpdateFOV()

	scroll := carry(t, s, "lightning scroll", Lightning{Damage: 20, Range: 5})
	if err := use(s, scroll, s.Player.Location); err != nil {
		t.Fatal(err)
	}
	if near.IsAlive() {
		t.Error("closest actor should have been killed")
	}
	if far.Fighter.HP() != 20 {
		t.Error("only one actor should be struck")
	}
	if s.Player.Inventory.Has(scroll) {
		t.Error("scroll should be spent")
	}
}

func TestLightningNoTarget(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *world.State)
	}{
		{"nobody", func(*world.State) {}},
		{"out of range", func(s *world.State) {
			newActor("orc", 10, 0, 3).Place(geom.At(12, 5), s.Map)
		}},
		{"not visible", func(s *world.State) {
			newActor("orc", 10, 0, 3).Place(geom.At(7, 5), s.Map)
			s.Map.SetTile(geom.At(6, 5), world.Wall())
			s.Map.SetTile(geom.At(6, 4), world.Wall())
			s.Map.SetTile(geom.At(6, 6), world.Wall())
		}},
	}

	for _, tt := range tests {
		s := newState()
		tt.setup(s)
		s.UpdateFOV()
		scroll := carry(t, s, "lightning scroll", Lightning{Damage: 20, Range: 5})

		err := use(s, scroll, s.Player.Location)
		if reason(err) != "No enemy is close enough to strike." {
			t.Errorf("%s: error = %v", tt.name, err)
		}
		if !s.Player.Inventory.Has(scroll) {
			t.Errorf("%s: scroll should not be spent", tt.name)
		}
	}
}

func TestConfusion(t *testing.T) {
	s := newState()
	orc := newActor("orc", 10, 0, 3)
	hostile := ai.NewHostile()
	orc.AI = hostile
	orc.Place(geom.At(8, 8), s.Map)
	s.UpdateFOV()

	scroll := carry(t, s, "confusion scroll", Confusion{Turns: 10})
	if !NeedsTarget(scroll) {
		t.Fatal("confusion should need a target")
	}

	if got := reason(use(s, scroll, geom.At(9, 9))); got != "You must select an enemy to target." {
		t.Errorf("empty cell: %q", got)
	}
	if got := reason(use(s, scroll, s.Player.Location)); got != "You cannot confuse yourself!" {
		t.Errorf("self: %q", got)
	}
	if got := reason(use(s, scroll, geom.At(18, 18))); got != "You cannot target an area that you cannot see." {
		t.Errorf("unseen: %q", got)
	}
	if !s.Player.Inventory.Has(scroll) {
		t.Fatal("failed uses must not spend the scroll")
	}

	if err := use(s, scroll, orc.Location); err != nil {
		t.Fatal(err)
	}
	confused, ok := orc.AI.(*ai.Confused)
	if !ok {
		t.Fatalf("AI = %T, want *ai.Confused", orc.AI)
	}
	if confused.Previous != hostile || confused.TurnsRemaining != 10 {
		t.Errorf("confused = %+v", confused)
	}
	last, _ := s.Log.Last()
	if last.Color != messages.StatusEffect {
		t.Error("confusion message should use the status effect colour")
	}
	if s.Player.Inventory.Has(scroll) {
		t.Error("scroll should be spent")
	}
}

func TestFireball(t *testing.T) {
	s := newState()
	a := newActor("orc", 10, 0, 3)
	a.Place(geom.At(9, 9), s.Map)
	b := newActor("troll", 20, 0, 3)
	b.Place(geom.At(10, 10), s.Map)
	c := newActor("orc", 10, 0, 3)
	c.Place(geom.At(12, 5), s.Map)
	s.UpdateFOV()

	scroll := carry(t, s, "fireball scroll", Fireball{Damage: 12, Radius: 3})
	if !NeedsTarget(scroll) {
		t.Fatal("fireball should need a target")
	}

	if got := reason(use(s, scroll, geom.At(5, 12))); got != "There are no targets in the radius." {
		t.Errorf("empty blast: %q", got)
	}

	if err := use(s, scroll, geom.At(9, 9)); err != nil {
		t.Fatal(err)
	}
	if a.IsAlive() {
		t.Error("orc at the centre should be dead")
	}
	if b.Fighter.HP() != 8 {
		t.Errorf("troll HP = %d, want 8", b.Fighter.HP())
	}
	if c.Fighter.HP() != 10 {
		t.Error("actor outside the radius should be untouched")
	}
	if s.Player.Fighter.HP() != 30 {
		t.Error("player outside the radius should be untouched")
	}
}

func TestNeedsTargetUntargeted(t *testing.T) {
	for _, c := range []world.Consumable{Healing{Amount: 4}, Lightning{Damage: 20, Range: 5}} {
		item := world.NewEntity("item", '?', 0)
		item.Consumable = c
		if NeedsTarget(item) {
			t.Errorf("%T should not need a target", c)
		}
	}
}
