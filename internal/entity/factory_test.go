package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/ai"
	"github.com/samdwyer/dungeoncrawl/internal/consumable"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var _ world.Spawner = (*Factory)(nil)

func mustFactory(t *testing.T) *Factory {
	t.Helper()
	f, err := LoadFactory()
	if err != nil {
		t.Fatalf("LoadFactory() error = %v", err)
	}
	return f
}

func TestNewPlayer(t *testing.T) {
	p := mustFactory(t).NewPlayer()

	if p.Fighter == nil || p.Fighter.HP() != 30 || p.Fighter.MaxHP != 30 {
		t.Errorf("player fighter = %+v", p.Fighter)
	}
	if p.Inventory == nil || p.Inventory.Capacity != 26 {
		t.Error("player should carry a 26-slot inventory")
	}
	if p.AI != nil {
		t.Error("player has no AI")
	}
	if !p.BlocksMovement || p.RenderOrder != world.RenderActor || !p.IsAlive() {
		t.Error("player should be a living, blocking actor")
	}
}

func TestSpawnMonsterReturnsFreshInstances(t *testing.T) {
	f := mustFactory(t)
	m := world.NewGameMap(10, 10)
	rng := rand.New(rand.NewSource(3))

	a := f.SpawnMonster(rng, m, geom.At(1, 1))
	b := f.SpawnMonster(rng, m, geom.At(2, 2))

	if a == b || a.ID == b.ID {
		t.Fatal("spawns must be distinct entities")
	}
	if a.Fighter == b.Fighter {
		t.Error("spawns must not share a Fighter")
	}
	ha, okA := a.AI.(*ai.Hostile)
	hb, okB := b.AI.(*ai.Hostile)
	if !okA || !okB || ha == hb {
		t.Error("each monster needs its own hostile AI")
	}
	if !m.Has(a) || a.Location != geom.At(1, 1) {
		t.Error("monster should be placed at the requested location")
	}

	a.Fighter.TakeDamage(5)
	if b.Fighter.HP() != b.Fighter.MaxHP {
		t.Error("damaging one spawn must not affect another")
	}
}

func TestSpawnItemKinds(t *testing.T) {
	f := mustFactory(t)
	defs, err := gamedata.LoadItems()
	if err != nil {
		t.Fatal(err)
	}
	byID := make(map[string]*gamedata.ItemDef)
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}

	tests := []struct {
		id       string
		targeted bool
	}{
		{"health_potion", false},
		{"lightning_scroll", false},
		{"confusion_scroll", true},
		{"fireball_scroll", true},
	}
	for _, tt := range tests {
		def, ok := byID[tt.id]
		if !ok {
			t.Fatalf("%s missing", tt.id)
		}
		e := f.NewItem(def)
		if e.Consumable == nil {
			t.Errorf("%s: no consumable", tt.id)
			continue
		}
		if consumable.NeedsTarget(e) != tt.targeted {
			t.Errorf("%s: NeedsTarget = %v, want %v", tt.id, !tt.targeted, tt.targeted)
		}
		if e.BlocksMovement || e.RenderOrder != world.RenderItem {
			t.Errorf("%s: items should not block and render as items", tt.id)
		}
	}
}

func TestSpawnItemDeterministic(t *testing.T) {
	f := mustFactory(t)
	m := world.NewGameMap(10, 10)

	names := func(seed int64) []string {
		rng := rand.New(rand.NewSource(seed))
		var out []string
		for i := 0; i < 10; i++ {
			out = append(out, f.SpawnItem(rng, m, geom.At(i%10, 0)).Name)
		}
		return out
	}

	a, b := names(9), names(9)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("draw %d: %s != %s", i, a[i], b[i])
		}
	}
}
