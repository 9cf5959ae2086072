package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Params controls room placement and population.
type Params struct {
	Width              int
	Height             int
	MaxRooms           int // Placement attempts, not a room count guarantee
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: 2,
		MaxItemsPerRoom:    2,
	}
}

// Spawner creates fresh monsters and items and places them on a map.
// The species or kind is chosen by the spawner.
type Spawner interface {
	SpawnMonster(rng *rand.Rand, m *GameMap, at geom.Coords) *Entity
	SpawnItem(rng *rand.Rand, m *GameMap, at geom.Coords) *Entity
}

// Dungeon generates a single level.
type Dungeon struct {
	Map     *GameMap
	Rooms   []Room
	params  Params
	spawner Spawner
	rng     *rand.Rand
}

// NewDungeon creates a generator for a wall-filled map. A nil spawner
// leaves rooms unpopulated.
func NewDungeon(params Params, spawner Spawner, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dungeon{
		Map:     NewGameMap(params.Width, params.Height),
		Rooms:   make([]Room, 0, params.MaxRooms),
		params:  params,
		spawner: spawner,
		rng:     rng,
	}
}

// Generate places rooms, links each to the previous one with an L-shaped
// tunnel, puts player in the center of the first room and populates every
// room. Overlapping candidates are skipped, not retried.
func (d *Dungeon) Generate(ctx context.Context, player *Entity) *GameMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	rejected := 0

	for range d.params.MaxRooms {
		w := d.randint(d.params.RoomMinSize, d.params.RoomMaxSize)
		h := d.randint(d.params.RoomMinSize, d.params.RoomMaxSize)
		if w >= d.Map.Width || h >= d.Map.Height {
			rejected++
			continue
		}

		room := NewRoom(geom.At(
			d.randint(0, d.Map.Width-w-1),
			d.randint(0, d.Map.Height-h-1),
		), w, h)

		if d.intersectsAny(room) {
			rejected++
			continue
		}

		d.carveRoom(room)

		if len(d.Rooms) == 0 {
			if player != nil {
				player.Place(room.Center(), d.Map)
			}
		} else {
			d.carveTunnel(d.Rooms[len(d.Rooms)-1].Center(), room.Center())
		}

		d.populate(room)
		d.Rooms = append(d.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Map.Width),
		attribute.Int("dungeon.height", d.Map.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rooms_rejected", rejected),
		attribute.Int("dungeon.entity_count", len(d.Map.Entities())),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d.Map
}

// randint returns a uniform integer in [lo, hi].
func (d *Dungeon) randint(lo, hi int) int {
	return lo + d.rng.Intn(hi-lo+1)
}

func (d *Dungeon) intersectsAny(room Room) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the room's interior to floor, leaving the border as wall.
func (d *Dungeon) carveRoom(room Room) {
	minX, minY, maxX, maxY := room.Inner()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			d.Map.SetTile(geom.At(x, y), Floor())
		}
	}
}

// carveTunnel carves an L-shaped corridor, randomly choosing whether the
// horizontal or the vertical leg comes first.
func (d *Dungeon) carveTunnel(start, end geom.Coords) {
	corner := geom.At(end.X, start.Y)
	if d.rng.Intn(2) == 0 {
		corner = geom.At(start.X, end.Y)
	}

	for _, c := range Line(start, corner) {
		d.Map.SetTile(c, Floor())
	}
	for _, c := range Line(corner, end) {
		d.Map.SetTile(c, Floor())
	}
}

// populate drops up to the configured number of monsters and items at
// random interior cells. A cell that already holds an entity is skipped.
func (d *Dungeon) populate(room Room) {
	if d.spawner == nil {
		return
	}
	minX, minY, maxX, maxY := room.Inner()

	monsters := d.randint(0, d.params.MaxMonstersPerRoom)
	for range monsters {
		at := geom.At(d.randint(minX, maxX), d.randint(minY, maxY))
		if len(d.Map.EntitiesAt(at)) == 0 {
			d.spawner.SpawnMonster(d.rng, d.Map, at)
		}
	}

	items := d.randint(0, d.params.MaxItemsPerRoom)
	for range items {
		at := geom.At(d.randint(minX, maxX), d.randint(minY, maxY))
		if len(d.Map.EntitiesAt(at)) == 0 {
			d.spawner.SpawnItem(d.rng, d.Map, at)
		}
	}
}

// RoomIndexAt returns the index of the room whose interior holds c, or -1.
func (d *Dungeon) RoomIndexAt(c geom.Coords) int {
	for i, room := range d.Rooms {
		if room.InInterior(c) {
			return i
		}
	}
	return -1
}
