package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/action"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/messages"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Engine sequences turns: the player's action, then every monster, then
// the field of view.
type Engine struct {
	State *world.State
	Seed  int64
	Rooms int
	Turn  int

	tracer trace.Tracer
}

// NewEngine generates a dungeon from cfg, places a fresh player in it and
// computes the initial field of view.
func NewEngine(ctx context.Context, cfg Config, factory *entity.Factory) *Engine {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	player := factory.NewPlayer()
	d := world.NewDungeon(cfg.Dungeon, factory, rng)
	m := d.Generate(ctx, player)

	e := newEngine(&world.State{
		Map:    m,
		Player: player,
		Log:    messages.NewLog(),
		Rng:    rng,
	})
	e.Seed = seed
	e.Rooms = len(d.Rooms)
	e.State.Log.Add(messages.Textf("Hello and welcome, adventurer, to yet another dungeon!"), messages.Welcome)
	e.UpdateFOV()

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", e.Rooms),
		attribute.Int("player.x", player.Location.X),
		attribute.Int("player.y", player.Location.Y),
	)
	return e
}

func newEngine(s *world.State) *Engine {
	return &Engine{State: s, tracer: telemetry.Tracer("game")}
}

// HandlePlayerAction performs a and, if it succeeded, runs the monsters'
// turns and refreshes the field of view. An Impossible action is logged
// and costs no turn. It reports whether a turn was spent; a non-nil error
// is an unexpected failure.
func (e *Engine) HandlePlayerAction(ctx context.Context, a action.Action) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("action.kind", action.Name(a)),
		attribute.Int("game.turn", e.Turn),
	)
	alive := e.State.Map.Actors()

	if err := a.Perform(e.State); err != nil {
		var imp *action.Impossible
		if errors.As(err, &imp) {
			e.State.Log.Add(imp.Reason, messages.Impossible)
			span.SetAttributes(attribute.Bool("action.impossible", true))
			return false, nil
		}
		span.RecordError(err)
		return false, fmt.Errorf("%s action: %w", action.Name(a), err)
	}

	acted, err := e.HandleEnemyTurns(ctx)
	e.UpdateFOV()
	e.Turn++
	recordDeaths(span, alive)

	span.SetAttributes(
		attribute.Int("enemies.acted", acted),
		attribute.Int("player.hp", e.State.Player.Fighter.HP()),
	)
	if err != nil {
		span.RecordError(err)
	}
	return true, err
}

// HandleEnemyTurns lets every living actor other than the player act once.
// Impossible outcomes are dropped; other errors are collected but do not
// stop the remaining actors. It returns how many actors acted.
func (e *Engine) HandleEnemyTurns(ctx context.Context) (int, error) {
	var errs []error
	acted := 0
	for _, actor := range e.State.Map.Actors() {
		if actor == e.State.Player || actor.AI == nil || !actor.IsAlive() {
			continue
		}
		acted++
		if err := actor.AI.Perform(e.State, actor); err != nil && !action.IsImpossible(err) {
			errs = append(errs, fmt.Errorf("%s: %w", actor.Name, err))
		}
	}
	return acted, errors.Join(errs...)
}

// recordDeaths adds an actor.died event for every actor in alive that did
// not survive the turn.
func recordDeaths(span trace.Span, alive []*world.Entity) {
	for _, a := range alive {
		if a.IsAlive() {
			continue
		}
		span.AddEvent("actor.died", trace.WithAttributes(
			attribute.String("entity.id", a.ID.String()),
			attribute.String("entity.name", a.Name),
		))
	}
}

// UpdateFOV recomputes what the player can see.
func (e *Engine) UpdateFOV() {
	e.State.UpdateFOV()
}

// PlayerDead reports whether the game is over.
func (e *Engine) PlayerDead() bool {
	return !e.State.Player.IsAlive()
}

// NearestVisibleEnemy returns the location of the closest living actor in
// view, or nil if there is none.
func (e *Engine) NearestVisibleEnemy() *geom.Coords {
	s := e.State
	var best *geom.Coords
	bestDist := 0.0
	for _, actor := range s.Map.Actors() {
		if actor == s.Player || !s.Map.IsVisible(actor.Location) {
			continue
		}
		d := s.Player.Location.Euclidean(actor.Location)
		if best == nil || d < bestDist {
			loc := actor.Location
			best, bestDist = &loc, d
		}
	}
	return best
}
