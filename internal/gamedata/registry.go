package gamedata

import (
	"math/rand"
)

// Weighted is a definition that can be drawn from a Registry.
type Weighted interface {
	Weight() int
}

// Registry holds loaded definitions and provides weighted spawning.
type Registry[T Weighted] struct {
	defs        []T
	totalWeight int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry[T Weighted](defs []T) *Registry[T] {
	totalWeight := 0
	for _, d := range defs {
		totalWeight += d.Weight()
	}
	return &Registry[T]{
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// MustLoad unwraps a registry constructor, panicking on error.
func MustLoad[T Weighted](r *Registry[T], err error) *Registry[T] {
	if err != nil {
		panic(err)
	}
	return r
}

// SpawnRandom selects a random definition using weighted probability.
// Definitions with higher spawnWeight are more likely to be selected.
func (r *Registry[T]) SpawnRandom(rng *rand.Rand) *T {
	if r.totalWeight <= 0 || len(r.defs) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.defs {
		cumulative += r.defs[i].Weight()
		if roll < cumulative {
			return &r.defs[i]
		}
	}

	// Unreachable while weights are non-negative
	return &r.defs[0]
}
