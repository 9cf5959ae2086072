// Package ai holds the turn strategies of non-player actors.
package ai

import (
	"github.com/samdwyer/dungeoncrawl/internal/geom"
	"github.com/samdwyer/dungeoncrawl/internal/pathfind"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Edge weights for pathing.
const (
	CardinalWeight = 2
	DiagonalWeight = 3

	// BlockerPenalty is added to a cell's cost for each blocking entity on it.
	BlockerPenalty = 10
)

// CostGrid builds the pathing cost of every cell on m: zero for walls, one
// for open floor, plus BlockerPenalty for cells holding a blocking entity.
func CostGrid(m *world.GameMap) [][]int {
	walk := m.Walkability()
	cost := make([][]int, m.Width)
	for x := range cost {
		cost[x] = make([]int, m.Height)
		for y := range cost[x] {
			if walk[x][y] {
				cost[x][y] = 1
			}
		}
	}

	for _, e := range m.Entities() {
		if !e.BlocksMovement || !m.InBounds(e.Location) {
			continue
		}
		if cost[e.Location.X][e.Location.Y] > 0 {
			cost[e.Location.X][e.Location.Y] += BlockerPenalty
		}
	}
	return cost
}

// PathTo returns the steps from self to dest, excluding self's own cell.
func PathTo(m *world.GameMap, self *world.Entity, dest geom.Coords) []geom.Coords {
	g := pathfind.NewGraph(CostGrid(m), CardinalWeight, DiagonalWeight)
	return g.Path(self.Location, dest)
}
