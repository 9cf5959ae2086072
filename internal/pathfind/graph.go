// Package pathfind finds shortest paths over weighted 8-connected grids.
package pathfind

import (
	"github.com/zyedidia/generic/heap"

	"github.com/samdwyer/dungeoncrawl/internal/geom"
)

// Graph is an 8-connected grid. Cost is indexed [x][y]; a cost of zero
// marks an impassable cell, and entering a passable cell costs its value
// multiplied by the edge weight (Cardinal or Diagonal).
type Graph struct {
	Cost     [][]int
	Cardinal int
	Diagonal int
}

// NewGraph creates a graph with the given cell costs and edge weights.
func NewGraph(cost [][]int, cardinal, diagonal int) *Graph {
	return &Graph{Cost: cost, Cardinal: cardinal, Diagonal: diagonal}
}

type node struct {
	idx  int // Flat grid index (x*height + y)
	dist int // Weighted distance from start
	seq  int // Push order, for deterministic tie-breaking
}

func (g *Graph) size() (width, height int) {
	width = len(g.Cost)
	if width > 0 {
		height = len(g.Cost[0])
	}
	return width, height
}

func (g *Graph) passable(c geom.Coords) bool {
	width, height := g.size()
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height && g.Cost[c.X][c.Y] > 0
}

// Path returns the cheapest route from start to end, excluding start and
// including end. It is empty if start == end, if either lies outside the
// grid, or if end cannot be reached.
func (g *Graph) Path(start, end geom.Coords) []geom.Coords {
	width, height := g.size()
	inGrid := func(c geom.Coords) bool {
		return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
	}
	if start == end || !inGrid(start) || !g.passable(end) {
		return nil
	}

	const unvisited = -1
	dist := make([]int, width*height)
	prev := make([]int, width*height)
	for i := range dist {
		dist[i] = unvisited
		prev[i] = unvisited
	}

	index := func(c geom.Coords) int { return c.X*height + c.Y }
	coords := func(i int) geom.Coords { return geom.At(i/height, i%height) }

	frontier := heap.New[node](func(a, b node) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.seq < b.seq
	})
	seq := 0
	startIdx, endIdx := index(start), index(end)
	dist[startIdx] = 0
	frontier.Push(node{idx: startIdx})

	for frontier.Size() > 0 {
		cur, _ := frontier.Pop()
		if cur.dist > dist[cur.idx] {
			continue // stale entry
		}
		if cur.idx == endIdx {
			break
		}

		here := coords(cur.idx)
		for i, d := range geom.Directions {
			next := here.Add(d[0], d[1])
			if !g.passable(next) {
				continue
			}
			weight := g.Cardinal
			if i%2 == 1 {
				weight = g.Diagonal
			}
			nd := cur.dist + g.Cost[next.X][next.Y]*weight
			ni := index(next)
			if dist[ni] == unvisited || nd < dist[ni] {
				dist[ni] = nd
				prev[ni] = cur.idx
				seq++
				frontier.Push(node{idx: ni, dist: nd, seq: seq})
			}
		}
	}

	if prev[endIdx] == unvisited {
		return nil
	}

	var path []geom.Coords
	for i := endIdx; i != startIdx; i = prev[i] {
		path = append(path, coords(i))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
