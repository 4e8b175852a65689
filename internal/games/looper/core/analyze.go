package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Network is a set of tiles joined by mutually matching connectors.
type Network struct {
	Tiles     []Coord // Sorted row-major
	LooseEnds int     // Connectors of member tiles that meet nothing
}

// Closed reports whether the network has no loose ends.
func (n Network) Closed() bool {
	return n.LooseEnds == 0
}

// Analysis summarises the current rotations of a puzzle.
type Analysis struct {
	Networks  []Network
	LooseEnds int
	Smooth    int
	Tiles     int

	member map[Coord]int
	smooth mapset.Set[Coord]
}

// Analyze computes connected networks, loose ends and smooth tiles for the
// puzzle's current rotations. Empty tiles belong to no network but count as
// smooth when no neighbour points at them.
func Analyze(p *Puzzle) Analysis {
	a := Analysis{
		Tiles:  p.Width() * p.Height(),
		member: make(map[Coord]int),
		smooth: mapset.New[Coord](),
	}

	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if p.IsSmooth(x, y) {
				a.smooth.Put(C(x, y))
			}
		}
	}
	a.Smooth = a.smooth.Size()

	visited := mapset.New[Coord]()
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			start := C(x, y)
			if visited.Has(start) || p.Mask(x, y).Count() == 0 {
				continue
			}
			n := collectNetwork(p, start, visited)
			for _, c := range n.Tiles {
				a.member[c] = len(a.Networks)
			}
			a.LooseEnds += n.LooseEnds
			a.Networks = append(a.Networks, n)
		}
	}
	return a
}

// collectNetwork walks every tile reachable from start through matched
// connectors.
func collectNetwork(p *Puzzle, start Coord, visited mapset.Set[Coord]) Network {
	var n Network
	queue := []Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		n.Tiles = append(n.Tiles, c)

		m := p.Mask(c.X, c.Y)
		for _, d := range Directions {
			if !m.Has(d) {
				continue
			}
			next := c.Step(d)
			if !p.InBounds(next.X, next.Y) || !p.Mask(next.X, next.Y).Has(d.Opposite()) {
				n.LooseEnds++
				continue
			}
			if !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	sort.Slice(n.Tiles, func(i, j int) bool {
		if n.Tiles[i].Y != n.Tiles[j].Y {
			return n.Tiles[i].Y < n.Tiles[j].Y
		}
		return n.Tiles[i].X < n.Tiles[j].X
	})
	return n
}

// NetworkAt returns the network containing c, or false for empty tiles.
func (a Analysis) NetworkAt(c Coord) (Network, bool) {
	i, ok := a.member[c]
	if !ok {
		return Network{}, false
	}
	return a.Networks[i], true
}

// InNetwork reports whether x and y belong to the same network.
func (a Analysis) InNetwork(x, y Coord) bool {
	i, ok := a.member[x]
	if !ok {
		return false
	}
	j, ok := a.member[y]
	return ok && i == j
}

// IsSmooth reports whether the tile at c was smooth when analysed.
func (a Analysis) IsSmooth(c Coord) bool {
	return a.smooth.Has(c)
}

// Progress returns the share of smooth tiles in [0, 1].
func (a Analysis) Progress() float64 {
	if a.Tiles == 0 {
		return 1
	}
	return float64(a.Smooth) / float64(a.Tiles)
}
