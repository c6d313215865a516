// Package regions enumerates the connected changed regions of a change
// mask.
//
// A region is a maximal 8-connected set of changed cells. Regions are
// located and measured, never classified: deciding whether a region is
// construction, clearing or shadow is outside this system. Results are
// sorted by area, largest first, so callers can report the dominant
// changes directly.
package regions

import (
	"sort"

	"github.com/telluris/satdiff/internal/morph"
)

// Bounds is the axis-aligned bounding box of a region, inclusive on
// all edges.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Point is a 2-D pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is one 8-connected blob of changed cells.
type Region struct {
	// Area is the number of cells in the region.
	Area int `json:"area"`

	// Bounds is the bounding box enclosing the region.
	Bounds Bounds `json:"bounds"`

	// Centroid is the mean cell position, truncated to integer
	// coordinates.
	Centroid Point `json:"centroid"`
}

// Result wraps the found regions for serialization.
type Result struct {
	Regions []Region `json:"regions"`
	Count   int      `json:"count"`
}

// Find labels the 8-connected changed regions of the mask and returns
// them sorted by area descending. Equal areas order by position,
// topmost then leftmost, so repeated runs list regions identically.
func Find(m *morph.Mask) []Region {
	w, h := m.Width(), m.Height()
	visited := make([]bool, w*h)
	found := make([]Region, 0)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.On(x, y) || visited[y*w+x] {
				continue
			}
			found = append(found, trace(m, visited, x, y))
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Area != found[j].Area {
			return found[i].Area > found[j].Area
		}
		if found[i].Bounds.Y1 != found[j].Bounds.Y1 {
			return found[i].Bounds.Y1 < found[j].Bounds.Y1
		}
		return found[i].Bounds.X1 < found[j].Bounds.X1
	})
	return found
}

// Collect runs Find and wraps the result for serialization.
func Collect(m *morph.Mask) Result {
	found := Find(m)
	return Result{Regions: found, Count: len(found)}
}

// trace flood-fills one region from its first cell. Stack-based so
// large regions cannot overflow the call stack; 8-connectivity.
func trace(m *morph.Mask, visited []bool, startX, startY int) Region {
	w, h := m.Width(), m.Height()
	stack := []Point{{X: startX, Y: startY}}

	area := 0
	sumX, sumY := 0, 0
	b := Bounds{X1: startX, Y1: startY, X2: startX, Y2: startY}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			continue
		}
		if visited[p.Y*w+p.X] || !m.On(p.X, p.Y) {
			continue
		}
		visited[p.Y*w+p.X] = true

		area++
		sumX += p.X
		sumY += p.Y
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return Region{
		Area:     area,
		Bounds:   b,
		Centroid: Point{X: sumX / area, Y: sumY / area},
	}
}
