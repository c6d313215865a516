package morph

// Element is a structuring-element footprint: the set of neighbor
// offsets examined around each cell during erosion and dilation.
type Element struct {
	offsets []offset
}

type offset struct {
	dx, dy int
}

// Box returns a solid w x h rectangular element anchored at its center.
// Even dimensions anchor toward the top-left, mirroring the usual
// convention. Non-positive dimensions are treated as 1, which yields the
// identity element.
func Box(w, h int) Element {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	offs := make([]offset, 0, w*h)
	for dy := -(h / 2); dy < h-h/2; dy++ {
		for dx := -(w / 2); dx < w-w/2; dx++ {
			offs = append(offs, offset{dx, dy})
		}
	}
	return Element{offsets: offs}
}

// Size returns the number of cells in the footprint.
func (e Element) Size() int {
	return len(e.offsets)
}
