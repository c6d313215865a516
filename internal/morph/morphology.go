package morph

// Erode returns a new mask where a cell is on only if every element
// offset around it lands on an on cell. Offsets falling outside the
// mask read as off, so foreground touching the border erodes away.
func Erode(m *Mask, el Element) *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			out.SetOn(x, y, coveredBy(m, x, y, el))
		}
	}
	return out
}

// Dilate returns a new mask where a cell is on if any on cell of the
// input reaches it through the reflected element. Offsets falling
// outside the mask read as off.
func Dilate(m *Mask, el Element) *Mask {
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			out.SetOn(x, y, reachedBy(m, x, y, el))
		}
	}
	return out
}

// Open erodes then dilates, removing foreground specks smaller than the
// element.
func Open(m *Mask, el Element) *Mask {
	return Dilate(Erode(m, el), el)
}

// Close dilates then erodes, filling background holes smaller than the
// element.
func Close(m *Mask, el Element) *Mask {
	return Erode(Dilate(m, el), el)
}

// coveredBy reports whether the element fits entirely inside the
// foreground when anchored at (x, y).
func coveredBy(m *Mask, x, y int, el Element) bool {
	for _, o := range el.offsets {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
			return false
		}
		if !m.On(nx, ny) {
			return false
		}
	}
	return true
}

// reachedBy reports whether any foreground cell dilates onto (x, y).
// The element is reflected, which for the symmetric box footprint is a
// no-op.
func reachedBy(m *Mask, x, y int, el Element) bool {
	for _, o := range el.offsets {
		nx, ny := x-o.dx, y-o.dy
		if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
			continue
		}
		if m.On(nx, ny) {
			return true
		}
	}
	return false
}
