package morph

import "github.com/telluris/satdiff/internal/raster"

// Mask is an owned binary raster. On cells mark detected change.
type Mask struct {
	width, height int
	bits          []bool
}

// NewMask returns an all-off mask of the given dimensions. Non-positive
// dimensions yield an empty mask.
func NewMask(w, h int) *Mask {
	if w <= 0 || h <= 0 {
		return &Mask{bits: []bool{}}
	}
	return &Mask{width: w, height: h, bits: make([]bool, w*h)}
}

// Width returns the mask width in cells.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in cells.
func (m *Mask) Height() int { return m.height }

// On reports whether the cell at (x, y) is set.
func (m *Mask) On(x, y int) bool {
	return m.bits[y*m.width+x]
}

// SetOn sets or clears the cell at (x, y).
func (m *Mask) SetOn(x, y int, on bool) {
	m.bits[y*m.width+x] = on
}

// Count returns the number of on cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	copy(c.bits, m.bits)
	return c
}

// ToGray materializes the mask as an 8-bit raster with on cells at 255
// and off cells at 0, the conventional binary-mask encoding.
func (m *Mask) ToGray() *raster.Gray {
	g := raster.NewGray(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.On(x, y) {
				g.Set(x, y, 255)
			}
		}
	}
	return g
}
