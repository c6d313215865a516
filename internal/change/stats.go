package change

import (
	"math"

	"github.com/telluris/satdiff/internal/morph"
)

// Statistics summarizes a change mask. The JSON field names are the
// batch output contract and must not change.
type Statistics struct {
	ChangedPixels int     `json:"change_pixels"`
	TotalPixels   int     `json:"total_pixels"`
	ChangePct     float64 `json:"change_pct"`
}

// Summarize counts the changed cells of a mask and computes the changed
// fraction as a percentage rounded to two decimals. A zero-size mask
// has no defined percentage and fails with DivideByZeroError.
func Summarize(m *morph.Mask) (Statistics, error) {
	total := m.Width() * m.Height()
	if total == 0 {
		return Statistics{}, &DivideByZeroError{Op: "summarize change mask"}
	}

	changed := m.Count()
	pct := float64(changed) / float64(total) * 100
	pct = math.Round(pct*100) / 100

	return Statistics{
		ChangedPixels: changed,
		TotalPixels:   total,
		ChangePct:     pct,
	}, nil
}
