package raster

import "gonum.org/v1/gonum/stat"

// BandStats summarizes the sample distribution of one raster band.
type BandStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Stats computes the band summary for a float grid. An empty grid
// yields the zero summary.
func (g *Grid) Stats() BandStats {
	return bandStats(g.values)
}

// Stats computes the band summary for an 8-bit raster. An empty raster
// yields the zero summary.
func (g *Gray) Stats() BandStats {
	vals := make([]float64, len(g.pix))
	for i, p := range g.pix {
		vals[i] = float64(p)
	}
	return bandStats(vals)
}

func bandStats(vals []float64) BandStats {
	if len(vals) == 0 {
		return BandStats{}
	}

	s := BandStats{Min: vals[0], Max: vals[0]}
	for _, v := range vals {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	return s
}
