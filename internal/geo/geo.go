// Package geo provides the AOI geometry helpers: degree/kilometer
// conversion and the bounding rectangles used by the AOI registry.
package geo

import "fmt"

// kmPerDegree is the approximate ground distance of one degree of
// latitude, also used for longitude at mid-latitudes.
const kmPerDegree = 111.0

// KmToDeg converts a ground distance in kilometers to degrees.
func KmToDeg(km float64) float64 {
	return km / kmPerDegree
}

// DegToKm converts an angular distance in degrees to kilometers.
func DegToKm(deg float64) float64 {
	return deg * kmPerDegree
}

// Rect is a geographic bounding box in degrees, west/south inclusive of
// its minimum edge.
type Rect struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// BoundsAround returns the square bounding box with edge length sizeKm
// centered on (lat, lon).
func BoundsAround(lat, lon, sizeKm float64) Rect {
	half := KmToDeg(sizeKm) / 2
	return Rect{
		MinLon: lon - half,
		MinLat: lat - half,
		MaxLon: lon + half,
		MaxLat: lat + half,
	}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (lat, lon float64) {
	return (r.MinLat + r.MaxLat) / 2, (r.MinLon + r.MaxLon) / 2
}

// SizeKm returns the approximate width and height of the rectangle in
// kilometers.
func (r Rect) SizeKm() (w, h float64) {
	return DegToKm(r.MaxLon - r.MinLon), DegToKm(r.MaxLat - r.MinLat)
}

// Contains reports whether (lat, lon) lies inside the rectangle,
// minimum edges inclusive.
func (r Rect) Contains(lat, lon float64) bool {
	return lon >= r.MinLon && lon < r.MaxLon && lat >= r.MinLat && lat < r.MaxLat
}

// Validate checks that the rectangle is well formed and inside the
// lat/lon domain.
func (r Rect) Validate() error {
	if r.MinLon >= r.MaxLon || r.MinLat >= r.MaxLat {
		return fmt.Errorf("bounds [%g, %g, %g, %g] are empty or inverted",
			r.MinLon, r.MinLat, r.MaxLon, r.MaxLat)
	}
	if r.MinLon < -180 || r.MaxLon > 180 || r.MinLat < -90 || r.MaxLat > 90 {
		return fmt.Errorf("bounds [%g, %g, %g, %g] fall outside the lat/lon domain",
			r.MinLon, r.MinLat, r.MaxLon, r.MaxLat)
	}
	return nil
}

// UnmarshalYAML reads the four-element bounds list
// [minLon, minLat, maxLon, maxLat] used by AOI registry files.
func (r *Rect) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var vals []float64
	if err := unmarshal(&vals); err != nil {
		return fmt.Errorf("bounds must be a list of numbers: %w", err)
	}
	if len(vals) != 4 {
		return fmt.Errorf("bounds need 4 values [minLon, minLat, maxLon, maxLat], got %d", len(vals))
	}
	r.MinLon, r.MinLat, r.MaxLon, r.MaxLat = vals[0], vals[1], vals[2], vals[3]
	return nil
}
