// Package geo computes great-circle distances between pickup and drop points.
package geo

import (
	"math"

	"delivery-dispatch/internal/apperr"
)

// EarthRadiusKm is the mean earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the point lies within ±90 latitude and ±180 longitude.
func (p Point) Validate() error {
	if !finite(p.Lat) || !finite(p.Lng) ||
		p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return &apperr.InvalidCoordinateError{Lat: p.Lat, Lng: p.Lng}
	}
	return nil
}

// Haversine returns the unrounded great-circle distance in kilometres.
// Inputs are not validated.
func Haversine(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// floating point error can push h slightly above 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// DistanceKm validates both points and returns the distance rounded
// to precision decimal places. Precision 0 rounds to whole kilometres.
func DistanceKm(a, b Point, precision int) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return Round(Haversine(a, b), precision), nil
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
