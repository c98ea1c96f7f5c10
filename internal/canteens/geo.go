package canteens

import (
	"errors"
	"math"
)

const earthRadiusKm = 6371.0

var ErrInvalidInput = errors.New("no candidate canteens")

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometres between two
// coordinates given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Nearest returns the candidate closest to (lat, lon). The earliest
// candidate wins ties.
func Nearest(lat, lon float64, candidates []Canteen) (Canteen, error) {
	if len(candidates) == 0 {
		return Canteen{}, ErrInvalidInput
	}

	best := candidates[0]
	bestDistance := Haversine(lat, lon, best.Latitude, best.Longitude)
	for _, c := range candidates[1:] {
		if d := Haversine(lat, lon, c.Latitude, c.Longitude); d < bestDistance {
			best = c
			bestDistance = d
		}
	}

	return best, nil
}
