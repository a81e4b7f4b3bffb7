package engine

import (
	"math"

	"doctor-finder-server/internal/models"
)

const earthRadiusKm = 6371.0

// Position is a geographic coordinate pair.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between two positions
// using the haversine formula.
func DistanceKm(a, b Position) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// AttachDistances returns a copy of the doctor list with the ephemeral
// distance field populated for every doctor that has coordinates.
// Doctors without coordinates are passed through untouched; they stay
// eligible for every filter.
func AttachDistances(doctors []models.Doctor, from Position) []models.Doctor {
	out := make([]models.Doctor, len(doctors))
	copy(out, doctors)
	for i := range out {
		if !out[i].HasCoordinates() {
			continue
		}
		d := DistanceKm(from, Position{Lat: *out[i].Latitude, Lng: *out[i].Longitude})
		out[i].Distance = &d
	}
	return out
}
