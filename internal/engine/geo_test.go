package engine

import (
	"testing"

	"doctor-finder-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pragatiNagar = Position{Lat: 17.5317, Lng: 78.3920}
	kukatpally   = Position{Lat: 17.4849, Lng: 78.4138}
	gachibowli   = Position{Lat: 17.4401, Lng: 78.3489}
)

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(pragatiNagar, pragatiNagar))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := DistanceKm(pragatiNagar, kukatpally)
	ba := DistanceKm(kukatpally, pragatiNagar)
	assert.InDelta(t, ab, ba, 1e-6)
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	ab := DistanceKm(pragatiNagar, kukatpally)
	bc := DistanceKm(kukatpally, gachibowli)
	ac := DistanceKm(pragatiNagar, gachibowli)
	assert.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestDistanceKm_KnownMagnitude(t *testing.T) {
	// Pragati Nagar to Kukatpally is a few kilometers, not hundreds.
	d := DistanceKm(pragatiNagar, kukatpally)
	assert.Greater(t, d, 1.0)
	assert.Less(t, d, 15.0)
}

func TestAttachDistances_SkipsDoctorsWithoutCoordinates(t *testing.T) {
	lat, lng := kukatpally.Lat, kukatpally.Lng
	doctors := []models.Doctor{
		{Name: "Dr. A", Latitude: &lat, Longitude: &lng},
		{Name: "Dr. B"},
	}

	out := AttachDistances(doctors, pragatiNagar)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Distance)
	assert.InDelta(t, DistanceKm(pragatiNagar, kukatpally), *out[0].Distance, 1e-9)
	assert.Nil(t, out[1].Distance)

	// Input slice is left untouched.
	assert.Nil(t, doctors[0].Distance)
}
