package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDoctors_FieldsAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range defaultDoctors() {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Specialty)
		assert.NotEmpty(t, d.Location)
		assert.GreaterOrEqual(t, d.Rating, 0.0, "doctor %s", d.Name)
		assert.LessOrEqual(t, d.Rating, 5.0, "doctor %s", d.Name)
		assert.Greater(t, d.Fee, 0, "doctor %s", d.Name)
		assert.False(t, seen[d.Name], "duplicate doctor %s", d.Name)
		seen[d.Name] = true

		// Coordinates must come in pairs.
		assert.Equal(t, d.Latitude == nil, d.Longitude == nil, "doctor %s", d.Name)
	}
}

func TestDefaultSymptoms_SpecialtiesExistInDoctorCatalog(t *testing.T) {
	available := map[string]bool{}
	for _, d := range defaultDoctors() {
		available[d.Specialty] = true
	}

	for _, s := range defaultSymptoms() {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.RelatedSpecialties, "symptom %s", s.Name)
		for _, sp := range s.RelatedSpecialties {
			assert.True(t, available[sp], "symptom %s references specialty %q with no doctor", s.Name, sp)
		}
	}
}
