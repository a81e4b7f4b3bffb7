package engine

import (
	"strings"

	"doctor-finder-server/internal/models"
)

// AllLocations disables the location stage of the filter pipeline.
const AllLocations = "all"

// Criteria holds one search request. Zero values disable the
// corresponding filter stage.
type Criteria struct {
	Query     string
	Location  string
	Symptoms  []models.Symptom
	MinRating float64
}

// FilterDoctors narrows the catalog by applying each enabled stage in
// turn: text query, location, symptom specialties, minimum rating.
// Stages are conjunctive. The input slice is never mutated and catalog
// order is preserved.
func FilterDoctors(doctors []models.Doctor, c Criteria) []models.Doctor {
	filtered := doctors

	if c.Query != "" {
		filtered = filterByQuery(filtered, c.Query)
	}
	if c.Location != "" && !strings.EqualFold(c.Location, AllLocations) {
		filtered = filterByLocation(filtered, c.Location)
	}
	if len(c.Symptoms) > 0 {
		filtered = filterBySymptoms(filtered, c.Symptoms)
	}
	if c.MinRating > 0 {
		filtered = filterByRating(filtered, c.MinRating)
	}

	// Make sure callers never alias the catalog slice.
	out := make([]models.Doctor, len(filtered))
	copy(out, filtered)
	return out
}

// filterByQuery keeps doctors whose name, specialty or location
// contains the query, case-insensitively.
func filterByQuery(doctors []models.Doctor, query string) []models.Doctor {
	q := strings.ToLower(query)
	var out []models.Doctor
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialty), q) ||
			strings.Contains(strings.ToLower(d.Location), q) {
			out = append(out, d)
		}
	}
	return out
}

func filterByLocation(doctors []models.Doctor, location string) []models.Doctor {
	var out []models.Doctor
	for _, d := range doctors {
		if strings.EqualFold(d.Location, location) {
			out = append(out, d)
		}
	}
	return out
}

// filterBySymptoms keeps doctors whose specialty appears in the union
// of the selected symptoms' related specialties.
func filterBySymptoms(doctors []models.Doctor, symptoms []models.Symptom) []models.Doctor {
	wanted := make(map[string]struct{})
	for _, s := range symptoms {
		for _, sp := range s.RelatedSpecialties {
			wanted[sp] = struct{}{}
		}
	}

	var out []models.Doctor
	for _, d := range doctors {
		if _, ok := wanted[d.Specialty]; ok {
			out = append(out, d)
		}
	}
	return out
}

func filterByRating(doctors []models.Doctor, minRating float64) []models.Doctor {
	var out []models.Doctor
	for _, d := range doctors {
		if d.Rating >= minRating {
			out = append(out, d)
		}
	}
	return out
}
