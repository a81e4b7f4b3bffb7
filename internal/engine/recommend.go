package engine

import (
	"sort"

	"doctor-finder-server/internal/models"
)

// Recommendation is the answer to "given this description, which
// doctors, in what order".
type Recommendation struct {
	Specialties     []string
	MatchedSymptoms []string
	NeedsMoreDetail bool
	Doctors         []models.Doctor
}

// Recommend resolves the free text to specialties, selects doctors in
// those specialties and ranks them by rating, highest first. Ties keep
// catalog order.
//
// When the resolver asks for more detail the doctor list is empty and
// no specialty is committed; callers must not substitute a default in
// that branch.
func Recommend(doctors []models.Doctor, symptoms []models.Symptom, text string) Recommendation {
	resolved := ResolveSpecialties(symptoms, text)
	if resolved.NeedsMoreDetail {
		return Recommendation{NeedsMoreDetail: true}
	}

	wanted := make(map[string]struct{}, len(resolved.Specialties))
	for _, sp := range resolved.Specialties {
		wanted[sp] = struct{}{}
	}

	var selected []models.Doctor
	for _, d := range doctors {
		if _, ok := wanted[d.Specialty]; ok {
			selected = append(selected, d)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Rating > selected[j].Rating
	})

	return Recommendation{
		Specialties:     resolved.Specialties,
		MatchedSymptoms: resolved.MatchedSymptoms,
		Doctors:         selected,
	}
}
