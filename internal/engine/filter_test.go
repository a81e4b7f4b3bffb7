package engine

import (
	"testing"

	"doctor-finder-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoctors() []models.Doctor {
	return []models.Doctor{
		{Name: "Dr. Anand Rao", Specialty: "Cardiologist", Location: "Pragati Nagar", Rating: 4.8},
		{Name: "Dr. Priya Sharma", Specialty: "Cardiologist", Location: "Kukatpally", Rating: 4.2},
		{Name: "Dr. Suresh Kumar", Specialty: "General Physician", Location: "Pragati Nagar", Rating: 4.5},
		{Name: "Dr. Meena Joshi", Specialty: "Dermatologist", Location: "Miyapur", Rating: 3.9},
	}
}

func TestFilterDoctors_NoCriteriaReturnsAll(t *testing.T) {
	doctors := testDoctors()
	out := FilterDoctors(doctors, Criteria{})
	assert.Equal(t, doctors, out)
}

func TestFilterDoctors_AllLocationIsNoop(t *testing.T) {
	doctors := testDoctors()
	assert.Equal(t, doctors, FilterDoctors(doctors, Criteria{Location: "all"}))
	assert.Equal(t, doctors, FilterDoctors(doctors, Criteria{Location: "All"}))
}

func TestFilterDoctors_QueryMatchesNameSpecialtyOrLocation(t *testing.T) {
	doctors := testDoctors()

	byName := FilterDoctors(doctors, Criteria{Query: "priya"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Dr. Priya Sharma", byName[0].Name)

	bySpecialty := FilterDoctors(doctors, Criteria{Query: "cardio"})
	assert.Len(t, bySpecialty, 2)

	byLocation := FilterDoctors(doctors, Criteria{Query: "miyapur"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, "Dr. Meena Joshi", byLocation[0].Name)
}

func TestFilterDoctors_LocationExactCaseInsensitive(t *testing.T) {
	out := FilterDoctors(testDoctors(), Criteria{Location: "pragati nagar"})
	require.Len(t, out, 2)
	for _, d := range out {
		assert.Equal(t, "Pragati Nagar", d.Location)
	}
}

func TestFilterDoctors_SymptomsMatchSpecialtyUnion(t *testing.T) {
	symptoms := []models.Symptom{
		{Name: "Chest Pain", RelatedSpecialties: []string{"Cardiologist"}},
		{Name: "Skin Rash", RelatedSpecialties: []string{"Dermatologist"}},
	}
	out := FilterDoctors(testDoctors(), Criteria{Symptoms: symptoms})
	require.Len(t, out, 3)
	for _, d := range out {
		assert.NotEqual(t, "General Physician", d.Specialty)
	}
}

func TestFilterDoctors_MinRatingIsInclusiveFloor(t *testing.T) {
	out := FilterDoctors(testDoctors(), Criteria{MinRating: 4.5})
	require.Len(t, out, 2)
	for _, d := range out {
		assert.GreaterOrEqual(t, d.Rating, 4.5)
	}
}

func TestFilterDoctors_StagesAreConjunctive(t *testing.T) {
	out := FilterDoctors(testDoctors(), Criteria{
		Query:     "dr",
		Location:  "Pragati Nagar",
		MinRating: 4.6,
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Dr. Anand Rao", out[0].Name)
}

func TestFilterDoctors_DoesNotMutateInput(t *testing.T) {
	doctors := testDoctors()
	original := testDoctors()
	_ = FilterDoctors(doctors, Criteria{Query: "cardio", MinRating: 4.0})
	assert.Equal(t, original, doctors)
}
