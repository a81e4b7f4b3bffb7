package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"doctor-finder-server/internal/engine"
	"doctor-finder-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func recommendationRouter(db *gorm.DB) *gin.Engine {
	h := NewRecommendationHandler(db, testConfig())
	router := gin.New()
	router.POST("/api/v1/recommendations", h.Analyze)
	return router
}

func TestAnalyze_RanksDoctorsByRating(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]models.Doctor{
		{Name: "Dr. Priya Sharma", Specialty: "Cardiologist", Rating: 4.2},
		{Name: "Dr. Anand Rao", Specialty: "Cardiologist", Rating: 4.8},
		{Name: "Dr. Kavitha Reddy", Specialty: "Dermatologist", Rating: 4.6},
	}).Error)
	require.NoError(t, db.Create(&models.Symptom{
		Name: "Chest Pain", RelatedSpecialties: []string{"Cardiologist"},
	}).Error)

	router := recommendationRouter(db)
	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", gin.H{
		"message": "I have chest pain",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data RecommendResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Data.NeedsMoreDetail)
	assert.Equal(t, []string{"Cardiologist"}, resp.Data.Specialties)
	require.Len(t, resp.Data.Doctors, 2)
	assert.Equal(t, "Dr. Anand Rao", resp.Data.Doctors[0].Name)
	assert.Equal(t, "Dr. Priya Sharma", resp.Data.Doctors[1].Name)
}

func TestAnalyze_GreetingAsksForDetail(t *testing.T) {
	db := setupTestDB(t)
	router := recommendationRouter(db)

	w := doJSON(router, http.MethodPost, "/api/v1/recommendations", gin.H{
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data RecommendResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.NeedsMoreDetail)
	assert.Empty(t, resp.Data.Doctors)
}

func TestAnalyzeReply_AsksForDetailOnVagueInput(t *testing.T) {
	reply := analyzeReply(engine.Recommendation{NeedsMoreDetail: true})
	assert.Contains(t, reply, "describe any health concerns")
}

func TestAnalyzeReply_NamesMatchedSymptoms(t *testing.T) {
	reply := analyzeReply(engine.Recommendation{
		Specialties:     []string{"Cardiologist"},
		MatchedSymptoms: []string{"Chest Pain"},
		Doctors:         []models.Doctor{{Name: "Dr. Anand Rao"}, {Name: "Dr. Priya Sharma"}},
	})
	assert.Equal(t, "Based on your symptoms (Chest Pain), I recommend consulting a Cardiologist. I've found 2 doctors who can help you.", reply)
}

func TestAnalyzeReply_KeywordOnlyMatchOmitsSymptomList(t *testing.T) {
	reply := analyzeReply(engine.Recommendation{
		Specialties: []string{"Dermatologist"},
		Doctors:     []models.Doctor{{Name: "Dr. Kavitha Reddy"}},
	})
	assert.Equal(t, "Based on your description, I recommend consulting a Dermatologist. I've found 1 doctors who can help you.", reply)
}

func TestAnalyzeReply_JoinsMultipleSpecialtiesWithOr(t *testing.T) {
	reply := analyzeReply(engine.Recommendation{
		Specialties: []string{"General Physician", "ENT Specialist"},
	})
	assert.Contains(t, reply, "General Physician or ENT Specialist")
}
