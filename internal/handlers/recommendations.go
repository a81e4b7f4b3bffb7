package handlers

import (
	"fmt"
	"strings"
	"time"

	"doctor-finder-server/internal/config"
	"doctor-finder-server/internal/engine"
	"doctor-finder-server/internal/models"
	"doctor-finder-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecommendationHandler handles the symptom-analyzer conversation.
type RecommendationHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(db *gorm.DB, cfg *config.Config) *RecommendationHandler {
	return &RecommendationHandler{DB: db, Cfg: cfg}
}

// RecommendRequest represents one analyzer message from the user.
type RecommendRequest struct {
	Message string `json:"message" binding:"required"`
}

// RecommendResponse carries the assistant reply together with the
// ranked doctor list. Doctors is empty when the analyzer needs a
// better symptom description.
type RecommendResponse struct {
	Reply           string          `json:"reply"`
	Specialties     []string        `json:"specialties"`
	MatchedSymptoms []string        `json:"matchedSymptoms"`
	NeedsMoreDetail bool            `json:"needsMoreDetail"`
	Doctors         []models.Doctor `json:"doctors"`
}

// Analyze runs the recommendation pipeline over a free-text symptom
// description and phrases the result as an assistant reply.
func (h *RecommendationHandler) Analyze(c *gin.Context) {
	var req RecommendRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctors []models.Doctor
	if err := h.DB.Order("created_at asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	var symptoms []models.Symptom
	if err := h.DB.Order("created_at asc").Find(&symptoms).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch symptoms: "+err.Error())
		return
	}

	// Simulated thinking time; disabled by default.
	if h.Cfg.AnalyzerDelayMs > 0 {
		time.Sleep(time.Duration(h.Cfg.AnalyzerDelayMs) * time.Millisecond)
	}

	rec := engine.Recommend(doctors, symptoms, req.Message)

	resp := RecommendResponse{
		Reply:           analyzeReply(rec),
		Specialties:     rec.Specialties,
		MatchedSymptoms: rec.MatchedSymptoms,
		NeedsMoreDetail: rec.NeedsMoreDetail,
		Doctors:         rec.Doctors,
	}
	utils.Success(c, "Symptoms analyzed successfully", resp)
}

func analyzeReply(rec engine.Recommendation) string {
	if rec.NeedsMoreDetail {
		return "I'm here to help with medical symptoms. Could you please describe any health concerns or symptoms you're experiencing so I can recommend the right doctor for you?"
	}

	specialties := strings.Join(rec.Specialties, " or ")
	if len(rec.MatchedSymptoms) > 0 {
		return fmt.Sprintf("Based on your symptoms (%s), I recommend consulting a %s. I've found %d doctors who can help you.",
			strings.Join(rec.MatchedSymptoms, ", "), specialties, len(rec.Doctors))
	}
	return fmt.Sprintf("Based on your description, I recommend consulting a %s. I've found %d doctors who can help you.",
		specialties, len(rec.Doctors))
}
