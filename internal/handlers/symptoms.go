package handlers

import (
	"doctor-finder-server/internal/models"
	"doctor-finder-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SymptomHandler handles symptom catalog requests.
type SymptomHandler struct {
	DB *gorm.DB
}

// NewSymptomHandler creates a new SymptomHandler.
func NewSymptomHandler(db *gorm.DB) *SymptomHandler {
	return &SymptomHandler{DB: db}
}

// GetSymptoms handles fetching the symptom catalog for the
// symptom-search UI.
func (h *SymptomHandler) GetSymptoms(c *gin.Context) {
	var symptoms []models.Symptom
	if err := h.DB.Order("created_at asc").Find(&symptoms).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch symptoms: "+err.Error())
		return
	}

	utils.Success(c, "Symptoms fetched successfully", symptoms)
}
