package handlers

import (
	"strconv"
	"strings"
	"time"

	"doctor-finder-server/internal/engine"
	"doctor-finder-server/internal/models"
	"doctor-finder-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DoctorHandler handles doctor catalog requests.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// SearchDoctors handles fetching the doctor catalog narrowed by the
// optional query parameters: q (free text), location, symptoms
// (comma-separated symptom ids), minRating, and lat/lng for distance
// annotation. With no parameters the full catalog is returned.
func (h *DoctorHandler) SearchDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.DB.Order("created_at asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	criteria := engine.Criteria{
		Query:    c.Query("q"),
		Location: c.Query("location"),
	}

	if raw := c.Query("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			utils.BadRequest(c, "minRating must be a number between 0 and 5")
			return
		}
		criteria.MinRating = minRating
	}

	if raw := c.Query("symptoms"); raw != "" {
		ids := strings.Split(raw, ",")
		var selected []models.Symptom
		if err := h.DB.Where("id IN ?", ids).Find(&selected).Error; err != nil {
			utils.InternalServerError(c, "Failed to fetch symptoms: "+err.Error())
			return
		}
		// Unknown ids simply match nothing; they are not an error.
		criteria.Symptoms = selected
	}

	filtered := engine.FilterDoctors(doctors, criteria)

	// Annotate distances when the caller shared a position. A missing
	// or denied geolocation just means no lat/lng arrives here, so the
	// search degrades to non-geo filtering.
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			utils.BadRequest(c, "lat and lng must be valid coordinates")
			return
		}
		filtered = engine.AttachDistances(filtered, engine.Position{Lat: lat, Lng: lng})
	}

	utils.Success(c, "Doctors fetched successfully", filtered)
}

// GetDoctorByID handles fetching a single catalog entry.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// GetDoctorSlots returns the bookable time labels for a doctor on the
// requested date. Slots already in the past are pruned when the date
// is today; an empty list is a valid, displayable result.
func (h *DoctorHandler) GetDoctorSlots(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	dateRaw := c.Query("date")
	if dateRaw == "" {
		utils.BadRequest(c, "date query parameter is required (YYYY-MM-DD)")
		return
	}

	now := time.Now()
	date, err := time.ParseInLocation(engine.DateLayout, dateRaw, now.Location())
	if err != nil {
		utils.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	slots := engine.GenerateSlots(date, now)
	utils.Success(c, "Slots fetched successfully", gin.H{
		"date":  dateRaw,
		"slots": slots,
	})
}

// DoctorRequest represents the request body for creating or replacing
// a catalog entry (admin).
type DoctorRequest struct {
	Name            string   `json:"name" binding:"required"`
	Specialty       string   `json:"specialty" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Rating          float64  `json:"rating" binding:"gte=0,lte=5"`
	Reviews         int      `json:"reviews" binding:"gte=0"`
	Fee             int      `json:"fee" binding:"gte=0"`
	Availability    string   `json:"availability"`
	Specializations []string `json:"specializations"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// CreateDoctor handles adding a doctor to the catalog (admin).
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		Name:            req.Name,
		Specialty:       req.Specialty,
		Location:        req.Location,
		Rating:          req.Rating,
		Reviews:         req.Reviews,
		Fee:             req.Fee,
		Availability:    req.Availability,
		Specializations: req.Specializations,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}

	if err := h.DB.Create(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
		return
	}

	utils.Created(c, "Doctor created successfully", doctor)
}

// UpdateDoctor handles updating a catalog entry by ID (admin).
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	doctorID := c.Param("id")

	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.Location = req.Location
	doctor.Rating = req.Rating
	doctor.Reviews = req.Reviews
	doctor.Fee = req.Fee
	doctor.Availability = req.Availability
	doctor.Specializations = req.Specializations
	doctor.Latitude = req.Latitude
	doctor.Longitude = req.Longitude

	if err := h.DB.Save(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor handles removing a doctor from the catalog (admin).
// Existing appointments keep their snapshot of the doctor.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Doctor{}, "id = ?", doctorID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor deleted successfully", nil)
}
