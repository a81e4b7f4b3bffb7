package handlers

import (
	"time"

	"doctor-finder-server/internal/engine"
	"doctor-finder-server/internal/middleware"
	"doctor-finder-server/internal/models"
	"doctor-finder-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	DoctorID      string `json:"doctorId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PatientName   string `json:"patientName" binding:"required"`
	PatientAge    int    `json:"patientAge" binding:"required,gt=0"`
	PatientGender string `json:"patientGender" binding:"required"`
	PatientPhone  string `json:"patientPhone" binding:"required"`
	Issue         string `json:"issue"`
}

// CreateAppointment books a consultation for the authenticated user.
// The doctor's details are snapshotted onto the record and the booking
// is confirmed immediately; there is no pending state.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", req.DoctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error verifying doctor: "+err.Error())
		}
		return
	}

	now := time.Now()
	date, err := time.ParseInLocation(engine.DateLayout, req.Date, now.Location())
	if err != nil {
		utils.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	// The requested time must be one of the slots still bookable on
	// that date. This also rejects same-day slots already in the past.
	if !slotAvailable(req.Time, date, now) {
		utils.BadRequest(c, "Selected time is not an available slot for this date")
		return
	}

	appointment := models.Appointment{
		UserID:          userID,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
		DoctorLocation:  doctor.Location,
		Date:            req.Date,
		Time:            req.Time,
		PatientName:     req.PatientName,
		PatientAge:      req.PatientAge,
		PatientGender:   req.PatientGender,
		PatientPhone:    req.PatientPhone,
		Issue:           req.Issue,
		Status:          models.StatusConfirmed,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment booked successfully", appointment)
}

func slotAvailable(label string, date time.Time, now time.Time) bool {
	for _, slot := range engine.GenerateSlots(date, now) {
		if slot == label {
			return true
		}
	}
	return false
}

// GetAppointmentsForUser returns the authenticated user's appointments
// partitioned into upcoming, past and cancelled. The category is
// computed at read time, never stored.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	buckets := engine.Classify(appointments, time.Now())
	utils.Success(c, "Appointments fetched successfully", buckets)
}

// GetReminders returns the user's non-cancelled appointments starting
// within the next 24 hours.
func (h *AppointmentHandler) GetReminders(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var appointments []models.Appointment
	if err := h.DB.Where("user_id = ?", userID).Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	due := engine.DueForReminder(appointments, time.Now())
	utils.Success(c, "Reminders fetched successfully", due)
}

// CancelAppointment flips an appointment to cancelled. The transition
// is one-way and terminal; cancelling an already-cancelled appointment
// is a no-op. Only the owning user may cancel.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if appointment.UserID != userID {
		utils.Forbidden(c, "You are not authorized to cancel this appointment")
		return
	}

	if appointment.Status == models.StatusCancelled {
		utils.Success(c, "Appointment was already cancelled", appointment)
		return
	}

	// Per-row status update; a concurrent booking in another session
	// cannot be clobbered by this write.
	if err := h.DB.Model(&appointment).Update("status", models.StatusCancelled).Error; err != nil {
		utils.InternalServerError(c, "Failed to cancel appointment: "+err.Error())
		return
	}
	appointment.Status = models.StatusCancelled

	utils.Success(c, "Appointment cancelled successfully", appointment)
}
