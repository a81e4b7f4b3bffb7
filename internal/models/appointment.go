package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked consultation. The doctor details are
// snapshotted at booking time so later catalog edits do not rewrite a
// patient's booking history.
type Appointment struct {
	BaseModel
	UserID   string `gorm:"size:36;index" json:"userId"`
	DoctorID string `gorm:"size:36;index" json:"doctorId"`

	// Doctor snapshot captured at booking time
	DoctorName      string `gorm:"size:100" json:"doctorName"`
	DoctorSpecialty string `gorm:"size:100" json:"doctorSpecialty"`
	DoctorLocation  string `gorm:"size:100" json:"doctorLocation"`

	// Date is a plain calendar date (YYYY-MM-DD), Time a slot label
	// such as "9:30 AM". Both are local wall-clock values.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:10;not null" json:"time"`

	PatientName   string            `gorm:"size:100" json:"patientName"`
	PatientAge    int               `json:"patientAge"`
	PatientGender string            `gorm:"size:20" json:"patientGender"`
	PatientPhone  string            `gorm:"size:20" json:"patientPhone"`
	Issue         string            `gorm:"type:text" json:"issue"`
	Status        AppointmentStatus `gorm:"size:20;default:'confirmed'" json:"status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
