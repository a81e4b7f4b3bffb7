package models

// Doctor represents an entry in the doctor catalog. The catalog is
// read-only at runtime except for admin maintenance.
type Doctor struct {
	BaseModel
	Name            string   `gorm:"size:100;not null" json:"name"`
	Specialty       string   `gorm:"size:100;index" json:"specialty"`
	Location        string   `gorm:"size:100;index" json:"location"`
	Rating          float64  `gorm:"default:0" json:"rating"`
	Reviews         int      `gorm:"default:0" json:"reviews"`
	Fee             int      `gorm:"default:0" json:"fee"`
	Availability    string   `gorm:"size:100" json:"availability"`
	Specializations []string `gorm:"serializer:json" json:"specializations"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`

	// Distance from the requesting user in km. Computed per request when
	// a position is supplied, never persisted.
	Distance *float64 `gorm:"-" json:"distance,omitempty"`
}

// HasCoordinates reports whether the doctor can participate in
// distance calculations.
func (d *Doctor) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// Symptom represents a searchable symptom linked to the specialties
// that treat it.
type Symptom struct {
	BaseModel
	Name               string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Icon               string   `gorm:"size:512" json:"icon"`
	RelatedSpecialties []string `gorm:"serializer:json" json:"relatedSpecialties"`
}
