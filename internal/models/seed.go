package models

import (
	"gorm.io/gorm"
)

func f64(v float64) *float64 { return &v }

// SeedCatalogs populates the doctor and symptom catalogs when the
// corresponding tables are empty. Existing rows are never touched, so
// admin edits survive restarts.
func SeedCatalogs(db *gorm.DB) error {
	var doctorCount int64
	if err := db.Model(&Doctor{}).Count(&doctorCount).Error; err != nil {
		return err
	}
	if doctorCount == 0 {
		if err := db.Create(defaultDoctors()).Error; err != nil {
			return err
		}
	}

	var symptomCount int64
	if err := db.Model(&Symptom{}).Count(&symptomCount).Error; err != nil {
		return err
	}
	if symptomCount == 0 {
		if err := db.Create(defaultSymptoms()).Error; err != nil {
			return err
		}
	}

	return nil
}

func defaultDoctors() []Doctor {
	return []Doctor{
		{
			Name: "Dr. Anand Rao", Specialty: "Cardiologist", Location: "Kukatpally",
			Rating: 4.8, Reviews: 214, Fee: 800, Availability: "Mon-Sat, 10 AM - 6 PM",
			Specializations: []string{"Interventional Cardiology", "Echocardiography"},
			Latitude:        f64(17.4849), Longitude: f64(78.4138),
		},
		{
			Name: "Dr. Priya Sharma", Specialty: "Cardiologist", Location: "Gachibowli",
			Rating: 4.2, Reviews: 98, Fee: 700, Availability: "Mon-Fri, 9 AM - 5 PM",
			Specializations: []string{"Preventive Cardiology"},
			Latitude:        f64(17.4401), Longitude: f64(78.3489),
		},
		{
			Name: "Dr. Suresh Kumar", Specialty: "General Physician", Location: "Pragati Nagar",
			Rating: 4.5, Reviews: 342, Fee: 400, Availability: "Daily, 9 AM - 9 PM",
			Specializations: []string{"Family Medicine", "Diabetology"},
			Latitude:        f64(17.5062), Longitude: f64(78.3921),
		},
		{
			Name: "Dr. Kavitha Reddy", Specialty: "Dermatologist", Location: "Miyapur",
			Rating: 4.6, Reviews: 187, Fee: 600, Availability: "Mon-Sat, 11 AM - 7 PM",
			Specializations: []string{"Cosmetic Dermatology", "Trichology"},
			Latitude:        f64(17.4969), Longitude: f64(78.3715),
		},
		{
			Name: "Dr. Ramesh Babu", Specialty: "Orthopedic Surgeon", Location: "Kukatpally",
			Rating: 4.7, Reviews: 156, Fee: 900, Availability: "Mon-Fri, 10 AM - 4 PM",
			Specializations: []string{"Joint Replacement", "Sports Injuries"},
			Latitude:        f64(17.4933), Longitude: f64(78.3996),
		},
		{
			Name: "Dr. Lakshmi Devi", Specialty: "Gynecologist", Location: "Gachibowli",
			Rating: 4.9, Reviews: 276, Fee: 750, Availability: "Mon-Sat, 10 AM - 6 PM",
			Specializations: []string{"Obstetrics", "Infertility Treatment"},
			Latitude:        f64(17.4435), Longitude: f64(78.3522),
		},
		{
			Name: "Dr. Venkat Rao", Specialty: "Neurologist", Location: "Miyapur",
			Rating: 4.4, Reviews: 132, Fee: 1000, Availability: "Tue-Sun, 9 AM - 3 PM",
			Specializations: []string{"Stroke Care", "Epilepsy"},
			Latitude:        f64(17.5001), Longitude: f64(78.3611),
		},
		{
			Name: "Dr. Sunitha Rani", Specialty: "Pediatrician", Location: "Pragati Nagar",
			Rating: 4.8, Reviews: 298, Fee: 500, Availability: "Daily, 10 AM - 8 PM",
			Specializations: []string{"Neonatology", "Child Nutrition"},
			Latitude:        f64(17.5103), Longitude: f64(78.3880),
		},
		{
			Name: "Dr. Mohan Krishna", Specialty: "ENT Specialist", Location: "Kukatpally",
			Rating: 4.3, Reviews: 110, Fee: 550, Availability: "Mon-Sat, 10 AM - 5 PM",
			Specializations: []string{"Sinus Surgery", "Audiology"},
			Latitude:        f64(17.4871), Longitude: f64(78.4090),
		},
		{
			Name: "Dr. Divya Prasad", Specialty: "Psychiatrist", Location: "Gachibowli",
			Rating: 4.6, Reviews: 89, Fee: 1200, Availability: "Mon-Fri, 11 AM - 7 PM",
			Specializations: []string{"Anxiety Disorders", "Cognitive Therapy"},
			Latitude:        f64(17.4459), Longitude: f64(78.3568),
		},
		{
			Name: "Dr. Harish Chandra", Specialty: "General Physician", Location: "Miyapur",
			Rating: 4.1, Reviews: 167, Fee: 350, Availability: "Daily, 8 AM - 10 PM",
			Specializations: []string{"General Medicine"},
			Latitude:        f64(17.4958), Longitude: f64(78.3742),
		},
		{
			// Visiting consultant without a fixed clinic; no coordinates
			// on purpose so distance ranking leaves them untouched.
			Name: "Dr. Meena Joshi", Specialty: "Dermatologist", Location: "Pragati Nagar",
			Rating: 4.0, Reviews: 54, Fee: 450, Availability: "Sat-Sun, 10 AM - 2 PM",
			Specializations: []string{"Pediatric Dermatology"},
		},
	}
}

func defaultSymptoms() []Symptom {
	return []Symptom{
		{Name: "Fever", Icon: "M13 10V3L4 14h7v7l9-11h-7z", RelatedSpecialties: []string{"General Physician", "Pediatrician"}},
		{Name: "Headache", Icon: "M12 8v4l3 3", RelatedSpecialties: []string{"Neurologist", "General Physician"}},
		{Name: "Chest Pain", Icon: "M4.318 6.318a4.5 4.5 0 000 6.364L12 20.364l7.682-7.682", RelatedSpecialties: []string{"Cardiologist"}},
		{Name: "Cough", Icon: "M8 12h.01M12 12h.01M16 12h.01", RelatedSpecialties: []string{"General Physician", "ENT Specialist"}},
		{Name: "Cold", Icon: "M3 15a4 4 0 004 4h9a5 5 0 10-.1-9.999", RelatedSpecialties: []string{"General Physician", "ENT Specialist"}},
		{Name: "Skin Rash", Icon: "M7 21a4 4 0 01-4-4V5a2 2 0 012-2h4", RelatedSpecialties: []string{"Dermatologist"}},
		{Name: "Joint Pain", Icon: "M13 10V3L4 14h7v7l9-11", RelatedSpecialties: []string{"Orthopedic Surgeon"}},
		{Name: "Stomach Pain", Icon: "M12 9v2m0 4h.01", RelatedSpecialties: []string{"General Physician"}},
		{Name: "Anxiety", Icon: "M14.828 14.828a4 4 0 01-5.656 0", RelatedSpecialties: []string{"Psychiatrist"}},
		{Name: "Sore Throat", Icon: "M19 11a7 7 0 01-7 7m0 0a7 7 0 01-7-7", RelatedSpecialties: []string{"ENT Specialist", "General Physician"}},
		{Name: "Migraine", Icon: "M12 8v4l3 3m6-3a9 9 0 11-18 0", RelatedSpecialties: []string{"Neurologist"}},
		{Name: "Back Pain", Icon: "M5 3v4M3 5h4M6 17v4m-2-2h4", RelatedSpecialties: []string{"Orthopedic Surgeon", "General Physician"}},
	}
}
