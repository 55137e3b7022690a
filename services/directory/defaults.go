package directory

import "gynoconnect/models"

// legacyDoctor is the shape of the built-in default records. Its field names
// predate the upstream directory contract (address/timings/specialization
// versus city/timing/speciality), so the remap below is explicit and total.
type legacyDoctor struct {
	ID             string
	Name           string
	Rating         float64
	Clinic         string
	Address        string
	Timings        string
	Specialization string
	Image          string
	Phone          string
}

var defaultDoctors = []legacyDoctor{
	{
		ID:             "1",
		Name:           "Dr. Radhika Sen",
		Rating:         4.7,
		Clinic:         "Lotus Women's Clinic",
		Address:        "Delhi",
		Timings:        "Mon-Sat, 10AM–6PM",
		Specialization: "PCOS Expert",
		Image:          "👩‍⚕️",
		Phone:          "+91-9876543210",
	},
	{
		ID:             "2",
		Name:           "Dr. Nidhi Kapoor",
		Rating:         4.8,
		Clinic:         "Bliss Women's Hospital",
		Address:        "Mumbai",
		Timings:        "Mon-Fri, 9AM–5PM",
		Specialization: "Pregnancy Support",
		Image:          "👩‍⚕️",
		Phone:          "+91-9876543211",
	},
	{
		ID:             "3",
		Name:           "Dr. Anjali Sharma",
		Rating:         4.6,
		Clinic:         "Care Women's Center",
		Address:        "Bangalore",
		Timings:        "Tue-Sun, 11AM–7PM",
		Specialization: "Infection Specialist",
		Image:          "👩‍⚕️",
		Phone:          "+91-9876543212",
	},
}

// fromLegacy remaps a built-in record onto the presentation model:
// address→city, timings→timing, specialization→speciality.
func fromLegacy(d legacyDoctor) models.Doctor {
	return models.Doctor{
		ID:         d.ID,
		Name:       d.Name,
		Rating:     d.Rating,
		Clinic:     d.Clinic,
		City:       d.Address,
		Timing:     d.Timings,
		Speciality: d.Specialization,
		Image:      d.Image,
		Phone:      d.Phone,
	}
}

// DefaultDoctorList returns a fresh copy of the static default list.
func DefaultDoctorList() []models.Doctor {
	doctors := make([]models.Doctor, 0, len(defaultDoctors))
	for _, d := range defaultDoctors {
		doctors = append(doctors, fromLegacy(d))
	}
	return doctors
}
