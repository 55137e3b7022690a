package models

// Booking kinds accepted by the booking flow.
const (
	BookingKindCall        = "call"
	BookingKindVideo       = "video"
	BookingKindAppointment = "appointment"
)

// BookingDraft is the transient date/time selection pending confirmation.
// It exists only for the lifetime of one open booking modal and is never
// persisted server-side.
type BookingDraft struct {
	Kind       string `json:"kind"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // one of the fixed slot labels
}

// BookingConfirmation is the result of a successful confirmation. The
// reference exists only so the client can show it; nothing is stored.
type BookingConfirmation struct {
	Reference    string       `json:"reference"`
	Kind         string       `json:"kind"`
	DoctorName   string       `json:"doctorName"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Notification Notification `json:"notification"`
}
