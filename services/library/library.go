// File: services/library/library.go
package library

import "gynoconnect/models"

// Static health library content; constant for the process lifetime.

var healthTopics = []models.HealthTopic{
	{
		ID:          1,
		Title:       "Understanding PCOS",
		Description: "Learn about Polycystic Ovary Syndrome, its symptoms, and management strategies.",
		Icon:        "🔴",
		Category:    "Hormonal Health",
	},
	{
		ID:          2,
		Title:       "Preventing UTIs",
		Description: "Simple steps to prevent urinary tract infections and maintain urogenital health.",
		Icon:        "🧫",
		Category:    "Hygiene",
	},
	{
		ID:          3,
		Title:       "Contraception Guide",
		Description: "Comprehensive guide to different contraceptive methods and their effectiveness.",
		Icon:        "🚫",
		Category:    "Family Planning",
	},
	{
		ID:          4,
		Title:       "Menstrual Health",
		Description: "Everything you need to know about healthy menstrual cycles and period care.",
		Icon:        "🩸",
		Category:    "Reproductive Health",
	},
}

var selfCareTools = []models.SelfCareTool{
	{
		Title:       "Period Pain Relief",
		Description: "Natural remedies and exercises for menstrual cramps",
		Icon:        "🧘‍♀️",
	},
	{
		Title:       "Hygiene Checklist",
		Description: "Daily routine for optimal reproductive health",
		Icon:        "🧼",
	},
	{
		Title:       "Symptom Tracker",
		Description: "Track your symptoms and cycles digitally",
		Icon:        "📊",
	},
}

var dailyTip = models.HealthTip{
	Title: "Stay Hydrated",
	Body:  "Drinking enough water helps prevent UTIs and supports overall reproductive health. Aim for 8-10 glasses of water daily, especially during your menstrual cycle.",
	Icon:  "💧",
}

// LibraryService serves the static health library.
type LibraryService struct{}

func NewLibraryService() *LibraryService {
	return &LibraryService{}
}

func (s *LibraryService) Topics() []models.HealthTopic {
	out := make([]models.HealthTopic, len(healthTopics))
	copy(out, healthTopics)
	return out
}

func (s *LibraryService) Tools() []models.SelfCareTool {
	out := make([]models.SelfCareTool, len(selfCareTools))
	copy(out, selfCareTools)
	return out
}

func (s *LibraryService) DailyTip() models.HealthTip {
	return dailyTip
}
