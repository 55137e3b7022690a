package assistant

// presetQuestions is the fixed question list, in display order.
var presetQuestions = []string{
	"What are your consultation fees?",
	"How do I book an appointment?",
	"Can I upload my medical reports?",
	"What if I need to reschedule?",
	"Are consultations confidential?",
	"Do you provide prescriptions online?",
}

// faqTable maps each preset question to its exact canned answer.
var faqTable = map[string]string{
	"What are your consultation fees?":     "Our video consultations start from ₹500 for 15 minutes and ₹800 for 30 minutes. In-person appointments vary by doctor and location.",
	"How do I book an appointment?":        "You can book through our app by selecting 'Find Nearby Doctors' or 'Video Consultation', choose your preferred doctor, date and time.",
	"Can I upload my medical reports?":     "Yes! You can upload reports in PDF, JPG, or PNG format during the booking process or before your consultation.",
	"What if I need to reschedule?":        "You can reschedule up to 2 hours before your appointment through the app or by calling our reception.",
	"Are consultations confidential?":      "Absolutely! All consultations are completely confidential and follow strict medical privacy guidelines.",
	"Do you provide prescriptions online?": "Yes, our doctors can provide digital prescriptions after video consultations when medically appropriate.",
}

// keywordGroup routes a free-text message to a canned answer when any of
// its keywords appears as a substring of the lowercased input. Groups are
// checked in order; the first match wins.
type keywordGroup struct {
	keywords []string
	question string
}

var keywordGroups = []keywordGroup{
	{keywords: []string{"fee", "cost", "price"}, question: "What are your consultation fees?"},
	{keywords: []string{"book", "appointment"}, question: "How do I book an appointment?"},
	{keywords: []string{"report", "upload"}, question: "Can I upload my medical reports?"},
}

// Canned copy outside the FAQ table.
const (
	greetingMessage   = "Hi! I'm here to help you with common questions. How can I assist you today?"
	deflectionMessage = "I understand your question. For specific medical concerns, please book a consultation with our doctors. For general queries, please call our reception."
)
