package models

// Notification is a single fire-and-forget toast shown to the user.
// Destructive marks error severity; there is no acknowledgment.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}
