package models

// HealthTopic is one article card in the health library.
type HealthTopic struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// SelfCareTool is one self-care card in the health library.
type SelfCareTool struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// HealthTip is the daily tip shown under the library.
type HealthTip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}
