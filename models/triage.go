package models

// TriageSubmission combines the selected symptom labels with the
// free-text description the user typed.
type TriageSubmission struct {
	Symptoms []string `json:"symptoms"`
	Details  string   `json:"details"`
}

// TriageAssessment is the eventual output of symptom analysis. The
// analysis engine is not wired yet; the type fixes the interface for it.
type TriageAssessment struct {
	Summary      string   `json:"summary"`
	Specialities []string `json:"specialities"`
}
