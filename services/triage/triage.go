// File: services/triage/triage.go
package triage

import (
	"context"
	"errors"

	"gynoconnect/models"
)

// ErrAnalysisNotWired marks the symptom-analysis boundary: the submission
// contract exists, the engine behind it does not yet.
var ErrAnalysisNotWired = errors.New("triage: symptom analysis is not wired up yet")

// commonSymptoms is the fixed checklist shown to the user.
var commonSymptoms = []string{
	"Irregular periods",
	"Pelvic pain",
	"Unusual discharge",
	"Heavy bleeding",
	"Missed periods",
	"Painful periods",
	"Bloating",
	"Breast tenderness",
	"Mood changes",
	"Hot flashes",
	"Urinary issues",
	"Pain during intercourse",
}

// Analyzer is the future symptom-analysis engine. Wiring a real
// implementation (client-side heuristic or remote call) replaces
// stubAnalyzer without touching the handler.
type Analyzer interface {
	Analyze(ctx context.Context, sub models.TriageSubmission) (*models.TriageAssessment, error)
}

// TriageService owns the symptom checklist and the submission boundary.
type TriageService struct {
	Analyzer Analyzer
}

// NewTriageService creates a triage service with the not-yet-wired analyzer.
func NewTriageService() *TriageService {
	return &TriageService{Analyzer: stubAnalyzer{}}
}

// Symptoms returns the fixed checklist.
func (s *TriageService) Symptoms() []string {
	out := make([]string, len(commonSymptoms))
	copy(out, commonSymptoms)
	return out
}

// Toggle flips membership of a symptom label in the selected set:
// present becomes absent, absent becomes present. Order of the remaining
// labels is preserved; toggling twice restores the original set.
func Toggle(selected []string, symptom string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == symptom {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, symptom)
	}
	return out
}

// Analyze forwards the submission to the analyzer.
func (s *TriageService) Analyze(ctx context.Context, sub models.TriageSubmission) (*models.TriageAssessment, error) {
	return s.Analyzer.Analyze(ctx, sub)
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, sub models.TriageSubmission) (*models.TriageAssessment, error) {
	return nil, ErrAnalysisNotWired
}
