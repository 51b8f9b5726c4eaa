package models

import (
	"time"

	"github.com/google/uuid"
)

// BatchSummary aggregates verdict counts across a batch
type BatchSummary struct {
	Total  int `json:"total"`
	Safe   int `json:"safe"`
	Unsafe int `json:"unsafe"`
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// BatchReport contains the ordered results of analyzing many URLs
type BatchReport struct {
	ID          string           `json:"id"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Results     []AnalysisResult `json:"results"`
	Summary     BatchSummary     `json:"summary"`
}

// NewBatchReport creates a report with a fresh ID and start timestamp
func NewBatchReport() *BatchReport {
	return &BatchReport{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Results:   []AnalysisResult{},
	}
}

// Complete stores results, computes the summary and stamps CompletedAt
func (r *BatchReport) Complete(results []AnalysisResult) {
	r.Results = results
	r.Summary = Summarize(results)
	now := time.Now()
	r.CompletedAt = &now
}

// Summarize counts safe/unsafe verdicts and tiers
func Summarize(results []AnalysisResult) BatchSummary {
	s := BatchSummary{Total: len(results)}
	for _, res := range results {
		if res.IsSafe {
			s.Safe++
		} else {
			s.Unsafe++
		}
		switch res.RiskLevel {
		case RiskLow:
			s.Low++
		case RiskMedium:
			s.Medium++
		case RiskHigh:
			s.High++
		}
	}
	return s
}
