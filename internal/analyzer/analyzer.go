// Package analyzer combines extracted URL features and detector verdicts
// into a bounded risk score and verdict.
package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/hakim/fahis/internal/detect"
	"github.com/hakim/fahis/internal/features"
	"github.com/hakim/fahis/internal/models"
	"github.com/hakim/fahis/internal/registry"
)

// Analyzer classifies URLs against a fixed registry.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	registry  *registry.Registry
	typosquat *detect.TyposquatDetector
	extract   func(string) (models.URLFeatures, error)
	logger    *slog.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New builds an analyzer over reg. A nil registry means built-in lists only.
func New(reg *registry.Registry, opts ...Option) *Analyzer {
	if reg == nil {
		reg = registry.New()
	}

	a := &Analyzer{
		registry:  reg,
		typosquat: detect.NewTyposquatDetector(reg.SafeDomains()),
		extract:   features.Extract,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze classifies rawURL. It never returns an error and never panics:
// unparseable input or an internal fault yields a high-risk result with
// score 100 and a warning describing the failure.
func (a *Analyzer) Analyze(rawURL string) (result models.AnalysisResult) {
	result = models.NewAnalysisResult(rawURL)

	defer func() {
		if r := recover(); r != nil {
			a.logger.Debug("analysis panicked", "url", rawURL, "panic", r)
			result = failureResult(rawURL, result.Features, fmt.Errorf("internal fault: %v", r))
		}
	}()

	f, err := a.extract(rawURL)
	result.Features = f
	if err != nil {
		a.logger.Debug("feature extraction failed", "url", rawURL, "error", err)
		return failureResult(rawURL, f, err)
	}

	domain := f.Domain

	// ── Known phishing ────────────────────────────────────────────────────────
	if a.registry.IsKnownPhishing(domain) {
		result.IsSafe = false
		result.RiskLevel = models.RiskHigh
		result.Score = KnownPhishingScore
		result.Warnings = append(result.Warnings, msgKnownPhishing)
		result.Recommendations = append(result.Recommendations, recAvoidPhishing)
		return result
	}

	// ── Known safe ────────────────────────────────────────────────────────────
	if a.registry.IsKnownSafe(domain) {
		result.Score = KnownSafeScore
		result.Recommendations = append(result.Recommendations, recKnownSafe)
		return result
	}

	// ── Heuristics ────────────────────────────────────────────────────────────
	riskScore := 0

	if f.URLLength > LongURLThreshold {
		riskScore += WeightLongURL
		result.Warnings = append(result.Warnings, msgLongURL)
	}

	if !f.HasHTTPS {
		riskScore += WeightNoHTTPS
		result.Warnings = append(result.Warnings, msgNoHTTPS)
	}

	if f.HasIP {
		riskScore += WeightIPAddress
		result.Warnings = append(result.Warnings, msgIPAddress)
	}

	if f.SubdomainCount > SubdomainCountLimit {
		riskScore += WeightManySubdomains
		result.Warnings = append(result.Warnings, msgManySubdomains)
	}

	if f.SuspiciousKeywordsCount > 0 {
		riskScore += f.SuspiciousKeywordsCount * WeightPerKeyword
		result.Warnings = append(result.Warnings, fmt.Sprintf(msgKeywordsFmt, f.SuspiciousKeywordsCount))
	}

	if detect.HasHomoglyphConfusion(domain) {
		riskScore += WeightHomoglyph
		result.Warnings = append(result.Warnings, msgHomoglyph)
	}

	if isTypo, original := a.typosquat.FindTyposquat(domain); isTypo {
		riskScore += WeightTyposquat
		result.Warnings = append(result.Warnings, fmt.Sprintf(msgTyposquatFmt, original))
	}

	result.Score = models.ClampScore(riskScore)
	result.RiskLevel, result.IsSafe = models.TierFor(result.Score)
	result.Recommendations = append(result.Recommendations, recommendationFor(result.RiskLevel))

	return result
}

// recommendationFor returns the advice line for a heuristic-path tier
func recommendationFor(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return recHighRisk
	case models.RiskMedium:
		return recMediumRisk
	default:
		return recLowRisk
	}
}

// failureResult builds the terminal result for a URL that could not be analyzed
func failureResult(rawURL string, f models.URLFeatures, err error) models.AnalysisResult {
	result := models.NewAnalysisResult(rawURL)
	result.Features = f
	result.IsSafe = false
	result.RiskLevel = models.RiskHigh
	result.Score = FailureScore
	result.Warnings = append(result.Warnings, fmt.Sprintf(msgFailureFmt, err))
	result.Recommendations = append(result.Recommendations, recFailure)
	return result
}
