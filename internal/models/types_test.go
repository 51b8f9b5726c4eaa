package models

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		tier  RiskLevel
		safe  bool
	}{
		{0, RiskLow, true},
		{39, RiskLow, true},
		{40, RiskMedium, false},
		{68, RiskMedium, false},
		{69, RiskMedium, false},
		{70, RiskHigh, false},
		{100, RiskHigh, false},
	}

	for _, tt := range tests {
		tier, safe := TierFor(tt.score)
		if tier != tt.tier || safe != tt.safe {
			t.Errorf("TierFor(%d) = (%s, %v), want (%s, %v)", tt.score, tier, safe, tt.tier, tt.safe)
		}
	}
}

func TestClampScore(t *testing.T) {
	tests := map[int]int{
		-5:  0,
		0:   0,
		55:  55,
		100: 100,
		168: 100,
	}
	for in, want := range tests {
		if got := ClampScore(in); got != want {
			t.Errorf("ClampScore(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBatchReportComplete(t *testing.T) {
	report := NewBatchReport()
	if report.ID == "" {
		t.Fatal("expected report ID to be set")
	}
	if report.CompletedAt != nil {
		t.Fatal("new report should not be completed")
	}

	safe := NewAnalysisResult("https://github.com")
	medium := NewAnalysisResult("http://a.test")
	medium.IsSafe, medium.RiskLevel = false, RiskMedium
	high := NewAnalysisResult("http://b.test")
	high.IsSafe, high.RiskLevel = false, RiskHigh

	report.Complete([]AnalysisResult{safe, medium, high, high})

	want := BatchSummary{Total: 4, Safe: 1, Unsafe: 3, Low: 1, Medium: 1, High: 2}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if report.CompletedAt == nil {
		t.Error("CompletedAt should be set after Complete")
	}
	if len(report.Results) != 4 {
		t.Errorf("Results length = %d, want 4", len(report.Results))
	}
}
