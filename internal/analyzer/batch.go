package analyzer

import (
	"github.com/hakim/fahis/internal/models"
	"github.com/sourcegraph/conc/iter"
)

// AnalyzeBatch classifies urls concurrently with at most workers goroutines
// and returns a report whose results keep the input order.
// workers <= 0 uses one goroutine per CPU.
func (a *Analyzer) AnalyzeBatch(urls []string, workers int) *models.BatchReport {
	report := models.NewBatchReport()

	mapper := iter.Mapper[string, models.AnalysisResult]{MaxGoroutines: workers}
	results := mapper.Map(urls, func(u *string) models.AnalysisResult {
		return a.Analyze(*u)
	})

	report.Complete(results)
	a.logger.Debug("batch complete", "id", report.ID, "total", report.Summary.Total, "unsafe", report.Summary.Unsafe)

	return report
}
