package core

import (
	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// BuildReport runs every analysis operation over the analyzer's
// collection and bundles the results for rendering. A contributor
// filter that matches nothing is reported as a warning, not a failure.
func BuildReport(a *Analyzer, cfg *contract.Config) (*schema.AnalysisReport, error) {
	frequency, err := a.FrequencyByPeriod(cfg.Granularity)
	if err != nil {
		return nil, err
	}
	hours, err := a.TimeDistribution(schema.HourUnit)
	if err != nil {
		return nil, err
	}
	weekdays, err := a.TimeDistribution(schema.DayOfWeekUnit)
	if err != nil {
		return nil, err
	}
	months, err := a.TimeDistribution(schema.MonthUnit)
	if err != nil {
		return nil, err
	}
	changes, err := a.ChangeSummary()
	if err != nil {
		return nil, err
	}

	report := &schema.AnalysisReport{
		Frequency:    frequency,
		Contributors: a.TopContributors(cfg.TopN),
		Hours:        hours,
		Weekdays:     weekdays,
		Months:       months,
		Keywords:     a.MessageKeywords(cfg.KeywordN),
		Changes:      changes,
	}

	if cfg.Contributor != "" {
		if summary, found := a.ContributorSummary(cfg.Contributor); found {
			report.Contributor = &summary
		} else {
			contract.LogWarn("No commits found for contributor "+cfg.Contributor, nil)
		}
	}
	return report, nil
}
