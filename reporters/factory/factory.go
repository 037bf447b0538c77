package factory

import (
	"errors"
	"fmt"

	"bikeshare/domain/entities/report"
	"bikeshare/reporters/factory/reporter_type/durationstats"
	"bikeshare/reporters/factory/reporter_type/stationstats"
	"bikeshare/reporters/factory/reporter_type/timestats"
	"bikeshare/reporters/factory/reporter_type/userstats"
)

const (
	timeStatsReporter     = "time-stats"
	stationStatsReporter  = "station-stats"
	durationStatsReporter = "duration-stats"
	userStatsReporter     = "user-stats"
)

var ErrInvalidReporterType = errors.New("invalid reporter type")

type IReporter interface {
	GetType() string
	Generate(input report.Input, out *report.Report) error
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats
func NewReporter(reporterType string) (IReporter, error) {
	switch reporterType {
	case timeStatsReporter:
		return timestats.NewTimeStatsReporter(), nil
	case stationStatsReporter:
		return stationstats.NewStationStatsReporter(), nil
	case durationStatsReporter:
		return durationstats.NewDurationStatsReporter(), nil
	case userStatsReporter:
		return userstats.NewUserStatsReporter(), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] %w: %s", ErrInvalidReporterType, reporterType)
}

// ReporterTypes returns every reporter type in the order its stats are displayed
func ReporterTypes() []string {
	return []string{timeStatsReporter, stationStatsReporter, durationStatsReporter, userStatsReporter}
}

// All returns one reporter of each type, in display order
func All() []IReporter {
	reporters := make([]IReporter, 0, len(ReporterTypes()))
	for _, reporterType := range ReporterTypes() {
		reporter, err := NewReporter(reporterType)
		if err != nil {
			panic(err)
		}
		reporters = append(reporters, reporter)
	}
	return reporters
}

// GenerateReport runs every reporter over input and collects their results in out
func GenerateReport(input report.Input, out *report.Report) error {
	for _, reporter := range All() {
		if err := reporter.Generate(input, out); err != nil {
			return fmt.Errorf("[reporter: %s] %w", reporter.GetType(), err)
		}
	}
	return nil
}
