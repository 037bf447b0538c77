package durationstats

import (
	"errors"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/trip"

	"github.com/shopspring/decimal"
)

const reporterType = "duration-stats"

var (
	secondsPerMinute = decimal.NewFromInt(60)
	secondsPerHour   = decimal.NewFromInt(3600)
)

// DurationStatsReporter computes the total and mean trip duration
type DurationStatsReporter struct{}

func NewDurationStatsReporter() *DurationStatsReporter {
	return &DurationStatsReporter{}
}

func (dsr *DurationStatsReporter) GetType() string {
	return reporterType
}

func (dsr *DurationStatsReporter) Generate(input report.Input, out *report.Report) error {
	durationStats, err := Compute(input.Records)
	if err != nil {
		return err
	}
	out.Duration = durationStats
	return nil
}

// Compute returns the duration stats of records. Total is reported in hours and
// averages in minutes.
func Compute(records []trip.TripRecord) (report.DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := range records {
		accumulator.UpdateAccumulator(records[idx].TripDuration)
	}

	average, err := accumulator.GetAverageDuration()
	if errors.Is(err, durationaccumulator.ErrNoTrips) {
		return report.DurationStats{NoData: true}, nil
	}
	if err != nil {
		return report.DurationStats{}, err
	}

	return report.DurationStats{
		Trips:           accumulator.Counter,
		TotalSeconds:    accumulator.TotalDuration,
		TotalHours:      accumulator.TotalDuration.Div(secondsPerHour),
		MeanMinutes:     average.Div(secondsPerMinute),
		ShortestMinutes: accumulator.Shortest.Div(secondsPerMinute),
		LongestMinutes:  accumulator.Longest.Div(secondsPerMinute),
	}, nil
}
