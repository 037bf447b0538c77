package timestats

import (
	"errors"
	"time"

	"bikeshare/domain/business/modeaggregator"
	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/trip"
)

const reporterType = "time-stats"

// TimeStatsReporter computes the most frequent month, weekday and hour of travel
type TimeStatsReporter struct{}

func NewTimeStatsReporter() *TimeStatsReporter {
	return &TimeStatsReporter{}
}

func (tsr *TimeStatsReporter) GetType() string {
	return reporterType
}

func (tsr *TimeStatsReporter) Generate(input report.Input, out *report.Report) error {
	timeStats, err := Compute(input.Records)
	if err != nil {
		return err
	}
	out.Time = timeStats
	return nil
}

// Compute returns the time stats of records. No records is not an error, the result
// is flagged with NoData.
func Compute(records []trip.TripRecord) (report.TimeStats, error) {
	month, err := modeaggregator.ModeOf(records, modeaggregator.ByMonth)
	if errors.Is(err, modeaggregator.ErrEmptyGroup) {
		return report.TimeStats{NoData: true}, nil
	}
	if err != nil {
		return report.TimeStats{}, err
	}

	weekday, err := modeaggregator.ModeOf(records, modeaggregator.ByWeekday)
	if err != nil {
		return report.TimeStats{}, err
	}

	hour, err := modeaggregator.ModeOf(records, modeaggregator.ByHour)
	if err != nil {
		return report.TimeStats{}, err
	}

	return report.TimeStats{
		Month:   report.Count[time.Month]{Value: month.Key, Count: month.Count},
		Weekday: report.Count[time.Weekday]{Value: weekday.Key, Count: weekday.Count},
		Hour:    report.Count[int]{Value: hour.Key, Count: hour.Count},
	}, nil
}
