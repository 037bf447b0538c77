package durationaccumulator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNoTrips = errors.New("cannot get average, counter is zero")

// DurationAccumulator struct that collects the duration of a set of trips
// + Counter: amount of trips collected
// + TotalDuration: sum of durations in seconds
// + Shortest, Longest: extreme durations in seconds, meaningless while Counter is zero
type DurationAccumulator struct {
	Counter       int             `json:"counter"`
	TotalDuration decimal.Decimal `json:"total_duration"`
	Shortest      decimal.Decimal `json:"shortest"`
	Longest       decimal.Decimal `json:"longest"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(newDuration decimal.Decimal) {
	if da.Counter == 0 || newDuration.LessThan(da.Shortest) {
		da.Shortest = newDuration
	}
	if da.Counter == 0 || newDuration.GreaterThan(da.Longest) {
		da.Longest = newDuration
	}
	da.Counter += 1
	da.TotalDuration = da.TotalDuration.Add(newDuration)
}

// GetAverageDuration returns the mean duration in seconds
func (da *DurationAccumulator) GetAverageDuration() (decimal.Decimal, error) {
	if da.Counter == 0 {
		return decimal.Zero, ErrNoTrips
	}
	return da.TotalDuration.Div(decimal.NewFromInt(int64(da.Counter))), nil
}
