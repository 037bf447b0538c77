package modeaggregator

import (
	"cmp"
	"slices"
	"time"

	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

// Result is a grouping key together with the sum of the weights of its trips
type Result[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// KeyFunc extracts the grouping key of a trip. Trips for which it returns false do not
// belong to any group, e.g. a trip without birth year when grouping by birth year.
type KeyFunc[K comparable] func(record trip.TripRecord) (K, bool)

// Sums partitions records by key and sums the weight of each partition. Groups are
// returned in ascending key order according to compare.
// If no record yields a key ErrEmptyGroup is returned.
func Sums[K comparable](records []trip.TripRecord, key KeyFunc[K], compare func(a K, b K) int) ([]Result[K], error) {
	counters := make(map[K]*tripcounter.TripCounter[K])
	for idx := range records {
		groupKey, ok := key(records[idx])
		if !ok {
			continue
		}

		counter, ok := counters[groupKey]
		if !ok {
			counter = tripcounter.NewTripCounter(groupKey)
			counters[groupKey] = counter
		}
		counter.UpdateCounter(records[idx].Weight)
	}

	if len(counters) == 0 {
		return nil, ErrEmptyGroup
	}

	results := make([]Result[K], 0, len(counters))
	for _, counter := range counters {
		results = append(results, Result[K]{Key: counter.Key, Count: counter.GetCounter()})
	}
	slices.SortFunc(results, func(a, b Result[K]) int {
		return compare(a.Key, b.Key)
	})

	return results, nil
}

// Mode returns the group with the largest weight sum. When several groups tie, the
// smallest key according to compare wins.
func Mode[K comparable](records []trip.TripRecord, key KeyFunc[K], compare func(a K, b K) int) (Result[K], error) {
	sums, err := Sums(records, key, compare)
	if err != nil {
		return Result[K]{}, err
	}

	best := sums[0]
	for _, group := range sums[1:] {
		if group.Count > best.Count {
			best = group
		}
	}
	return best, nil
}

// ModeOf is Mode for keys with a natural order
func ModeOf[K cmp.Ordered](records []trip.TripRecord, key KeyFunc[K]) (Result[K], error) {
	return Mode(records, key, cmp.Compare[K])
}

// SumsOf is Sums for keys with a natural order
func SumsOf[K cmp.Ordered](records []trip.TripRecord, key KeyFunc[K]) ([]Result[K], error) {
	return Sums(records, key, cmp.Compare[K])
}

// RouteMode returns the most frequent combination of start and end station
func RouteMode(records []trip.TripRecord) (Result[trip.StationPair], error) {
	return Mode(records, ByRoute, trip.StationPair.Compare)
}

func ByMonth(record trip.TripRecord) (time.Month, bool) {
	return record.Month, true
}

func ByWeekday(record trip.TripRecord) (time.Weekday, bool) {
	return record.Weekday, true
}

func ByHour(record trip.TripRecord) (int, bool) {
	return record.Hour, true
}

func ByStartStation(record trip.TripRecord) (string, bool) {
	return record.StartStation, record.StartStation != ""
}

func ByEndStation(record trip.TripRecord) (string, bool) {
	return record.EndStation, record.EndStation != ""
}

// ByRoute skips trips missing either station
func ByRoute(record trip.TripRecord) (trip.StationPair, bool) {
	return trip.StationPair{Start: record.StartStation, End: record.EndStation}, record.StartStation != "" && record.EndStation != ""
}

func ByUserType(record trip.TripRecord) (string, bool) {
	return record.UserType, record.UserType != ""
}

func ByGender(record trip.TripRecord) (string, bool) {
	return record.Gender, record.Gender != ""
}

func ByBirthYear(record trip.TripRecord) (int, bool) {
	return record.BirthYear, record.HasBirthYear
}
