package filterengine

import (
	"time"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

// Apply returns the records that match month and weekday, keeping their order. A nil
// month or weekday does not filter. The input slice is never modified.
func Apply(records []trip.TripRecord, month *time.Month, weekday *time.Weekday) []trip.TripRecord {
	filtered := make([]trip.TripRecord, 0, len(records))
	for idx := range records {
		if month != nil && records[idx].Month != *month {
			continue
		}
		if weekday != nil && records[idx].Weekday != *weekday {
			continue
		}
		filtered = append(filtered, records[idx])
	}
	return filtered
}

// ApplySpec applies the month and weekday of filterSpec
func ApplySpec(records []trip.TripRecord, filterSpec filter.FilterSpec) []trip.TripRecord {
	return Apply(records, filterSpec.Month, filterSpec.Weekday)
}
