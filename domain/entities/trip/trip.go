package trip

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripRecord struct that contains one bicycle rental
// + StartTime: date and time in which the trip begins
// + TripDuration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of the user, e.g. Subscriber or Customer
// + Gender: gender of the user, empty when the record has no value
// + BirthYear: birth year of the user, only meaningful if HasBirthYear is true
// + Month, Weekday, Hour: derived from StartTime when the record is loaded
// + Weight: always 1, summed to count records
type TripRecord struct {
	StartTime    time.Time       `json:"start_time"`
	TripDuration decimal.Decimal `json:"trip_duration"`
	StartStation string          `json:"start_station"`
	EndStation   string          `json:"end_station"`
	UserType     string          `json:"user_type"`
	Gender       string          `json:"gender,omitempty"`
	BirthYear    int             `json:"birth_year,omitempty"`
	HasBirthYear bool            `json:"-"`
	Month        time.Month      `json:"month"`
	Weekday      time.Weekday    `json:"weekday"`
	Hour         int             `json:"hour"`
	Weight       int             `json:"weight"`
}

// NewTripRecord builds a TripRecord and derives its time fields from startTime
func NewTripRecord(startTime time.Time, tripDuration decimal.Decimal, startStation string, endStation string, userType string) TripRecord {
	return TripRecord{
		StartTime:    startTime,
		TripDuration: tripDuration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        startTime.Month(),
		Weekday:      startTime.Weekday(),
		Hour:         startTime.Hour(),
		Weight:       1,
	}
}

// WithGender returns a copy of the record with the given gender
func (tr TripRecord) WithGender(gender string) TripRecord {
	tr.Gender = gender
	return tr
}

// WithBirthYear returns a copy of the record with the given birth year
func (tr TripRecord) WithBirthYear(birthYear int) TripRecord {
	tr.BirthYear = birthYear
	tr.HasBirthYear = true
	return tr
}

// Dataset is the result of loading the trips of a city. Fields tells which optional
// columns the source carried.
type Dataset struct {
	City    string
	Records []TripRecord
	Fields  FieldSet
}
