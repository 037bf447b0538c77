package report

import (
	"time"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"

	"github.com/shopspring/decimal"
)

// Count is a value together with the sum of weights of the trips that have it
type Count[K any] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// TimeStats contains the most frequent times of travel
type TimeStats struct {
	NoData  bool                `json:"no_data"`
	Month   Count[time.Month]   `json:"month"`
	Weekday Count[time.Weekday] `json:"weekday"`
	Hour    Count[int]          `json:"hour"`
}

// StationStats contains the most popular stations and trip.
// RouteDistanceKm is nil when the location of any of the route stations is unknown.
type StationStats struct {
	NoData          bool                    `json:"no_data"`
	StartStation    Count[string]           `json:"start_station"`
	EndStation      Count[string]           `json:"end_station"`
	Route           Count[trip.StationPair] `json:"route"`
	RouteDistanceKm *float64                `json:"route_distance_km,omitempty"`
}

// DurationStats contains aggregated trip durations
type DurationStats struct {
	NoData          bool            `json:"no_data"`
	Trips           int             `json:"trips"`
	TotalSeconds    decimal.Decimal `json:"total_seconds"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	MeanMinutes     decimal.Decimal `json:"mean_minutes"`
	ShortestMinutes decimal.Decimal `json:"shortest_minutes"`
	LongestMinutes  decimal.Decimal `json:"longest_minutes"`
}

// BirthYearStats contains the birth year statistics of the users.
// Unavailable means the dataset has no birth year column; NoData means the column
// exists but none of the selected trips has a value.
type BirthYearStats struct {
	Unavailable bool       `json:"unavailable"`
	NoData      bool       `json:"no_data"`
	MostCommon  Count[int] `json:"most_common"`
	Earliest    int        `json:"earliest"`
	MostRecent  int        `json:"most_recent"`
}

// UserStats contains the demographic breakdown of the users
type UserStats struct {
	NoData            bool            `json:"no_data"`
	UserTypes         []Count[string] `json:"user_types"`
	GenderUnavailable bool            `json:"gender_unavailable"`
	Genders           []Count[string] `json:"genders"`
	BirthYear         BirthYearStats  `json:"birth_year"`
}

// Report contains the result of one exploration round
type Report struct {
	RoundID  string            `json:"round_id"`
	Filter   filter.FilterSpec `json:"filter"`
	Trips    int               `json:"trips"`
	Time     TimeStats         `json:"time"`
	Station  StationStats      `json:"station"`
	Duration DurationStats     `json:"duration"`
	User     UserStats         `json:"user"`
}

func NewReport(roundID string, filterSpec filter.FilterSpec, trips int) *Report {
	return &Report{
		RoundID: roundID,
		Filter:  filterSpec,
		Trips:   trips,
	}
}
