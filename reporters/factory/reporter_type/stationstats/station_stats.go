package stationstats

import (
	"errors"

	"bikeshare/domain/business/modeaggregator"
	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

const reporterType = "station-stats"

// StationStatsReporter computes the most popular stations and trip
type StationStatsReporter struct{}

func NewStationStatsReporter() *StationStatsReporter {
	return &StationStatsReporter{}
}

func (ssr *StationStatsReporter) GetType() string {
	return reporterType
}

func (ssr *StationStatsReporter) Generate(input report.Input, out *report.Report) error {
	stationStats, err := Compute(input.Records, input.Stations)
	if err != nil {
		return err
	}
	out.Station = stationStats
	return nil
}

// Compute returns the station stats of records. Trips without a station name are not
// counted, and a selection where no station is known has no data. The distance of the
// most popular route is only set if both of its stations are in catalog.
func Compute(records []trip.TripRecord, catalog station.Catalog) (report.StationStats, error) {
	startStation, err := modeaggregator.ModeOf(records, modeaggregator.ByStartStation)
	if err != nil {
		return noDataOr(err)
	}

	endStation, err := modeaggregator.ModeOf(records, modeaggregator.ByEndStation)
	if err != nil {
		return noDataOr(err)
	}

	route, err := modeaggregator.RouteMode(records)
	if err != nil {
		return noDataOr(err)
	}

	stationStats := report.StationStats{
		StartStation: report.Count[string]{Value: startStation.Key, Count: startStation.Count},
		EndStation:   report.Count[string]{Value: endStation.Key, Count: endStation.Count},
		Route:        report.Count[trip.StationPair]{Value: route.Key, Count: route.Count},
	}

	if distance, ok := catalog.DistanceKm(route.Key.Start, route.Key.End); ok {
		stationStats.RouteDistanceKm = &distance
	}

	return stationStats, nil
}

func noDataOr(err error) (report.StationStats, error) {
	if errors.Is(err, modeaggregator.ErrEmptyGroup) {
		return report.StationStats{NoData: true}, nil
	}
	return report.StationStats{}, err
}
