package stationstats

import (
	"testing"
	"time"

	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"

	"github.com/shopspring/decimal"
)

func newRecord(startStation string, endStation string) trip.TripRecord {
	start := time.Date(2017, time.April, 4, 10, 0, 0, 0, time.UTC)
	return trip.NewTripRecord(start, decimal.NewFromInt(200), startStation, endStation, "Customer")
}

func TestCompute(t *testing.T) {
	records := []trip.TripRecord{
		newRecord("Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"),
		newRecord("Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"),
		newRecord("Clinton St & Washington Blvd", "Streeter Dr & Grand Ave"),
		newRecord("Streeter Dr & Grand Ave", "Streeter Dr & Grand Ave"),
		newRecord("Lake Shore Dr & Monroe St", "Streeter Dr & Grand Ave"),
	}

	stationStats, err := Compute(records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stationStats.StartStation != (report.Count[string]{Value: "Streeter Dr & Grand Ave", Count: 3}) {
		t.Errorf("unexpected start station %+v", stationStats.StartStation)
	}
	if stationStats.EndStation != (report.Count[string]{Value: "Streeter Dr & Grand Ave", Count: 3}) {
		t.Errorf("unexpected end station %+v", stationStats.EndStation)
	}
	wantRoute := trip.StationPair{Start: "Streeter Dr & Grand Ave", End: "Lake Shore Dr & Monroe St"}
	if stationStats.Route.Value != wantRoute || stationStats.Route.Count != 2 {
		t.Errorf("unexpected route %+v", stationStats.Route)
	}
	if stationStats.StartStation.Count > len(records) {
		t.Errorf("start station count %d exceeds the number of trips", stationStats.StartStation.Count)
	}
	if stationStats.RouteDistanceKm != nil {
		t.Errorf("expected no distance without catalog, got %v", *stationStats.RouteDistanceKm)
	}
}

func TestCompute_TiedStations(t *testing.T) {
	records := []trip.TripRecord{
		newRecord("Wabash Ave & Grand Ave", "X"),
		newRecord("Canal St & Adams St", "X"),
		newRecord("Wabash Ave & Grand Ave", "X"),
		newRecord("Canal St & Adams St", "X"),
	}

	for run := 0; run < 20; run++ {
		stationStats, err := Compute(records, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stationStats.StartStation.Value != "Canal St & Adams St" {
			t.Fatalf("run %d: expected Canal St & Adams St, got %q", run, stationStats.StartStation.Value)
		}
	}
}

func TestCompute_RouteDistance(t *testing.T) {
	catalog := station.NewCatalog([]station.StationData{
		{Name: "Streeter Dr & Grand Ave", Latitude: 41.892278, Longitude: -87.612043},
		{Name: "Lake Shore Dr & Monroe St", Latitude: 41.880958, Longitude: -87.616743},
	})
	records := []trip.TripRecord{newRecord("Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St")}

	stationStats, err := Compute(records, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stationStats.RouteDistanceKm == nil {
		t.Fatal("expected route distance")
	}
	if *stationStats.RouteDistanceKm < 1.2 || *stationStats.RouteDistanceKm > 1.4 {
		t.Errorf("unexpected distance %.3f", *stationStats.RouteDistanceKm)
	}
}

func TestGenerate_NoData(t *testing.T) {
	out := &report.Report{}
	if err := NewStationStatsReporter().Generate(report.Input{}, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Station.NoData {
		t.Error("expected NoData for an empty selection")
	}
}

func TestCompute_MissingStations(t *testing.T) {
	records := []trip.TripRecord{
		newRecord("", "Lake Shore Dr & Monroe St"),
		newRecord("", ""),
	}

	stationStats, err := Compute(records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stationStats.NoData {
		t.Errorf("expected NoData when no start station is known, got %+v", stationStats)
	}
}
