package userstats

import (
	"reflect"
	"testing"
	"time"

	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/trip"

	"github.com/shopspring/decimal"
)

func newRecord(userType string) trip.TripRecord {
	start := time.Date(2017, time.June, 1, 12, 0, 0, 0, time.UTC)
	return trip.NewTripRecord(start, decimal.NewFromInt(400), "A", "B", userType)
}

func TestCompute_AllFields(t *testing.T) {
	records := []trip.TripRecord{
		newRecord("Subscriber").WithGender("Male").WithBirthYear(1989),
		newRecord("Subscriber").WithGender("Female").WithBirthYear(1992),
		newRecord("Customer").WithGender("Male").WithBirthYear(1989),
		newRecord("Subscriber").WithGender("Male").WithBirthYear(1961),
		newRecord("Dependent"),
	}
	fields := trip.NewFieldSet(trip.FieldGender, trip.FieldBirthYear)

	userStats, err := Compute(records, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantUserTypes := []report.Count[string]{{Value: "Customer", Count: 1}, {Value: "Dependent", Count: 1}, {Value: "Subscriber", Count: 3}}
	if !reflect.DeepEqual(userStats.UserTypes, wantUserTypes) {
		t.Errorf("unexpected user types %+v", userStats.UserTypes)
	}

	wantGenders := []report.Count[string]{{Value: "Female", Count: 1}, {Value: "Male", Count: 3}}
	if userStats.GenderUnavailable || !reflect.DeepEqual(userStats.Genders, wantGenders) {
		t.Errorf("unexpected genders %+v (unavailable=%v)", userStats.Genders, userStats.GenderUnavailable)
	}

	wantBirthYear := report.BirthYearStats{
		MostCommon: report.Count[int]{Value: 1989, Count: 2},
		Earliest:   1961,
		MostRecent: 1992,
	}
	if userStats.BirthYear != wantBirthYear {
		t.Errorf("unexpected birth year stats %+v", userStats.BirthYear)
	}
}

func TestCompute_MissingColumns(t *testing.T) {
	records := []trip.TripRecord{newRecord("Subscriber"), newRecord("Customer")}

	userStats, err := Compute(records, trip.NewFieldSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !userStats.GenderUnavailable || userStats.Genders != nil {
		t.Errorf("expected gender unavailable, got %+v", userStats)
	}
	if !userStats.BirthYear.Unavailable {
		t.Errorf("expected birth year unavailable, got %+v", userStats.BirthYear)
	}
	if len(userStats.UserTypes) != 2 {
		t.Errorf("expected 2 user types, got %+v", userStats.UserTypes)
	}
}

func TestCompute_UnavailableDoesNotDependOnSelection(t *testing.T) {
	withColumns := trip.NewFieldSet(trip.FieldGender, trip.FieldBirthYear)
	withoutColumns := trip.NewFieldSet()

	selections := [][]trip.TripRecord{
		nil,
		{newRecord("Subscriber")},
		{newRecord("Subscriber").WithGender("Female").WithBirthYear(2000)},
	}

	for idx, records := range selections {
		present, err := Compute(records, withColumns)
		if err != nil {
			t.Fatalf("selection %d: unexpected error: %v", idx, err)
		}
		if present.GenderUnavailable || present.BirthYear.Unavailable {
			t.Errorf("selection %d: columns are present, got %+v", idx, present)
		}

		absent, err := Compute(records, withoutColumns)
		if err != nil {
			t.Fatalf("selection %d: unexpected error: %v", idx, err)
		}
		if !absent.GenderUnavailable || !absent.BirthYear.Unavailable {
			t.Errorf("selection %d: columns are absent, got %+v", idx, absent)
		}
	}
}

func TestCompute_ColumnsWithoutValues(t *testing.T) {
	records := []trip.TripRecord{newRecord("Customer"), newRecord("Customer")}

	userStats, err := Compute(records, trip.NewFieldSet(trip.FieldGender, trip.FieldBirthYear))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userStats.GenderUnavailable || len(userStats.Genders) != 0 {
		t.Errorf("expected available but empty genders, got %+v", userStats)
	}
	if userStats.BirthYear.Unavailable || !userStats.BirthYear.NoData {
		t.Errorf("expected birth year without data, got %+v", userStats.BirthYear)
	}
}

func TestGenerate_NoData(t *testing.T) {
	out := &report.Report{}
	input := report.NewInput(nil, trip.NewFieldSet(trip.FieldGender), nil)
	if err := NewUserStatsReporter().Generate(input, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.User.NoData {
		t.Error("expected NoData for an empty selection")
	}
	if out.User.GenderUnavailable || !out.User.BirthYear.Unavailable {
		t.Errorf("unexpected availability %+v", out.User)
	}
}
