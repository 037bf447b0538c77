package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"

	"github.com/shopspring/decimal"
)

type fakeLoader struct {
	datasets map[filter.City]*trip.Dataset
	stations station.Catalog
	loads    int
}

func (fl *fakeLoader) Load(ctx context.Context, city filter.City) (*trip.Dataset, error) {
	fl.loads++
	dataset, ok := fl.datasets[city]
	if !ok {
		return nil, loader.ErrDataLoad
	}
	return dataset, nil
}

func (fl *fakeLoader) LoadStations(ctx context.Context, city filter.City) (station.Catalog, error) {
	if fl.stations == nil {
		return nil, errors.New("no catalog")
	}
	return fl.stations, nil
}

type fakePublisher struct {
	responses []*queryresponse.QueryResponse
}

func (fp *fakePublisher) Publish(ctx context.Context, queryResponse *queryresponse.QueryResponse) error {
	fp.responses = append(fp.responses, queryResponse)
	return nil
}

func chicagoDataset() *trip.Dataset {
	newRecord := func(start time.Time, startStation string, endStation string, seconds int64) trip.TripRecord {
		return trip.NewTripRecord(start, decimal.NewFromInt(seconds), startStation, endStation, "Subscriber")
	}

	return &trip.Dataset{
		City: "chicago",
		Records: []trip.TripRecord{
			newRecord(time.Date(2017, time.June, 5, 17, 10, 0, 0, time.UTC), "Canal St & Adams St", "Clinton St & Madison St", 600).WithGender("Male").WithBirthYear(1989),
			newRecord(time.Date(2017, time.June, 12, 17, 40, 0, 0, time.UTC), "Canal St & Adams St", "Clinton St & Madison St", 1200).WithGender("Female").WithBirthYear(1990),
			newRecord(time.Date(2017, time.January, 3, 8, 0, 0, 0, time.UTC), "Streeter Dr & Grand Ave", "Canal St & Adams St", 1800).WithGender("Male").WithBirthYear(1989),
		},
		Fields: trip.NewFieldSet(trip.FieldGender, trip.FieldBirthYear),
	}
}

func washingtonDataset() *trip.Dataset {
	start := time.Date(2017, time.March, 1, 9, 0, 0, 0, time.UTC)
	return &trip.Dataset{
		City:    "washington",
		Records: []trip.TripRecord{trip.NewTripRecord(start, decimal.NewFromInt(300), "15th & K St NW", "14th & Belmont St NW", "Customer")},
		Fields:  trip.NewFieldSet(),
	}
}

func newTestSession(input string, publisher ReportPublisher) (*Session, *fakeLoader, *bytes.Buffer) {
	fl := &fakeLoader{
		datasets: map[filter.City]*trip.Dataset{
			filter.Chicago:    chicagoDataset(),
			filter.Washington: washingtonDataset(),
		},
	}
	out := &bytes.Buffer{}
	s := NewSession(fl, filter.DefaultCalendar(), publisher, strings.NewReader(input), out)
	s.newRoundID = func() string { return "round-test" }
	return s, fl, out
}

func TestRun_SingleRound(t *testing.T) {
	publisher := &fakePublisher{}
	s, _, out := newTestSession("chicago\nall\nall\nno\n", publisher)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	expected := []string{
		"Now I'll make statistics for you about \ncity:chicago\n",
		"The most popular month for traveling: June",
		"The most popular day for traveling: Monday",
		"The most popular hour of the day to start travels: 17 o'clock",
		"The most commonly used start station is: Canal St & Adams St, 2 times",
		"The most frequent combination of start station and end station trip is: (Canal St & Adams St) to (Clinton St & Madison St), 2 times",
		"This is the total travel time: 1.00 hour",
		"This is mean travel time: 20.00 min",
		"User type : Subscriber have 3",
		"Gender : Female have 1",
		"Gender : Male have 2",
		"The most common year of birth is : 1989 have 2",
		"The earliest year of birth is : 1989",
		"The recent year of birth is : 1990",
	}
	for _, text := range expected {
		if !strings.Contains(output, text) {
			t.Errorf("expected output to contain %q\n%s", text, output)
		}
	}

	if len(publisher.responses) != 1 || publisher.responses[0].GetQueryID() != "round-test" {
		t.Errorf("expected one published report, got %+v", publisher.responses)
	}
}

func TestRun_InvalidAnswersArePromptedAgain(t *testing.T) {
	s, fl, out := newTestSession("boston\nWASHINGTON\njuly\nMarch\nfunday\nwednesday\nno\n", nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, text := range []string{
		`Please enter again!(like "Chicago" "chicago" "CHICAGO")`,
		`Please enter again!(like "January" "january")`,
		`Please enter again!(like "all" "Monday")`,
		"city:washington   month:March   day:Wednesday",
		"The most commonly used start station is: 15th & K St NW, 1 times",
		"Sorry, we don't have gender data for this city.",
		"Sorry, we don't have birth year data for this city.",
	} {
		if !strings.Contains(output, text) {
			t.Errorf("expected output to contain %q\n%s", text, output)
		}
	}
	if fl.loads != 1 {
		t.Errorf("expected one load, got %d", fl.loads)
	}
}

func TestRun_NoMatchingTrips(t *testing.T) {
	s, _, out := newTestSession("chicago\nfebruary\nsunday\nno\n", nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Count(out.String(), noDataMessage); got != 4 {
		t.Errorf("expected every section without data, got %d\n%s", got, out.String())
	}
}

func TestRun_RestartAndLoadError(t *testing.T) {
	s, fl, out := newTestSession("new york city\nall\nall\nyes\nchicago\njune\nall\nNo\n", nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Sorry, the data for new york city could not be loaded") {
		t.Errorf("expected the load error to be reported\n%s", out.String())
	}
	if fl.loads != 2 {
		t.Errorf("expected two rounds, got %d loads", fl.loads)
	}
	if !strings.Contains(out.String(), "city:chicago   month:June") {
		t.Errorf("expected the second round to run\n%s", out.String())
	}
}

func TestRun_InputClosed(t *testing.T) {
	s, fl, _ := newTestSession("chicago\n", nil)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fl.loads != 0 {
		t.Errorf("expected no round with incomplete answers, got %d loads", fl.loads)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	s, _, _ := newTestSession("chicago\nall\nall\nno\n", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunRound_RouteDistance(t *testing.T) {
	s, fl, _ := newTestSession("", nil)
	fl.stations = station.NewCatalog([]station.StationData{
		{Name: "Canal St & Adams St", Latitude: 41.879255, Longitude: -87.639904},
		{Name: "Clinton St & Madison St", Latitude: 41.882242, Longitude: -87.641066},
	})

	result, err := s.RunRound(context.Background(), filter.NewFilterSpec(filter.Chicago, nil, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Station.RouteDistanceKm == nil {
		t.Fatal("expected route distance")
	}
	if result.Trips != 3 || result.RoundID != "round-test" {
		t.Errorf("unexpected report %+v", result)
	}
}

func TestRunRound_LoadError(t *testing.T) {
	s, _, _ := newTestSession("", nil)

	_, err := s.RunRound(context.Background(), filter.NewFilterSpec(filter.NewYorkCity, nil, nil))
	if !errors.Is(err, loader.ErrDataLoad) {
		t.Errorf("expected ErrDataLoad, got %v", err)
	}
}
