package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/filterengine"
	"bikeshare/reporters/factory"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	sessionStr  = "explorer"
	restartWord = "yes"
)

var errInputClosed = errors.New("input closed")

// DatasetLoader reads the data of a city
type DatasetLoader interface {
	Load(ctx context.Context, city filter.City) (*trip.Dataset, error)
	LoadStations(ctx context.Context, city filter.City) (station.Catalog, error)
}

// ReportPublisher sends the report of a round outside the explorer
type ReportPublisher interface {
	Publish(ctx context.Context, queryResponse *queryresponse.QueryResponse) error
}

// Session asks the user what to explore, runs the round and prints the stats until
// the user does not want to restart
type Session struct {
	loader     DatasetLoader
	calendar   filter.Calendar
	publisher  ReportPublisher
	reader     *bufio.Reader
	writer     io.Writer
	newRoundID func() string
}

// NewSession creates a Session reading answers from in and writing to out. publisher
// may be nil.
func NewSession(loader DatasetLoader, calendar filter.Calendar, publisher ReportPublisher, in io.Reader, out io.Writer) *Session {
	return &Session{
		loader:     loader,
		calendar:   calendar,
		publisher:  publisher,
		reader:     bufio.NewReader(in),
		writer:     out,
		newRoundID: uuid.NewString,
	}
}

// Run plays rounds until the user declines to restart or the input is closed
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printSeparator()
		filterSpec, err := s.getFilters()
		if errors.Is(err, errInputClosed) {
			log.Debug("[session: explorer] input closed, finishing session")
			return nil
		}
		if err != nil {
			return err
		}

		result, err := s.RunRound(ctx, filterSpec)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.printf("\nSorry, the data for %s could not be loaded: %s\n", filterSpec.City, err.Error())
		} else {
			s.printReport(result)
		}

		restart, err := s.readLine("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.ToLower(restart) != restartWord {
			return nil
		}
	}
}

// RunRound loads the dataset of the selected city, filters it and generates every stat.
// Load errors are returned; a selection without trips is a valid report.
func (s *Session) RunRound(ctx context.Context, filterSpec filter.FilterSpec) (*report.Report, error) {
	roundID := s.newRoundID()

	dataset, err := s.loader.Load(ctx, filterSpec.City)
	if err != nil {
		log.Errorf("[round: %s][city: %s][status: ERROR] error loading dataset: %s", roundID, filterSpec.City, err.Error())
		return nil, err
	}

	stations, err := s.loader.LoadStations(ctx, filterSpec.City)
	if err != nil {
		log.Warnf("[round: %s][city: %s][status: ERROR] station catalog unavailable, route distance disabled: %s", roundID, filterSpec.City, err.Error())
		stations = station.Catalog{}
	}

	records := filterengine.ApplySpec(dataset.Records, filterSpec)
	log.Infof("[round: %s][city: %s][status: OK] %d of %d trips selected (%s)", roundID, filterSpec.City, len(records), len(dataset.Records), filterSpec.String())

	result := report.NewReport(roundID, filterSpec, len(records))
	err = factory.GenerateReport(report.NewInput(records, dataset.Fields, stations), result)
	if err != nil {
		log.Errorf("[round: %s][city: %s][status: ERROR] error generating report: %s", roundID, filterSpec.City, err.Error())
		return nil, err
	}

	s.publish(ctx, result)
	return result, nil
}

func (s *Session) publish(ctx context.Context, result *report.Report) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, queryresponse.NewQueryResponse(result.RoundID, result, sessionStr))
	if err != nil {
		log.Warnf("[round: %s][status: ERROR] error publishing report: %s", result.RoundID, err.Error())
	}
}

// getFilters asks the city, month and day to analyze until a valid answer is given
// for each of them
func (s *Session) getFilters() (filter.FilterSpec, error) {
	s.println("Hello! Let's explore some US bikeshare data!")

	city, err := s.askCity()
	if err != nil {
		return filter.FilterSpec{}, err
	}

	month, err := s.askMonth()
	if err != nil {
		return filter.FilterSpec{}, err
	}

	weekday, err := s.askWeekday()
	if err != nil {
		return filter.FilterSpec{}, err
	}

	filterSpec := filter.NewFilterSpec(city, month, weekday)
	s.printSeparator()
	s.printf("Now I'll make statistics for you about \n%s\n", filterSpec.String())
	s.printSeparator()
	return filterSpec, nil
}
