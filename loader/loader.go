package loader

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader/config"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
	missingValue           = "NaN"
)

// Loader reads the trips dataset of a city
type Loader struct {
	config *config.LoaderConfig
}

func NewLoader(loaderConfig *config.LoaderConfig) *Loader {
	return &Loader{
		config: loaderConfig,
	}
}

func (l *Loader) getLogMessage(city filter.City, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[city: %s][method: %s][status: ERROR] %s: %s", city, method, message, err.Error())
	}
	return fmt.Sprintf("[city: %s][method: %s][status: OK] %s", city, method, message)
}

// Load reads every trip of city, parses its start time and derives month, weekday and
// hour. Any failure is returned wrapping ErrDataLoad.
func (l *Loader) Load(ctx context.Context, city filter.City) (*trip.Dataset, error) {
	cityDataset, ok := l.config.Cities[city]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrDataLoad, ErrUnknownCity, city)
	}

	path := l.config.Path(cityDataset.Dataset)
	data, err := l.readTable(ctx, path, cityDataset.Table)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", "error reading dataset", err))
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	dataset, err := l.parseTable(data)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error parsing %s", path), err))
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoad, path, err)
	}
	dataset.City = string(city)

	log.Info(l.getLogMessage(city, "Load", fmt.Sprintf("%d trips loaded from %s, optional fields: %v", len(dataset.Records), path, dataset.Fields.Names()), nil))
	return dataset, nil
}

// LoadStations reads the station catalog of city. A city without catalog returns an
// empty catalog.
func (l *Loader) LoadStations(ctx context.Context, city filter.City) (station.Catalog, error) {
	cityDataset, ok := l.config.Cities[city]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	if cityDataset.Stations == "" {
		log.Debug(l.getLogMessage(city, "LoadStations", "no station catalog configured", nil))
		return station.Catalog{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.config.Path(cityDataset.Stations)
	stations, err := readStations(ctx, path, string(city))
	if err != nil {
		log.Error(l.getLogMessage(city, "LoadStations", "error reading station catalog", err))
		return nil, err
	}

	log.Debug(l.getLogMessage(city, "LoadStations", fmt.Sprintf("%d stations loaded from %s", len(stations), path), nil))
	return station.NewCatalog(stations), nil
}

func (l *Loader) readTable(ctx context.Context, path string, tableName string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return readSQLite(ctx, path, tableName)
	default:
		return readCSV(ctx, path)
	}
}

func (l *Loader) parseTable(data *table) (*trip.Dataset, error) {
	columns := l.config.Columns
	for _, required := range []string{columns.StartTime, columns.TripDuration, columns.StartStation, columns.EndStation, columns.UserType} {
		if !data.hasColumn(required) {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, required)
		}
	}

	fields := trip.NewFieldSet()
	if data.hasColumn(columns.Gender) {
		fields[trip.FieldGender] = true
	}
	if data.hasColumn(columns.BirthYear) {
		fields[trip.FieldBirthYear] = true
	}

	records := make([]trip.TripRecord, 0, data.rows)
	for row := 0; row < data.rows; row++ {
		record, err := l.parseRecord(data, row, fields)
		if err != nil {
			// row 1 is the header in the source file
			return nil, fmt.Errorf("row %d: %w", row+2, err)
		}
		records = append(records, record)
	}

	return &trip.Dataset{
		Records: records,
		Fields:  fields,
	}, nil
}

func (l *Loader) parseRecord(data *table, row int, fields trip.FieldSet) (trip.TripRecord, error) {
	columns := l.config.Columns

	startTimeStr := data.value(columns.StartTime, row)
	startTime, err := l.parseTimestamp(startTimeStr)
	if err != nil {
		return trip.TripRecord{}, err
	}

	durationStr := strings.TrimSpace(data.value(columns.TripDuration, row))
	duration, err := decimal.NewFromString(durationStr)
	if err != nil || duration.IsNegative() {
		return trip.TripRecord{}, fmt.Errorf("%w: %s %q", ErrInvalidValue, columns.TripDuration, durationStr)
	}

	record := trip.NewTripRecord(
		startTime,
		duration,
		optionalValue(data.value(columns.StartStation, row)),
		optionalValue(data.value(columns.EndStation, row)),
		optionalValue(data.value(columns.UserType, row)),
	)

	if fields.Has(trip.FieldGender) {
		record = record.WithGender(optionalValue(data.value(columns.Gender, row)))
	}

	if fields.Has(trip.FieldBirthYear) {
		birthYearStr := optionalValue(data.value(columns.BirthYear, row))
		if birthYearStr != "" {
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil || birthYear != math.Trunc(birthYear) {
				return trip.TripRecord{}, fmt.Errorf("%w: %s %q", ErrInvalidValue, columns.BirthYear, birthYearStr)
			}
			record = record.WithBirthYear(int(birthYear))
		}
	}

	return record, nil
}

func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range l.config.TimestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// optionalValue maps the representations of a missing value to ""
func optionalValue(value string) string {
	value = strings.TrimSpace(value)
	if value == missingValue {
		return ""
	}
	return value
}

func readStations(ctx context.Context, path string, city string) ([]station.StationData, error) {
	data, err := readCSV(ctx, path)
	if err != nil {
		return nil, err
	}

	for _, required := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !data.hasColumn(required) {
			return nil, fmt.Errorf("%s: %w: %s", path, ErrMissingField, required)
		}
	}
	if data.rows == 0 {
		return []station.StationData{}, nil
	}

	df := dataframe.New(
		series.New(data.columns[stationNameColumn], series.String, stationNameColumn),
		series.New(data.columns[stationLatitudeColumn], series.Float, stationLatitudeColumn),
		series.New(data.columns[stationLongitudeColumn], series.Float, stationLongitudeColumn),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%s: %w", path, df.Err)
	}

	names := df.Col(stationNameColumn).Records()
	latitudes := df.Col(stationLatitudeColumn).Float()
	longitudes := df.Col(stationLongitudeColumn).Float()

	stations := make([]station.StationData, 0, len(names))
	for idx, name := range names {
		if math.IsNaN(latitudes[idx]) || math.IsNaN(longitudes[idx]) {
			log.Debugf("[city: %s][station: %s] skipping station without coordinates", city, name)
			continue
		}
		stations = append(stations, station.StationData{
			City:      city,
			Name:      name,
			Latitude:  latitudes[idx],
			Longitude: longitudes[idx],
		})
	}
	return stations, nil
}
