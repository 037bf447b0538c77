package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bikeshare/domain/entities/filter"
)

const defaultSQLiteTable = "trips"

var ErrInvalidConfig = errors.New("invalid loader config")

// CityDataset tells where the data of a city lives
// + Dataset: trips file, .csv or .db/.sqlite
// + Stations: optional CSV with name,latitude,longitude of each station
// + Table: table that contains the trips when Dataset is a SQLite database
type CityDataset struct {
	Dataset  string `yaml:"dataset"`
	Stations string `yaml:"stations"`
	Table    string `yaml:"table"`
}

// Columns contains the name of each column to analyze
type Columns struct {
	StartTime    string `yaml:"start_time"`
	TripDuration string `yaml:"trip_duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

type LoaderConfig struct {
	DataDir          string                      `yaml:"data_dir"`
	Cities           map[filter.City]CityDataset `yaml:"cities"`
	Columns          Columns                     `yaml:"columns"`
	TimestampLayouts []string                    `yaml:"timestamp_layouts"`
}

// DefaultColumns returns the column names used by the bikeshare datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		TripDuration: "Trip Duration",
		StartStation: "Start Station",
		EndStation:   "End Station",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// DefaultLoaderConfig returns the config for the chicago.csv, new_york_city.csv and
// washington.csv files of dataDir
func DefaultLoaderConfig(dataDir string) *LoaderConfig {
	return &LoaderConfig{
		DataDir: dataDir,
		Cities: map[filter.City]CityDataset{
			filter.Chicago:     {Dataset: "chicago.csv"},
			filter.NewYorkCity: {Dataset: "new_york_city.csv"},
			filter.Washington:  {Dataset: "washington.csv"},
		},
		Columns:          DefaultColumns(),
		TimestampLayouts: []string{time.DateTime, time.RFC3339},
	}
}

// FillDefaults sets the default value of every empty field
func (lc *LoaderConfig) FillDefaults() {
	defaults := DefaultColumns()
	fillString(&lc.Columns.StartTime, defaults.StartTime)
	fillString(&lc.Columns.TripDuration, defaults.TripDuration)
	fillString(&lc.Columns.StartStation, defaults.StartStation)
	fillString(&lc.Columns.EndStation, defaults.EndStation)
	fillString(&lc.Columns.UserType, defaults.UserType)
	fillString(&lc.Columns.Gender, defaults.Gender)
	fillString(&lc.Columns.BirthYear, defaults.BirthYear)

	if len(lc.TimestampLayouts) == 0 {
		lc.TimestampLayouts = []string{time.DateTime, time.RFC3339}
	}

	for city, dataset := range lc.Cities {
		if dataset.Table == "" {
			dataset.Table = defaultSQLiteTable
			lc.Cities[city] = dataset
		}
	}
}

// Validate checks that every supported city has a dataset
func (lc *LoaderConfig) Validate() error {
	for _, city := range filter.Cities() {
		dataset, ok := lc.Cities[city]
		if !ok || dataset.Dataset == "" {
			return fmt.Errorf("%w: no dataset for city %s", ErrInvalidConfig, city)
		}
	}
	return nil
}

// Path resolves file against DataDir. Empty file stays empty.
func (lc *LoaderConfig) Path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(lc.DataDir, file)
}

func fillString(target *string, value string) {
	if *target == "" {
		*target = value
	}
}
