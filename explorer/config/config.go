package config

import (
	"errors"
	"fmt"
	"os"

	"bikeshare/communication"
	"bikeshare/domain/entities/filter"
	loaderConfig "bikeshare/loader/config"
	"bikeshare/utils"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	defaultLogLevel       = "info"

	configPathEnvVarName = "CONFIG_PATH"
	logLevelEnvVarName   = "LOG_LEVEL"
	dataDirEnvVarName    = "DATA_DIR"
	rabbitUrlEnvVarName  = "RABBIT_URL"
)

var ErrInvalidConfig = errors.New("invalid explorer config")

// CalendarConfig lists the months and weekdays the user can filter by
type CalendarConfig struct {
	Months   []string `yaml:"months"`
	Weekdays []string `yaml:"weekdays"`
}

type ExplorerConfig struct {
	LogLevel  string                        `yaml:"log_level"`
	Loader    loaderConfig.LoaderConfig     `yaml:"loader"`
	Calendar  CalendarConfig                `yaml:"calendar"`
	Publisher communication.PublisherConfig `yaml:"publisher"`
}

// LoadConfig reads the config file from CONFIG_PATH, or the default location. LOG_LEVEL,
// DATA_DIR and RABBIT_URL override the values of the file.
func LoadConfig() (*ExplorerConfig, error) {
	configFilepath := os.Getenv(configPathEnvVarName)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}

	explorerConfig, err := loadFrom(configFilepath)
	if err != nil {
		return nil, err
	}

	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.Loader.DataDir = dataDir
	}
	if rabbitURL := os.Getenv(rabbitUrlEnvVarName); rabbitURL != "" {
		explorerConfig.Publisher.URL = rabbitURL
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

func loadFrom(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	explorerConfig.fillDefaults()
	return &explorerConfig, nil
}

func (ec *ExplorerConfig) fillDefaults() {
	if ec.LogLevel == "" {
		ec.LogLevel = defaultLogLevel
	}

	if len(ec.Loader.Cities) == 0 {
		ec.Loader.Cities = loaderConfig.DefaultLoaderConfig(ec.Loader.DataDir).Cities
	}
	ec.Loader.FillDefaults()

	defaultCalendar := filter.DefaultCalendar()
	if len(ec.Calendar.Months) == 0 {
		ec.Calendar.Months = defaultCalendar.MonthNames()
	}
	if len(ec.Calendar.Weekdays) == 0 {
		ec.Calendar.Weekdays = defaultCalendar.WeekdayNames()
	}

	ec.Publisher.FillDefaults()
}

// Validate checks the loader and calendar sections, and the publisher when enabled
func (ec *ExplorerConfig) Validate() error {
	if err := ec.Loader.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := ec.GetCalendar(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if ec.Publisher.Enabled && ec.Publisher.URL == "" {
		return fmt.Errorf("%w: publisher enabled without url", ErrInvalidConfig)
	}
	return nil
}

func (ec *ExplorerConfig) GetCalendar() (filter.Calendar, error) {
	return filter.NewCalendar(ec.Calendar.Months, ec.Calendar.Weekdays)
}
