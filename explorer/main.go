package main

import (
	"context"
	"errors"
	"os"

	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/explorer/session"
	"bikeshare/loader"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

// runUntilCancelled returns when run finishes or as soon as ctx is cancelled, whatever
// comes first. A read on stdin cannot be interrupted, so run is not waited for after
// cancellation.
func runUntilCancelled(ctx context.Context, run func(context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func main() {
	explorerConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading explorer config: %s", err)
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	calendar, err := explorerConfig.GetCalendar()
	if err != nil {
		log.Fatalf("%s", err)
	}

	var publisher session.ReportPublisher
	if explorerConfig.Publisher.Enabled {
		reportPublisher, err := communication.NewReportPublisher(explorerConfig.Publisher)
		if err != nil {
			log.Errorf("[publisher: rabbitmq][status: ERROR] reports will not be published: %s", err.Error())
		} else {
			defer func() {
				if err := reportPublisher.Close(); err != nil {
					log.Errorf("error closing publisher: %s", err.Error())
				}
			}()
			publisher = reportPublisher
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChannel := utils.GetSignalChannel()
	go func() {
		<-signalChannel
		log.Info("[session: explorer] signal received, bye!")
		cancel()
	}()

	dataLoader := loader.NewLoader(&explorerConfig.Loader)
	explorerSession := session.NewSession(dataLoader, calendar, publisher, os.Stdin, os.Stdout)

	err = runUntilCancelled(ctx, explorerSession.Run)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("[session: explorer][status: ERROR] %s", err.Error())
		return
	}

	log.Debug("[session: explorer] finish main.go")
}
