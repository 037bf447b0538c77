package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const allOption = "all"

// readLine prints question, if any, and returns the next trimmed line of input
func (s *Session) readLine(question string) (string, error) {
	if question != "" {
		s.printf("%s", question)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) askCity() (filter.City, error) {
	s.println("Would you like to see data for Chicago, New York city, or Washington?")
	for {
		answer, err := s.readLine("")
		if err != nil {
			return "", err
		}
		if city, ok := filter.ParseCity(answer); ok {
			return city, nil
		}
		s.println(`Sorry, There is a problem with the entry. Please enter again!(like "Chicago" "chicago" "CHICAGO")`)
	}
}

// askMonth returns nil when the user picks all the months
func (s *Session) askMonth() (*time.Month, error) {
	monthNames := s.calendar.MonthNames()
	s.printf("Which month? %s, or all?\n", strings.Join(monthNames, ", "))
	for {
		answer, err := s.readLine("")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(answer, allOption) {
			return nil, nil
		}
		if utils.ContainsString(answer, monthNames) {
			month, _ := s.calendar.Month(answer)
			return &month, nil
		}
		s.println(`Sorry, There is a problem with the entry. Please enter again!(like "January" "january")`)
	}
}

// askWeekday returns nil when the user picks all the days
func (s *Session) askWeekday() (*time.Weekday, error) {
	weekdayNames := s.calendar.WeekdayNames()
	s.printf("Which day? %s, or All.\n", strings.Join(weekdayNames, ", "))
	for {
		answer, err := s.readLine("")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(answer, allOption) {
			return nil, nil
		}
		if utils.ContainsString(answer, weekdayNames) {
			weekday, _ := s.calendar.Weekday(answer)
			return &weekday, nil
		}
		s.println(`Sorry, There is a problem with the entry. Please enter again!(like "all" "Monday")`)
	}
}
