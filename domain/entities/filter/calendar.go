package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const calendarMonths = 6

var ErrInvalidCalendar = errors.New("invalid calendar")

var (
	defaultMonths   = []string{"January", "February", "March", "April", "May", "June"}
	defaultWeekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// Calendar enumerates the months and weekdays a user can filter by. Datasets cover
// exactly six months, so a calendar always holds six months and the seven weekdays.
type Calendar struct {
	months   []time.Month
	weekdays []time.Weekday
}

// DefaultCalendar returns January to June and Sunday to Saturday
func DefaultCalendar() Calendar {
	calendar, err := NewCalendar(defaultMonths, defaultWeekdays)
	if err != nil {
		panic(err)
	}
	return calendar
}

// NewCalendar builds a Calendar from English month and weekday names
func NewCalendar(monthNames []string, weekdayNames []string) (Calendar, error) {
	if len(monthNames) != calendarMonths {
		return Calendar{}, fmt.Errorf("%w: expected %d months, got %d", ErrInvalidCalendar, calendarMonths, len(monthNames))
	}
	if len(weekdayNames) != 7 {
		return Calendar{}, fmt.Errorf("%w: expected 7 weekdays, got %d", ErrInvalidCalendar, len(weekdayNames))
	}

	var calendar Calendar
	seenMonths := make(map[time.Month]bool)
	for _, name := range monthNames {
		month, ok := monthByName(name)
		if !ok {
			return Calendar{}, fmt.Errorf("%w: unknown month %q", ErrInvalidCalendar, name)
		}
		if seenMonths[month] {
			return Calendar{}, fmt.Errorf("%w: duplicated month %q", ErrInvalidCalendar, name)
		}
		seenMonths[month] = true
		calendar.months = append(calendar.months, month)
	}

	seenWeekdays := make(map[time.Weekday]bool)
	for _, name := range weekdayNames {
		weekday, ok := weekdayByName(name)
		if !ok {
			return Calendar{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidCalendar, name)
		}
		if seenWeekdays[weekday] {
			return Calendar{}, fmt.Errorf("%w: duplicated weekday %q", ErrInvalidCalendar, name)
		}
		seenWeekdays[weekday] = true
		calendar.weekdays = append(calendar.weekdays, weekday)
	}

	return calendar, nil
}

// Month returns the calendar month matching name, case-insensitive
func (c Calendar) Month(name string) (time.Month, bool) {
	month, ok := monthByName(name)
	if !ok {
		return 0, false
	}
	for _, calendarMonth := range c.months {
		if calendarMonth == month {
			return month, true
		}
	}
	return 0, false
}

// Weekday returns the calendar weekday matching name, case-insensitive
func (c Calendar) Weekday(name string) (time.Weekday, bool) {
	weekday, ok := weekdayByName(name)
	if !ok {
		return 0, false
	}
	for _, calendarWeekday := range c.weekdays {
		if calendarWeekday == weekday {
			return weekday, true
		}
	}
	return 0, false
}

func (c Calendar) MonthNames() []string {
	names := make([]string, 0, len(c.months))
	for _, month := range c.months {
		names = append(names, month.String())
	}
	return names
}

func (c Calendar) WeekdayNames() []string {
	names := make([]string, 0, len(c.weekdays))
	for _, weekday := range c.weekdays {
		names = append(names, weekday.String())
	}
	return names
}

func monthByName(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for month := time.January; month <= time.December; month++ {
		if strings.EqualFold(month.String(), name) {
			return month, true
		}
	}
	return 0, false
}

func weekdayByName(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if strings.EqualFold(weekday.String(), name) {
			return weekday, true
		}
	}
	return 0, false
}
