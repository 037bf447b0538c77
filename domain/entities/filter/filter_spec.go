package filter

import (
	"fmt"
	"strings"
	"time"
)

// City identifies one of the supported datasets
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities returns the supported cities in the order they are offered to the user
func Cities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// ParseCity matches name case-insensitively against the supported cities
func ParseCity(name string) (City, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, city := range Cities() {
		if string(city) == name {
			return city, true
		}
	}
	return "", false
}

// FilterSpec is the selection made by the user for one round
// + City: dataset to analyze
// + Month: nil means every month of the calendar
// + Weekday: nil means every day of the week
type FilterSpec struct {
	City    City          `json:"city"`
	Month   *time.Month   `json:"month,omitempty"`
	Weekday *time.Weekday `json:"weekday,omitempty"`
}

func NewFilterSpec(city City, month *time.Month, weekday *time.Weekday) FilterSpec {
	return FilterSpec{
		City:    city,
		Month:   month,
		Weekday: weekday,
	}
}

func (fs FilterSpec) String() string {
	description := fmt.Sprintf("city:%s", fs.City)
	if fs.Month != nil {
		description += fmt.Sprintf("   month:%s", fs.Month.String())
	}
	if fs.Weekday != nil {
		description += fmt.Sprintf("   day:%s", fs.Weekday.String())
	}
	return description
}
