package session

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities/report"
)

const noDataMessage = "No data for this selection."

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.writer, format, args...)
}

func (s *Session) println(text string) {
	_, _ = fmt.Fprintln(s.writer, text)
}

func (s *Session) printSeparator() {
	s.println(strings.Repeat("-", 40))
}

func (s *Session) printReport(result *report.Report) {
	s.printTimeStats(result.Time)
	s.printStationStats(result.Station)
	s.printDurationStats(result.Duration)
	s.printUserStats(result.User)
}

func (s *Session) printTimeStats(timeStats report.TimeStats) {
	s.println("\nCalculating The Most Frequent Times of Travel...\n")
	if timeStats.NoData {
		s.println(noDataMessage)
	} else {
		s.printf("The most popular month for traveling: %s\n", timeStats.Month.Value)
		s.printf("The most popular day for traveling: %s\n", timeStats.Weekday.Value)
		s.printf("The most popular hour of the day to start travels: %d o'clock\n", timeStats.Hour.Value)
	}
	s.printSeparator()
}

func (s *Session) printStationStats(stationStats report.StationStats) {
	s.println("\nCalculating The Most Popular Stations and Trip...\n")
	if stationStats.NoData {
		s.println(noDataMessage)
	} else {
		s.printf("The most commonly used start station is: %s, %d times\n", stationStats.StartStation.Value, stationStats.StartStation.Count)
		s.printf("The most commonly used end station is: %s, %d times\n", stationStats.EndStation.Value, stationStats.EndStation.Count)
		s.printf("The most frequent combination of start station and end station trip is: %s, %d times\n", stationStats.Route.Value, stationStats.Route.Count)
		if stationStats.RouteDistanceKm != nil {
			s.printf("The distance between both stations is: %.2f km\n", *stationStats.RouteDistanceKm)
		}
	}
	s.printSeparator()
}

func (s *Session) printDurationStats(durationStats report.DurationStats) {
	s.println("\nCalculating Trip Duration...\n")
	if durationStats.NoData {
		s.println(noDataMessage)
	} else {
		s.printf("This is the total travel time: %s hour\n", durationStats.TotalHours.StringFixed(2))
		s.printf("This is mean travel time: %s min\n", durationStats.MeanMinutes.StringFixed(2))
		s.printf("The shortest trip took: %s min\n", durationStats.ShortestMinutes.StringFixed(2))
		s.printf("The longest trip took: %s min\n", durationStats.LongestMinutes.StringFixed(2))
	}
	s.printSeparator()
}

func (s *Session) printUserStats(userStats report.UserStats) {
	s.println("\nCalculating User Stats...\n")
	if userStats.NoData {
		s.println(noDataMessage)
	}
	for _, userType := range userStats.UserTypes {
		s.printf("User type : %s have %d\n", userType.Value, userType.Count)
	}

	if userStats.GenderUnavailable {
		s.printSeparator()
		s.println("Sorry, we don't have gender data for this city.")
	} else {
		for _, gender := range userStats.Genders {
			s.printf("Gender : %s have %d\n", gender.Value, gender.Count)
		}
	}

	birthYear := userStats.BirthYear
	switch {
	case birthYear.Unavailable:
		s.printSeparator()
		s.println("Sorry, we don't have birth year data for this city.")
	case birthYear.NoData:
		if !userStats.NoData {
			s.println("No birth year data for this selection.")
		}
	default:
		s.printf("The most common year of birth is : %d have %d\n", birthYear.MostCommon.Value, birthYear.MostCommon.Count)
		s.printf("The earliest year of birth is : %d\n", birthYear.Earliest)
		s.printf("The recent year of birth is : %d\n", birthYear.MostRecent)
	}
	s.printSeparator()
}
