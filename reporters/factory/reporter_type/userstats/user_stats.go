package userstats

import (
	"errors"

	"bikeshare/domain/business/modeaggregator"
	"bikeshare/domain/entities/report"
	"bikeshare/domain/entities/trip"
)

const reporterType = "user-stats"

// UserStatsReporter computes the breakdown of users by type, gender and birth year
type UserStatsReporter struct{}

func NewUserStatsReporter() *UserStatsReporter {
	return &UserStatsReporter{}
}

func (usr *UserStatsReporter) GetType() string {
	return reporterType
}

func (usr *UserStatsReporter) Generate(input report.Input, out *report.Report) error {
	userStats, err := Compute(input.Records, input.Fields)
	if err != nil {
		return err
	}
	out.User = userStats
	return nil
}

// Compute returns the user stats of records. Gender and birth year are reported as
// unavailable when fields says the dataset has no such column, whatever the records are.
func Compute(records []trip.TripRecord, fields trip.FieldSet) (report.UserStats, error) {
	userStats := report.UserStats{
		GenderUnavailable: !fields.Has(trip.FieldGender),
		BirthYear: report.BirthYearStats{
			Unavailable: !fields.Has(trip.FieldBirthYear),
		},
	}

	if len(records) == 0 {
		userStats.NoData = true
		userStats.BirthYear.NoData = !userStats.BirthYear.Unavailable
		return userStats, nil
	}

	userTypes, err := modeaggregator.SumsOf(records, modeaggregator.ByUserType)
	if err != nil && !errors.Is(err, modeaggregator.ErrEmptyGroup) {
		return report.UserStats{}, err
	}
	userStats.UserTypes = toCounts(userTypes)

	if !userStats.GenderUnavailable {
		genders, err := genderSums(records, fields)
		if err != nil {
			return report.UserStats{}, err
		}
		userStats.Genders = toCounts(genders)
	}

	if !userStats.BirthYear.Unavailable {
		birthYearStats, err := computeBirthYear(records, fields)
		if err != nil {
			return report.UserStats{}, err
		}
		userStats.BirthYear = birthYearStats
	}

	return userStats, nil
}

func genderSums(records []trip.TripRecord, fields trip.FieldSet) ([]modeaggregator.Result[string], error) {
	if err := fields.Require(trip.FieldGender); err != nil {
		return nil, err
	}

	genders, err := modeaggregator.SumsOf(records, modeaggregator.ByGender)
	if errors.Is(err, modeaggregator.ErrEmptyGroup) {
		return nil, nil
	}
	return genders, err
}

func computeBirthYear(records []trip.TripRecord, fields trip.FieldSet) (report.BirthYearStats, error) {
	if err := fields.Require(trip.FieldBirthYear); err != nil {
		return report.BirthYearStats{}, err
	}

	mostCommon, err := modeaggregator.ModeOf(records, modeaggregator.ByBirthYear)
	if errors.Is(err, modeaggregator.ErrEmptyGroup) {
		return report.BirthYearStats{NoData: true}, nil
	}
	if err != nil {
		return report.BirthYearStats{}, err
	}

	birthYearStats := report.BirthYearStats{
		MostCommon: report.Count[int]{Value: mostCommon.Key, Count: mostCommon.Count},
		Earliest:   mostCommon.Key,
		MostRecent: mostCommon.Key,
	}
	for idx := range records {
		if !records[idx].HasBirthYear {
			continue
		}
		birthYearStats.Earliest = min(birthYearStats.Earliest, records[idx].BirthYear)
		birthYearStats.MostRecent = max(birthYearStats.MostRecent, records[idx].BirthYear)
	}

	return birthYearStats, nil
}

func toCounts(results []modeaggregator.Result[string]) []report.Count[string] {
	counts := make([]report.Count[string], 0, len(results))
	for _, result := range results {
		counts = append(counts, report.Count[string]{Value: result.Key, Count: result.Count})
	}
	return counts
}
