package report

import (
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Input is the data every reporter reads
// + Records: trips that matched the filter of the round
// + Fields: optional fields present in the dataset the trips come from
// + Stations: location of the stations of the city, may be empty
type Input struct {
	Records  []trip.TripRecord
	Fields   trip.FieldSet
	Stations station.Catalog
}

func NewInput(records []trip.TripRecord, fields trip.FieldSet, stations station.Catalog) Input {
	return Input{
		Records:  records,
		Fields:   fields,
		Stations: stations,
	}
}
