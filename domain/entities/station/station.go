package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) coordinates() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// Catalog maps station names to their location. A nil Catalog is valid and empty.
type Catalog map[string]StationData

func NewCatalog(stations []StationData) Catalog {
	catalog := make(Catalog, len(stations))
	for _, stationData := range stations {
		catalog[stationData.Name] = stationData
	}
	return catalog
}

// DistanceKm returns the great-circle distance between two stations of the catalog.
// The bool is false if any of them is unknown.
func (c Catalog) DistanceKm(startStation string, endStation string) (float64, bool) {
	start, ok := c[startStation]
	if !ok {
		return 0, false
	}
	end, ok := c[endStation]
	if !ok {
		return 0, false
	}
	_, km := haversine.Distance(start.coordinates(), end.coordinates())
	return km, true
}
