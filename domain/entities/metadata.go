package entities

import "time"

// Metadata describes a payload that leaves the explorer
// + City: city the data belongs to
// + Type: kind of payload, e.g. report
// + Sender: component that built the payload
// + Selection: human readable description of the filters applied
// + CreatedAt: moment in which the payload was built
type Metadata struct {
	City      string    `json:"city"`
	Type      string    `json:"type"`
	Sender    string    `json:"sender"`
	Selection string    `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(city string, dataType string, sender string, selection string) Metadata {
	return Metadata{
		City:      city,
		Type:      dataType,
		Sender:    sender,
		Selection: selection,
		CreatedAt: time.Now().UTC(),
	}
}
