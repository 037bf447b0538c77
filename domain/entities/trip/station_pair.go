package trip

import (
	"cmp"
	"fmt"
)

// StationPair is the combination of the station in which a trip begins and the one in which it ends
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Compare orders pairs by start station, then by end station
func (sp StationPair) Compare(other StationPair) int {
	if c := cmp.Compare(sp.Start, other.Start); c != 0 {
		return c
	}
	return cmp.Compare(sp.End, other.End)
}

func (sp StationPair) String() string {
	return fmt.Sprintf("(%s) to (%s)", sp.Start, sp.End)
}
