package tripcounter

// TripCounter struct that sums the weight of the trips that share a grouping key
// + Key: value of the grouping key. Once set, it cannot change
// + Counter: sum of the weights of the trips with this key
type TripCounter[K comparable] struct {
	Key     K   `json:"key"`
	Counter int `json:"counter"`
}

func NewTripCounter[K comparable](key K) *TripCounter[K] {
	return &TripCounter[K]{
		Key: key,
	}
}

// UpdateCounter adds the weight of one trip
func (tc *TripCounter[K]) UpdateCounter(weight int) {
	tc.Counter += weight
}

func (tc *TripCounter[K]) GetCounter() int {
	return tc.Counter
}
