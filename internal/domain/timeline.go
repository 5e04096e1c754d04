package domain

// TimelineBucket groups pins sharing a calendar month.
type TimelineBucket struct {
	Period string `json:"period"`
	Pins   []Pin  `json:"pins"`
}

// BuildTimeline partitions pins into buckets keyed by "January 2006" of
// the photo date. Buckets appear in first-encounter order and pins keep
// their incoming order within a bucket, so a date-descending input yields
// a date-descending page.
func BuildTimeline(pins []Pin) []TimelineBucket {
	index := make(map[string]int)
	buckets := make([]TimelineBucket, 0)

	for _, pin := range pins {
		period := pin.PhotoDate.Format("January 2006")
		i, ok := index[period]
		if !ok {
			i = len(buckets)
			index[period] = i
			buckets = append(buckets, TimelineBucket{Period: period})
		}
		buckets[i].Pins = append(buckets[i].Pins, pin)
	}

	return buckets
}
