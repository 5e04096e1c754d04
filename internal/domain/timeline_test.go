package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pinOn(title, date string) Pin {
	d, _ := time.Parse("2006-01-02", date)
	return Pin{Title: title, PhotoDate: d}
}

func TestBuildTimeline_GroupsByMonth(t *testing.T) {
	pins := []Pin{
		pinOn("A", "2024-03-01"),
		pinOn("B", "2024-03-15"),
		pinOn("C", "2024-04-01"),
	}

	buckets := BuildTimeline(pins)

	assert.Len(t, buckets, 2)
	assert.Equal(t, "March 2024", buckets[0].Period)
	assert.Equal(t, "April 2024", buckets[1].Period)

	assert.Len(t, buckets[0].Pins, 2)
	assert.Equal(t, "A", buckets[0].Pins[0].Title)
	assert.Equal(t, "B", buckets[0].Pins[1].Title)

	assert.Len(t, buckets[1].Pins, 1)
	assert.Equal(t, "C", buckets[1].Pins[0].Title)
}

func TestBuildTimeline_EveryPinInExactlyOneBucket(t *testing.T) {
	pins := []Pin{
		pinOn("A", "2023-12-31"),
		pinOn("B", "2024-01-01"),
		pinOn("C", "2024-01-31"),
		pinOn("D", "2023-12-01"),
		pinOn("E", "2024-02-29"),
	}

	buckets := BuildTimeline(pins)

	seen := make(map[string]int)
	total := 0
	for _, bucket := range buckets {
		for _, pin := range bucket.Pins {
			seen[pin.Title]++
			total++
		}
	}

	assert.Equal(t, len(pins), total)
	for _, pin := range pins {
		assert.Equal(t, 1, seen[pin.Title], "pin %s should be in exactly one bucket", pin.Title)
	}
}

func TestBuildTimeline_BucketOrderFollowsInput(t *testing.T) {
	// Date-descending input, with December revisited after January: the
	// bucket keeps its first-encounter position.
	pins := []Pin{
		pinOn("newest", "2024-01-20"),
		pinOn("older", "2023-12-25"),
		pinOn("oldest", "2023-12-01"),
	}

	buckets := BuildTimeline(pins)

	assert.Len(t, buckets, 2)
	assert.Equal(t, "January 2024", buckets[0].Period)
	assert.Equal(t, "December 2023", buckets[1].Period)
	assert.Equal(t, []string{"older", "oldest"}, []string{buckets[1].Pins[0].Title, buckets[1].Pins[1].Title})
}

func TestBuildTimeline_Empty(t *testing.T) {
	assert.Empty(t, BuildTimeline(nil))
}
