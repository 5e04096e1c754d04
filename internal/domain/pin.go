package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrPinNotFound        = errors.New("pin not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrPhotoDateRequired  = errors.New("a valid photo date is required")
	ErrLocationRequired   = errors.New("latitude and longitude are required")
	ErrInvalidCoordinates = errors.New("coordinates outside valid WGS84 ranges")
)

// Pin is one geotagged photo record. Latitude and longitude are pointers
// because a pin without a location is still valid for the timeline; it is
// only excluded from map rendering.
type Pin struct {
	ID          uuid.UUID      `json:"id" db:"pin_id"`
	Title       string         `json:"title" db:"title"`
	Description *string        `json:"description,omitempty" db:"description"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	MediaURL    string         `json:"media_url" db:"media_url"`
	ThumbURL    *string        `json:"thumb_url,omitempty" db:"thumb_url"`
	PhotoDate   time.Time      `json:"photo_date" db:"photo_date"`
	Latitude    *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64       `json:"longitude,omitempty" db:"longitude"`
	City        *string        `json:"city,omitempty" db:"city"`
	Country     *string        `json:"country,omitempty" db:"country"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// Located reports whether the pin carries both coordinates and can be
// placed on the map.
func (p *Pin) Located() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type CreatePinInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	PhotoDate   string   `json:"photo_date"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	City        *string  `json:"city,omitempty"`
	Country     *string  `json:"country,omitempty"`
}

// Validate enforces the per-file submission requirements: non-empty title,
// a parseable photo date, and an in-range location.
func (in *CreatePinInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if _, err := time.Parse("2006-01-02", in.PhotoDate); err != nil {
		return ErrPhotoDateRequired
	}
	if in.Latitude == nil || in.Longitude == nil {
		return ErrLocationRequired
	}
	if *in.Latitude < -90 || *in.Latitude > 90 || *in.Longitude < -180 || *in.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// MatchesQuery reports whether the case-folded query is a substring of any
// of title, description, city, country, or a tag. The empty query matches
// everything.
func (p *Pin) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), query) {
		return true
	}
	if p.City != nil && strings.Contains(strings.ToLower(*p.City), query) {
		return true
	}
	if p.Country != nil && strings.Contains(strings.ToLower(*p.Country), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// FilterPins returns the pins matching the free-text query, preserving the
// incoming order. An empty or whitespace-only query returns the input
// unchanged.
func FilterPins(pins []Pin, query string) []Pin {
	if strings.TrimSpace(query) == "" {
		return pins
	}
	filtered := make([]Pin, 0, len(pins))
	for _, pin := range pins {
		if pin.MatchesQuery(query) {
			filtered = append(filtered, pin)
		}
	}
	return filtered
}
