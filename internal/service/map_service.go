package service

import (
	"context"

	"github.com/leo-lightfoot/travel-photo-album/internal/domain"
	"github.com/leo-lightfoot/travel-photo-album/internal/geo"
)

const (
	// mapMaxZoom bounds cluster expansion, matching the map widget's
	// maximum zoom level.
	mapMaxZoom = 18
	// fitMaxZoom keeps a single pin from over-zooming when the view
	// animates to fit all pin bounds.
	fitMaxZoom = 12
	fitPadding = 50

	// Nominal viewport used for the fit computation; clients with other
	// dimensions still land within a level of the right framing.
	fitViewportW = 1024
	fitViewportH = 768
)

// MapService computes the marker set for a viewport. Markers are rebuilt
// from scratch on every call rather than diffed, which is fine at
// personal-album scale.
type MapService interface {
	Markers(ctx context.Context, bounds domain.Bounds, zoom int, query string) ([]domain.Marker, error)
	FitAll(ctx context.Context, query string) (*domain.FitBounds, error)
}

type mapService struct {
	pinService PinService
	opts       geo.ClusterOptions
}

func NewMapService(pinService PinService) MapService {
	return &mapService{
		pinService: pinService,
		opts:       geo.DefaultClusterOptions(),
	}
}

// Markers places one marker per located pin, merging markers within the
// cluster radius at the given zoom. Pins missing either coordinate are
// excluded from spatial rendering but remain in the timeline.
func (s *mapService) Markers(ctx context.Context, bounds domain.Bounds, zoom int, query string) ([]domain.Marker, error) {
	pins, err := s.pinService.List(ctx, query)
	if err != nil {
		return nil, err
	}

	points := locatedPoints(pins)
	clusters := geo.Cluster(points, zoom, s.opts)

	markers := make([]domain.Marker, 0, len(clusters))
	for _, c := range clusters {
		if !bounds.Contains(c.Lat, c.Lon) {
			continue
		}

		if len(c.Points) > 1 {
			members := make([]geo.Point, 0, len(c.Points))
			for _, idx := range c.Points {
				members = append(members, geo.Point{
					Lat:   *pins[idx].Latitude,
					Lon:   *pins[idx].Longitude,
					Index: idx,
				})
			}
			markers = append(markers, domain.Marker{
				Position:      domain.GeoPoint{Lat: c.Lat, Lon: c.Lon},
				Cluster:       true,
				Count:         len(c.Points),
				ExpansionZoom: geo.ExpansionZoom(members, zoom, mapMaxZoom, s.opts),
			})
			continue
		}

		pin := pins[c.Points[0]]
		markers = append(markers, domain.Marker{
			Position: domain.GeoPoint{Lat: c.Lat, Lon: c.Lon},
			Pin:      &pin,
		})
	}

	return markers, nil
}

// FitAll returns the view framing every located pin, recomputed whenever
// the pin list changes.
func (s *mapService) FitAll(ctx context.Context, query string) (*domain.FitBounds, error) {
	pins, err := s.pinService.List(ctx, query)
	if err != nil {
		return nil, err
	}

	points := locatedPoints(pins)
	west, south, east, north, ok := geo.BoundsOf(points)
	if !ok {
		return &domain.FitBounds{}, nil
	}

	return &domain.FitBounds{
		Bounds: domain.Bounds{West: west, South: south, East: east, North: north},
		Center: domain.GeoPoint{Lat: (south + north) / 2, Lon: (west + east) / 2},
		Zoom:   geo.FitZoom(west, south, east, north, fitViewportW, fitViewportH, fitPadding, fitMaxZoom),
		Count:  len(points),
	}, nil
}

func locatedPoints(pins []domain.Pin) []geo.Point {
	points := make([]geo.Point, 0, len(pins))
	for i := range pins {
		if !pins[i].Located() {
			continue
		}
		points = append(points, geo.Point{
			Lat:   *pins[i].Latitude,
			Lon:   *pins[i].Longitude,
			Index: i,
		})
	}
	return points
}
