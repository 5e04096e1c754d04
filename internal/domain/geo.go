package domain

// GeoPoint is a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Contains reports whether the point lies inside the box.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}

// Place is the best-effort result of reverse geocoding. Empty fields mean
// the lookup failed or returned nothing; neither case blocks an upload.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Marker is one renderable map element: either an individual pin or a
// cluster of nearby pins merged at the current zoom level.
type Marker struct {
	Position GeoPoint `json:"position"`

	// Cluster fields. Count is the number of merged pins and
	// ExpansionZoom the zoom level that separates them.
	Cluster       bool `json:"cluster"`
	Count         int  `json:"count,omitempty"`
	ExpansionZoom int  `json:"expansion_zoom,omitempty"`

	// Pin is set for individual markers only.
	Pin *Pin `json:"pin,omitempty"`
}

// FitBounds describes the view that frames every located pin, used by
// clients to animate after the pin list changes.
type FitBounds struct {
	Bounds Bounds   `json:"bounds"`
	Center GeoPoint `json:"center"`
	Zoom   float64  `json:"zoom"`
	Count  int      `json:"count"`
}
