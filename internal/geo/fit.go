package geo

import "math"

// BoundsOf returns the smallest box containing every point. ok is false
// for an empty slice.
func BoundsOf(points []Point) (west, south, east, north float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, 0, 0, false
	}
	west, east = points[0].Lon, points[0].Lon
	south, north = points[0].Lat, points[0].Lat
	for _, p := range points[1:] {
		if p.Lon < west {
			west = p.Lon
		}
		if p.Lon > east {
			east = p.Lon
		}
		if p.Lat < south {
			south = p.Lat
		}
		if p.Lat > north {
			north = p.Lat
		}
	}
	return west, south, east, north, true
}

// FitZoom computes the largest zoom at which the box, inset by padding on
// every side, fits a viewport of the given pixel size. The result is
// capped at maxZoom so a single pin does not over-zoom.
func FitZoom(west, south, east, north, viewportW, viewportH, padding, maxZoom float64) float64 {
	x1, y1 := Project(north, west, 0)
	x2, y2 := Project(south, east, 0)

	dx := math.Abs(x2 - x1)
	dy := math.Abs(y2 - y1)

	usableW := viewportW - 2*padding
	usableH := viewportH - 2*padding
	if usableW <= 0 || usableH <= 0 {
		return maxZoom
	}

	zoom := maxZoom
	if dx > 0 {
		zoom = math.Min(zoom, math.Log2(usableW/dx))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(usableH/dy))
	}
	if zoom < 0 {
		zoom = 0
	}
	return zoom
}
