// Package geo provides the spatial math behind the map surface: web
// mercator projection, pixel-radius marker clustering, and viewport
// fitting. Grid cells keyed by floored pixel coordinates keep the
// neighbor scan cheap, so clustering stays O(n) per recompute.
package geo

import "math"

// TileSize is the pixel size of one map tile at every zoom level.
const TileSize = 256

// worldSize returns the pixel width of the whole world at the given zoom.
func worldSize(zoom float64) float64 {
	return TileSize * math.Pow(2, zoom)
}

// Project converts a WGS84 coordinate to web-mercator pixel coordinates
// at the given zoom.
func Project(lat, lon, zoom float64) (x, y float64) {
	// Normalize longitude to [-180, 180].
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}

	// Mercator is undefined at the poles; clamp to its usable band.
	lat = math.Max(-85.05112878, math.Min(85.05112878, lat))

	size := worldSize(zoom)
	sinLat := math.Sin(lat * math.Pi / 180)

	x = (lon + 180) / 360 * size
	y = (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)) * size
	return x, y
}

// Unproject converts web-mercator pixel coordinates at the given zoom
// back to a WGS84 coordinate.
func Unproject(x, y, zoom float64) (lat, lon float64) {
	size := worldSize(zoom)

	lon = x/size*360 - 180
	n := math.Pi - 2*math.Pi*y/size
	lat = 180 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
	return lat, lon
}
