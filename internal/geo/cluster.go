package geo

import "math"

// Point is one clusterable location. Index refers back into the caller's
// pin list so cluster members can be resolved after clustering.
type Point struct {
	Lat   float64
	Lon   float64
	Index int
}

// ClusterOptions control when nearby markers merge.
type ClusterOptions struct {
	// RadiusPx is the merge radius in screen pixels at the current zoom.
	RadiusPx float64
	// MaxZoom is the last zoom level at which points still cluster.
	MaxZoom int
	// MinPoints is the minimum number of merged points to form a cluster.
	MinPoints int
}

// DefaultClusterOptions matches the marker behavior of the album's map:
// an 80px merge radius, clustering up to zoom 16, pairs and larger merge.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{RadiusPx: 80, MaxZoom: 16, MinPoints: 2}
}

// ClusterResult is one computed marker: a centroid and the indexes of its
// member points. A single-member result renders as an individual marker.
type ClusterResult struct {
	Lat    float64
	Lon    float64
	Points []int
}

type cellKey struct {
	x, y int
}

// Cluster merges points lying within RadiusPx of each other at the given
// zoom. Points are bucketed into grid cells the size of the merge radius,
// so each point only compares against its own and the eight neighboring
// cells. Beyond MaxZoom every point stands alone.
func Cluster(points []Point, zoom int, opts ClusterOptions) []ClusterResult {
	if len(points) == 0 {
		return nil
	}

	if zoom > opts.MaxZoom {
		results := make([]ClusterResult, 0, len(points))
		for _, p := range points {
			results = append(results, ClusterResult{Lat: p.Lat, Lon: p.Lon, Points: []int{p.Index}})
		}
		return results
	}

	type projected struct {
		x, y float64
		pos  int // index into points
	}

	cells := make(map[cellKey][]projected)
	coords := make([]projected, len(points))
	z := float64(zoom)

	for i, p := range points {
		x, y := Project(p.Lat, p.Lon, z)
		pr := projected{x: x, y: y, pos: i}
		coords[i] = pr
		key := cellKey{int(math.Floor(x / opts.RadiusPx)), int(math.Floor(y / opts.RadiusPx))}
		cells[key] = append(cells[key], pr)
	}

	visited := make([]bool, len(points))
	results := make([]ClusterResult, 0, len(points))
	radiusSq := opts.RadiusPx * opts.RadiusPx

	for i, pr := range coords {
		if visited[i] {
			continue
		}
		visited[i] = true

		members := []int{i}
		key := cellKey{int(math.Floor(pr.x / opts.RadiusPx)), int(math.Floor(pr.y / opts.RadiusPx))}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, n := range cells[cellKey{key.x + dx, key.y + dy}] {
					if visited[n.pos] {
						continue
					}
					ddx := n.x - pr.x
					ddy := n.y - pr.y
					if ddx*ddx+ddy*ddy <= radiusSq {
						visited[n.pos] = true
						members = append(members, n.pos)
					}
				}
			}
		}

		if len(members) < opts.MinPoints {
			// Too few neighbors: each member renders individually.
			for _, m := range members {
				p := points[m]
				results = append(results, ClusterResult{Lat: p.Lat, Lon: p.Lon, Points: []int{p.Index}})
			}
			continue
		}

		var sumLat, sumLon float64
		indexes := make([]int, 0, len(members))
		for _, m := range members {
			sumLat += points[m].Lat
			sumLon += points[m].Lon
			indexes = append(indexes, points[m].Index)
		}
		results = append(results, ClusterResult{
			Lat:    sumLat / float64(len(members)),
			Lon:    sumLon / float64(len(members)),
			Points: indexes,
		})
	}

	return results
}

// ExpansionZoom returns the smallest zoom above fromZoom at which the
// given cluster members separate into more than one marker, capped at
// maxZoom so clicking a cluster of coincident points cannot zoom forever.
func ExpansionZoom(members []Point, fromZoom, maxZoom int, opts ClusterOptions) int {
	for z := fromZoom + 1; z <= maxZoom; z++ {
		if len(Cluster(members, z, opts)) > 1 {
			return z
		}
	}
	return maxZoom
}
