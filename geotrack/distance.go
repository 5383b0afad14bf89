package geotrack

import "github.com/jftuga/geodist"

// DistanceKm is the great-circle distance between two points.
func DistanceKm(from, to Point) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: from.Lat, Lon: from.Lon},
		geodist.Coord{Lat: to.Lat, Lon: to.Lon},
	)

	return km
}
