package geo

import (
	"github.com/gamecss/routefinder/pkg"

	"github.com/golang/geo/s2"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// CalculateGreatCircleDistance. great-circle distance between two coordinates
// in nautical miles.
func CalculateGreatCircleDistance(from, to Coordinate) float64 {
	a := s2.LatLngFromDegrees(from.Lat, from.Lon)
	b := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_NM
}
