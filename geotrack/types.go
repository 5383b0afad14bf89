package geotrack

import (
	"encoding/json"
	"fmt"
)

// Point is a coordinate pair in degrees.
type Point struct {
	Lat, Lon float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var latLon []float64
	if err := json.Unmarshal(b, &latLon); err != nil {
		return err
	}

	if len(latLon) != 2 {
		return fmt.Errorf("expected [lat, lon], got %d values", len(latLon))
	}

	p.Lat, p.Lon = latLon[0], latLon[1]
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lon)
}

func (p Point) IsValid() bool {
	return validDegrees(p.Lat, 90) && validDegrees(p.Lon, 180)
}
