package domain

// Immutable geographic coordinate (latitude, longitude) in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Return the coordinate as [lon, lat] for external API compatibility.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lng, c.Lat} }

// Validate checks that the coordinate lies within the WGS84 range.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return &ValidationError{Field: "lat", Message: "latitude must be within [-90, 90]"}
	}
	if c.Lng < -180 || c.Lng > 180 {
		return &ValidationError{Field: "lng", Message: "longitude must be within [-180, 180]"}
	}
	return nil
}
