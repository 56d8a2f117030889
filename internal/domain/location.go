package domain

import "fmt"

// LatLng is a WGS84 coordinate used to parameterize place search.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinate is within range.
func (l LatLng) Validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return NewValidationError("lat", fmt.Sprintf("must be between -90 and 90, got %v", l.Lat), ErrInvalidLocation)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return NewValidationError("lng", fmt.Sprintf("must be between -180 and 180, got %v", l.Lng), ErrInvalidLocation)
	}
	return nil
}
