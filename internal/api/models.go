package api

import (
	"github.com/phrazzld/trendpulse/internal/domain"
)

// LocationRequest is the optional coordinate of a plan request.
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// LatLng converts the request into a domain coordinate.
func (l *LocationRequest) LatLng() *domain.LatLng {
	if l == nil {
		return nil
	}
	return &domain.LatLng{Lat: *l.Lat, Lng: *l.Lng}
}

// PlanRequest is the body of POST /api/plans.
type PlanRequest struct {
	Keyword  string           `json:"keyword"  validate:"max=200"`
	Location *LocationRequest `json:"location"`
}

// ThumbnailRequest is the body of POST /api/thumbnails.
type ThumbnailRequest struct {
	Prompt string `json:"prompt" validate:"max=2000"`
	Size   string `json:"size"   validate:"required"`
}

// CredentialRequest is the body of PUT /api/credentials.
type CredentialRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}
