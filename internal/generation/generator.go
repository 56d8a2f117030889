package generation

import (
	"context"
)

// Generator is the single capability of a generative backend: generate
// structured content for a Request. It serves as the boundary between the
// application core and the external AI service.
type Generator interface {
	// Generate issues exactly one call for the request.
	//
	// Errors wrap ErrCallFailure when the backend could not be reached or
	// answered with an error, and ErrExtractionFailure when the answer carried
	// no usable candidate.
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// GeneratorSource hands out Generators. Implementations create provider
// clients lazily and only when a credential is present.
type GeneratorSource interface {
	// Generator returns a ready Generator, or an error wrapping
	// ErrCredentialAbsent when no credential is configured.
	Generator(ctx context.Context) (Generator, error)
}
