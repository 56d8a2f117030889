package generation

import "github.com/phrazzld/trendpulse/internal/domain"

// Capability names the kind of content a request asks for.
type Capability string

// Supported capabilities
const (
	CapabilityTrends    Capability = "trends"
	CapabilityPlan      Capability = "plan"
	CapabilityThumbnail Capability = "thumbnail"
)

// SchemaType is the declared type of a schema node.
type SchemaType string

// Schema node types
const (
	TypeString SchemaType = "string"
	TypeNumber SchemaType = "number"
	TypeArray  SchemaType = "array"
	TypeObject SchemaType = "object"
)

// Schema declares the exact shape of a structured response. Fields listed in
// Required are guaranteed by the backend whenever a call succeeds.
type Schema struct {
	Type        SchemaType
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	// Ordering fixes the property order presented to the backend.
	Ordering []string
	Required []string
}

// ToolKind names a grounding tool.
type ToolKind string

// Grounding tools
const (
	ToolWebSearch   ToolKind = "web_search"
	ToolPlaceSearch ToolKind = "place_search"
)

// Tool is a grounding tool attached to a request. Place search carries the
// coordinate it is anchored to.
type Tool struct {
	Kind     ToolKind
	Location *domain.LatLng
}

// ImageOptions configures image generation.
type ImageOptions struct {
	AspectRatio string
	Size        domain.ImageSize
}

// Request is a schema-constrained request for one capability.
type Request struct {
	Capability        Capability
	Model             string
	SystemInstruction string
	Prompt            string
	Schema            *Schema
	Tools             []Tool
	Image             *ImageOptions
}

// HasTool reports whether a tool of the given kind is attached.
func (r *Request) HasTool(kind ToolKind) bool {
	for _, t := range r.Tools {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// PlaceLocation returns the coordinate of the attached place search tool, or
// nil when place search is not attached.
func (r *Request) PlaceLocation() *domain.LatLng {
	for _, t := range r.Tools {
		if t.Kind == ToolPlaceSearch {
			return t.Location
		}
	}
	return nil
}
