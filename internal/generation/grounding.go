package generation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phrazzld/trendpulse/internal/domain"
)

// ChunkKind tags the shape of a grounding chunk.
type ChunkKind int

// Grounding chunk kinds
const (
	// ChunkUnknown is a chunk matching neither the web nor the map shape.
	ChunkUnknown ChunkKind = iota
	// ChunkWeb is a web search citation.
	ChunkWeb
	// ChunkMap is a map search result.
	ChunkMap
)

// String returns a log-friendly name for the kind.
func (k ChunkKind) String() string {
	switch k {
	case ChunkWeb:
		return "web"
	case ChunkMap:
		return "map"
	default:
		return "unknown"
	}
}

// WebCitation is the payload of a ChunkWeb.
type WebCitation struct {
	Title string
	URI   string
}

// MapResult is the payload of a ChunkMap.
type MapResult struct {
	Title   string
	URI     string
	Address string
	Rating  *float64
}

// GroundingChunk is one element of grounding metadata. Exactly one payload
// is meaningful, selected by Kind.
type GroundingChunk struct {
	Kind ChunkKind
	Web  WebCitation
	Map  MapResult
}

// WebChunk builds a ChunkWeb.
func WebChunk(title, uri string) GroundingChunk {
	return GroundingChunk{Kind: ChunkWeb, Web: WebCitation{Title: title, URI: uri}}
}

// MapChunk builds a ChunkMap.
func MapChunk(result MapResult) GroundingChunk {
	return GroundingChunk{Kind: ChunkMap, Map: result}
}

// UnknownChunk builds a ChunkUnknown.
func UnknownChunk() GroundingChunk {
	return GroundingChunk{Kind: ChunkUnknown}
}

// rawGroundingMetadata is the wire form of grounding metadata. Only the
// fields this package understands are declared.
type rawGroundingMetadata struct {
	GroundingChunks []json.RawMessage `json:"groundingChunks"`
}

type rawChunk struct {
	Web  *rawWeb  `json:"web"`
	Maps *rawMaps `json:"maps"`
}

type rawWeb struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// rawMaps accepts the REST field names of a maps chunk. The genai SDK model
// of a maps chunk carries only uri, title, placeId, text and
// placeAnswerSources, so address and rating stay empty for responses that
// went through it; they are filled only by transports forwarding the raw
// REST payload.
type rawMaps struct {
	Title            string   `json:"title"`
	URI              string   `json:"uri"`
	GoogleMapsURI    string   `json:"googleMapsUri"`
	FormattedAddress string   `json:"formattedAddress"`
	Address          string   `json:"address"`
	Rating           *float64 `json:"rating"`
}

// ParseGroundingChunks classifies the chunks of a JSON grounding metadata
// object. Empty or null input yields no chunks. A chunk that does not decode
// or carries neither shape becomes ChunkUnknown; a chunk carrying both shapes
// yields a web chunk followed by a map chunk.
func ParseGroundingChunks(raw []byte) ([]GroundingChunk, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var meta rawGroundingMetadata
	if err := json.Unmarshal(trimmed, &meta); err != nil {
		return nil, fmt.Errorf("%w: failed to decode grounding metadata: %v", ErrExtractionFailure, err)
	}

	chunks := make([]GroundingChunk, 0, len(meta.GroundingChunks))
	for _, entry := range meta.GroundingChunks {
		var rc rawChunk
		if err := json.Unmarshal(entry, &rc); err != nil {
			chunks = append(chunks, UnknownChunk())
			continue
		}
		chunks = append(chunks, classifyChunk(rc)...)
	}
	return chunks, nil
}

func classifyChunk(rc rawChunk) []GroundingChunk {
	var out []GroundingChunk

	if rc.Web != nil && (rc.Web.URI != "" || rc.Web.Title != "") {
		out = append(out, WebChunk(rc.Web.Title, rc.Web.URI))
	}

	if rc.Maps != nil && (rc.Maps.Title != "" || rc.Maps.URI != "" || rc.Maps.GoogleMapsURI != "") {
		uri := rc.Maps.GoogleMapsURI
		if uri == "" {
			uri = rc.Maps.URI
		}
		address := rc.Maps.FormattedAddress
		if address == "" {
			address = rc.Maps.Address
		}
		out = append(out, MapChunk(MapResult{
			Title:   rc.Maps.Title,
			URI:     uri,
			Address: address,
			Rating:  rc.Maps.Rating,
		}))
	}

	if len(out) == 0 {
		out = append(out, UnknownChunk())
	}
	return out
}

// PartitionGrounding splits chunks into citations and places, preserving
// relative order. Unknown chunks are skipped. Citations are unique by URI;
// the first occurrence wins. Both results are non-nil.
func PartitionGrounding(chunks []GroundingChunk) ([]domain.GroundingSource, []domain.MapPlace) {
	sources := make([]domain.GroundingSource, 0)
	places := make([]domain.MapPlace, 0)
	seen := make(map[string]struct{})

	for _, chunk := range chunks {
		switch chunk.Kind {
		case ChunkWeb:
			if chunk.Web.URI != "" {
				if _, dup := seen[chunk.Web.URI]; dup {
					continue
				}
				seen[chunk.Web.URI] = struct{}{}
			}
			sources = append(sources, domain.GroundingSource{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		case ChunkMap:
			places = append(places, domain.MapPlace{
				Title:   chunk.Map.Title,
				URI:     chunk.Map.URI,
				Address: chunk.Map.Address,
				Rating:  chunk.Map.Rating,
			})
		case ChunkUnknown:
			// unhandled shape
		}
	}

	return sources, places
}
