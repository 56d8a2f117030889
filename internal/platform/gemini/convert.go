package gemini

import (
	"github.com/phrazzld/trendpulse/internal/generation"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

var schemaTypes = map[generation.SchemaType]genai.Type{
	generation.TypeString: genai.TypeString,
	generation.TypeNumber: genai.TypeNumber,
	generation.TypeArray:  genai.TypeArray,
	generation.TypeObject: genai.TypeObject,
}

// buildConfig translates the request options into a genai config.
func buildConfig(req *generation.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	if req.Schema != nil {
		cfg.ResponseMIMEType = jsonMIMEType
		cfg.ResponseSchema = convertSchema(req.Schema)
	}

	for _, tool := range req.Tools {
		switch tool.Kind {
		case generation.ToolWebSearch:
			cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		case generation.ToolPlaceSearch:
			cfg.Tools = append(cfg.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
			if tool.Location != nil {
				cfg.ToolConfig = &genai.ToolConfig{
					RetrievalConfig: &genai.RetrievalConfig{
						LatLng: &genai.LatLng{
							Latitude:  genai.Ptr(tool.Location.Lat),
							Longitude: genai.Ptr(tool.Location.Lng),
						},
					},
				}
			}
		}
	}

	if req.Image != nil {
		cfg.ImageConfig = &genai.ImageConfig{
			AspectRatio: req.Image.AspectRatio,
			ImageSize:   string(req.Image.Size),
		}
	}

	return cfg
}

func convertSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Items:       convertSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = convertSchema(prop)
		}
	}
	if len(s.Ordering) > 0 {
		out.PropertyOrdering = append([]string(nil), s.Ordering...)
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	return out
}
