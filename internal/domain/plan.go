package domain

import "strings"

// GroundingSource is a web citation backing a generated plan.
// The URI is its natural key within a single plan.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// MapPlace is a place returned by map grounding.
type MapPlace struct {
	Title   string   `json:"title"`
	URI     string   `json:"uri"`
	Address string   `json:"address,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

// ContentPlan is a short-video content plan derived from a keyword.
//
// Sources and Places are filled from grounding metadata only, independently
// of the schema-validated body fields, and may legitimately be empty.
type ContentPlan struct {
	Title        string            `json:"title"`
	Hook         string            `json:"hook"`
	Body         string            `json:"body"`
	Platforms    []string          `json:"platforms"`
	Hashtags     []string          `json:"hashtags"`
	VisualPrompt string            `json:"visualPrompt"`
	Sources      []GroundingSource `json:"sources"`
	Places       []MapPlace        `json:"places"`
}

// Complete reports whether the plan is safe to render: the title, hook, body
// and visual prompt are non-empty.
func (p ContentPlan) Complete() bool {
	for _, s := range []string{p.Title, p.Hook, p.Body, p.VisualPrompt} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the plan. Nil slices become empty slices so
// the JSON form always carries arrays.
func (p ContentPlan) Clone() ContentPlan {
	out := p
	out.Platforms = cloneStrings(p.Platforms)
	out.Hashtags = cloneStrings(p.Hashtags)

	out.Sources = make([]GroundingSource, len(p.Sources))
	copy(out.Sources, p.Sources)

	out.Places = make([]MapPlace, len(p.Places))
	for i, place := range p.Places {
		out.Places[i] = place
		if place.Rating != nil {
			rating := *place.Rating
			out.Places[i].Rating = &rating
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
