package domain

// TrendItem is one ranked trending keyword.
type TrendItem struct {
	// Keyword is the search term or hashtag that is trending
	Keyword string `json:"keyword"`

	// Category is a coarse topic label such as "Food" or "Tech"
	Category string `json:"category"`

	// Volume is a formatted magnitude of search volume, e.g. "50k+"
	Volume string `json:"volume"`

	// Growth is the estimated growth in percent
	Growth float64 `json:"growth"`
}

// CloneTrends returns a copy of the given trend slice so callers can never
// mutate a shared dataset.
func CloneTrends(items []TrendItem) []TrendItem {
	out := make([]TrendItem, len(items))
	copy(out, items)
	return out
}
