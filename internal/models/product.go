package models

// Product is a transient search result. Products are produced fresh per
// search and never stored directly; a search only leaves a SearchRecord
// summary behind.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	URL         string   `json:"url"`
	Store       string   `json:"store"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
}

// Alternative is one suggested replacement in an AI analysis.
type Alternative struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// AnalysisResult is the structured outcome of an analyze call. It is not
// persisted. All four content fields are always populated; pros, cons and
// alternatives may be empty slices but never nil.
type AnalysisResult struct {
	Summary      string        `json:"summary"`
	Pros         []string      `json:"pros"`
	Cons         []string      `json:"cons"`
	Alternatives []Alternative `json:"alternatives"`
	Provider     string        `json:"aiProvider"`
}
