package dto

import "pricescout/internal/models"

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Query        string           `json:"query"`
	Type         string           `json:"type"`              // "url" or "keyword"
	URLType      string           `json:"urlType,omitempty"` // store classification for URL input
	Product      *models.Product  `json:"product"`
	Alternatives []models.Product `json:"alternatives"`
	Cheapest     *models.Product  `json:"cheapest"`
	SearchID     string           `json:"searchId,omitempty"`
}

type SearchRecordResponse struct {
	ID            string   `json:"id"`
	Query         string   `json:"query"`
	Type          string   `json:"type"`
	StoreType     string   `json:"storeType,omitempty"`
	ResultCount   int      `json:"resultCount"`
	CheapestPrice *float64 `json:"cheapestPrice,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}
