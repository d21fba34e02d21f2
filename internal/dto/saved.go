package dto

type SaveProductRequest struct {
	ProductName  string   `json:"productName"`
	ProductURL   string   `json:"productUrl"`
	ProductPrice *float64 `json:"productPrice"`
	Currency     string   `json:"currency"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Store        string   `json:"store"`
	Notes        string   `json:"notes,omitempty"`
}

type UpdateSavedProductRequest struct {
	ID    string  `json:"id"`
	Notes *string `json:"notes,omitempty"`
}

type SavedProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Store     string  `json:"store"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type SavedDeleteResponse struct {
	Deleted bool `json:"deleted"`
}
