package dto

type AnalyzeRequest struct {
	ProductName        string   `json:"productName"`
	ProductPrice       *float64 `json:"productPrice"`
	ProductURL         string   `json:"productUrl"`
	ProductDescription string   `json:"productDescription,omitempty"`
}

type AffiliateRequest struct {
	ProductURL string `json:"productUrl"`
	Store      string `json:"store"`
	ProductID  string `json:"productId,omitempty"`
}

type AffiliateResponse struct {
	AffiliateURL string `json:"affiliateUrl"`
	OriginalURL  string `json:"originalUrl"`
	Store        string `json:"store"`
	Tracked      bool   `json:"tracked"`
}
