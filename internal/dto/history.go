package dto

type HistoryDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type HistoryRetryRequest struct {
	HistoryID string `json:"historyId"`
}

type HistoryRetryResponse struct {
	Query       string `json:"query"`
	RedirectURL string `json:"redirectUrl"`
}
