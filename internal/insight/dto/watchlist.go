package dto

// AddWatchlistRequest is the DTO for adding a symbol to the watchlist.
type AddWatchlistRequest struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Horizon string `json:"horizon"`
}
