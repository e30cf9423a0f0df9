package dto

import "time"

// AddJournalRequest is the DTO for recording a new trade.
type AddJournalRequest struct {
	Ticker     string     `json:"ticker"`
	EntryPrice float64    `json:"entry_price"`
	Quantity   int64      `json:"quantity"`
	OpenedAt   *time.Time `json:"opened_at"`
}

// CloseJournalRequest is the DTO for closing an open trade.
type CloseJournalRequest struct {
	ExitPrice float64 `json:"exit_price"`
}

// JournalPositionSummary is one open position enriched with the current price.
type JournalPositionSummary struct {
	ID               string  `json:"id"`
	Ticker           string  `json:"ticker"`
	EntryPrice       float64 `json:"entry_price"`
	Quantity         int64   `json:"quantity"`
	CurrentPrice     float64 `json:"current_price"`
	Invested         float64 `json:"invested"`
	CurrentValue     float64 `json:"current_value"`
	UnrealizedPnL    float64 `json:"unrealized_pnl"`
	UnrealizedPnLPct float64 `json:"unrealized_pnl_pct"`
}
