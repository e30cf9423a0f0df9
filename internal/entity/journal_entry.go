package entity

import "time"

// JournalStatus is the lifecycle state of a journal entry. The only
// transition is Open to Closed; closed entries are never reopened.
type JournalStatus string

const (
	JournalStatusOpen   JournalStatus = "OPEN"
	JournalStatusClosed JournalStatus = "CLOSED"
)

// JournalEntry is a manually recorded trade. ExitPrice and RealizedPnL are
// set exactly once, when the entry is closed.
type JournalEntry struct {
	ID          string        `gorm:"primaryKey;type:uuid" json:"id"`
	Ticker      string        `gorm:"not null" json:"ticker"`
	EntryPrice  float64       `gorm:"not null" json:"entry_price"`
	Quantity    int64         `gorm:"not null" json:"quantity"`
	OpenedAt    time.Time     `gorm:"not null" json:"opened_at"`
	Status      JournalStatus `gorm:"not null" json:"status"`
	ExitPrice   *float64      `json:"exit_price,omitempty"`
	RealizedPnL *float64      `json:"realized_pnl,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
