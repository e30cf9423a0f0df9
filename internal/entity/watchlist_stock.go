package entity

import (
	"time"

	"gorm.io/gorm"
)

// WatchlistStock is a symbol scanned by the scheduled watchlist analyzer.
// Horizon selects the moving-average preset ("short" or "long").
type WatchlistStock struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Symbol    string         `gorm:"not null;uniqueIndex" json:"symbol"`
	Name      string         `json:"name"`
	Horizon   string         `gorm:"not null;default:short" json:"horizon"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (WatchlistStock) TableName() string {
	return "watchlist_stocks"
}
