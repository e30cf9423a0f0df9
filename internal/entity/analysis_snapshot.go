package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisSnapshot is one persisted scoring run for a symbol.
type AnalysisSnapshot struct {
	ID           int64          `json:"id"`
	Symbol       string         `gorm:"not null" json:"symbol"`
	Interval     string         `gorm:"not null" json:"interval"`
	Range        string         `gorm:"not null" json:"range"`
	Score        int            `gorm:"not null" json:"score"`
	Label        string         `gorm:"not null" json:"label"`
	Explanations datatypes.JSON `gorm:"type:jsonb" json:"explanations"`
	Commentary   string         `json:"commentary"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AnalysisSnapshot) TableName() string {
	return "analysis_snapshots"
}
