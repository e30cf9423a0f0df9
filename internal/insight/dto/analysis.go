package dto

import (
	"time"

	"golang-stock-insight/internal/indicator"
)

// IndicatorValues carries the latest computed indicator row in API-friendly
// shape. Pointer fields are null when the window had insufficient history.
type IndicatorValues struct {
	SMA           map[int]*float64 `json:"sma"`
	RSI           *float64         `json:"rsi"`
	MACD          *float64         `json:"macd"`
	MACDSignal    *float64         `json:"macd_signal"`
	MACDHistogram *float64         `json:"macd_histogram"`
	BBUpper       *float64         `json:"bb_upper"`
	BBMid         *float64         `json:"bb_mid"`
	BBLower       *float64         `json:"bb_lower"`
	StochasticK   *float64         `json:"stochastic_k"`
	StochasticD   *float64         `json:"stochastic_d"`
	ATR           *float64         `json:"atr"`
	VolumeRatio   *float64         `json:"volume_ratio"`
	Momentum      *float64         `json:"momentum"`
}

// AnalysisResponse is the recommendation panel contract for one symbol.
type AnalysisResponse struct {
	Symbol       string          `json:"symbol"`
	CompanyName  string          `json:"company_name"`
	Interval     string          `json:"interval"`
	Range        string          `json:"range"`
	Horizon      string          `json:"horizon"`
	AsOf         time.Time       `json:"as_of"`
	Close        float64         `json:"close"`
	Score        int             `json:"score"`
	Label        string          `json:"label"`
	Explanations []string        `json:"explanations"`
	Commentary   string          `json:"commentary,omitempty"`
	Indicators   IndicatorValues `json:"indicators"`
}

// ChartResponse is the raw bar passthrough for chart rendering.
type ChartResponse struct {
	Symbol      string               `json:"symbol"`
	CompanyName string               `json:"company_name"`
	Interval    string               `json:"interval"`
	Range       string               `json:"range"`
	Bars        []indicator.PriceBar `json:"bars"`
}

// StreamDataWatchlistScan is the payload enqueued for one scheduled scan.
type StreamDataWatchlistScan struct {
	Symbol   string `json:"symbol"`
	Horizon  string `json:"horizon"`
	Interval string `json:"interval"`
	Range    string `json:"range"`
}
