package dto

import "golang-stock-insight/internal/indicator"

// GetStockDataParam identifies one chart request to the market-data provider.
type GetStockDataParam struct {
	Symbol   string
	Interval string
	Range    string
}

// StockData is a fetched price history plus the company metadata the
// provider returns alongside it.
type StockData struct {
	Symbol      string               `json:"symbol"`
	CompanyName string               `json:"company_name"`
	Currency    string               `json:"currency"`
	Bars        []indicator.PriceBar `json:"bars"`
}

// YahooChartResponse mirrors the provider's chart endpoint payload.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string  `json:"symbol"`
				Currency  string  `json:"currency"`
				LongName  string  `json:"longName"`
				ShortName string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}
