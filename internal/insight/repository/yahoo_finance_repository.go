package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-insight/internal/indicator"
	"golang-stock-insight/internal/insight/config"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/pkg/logger"

	"encoding/json"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// allowedRanges are the provider ranges the service accepts.
var allowedRanges = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "max": true,
}

// YahooFinanceRepository fetches OHLCV history and company metadata.
type YahooFinanceRepository interface {
	// Get returns at least one bar on success; an empty history is an error.
	Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error)
}

type yahooFinanceRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	inmemoryCache  *cache.Cache
}

// NewYahooFinanceRepository creates a rate-limited Yahoo Finance chart client
// with a short in-process cache to absorb request bursts.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) (YahooFinanceRepository, error) {
	if cfg.MarketData.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("market_data.max_request_per_minute must be positive")
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.MarketData.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	ttl := cfg.MarketData.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
		inmemoryCache:  cache.New(ttl, 2*ttl),
	}, nil
}

func (r *yahooFinanceRepository) Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	symbol := strings.ToUpper(strings.TrimSpace(param.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol must not be empty")
	}
	if !allowedRanges[param.Range] {
		return nil, fmt.Errorf("unsupported range %q", param.Range)
	}

	cacheKey := fmt.Sprintf("%s:%s:%s", symbol, param.Interval, param.Range)
	if cached, found := r.inmemoryCache.Get(cacheKey); found {
		return cached.(*dto.StockData), nil
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		r.cfg.MarketData.BaseURL, symbol, param.Interval, param.Range)

	body, err := r.sendRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if response.Chart.Error != nil {
		return nil, fmt.Errorf("provider error for %s: %s", symbol, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}

	data, err := r.mapStockData(symbol, response)
	if err != nil {
		return nil, err
	}

	r.inmemoryCache.Set(cacheKey, data, cache.DefaultExpiration)
	return data, nil
}

func (r *yahooFinanceRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "golang-stock-insight/1.0")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		r.log.Error("Market data request failed",
			logger.StringField("url", url),
			logger.IntField("status", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status %d from market data provider", resp.StatusCode)
	}
	return body, nil
}

// mapStockData flattens the provider payload into ordered bars, skipping
// positions where the provider reported null quotes.
func (r *yahooFinanceRepository) mapStockData(symbol string, response dto.YahooChartResponse) (*dto.StockData, error) {
	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]indicator.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// The provider sometimes returns ragged quote arrays; skip any
		// position not covered by all four price series.
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			continue
		}
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		var volume int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}
		bars = append(bars, indicator.PriceBar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      *quote.Open[i],
			High:      *quote.High[i],
			Low:       *quote.Low[i],
			Close:     *quote.Close[i],
			Volume:    volume,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("empty price history for %s", symbol)
	}

	companyName := result.Meta.LongName
	if companyName == "" {
		companyName = result.Meta.ShortName
	}
	if companyName == "" {
		companyName = symbol
	}

	return &dto.StockData{
		Symbol:      symbol,
		CompanyName: companyName,
		Currency:    result.Meta.Currency,
		Bars:        bars,
	}, nil
}
