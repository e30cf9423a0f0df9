package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/indicator"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// stubMarketData returns a fixed latest close for every symbol.
type stubMarketData struct {
	price float64
	err   error
	empty bool
}

func (s *stubMarketData) Get(_ context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.empty {
		return &dto.StockData{Symbol: param.Symbol}, nil
	}
	return &dto.StockData{
		Symbol: param.Symbol,
		Bars: []indicator.PriceBar{
			{Timestamp: time.Now().Add(-24 * time.Hour), Close: s.price - 1},
			{Timestamp: time.Now(), Close: s.price},
		},
	}, nil
}

func newTestJournalService(t *testing.T, marketData repository.YahooFinanceRepository) JournalService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	if marketData == nil {
		marketData = &stubMarketData{price: 100}
	}
	return NewJournalService(repository.NewMemoryJournalRepository(), marketData, log, 12.0)
}

func TestJournalAddAndList(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "aapl", EntryPrice: 187.5, Quantity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "AAPL", entry.Ticker)
	assert.Equal(t, entity.JournalStatusOpen, entry.Status)
	assert.Nil(t, entry.ExitPrice)
	assert.Nil(t, entry.RealizedPnL)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestJournalAddValidation(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.AddJournalRequest
	}{
		{"empty ticker", dto.AddJournalRequest{Ticker: "  ", EntryPrice: 10, Quantity: 1}},
		{"zero price", dto.AddJournalRequest{Ticker: "MSFT", EntryPrice: 0, Quantity: 1}},
		{"negative quantity", dto.AddJournalRequest{Ticker: "MSFT", EntryPrice: 10, Quantity: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestJournalListPreservesInsertionOrder(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	tickers := []string{"AAPL", "MSFT", "NVDA", "AMZN"}
	for _, ticker := range tickers {
		_, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: ticker, EntryPrice: 50, Quantity: 1})
		require.NoError(t, err)
	}

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, len(tickers))
	for i, ticker := range tickers {
		assert.Equal(t, ticker, entries[i].Ticker)
	}
}

func TestJournalCloseRealizesPnL(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 3})
	require.NoError(t, err)

	closed, err := svc.Close(ctx, entry.ID, 110.5555)
	require.NoError(t, err)
	assert.Equal(t, entity.JournalStatusClosed, closed.Status)
	require.NotNil(t, closed.ExitPrice)
	assert.Equal(t, 110.5555, *closed.ExitPrice)
	// (110.5555 - 100) * 3 - 12 commission = 19.6665, rounded to the cent.
	require.NotNil(t, closed.RealizedPnL)
	assert.Equal(t, 19.67, *closed.RealizedPnL)
}

func TestJournalCloseLosingTrade(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 10})
	require.NoError(t, err)

	closed, err := svc.Close(ctx, entry.ID, 95)
	require.NoError(t, err)
	require.NotNil(t, closed.RealizedPnL)
	assert.Equal(t, -62.0, *closed.RealizedPnL)
}

func TestJournalCloseIsOneWay(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Close(ctx, entry.ID, 105)
	require.NoError(t, err)

	_, err = svc.Close(ctx, entry.ID, 120)
	assert.ErrorIs(t, err, repository.ErrInvalidState)

	// The first close stands.
	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].ExitPrice)
	assert.Equal(t, 105.0, *entries[0].ExitPrice)
}

func TestJournalCloseUnknownEntry(t *testing.T) {
	svc := newTestJournalService(t, nil)
	_, err := svc.Close(context.Background(), "b1946ac9-2ea6-4e9c-9f2f-000000000000", 100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJournalCloseRejectsNonPositiveExit(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Close(ctx, entry.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestJournalDelete(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entry.ID))
	assert.ErrorIs(t, svc.Delete(ctx, entry.ID), repository.ErrNotFound)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalExportCSV(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	openedAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	entry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 187.5, Quantity: 10, OpenedAt: &openedAt})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &dto.AddJournalRequest{Ticker: "MSFT", EntryPrice: 410, Quantity: 2, OpenedAt: &openedAt})
	require.NoError(t, err)
	_, err = svc.Close(ctx, entry.ID, 195)
	require.NoError(t, err)

	data, err := svc.Export(ctx, ExportFormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ticker", "entry_price", "quantity", "opened_at", "status", "exit_price", "realized_pnl"}, records[0])
	assert.Equal(t, []string{"AAPL", "187.50", "10", "2025-03-10T14:30:00Z", "CLOSED", "195.00", "63.00"}, records[1])
	assert.Equal(t, []string{"MSFT", "410.00", "2", "2025-03-10T14:30:00Z", "OPEN", "", ""}, records[2])
}

func TestJournalExportXLSX(t *testing.T) {
	svc := newTestJournalService(t, nil)
	ctx := context.Background()

	openedAt := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	_, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 187.5, Quantity: 10, OpenedAt: &openedAt})
	require.NoError(t, err)

	data, err := svc.Export(ctx, ExportFormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Trades")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ticker", "entry_price", "quantity", "opened_at", "status", "exit_price", "realized_pnl"}, rows[0])
	assert.Equal(t, "AAPL", rows[1][0])
	assert.Equal(t, "187.50", rows[1][1])
	assert.Equal(t, "OPEN", rows[1][4])
}

func TestJournalExportUnknownFormat(t *testing.T) {
	svc := newTestJournalService(t, nil)
	_, err := svc.Export(context.Background(), "pdf")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestJournalSummaryValuesOpenPositions(t *testing.T) {
	svc := newTestJournalService(t, &stubMarketData{price: 120})
	ctx := context.Background()

	open, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 10})
	require.NoError(t, err)
	closedEntry, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "MSFT", EntryPrice: 400, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Close(ctx, closedEntry.ID, 410)
	require.NoError(t, err)

	summaries, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	got := summaries[0]
	assert.Equal(t, open.ID, got.ID)
	assert.Equal(t, "AAPL", got.Ticker)
	assert.Equal(t, 120.0, got.CurrentPrice)
	assert.Equal(t, 1000.0, got.Invested)
	assert.Equal(t, 1200.0, got.CurrentValue)
	assert.Equal(t, 200.0, got.UnrealizedPnL)
	assert.InDelta(t, 20.0, got.UnrealizedPnLPct, 1e-9)
}

func TestJournalSummarySkipsUnpricedTickers(t *testing.T) {
	svc := newTestJournalService(t, &stubMarketData{err: errors.New("upstream unavailable")})
	ctx := context.Background()

	_, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 10})
	require.NoError(t, err)

	summaries, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestJournalSummarySkipsEmptyPriceHistory(t *testing.T) {
	svc := newTestJournalService(t, &stubMarketData{empty: true})
	ctx := context.Background()

	_, err := svc.Add(ctx, &dto.AddJournalRequest{Ticker: "AAPL", EntryPrice: 100, Quantity: 10})
	require.NoError(t, err)

	summaries, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
