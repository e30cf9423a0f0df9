package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/indicator"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/internal/insight/service"
	"golang-stock-insight/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPriceMarketData struct{}

func (fixedPriceMarketData) Get(_ context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	return &dto.StockData{
		Symbol: param.Symbol,
		Bars:   []indicator.PriceBar{{Timestamp: time.Now(), Close: 100}},
	}, nil
}

func newJournalTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	svc := service.NewJournalService(repository.NewMemoryJournalRepository(), fixedPriceMarketData{}, log, 12.0)
	handler := NewJournalHandler(svc, log)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api/v1/journal"))
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJournalHandlerAddAndList(t *testing.T) {
	e := newJournalTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", `{"ticker":"aapl","entry_price":187.5,"quantity":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "AAPL", created.Ticker)
	assert.Equal(t, entity.JournalStatusOpen, created.Status)

	rec = doJSON(e, http.MethodGet, "/api/v1/journal", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)
}

func TestJournalHandlerAddRejectsBadRequest(t *testing.T) {
	e := newJournalTestServer(t)
	rec := doJSON(e, http.MethodPost, "/api/v1/journal", `{"ticker":"","entry_price":10,"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalHandlerCloseErrorMapping(t *testing.T) {
	e := newJournalTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", `{"ticker":"AAPL","entry_price":100,"quantity":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Unknown id maps to 404.
	rec = doJSON(e, http.MethodPost, "/api/v1/journal/missing-id/close", `{"exit_price":110}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// First close succeeds.
	rec = doJSON(e, http.MethodPost, "/api/v1/journal/"+created.ID+"/close", `{"exit_price":110.5555}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var closed entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &closed))
	require.NotNil(t, closed.RealizedPnL)
	assert.Equal(t, 19.67, *closed.RealizedPnL)

	// Second close maps to 409.
	rec = doJSON(e, http.MethodPost, "/api/v1/journal/"+created.ID+"/close", `{"exit_price":120}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestJournalHandlerDelete(t *testing.T) {
	e := newJournalTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", `{"ticker":"AAPL","entry_price":100,"quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created entity.JournalEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(e, http.MethodDelete, "/api/v1/journal/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/v1/journal/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJournalHandlerExportCSV(t *testing.T) {
	e := newJournalTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/journal", `{"ticker":"AAPL","entry_price":100,"quantity":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/journal/export?format=csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ticker,entry_price,quantity,opened_at,status,exit_price,realized_pnl"))
}

func TestJournalHandlerExportUnknownFormat(t *testing.T) {
	e := newJournalTestServer(t)
	rec := doJSON(e, http.MethodGet, "/api/v1/journal/export?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
