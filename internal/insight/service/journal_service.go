package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/utils"

	"github.com/google/uuid"
)

// ErrInvalidArgument marks request validation failures so handlers can map
// them to a 400 instead of a 500.
var ErrInvalidArgument = errors.New("invalid argument")

// Export formats supported by the journal.
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

// JournalService defines the interface for the manual trade journal.
type JournalService interface {
	Add(ctx context.Context, req *dto.AddJournalRequest) (*entity.JournalEntry, error)
	Close(ctx context.Context, id string, exitPrice float64) (*entity.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.JournalEntry, error)
	Export(ctx context.Context, format string) ([]byte, error)
	Summary(ctx context.Context) ([]dto.JournalPositionSummary, error)
}

// NewJournalService creates a new journal service. commission is the fixed
// round-trip cost deducted from every realized P&L.
func NewJournalService(journalRepo repository.JournalRepository, yahooFinance repository.YahooFinanceRepository, log *logger.Logger, commission float64) JournalService {
	return &journalService{
		journalRepo:  journalRepo,
		yahooFinance: yahooFinance,
		logger:       log,
		commission:   commission,
	}
}

type journalService struct {
	journalRepo  repository.JournalRepository
	yahooFinance repository.YahooFinanceRepository
	logger       *logger.Logger
	commission   float64
}

func (s *journalService) Add(ctx context.Context, req *dto.AddJournalRequest) (*entity.JournalEntry, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker must not be empty", ErrInvalidArgument)
	}
	if req.EntryPrice <= 0 {
		return nil, fmt.Errorf("%w: entry price must be positive", ErrInvalidArgument)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}

	openedAt := time.Now().UTC()
	if req.OpenedAt != nil {
		openedAt = req.OpenedAt.UTC()
	}

	entry := &entity.JournalEntry{
		ID:         uuid.NewString(),
		Ticker:     ticker,
		EntryPrice: req.EntryPrice,
		Quantity:   req.Quantity,
		OpenedAt:   openedAt,
		Status:     entity.JournalStatusOpen,
	}
	if err := s.journalRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create journal entry", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Journal entry added",
		logger.StringField("id", entry.ID),
		logger.StringField("ticker", ticker))
	return entry, nil
}

// Close performs the one-way Open to Closed transition, fixing exit price and
// realized P&L permanently.
func (s *journalService) Close(ctx context.Context, id string, exitPrice float64) (*entity.JournalEntry, error) {
	if exitPrice <= 0 {
		return nil, fmt.Errorf("%w: exit price must be positive", ErrInvalidArgument)
	}

	entry, err := s.journalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Status == entity.JournalStatusClosed {
		return nil, fmt.Errorf("%w: journal entry %s is already closed", repository.ErrInvalidState, id)
	}

	pnl := utils.RoundToCents((exitPrice-entry.EntryPrice)*float64(entry.Quantity) - s.commission)
	entry.Status = entity.JournalStatusClosed
	entry.ExitPrice = &exitPrice
	entry.RealizedPnL = &pnl

	if err := s.journalRepo.Update(ctx, entry); err != nil {
		s.logger.Error("Failed to close journal entry", logger.ErrorField(err), logger.StringField("id", id))
		return nil, err
	}

	s.logger.Info("Journal entry closed",
		logger.StringField("id", id),
		logger.Float64Field("realized_pnl", pnl))
	return entry, nil
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	if err := s.journalRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Journal entry deleted", logger.StringField("id", id))
	return nil
}

func (s *journalService) List(ctx context.Context) ([]entity.JournalEntry, error) {
	return s.journalRepo.FindAll(ctx)
}

func (s *journalService) Export(ctx context.Context, format string) ([]byte, error) {
	entries, err := s.journalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExportFormatCSV:
		return exportCSV(entries)
	case ExportFormatXLSX:
		return exportXLSX(entries)
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidArgument, format)
	}
}

// Summary enriches open positions with the latest close fetched from the
// market-data provider.
func (s *journalService) Summary(ctx context.Context) ([]dto.JournalPositionSummary, error) {
	entries, err := s.journalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64)
	summaries := make([]dto.JournalPositionSummary, 0, len(entries))
	for _, entry := range entries {
		if entry.Status != entity.JournalStatusOpen {
			continue
		}

		price, ok := prices[entry.Ticker]
		if !ok {
			data, err := s.yahooFinance.Get(ctx, dto.GetStockDataParam{
				Symbol:   entry.Ticker,
				Interval: "1d",
				Range:    "5d",
			})
			if err != nil || len(data.Bars) == 0 {
				s.logger.Warn("Failed to fetch current price for summary",
					logger.ErrorField(err),
					logger.StringField("ticker", entry.Ticker))
				continue
			}
			price = data.Bars[len(data.Bars)-1].Close
			prices[entry.Ticker] = price
		}

		invested := entry.EntryPrice * float64(entry.Quantity)
		currentValue := price * float64(entry.Quantity)
		pnl := utils.RoundToCents(currentValue - invested)
		var pnlPct float64
		if invested != 0 {
			pnlPct = pnl / invested * 100
		}

		summaries = append(summaries, dto.JournalPositionSummary{
			ID:               entry.ID,
			Ticker:           entry.Ticker,
			EntryPrice:       entry.EntryPrice,
			Quantity:         entry.Quantity,
			CurrentPrice:     price,
			Invested:         utils.RoundToCents(invested),
			CurrentValue:     utils.RoundToCents(currentValue),
			UnrealizedPnL:    pnl,
			UnrealizedPnLPct: pnlPct,
		})
	}
	return summaries, nil
}
