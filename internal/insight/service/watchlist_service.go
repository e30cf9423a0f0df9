package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/insight/config"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"

	goRedis "github.com/redis/go-redis/v9"
)

// WatchlistService manages tracked symbols and fans their scheduled scans
// out to the Redis stream.
type WatchlistService interface {
	Add(ctx context.Context, req dto.AddWatchlistRequest) (*entity.WatchlistStock, error)
	List(ctx context.Context) ([]entity.WatchlistStock, error)
	Remove(ctx context.Context, id uint) error
	EnqueueScans(ctx context.Context) error
}

func NewWatchlistService(cfg *config.Config, log *logger.Logger, redisClient *goRedis.Client, watchlistRepo repository.WatchlistRepository) WatchlistService {
	return &watchlistService{
		cfg:           cfg,
		log:           log,
		redisClient:   redisClient,
		watchlistRepo: watchlistRepo,
	}
}

type watchlistService struct {
	cfg           *config.Config
	log           *logger.Logger
	redisClient   *goRedis.Client
	watchlistRepo repository.WatchlistRepository
}

func (s *watchlistService) Add(ctx context.Context, req dto.AddWatchlistRequest) (*entity.WatchlistStock, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrInvalidArgument)
	}
	horizon := req.Horizon
	if horizon == "" {
		horizon = HorizonShort
	}
	if _, err := PeriodsForHorizon(horizon); err != nil {
		return nil, err
	}

	stock := &entity.WatchlistStock{
		Symbol:  symbol,
		Name:    strings.TrimSpace(req.Name),
		Horizon: horizon,
	}
	if err := s.watchlistRepo.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *watchlistService) List(ctx context.Context) ([]entity.WatchlistStock, error) {
	return s.watchlistRepo.FindAll(ctx)
}

func (s *watchlistService) Remove(ctx context.Context, id uint) error {
	return s.watchlistRepo.Delete(ctx, id)
}

// EnqueueScans publishes one scan task per watched symbol. Enqueue failures
// for individual symbols are logged and do not stop the batch.
func (s *watchlistService) EnqueueScans(ctx context.Context) error {
	stocks, err := s.watchlistRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load watchlist for scan", logger.ErrorField(err))
		return err
	}

	for _, stock := range stocks {
		streamDataJSON, err := json.Marshal(dto.StreamDataWatchlistScan{
			Symbol:   stock.Symbol,
			Horizon:  stock.Horizon,
			Interval: s.cfg.Watchlist.Interval,
			Range:    s.cfg.Watchlist.Range,
		})
		if err != nil {
			s.log.Error("Failed to marshal scan payload", logger.ErrorField(err), logger.StringField("symbol", stock.Symbol))
			continue
		}

		if err := s.redisClient.XAdd(ctx, &goRedis.XAddArgs{
			Stream: common.RedisStreamWatchlistScan,
			Values: map[string]interface{}{"payload": streamDataJSON},
		}).Err(); err != nil {
			s.log.Error("Failed to enqueue watchlist scan task", logger.ErrorField(err), logger.StringField("symbol", stock.Symbol))
			continue
		}

		s.log.Debug("Enqueued watchlist scan task", logger.StringField("symbol", stock.Symbol), logger.StringField("horizon", stock.Horizon))
	}
	return nil
}
