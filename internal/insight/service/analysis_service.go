package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/indicator"
	"golang-stock-insight/internal/insight/config"
	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/internal/insight/repository"
	"golang-stock-insight/internal/scoring"
	"golang-stock-insight/pkg/common"
	"golang-stock-insight/pkg/logger"
	"golang-stock-insight/pkg/telegram"

	"github.com/redis/go-redis/v9"
)

// Moving-average horizons exposed to callers.
const (
	HorizonShort = "short"
	HorizonLong  = "long"
)

// AnalysisService computes and persists indicator analyses. It also consumes
// scheduled watchlist scan tasks from the Redis stream.
type AnalysisService interface {
	Analyze(ctx context.Context, param dto.GetStockDataParam, horizon string) (*dto.AnalysisResponse, error)
	GetChart(ctx context.Context, param dto.GetStockDataParam) (*dto.ChartResponse, error)
	ProcessTask(ctx context.Context)
	ProcessRetries(ctx context.Context)
}

// NewAnalysisService creates a new analysis service. aiRepo and telegramBot
// are optional; a nil value disables commentary or notifications.
func NewAnalysisService(cfg *config.Config, log *logger.Logger,
	redisClient *redis.Client,
	yahooFinance repository.YahooFinanceRepository,
	snapshotRepo repository.AnalysisSnapshotRepository,
	aiRepo repository.AIRepository,
	telegramBot telegram.Notifier) AnalysisService {
	return &analysisService{
		cfg:          cfg,
		log:          log,
		redisClient:  redisClient,
		yahooFinance: yahooFinance,
		snapshotRepo: snapshotRepo,
		aiRepo:       aiRepo,
		telegramBot:  telegramBot,
	}
}

type analysisService struct {
	cfg          *config.Config
	log          *logger.Logger
	redisClient  *redis.Client
	yahooFinance repository.YahooFinanceRepository
	snapshotRepo repository.AnalysisSnapshotRepository
	aiRepo       repository.AIRepository
	telegramBot  telegram.Notifier
}

// PeriodsForHorizon maps a horizon name to its moving-average preset.
func PeriodsForHorizon(horizon string) ([]int, error) {
	switch horizon {
	case "", HorizonShort:
		return indicator.ShortTermPeriods, nil
	case HorizonLong:
		return indicator.LongTermPeriods, nil
	default:
		return nil, fmt.Errorf("%w: unknown horizon %q", ErrInvalidArgument, horizon)
	}
}

func (s *analysisService) Analyze(ctx context.Context, param dto.GetStockDataParam, horizon string) (*dto.AnalysisResponse, error) {
	periods, err := PeriodsForHorizon(horizon)
	if err != nil {
		return nil, err
	}
	if horizon == "" {
		horizon = HorizonShort
	}

	data, err := s.getStockData(ctx, param)
	if err != nil {
		return nil, err
	}

	rows := indicator.Compute(data.Bars, indicator.Config{Periods: periods})
	if len(rows) == 0 {
		return nil, fmt.Errorf("no usable price history for %s", data.Symbol)
	}
	last := rows[len(rows)-1]
	result := scoring.Evaluate(last, periods)

	var commentary string
	if s.aiRepo != nil {
		commentary, err = s.aiRepo.GenerateCommentary(ctx, data.Symbol, result)
		if err != nil {
			// Commentary is decoration; the analysis stands without it.
			s.log.Warn("Failed to generate commentary", logger.ErrorField(err), logger.StringField("symbol", data.Symbol))
			commentary = ""
		}
	}

	if err := s.persistSnapshot(ctx, data.Symbol, param, result, commentary); err != nil {
		s.log.Error("Failed to persist analysis snapshot", logger.ErrorField(err), logger.StringField("symbol", data.Symbol))
	}

	resp := &dto.AnalysisResponse{
		Symbol:       data.Symbol,
		CompanyName:  data.CompanyName,
		Interval:     param.Interval,
		Range:        param.Range,
		Horizon:      horizon,
		AsOf:         last.Timestamp,
		Close:        last.Close,
		Score:        result.Score,
		Label:        string(result.Label),
		Explanations: result.Explanations,
		Commentary:   commentary,
		Indicators:   mapIndicatorValues(last),
	}

	s.notifyStrongSignal(resp)
	return resp, nil
}

func (s *analysisService) GetChart(ctx context.Context, param dto.GetStockDataParam) (*dto.ChartResponse, error) {
	data, err := s.getStockData(ctx, param)
	if err != nil {
		return nil, err
	}
	return &dto.ChartResponse{
		Symbol:      data.Symbol,
		CompanyName: data.CompanyName,
		Interval:    param.Interval,
		Range:       param.Range,
		Bars:        data.Bars,
	}, nil
}

// getStockData serves the series from the Redis cache when possible and
// falls back to the provider, repopulating the cache on the way out.
func (s *analysisService) getStockData(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	if param.Interval == "" {
		param.Interval = "1d"
	}
	if param.Range == "" {
		param.Range = "1y"
	}

	cacheKey := fmt.Sprintf(common.RedisKeyPriceSeries, param.Symbol, param.Interval, param.Range)
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var data dto.StockData
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return &data, nil
			}
			s.log.Warn("Discarding corrupt cached series", logger.StringField("key", cacheKey))
		} else if err != redis.Nil {
			s.log.Warn("Failed to read series cache", logger.ErrorField(err))
		}
	}

	data, err := s.yahooFinance.Get(ctx, param)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		ttl := s.cfg.MarketData.RedisCacheTTL
		if ttl <= 0 {
			ttl = 15 * time.Minute
		}
		payload, err := json.Marshal(data)
		if err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				s.log.Warn("Failed to write series cache", logger.ErrorField(err))
			}
		}
	}
	return data, nil
}

func (s *analysisService) persistSnapshot(ctx context.Context, symbol string, param dto.GetStockDataParam, result scoring.Result, commentary string) error {
	if s.snapshotRepo == nil {
		return nil
	}
	explanations, err := json.Marshal(result.Explanations)
	if err != nil {
		return err
	}
	return s.snapshotRepo.Create(ctx, &entity.AnalysisSnapshot{
		Symbol:       symbol,
		Interval:     param.Interval,
		Range:        param.Range,
		Score:        result.Score,
		Label:        string(result.Label),
		Explanations: explanations,
		Commentary:   commentary,
	})
}

func (s *analysisService) notifyStrongSignal(resp *dto.AnalysisResponse) {
	if s.telegramBot == nil {
		return
	}
	if resp.Label != string(scoring.LabelStrongBuy) && resp.Label != string(scoring.LabelStrongSell) {
		return
	}
	if err := s.telegramBot.SendMessage(telegram.FormatAnalysis(resp)); err != nil {
		s.log.Error("Failed to send telegram notification", logger.ErrorField(err), logger.StringField("symbol", resp.Symbol))
	}
}

func mapIndicatorValues(row indicator.Row) dto.IndicatorValues {
	return dto.IndicatorValues{
		SMA:           row.SMA,
		RSI:           row.RSI,
		MACD:          row.MACD,
		MACDSignal:    row.MACDSignal,
		MACDHistogram: row.MACDHistogram,
		BBUpper:       row.BBUpper,
		BBMid:         row.BBMid,
		BBLower:       row.BBLower,
		StochasticK:   row.StochasticK,
		StochasticD:   row.StochasticD,
		ATR:           row.ATR,
		VolumeRatio:   row.VolumeRatio,
		Momentum:      row.Momentum,
	}
}
