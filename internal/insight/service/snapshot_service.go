package service

import (
	"context"

	"golang-stock-insight/internal/entity"
	"golang-stock-insight/internal/insight/repository"
)

const defaultSnapshotLimit = 20

// SnapshotService exposes read access to persisted analysis results.
type SnapshotService interface {
	Latest(ctx context.Context, limit int) ([]entity.AnalysisSnapshot, error)
	History(ctx context.Context, symbol string, limit int) ([]entity.AnalysisSnapshot, error)
}

func NewSnapshotService(snapshotRepo repository.AnalysisSnapshotRepository) SnapshotService {
	return &snapshotService{snapshotRepo: snapshotRepo}
}

type snapshotService struct {
	snapshotRepo repository.AnalysisSnapshotRepository
}

func (s *snapshotService) Latest(ctx context.Context, limit int) ([]entity.AnalysisSnapshot, error) {
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	return s.snapshotRepo.FindLatest(ctx, limit)
}

func (s *snapshotService) History(ctx context.Context, symbol string, limit int) ([]entity.AnalysisSnapshot, error) {
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	return s.snapshotRepo.FindBySymbol(ctx, symbol, limit)
}
