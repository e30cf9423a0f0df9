package repository

import (
	"context"

	"golang-stock-insight/internal/entity"

	"gorm.io/gorm"
)

// AnalysisSnapshotRepository defines the interface for persisted scoring runs.
type AnalysisSnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.AnalysisSnapshot) error
	FindBySymbol(ctx context.Context, symbol string, limit int) ([]entity.AnalysisSnapshot, error)
	FindLatest(ctx context.Context, limit int) ([]entity.AnalysisSnapshot, error)
}

// NewAnalysisSnapshotRepository creates a new GORM-based snapshot repository.
func NewAnalysisSnapshotRepository(db *gorm.DB) AnalysisSnapshotRepository {
	return &analysisSnapshotRepository{db: db}
}

type analysisSnapshotRepository struct {
	db *gorm.DB
}

func (r *analysisSnapshotRepository) Create(ctx context.Context, snapshot *entity.AnalysisSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *analysisSnapshotRepository) FindBySymbol(ctx context.Context, symbol string, limit int) ([]entity.AnalysisSnapshot, error) {
	var snapshots []entity.AnalysisSnapshot
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *analysisSnapshotRepository) FindLatest(ctx context.Context, limit int) ([]entity.AnalysisSnapshot, error) {
	var snapshots []entity.AnalysisSnapshot
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
