package repository

import (
	"context"
	"errors"

	"golang-stock-insight/internal/entity"

	"gorm.io/gorm"
)

// WatchlistRepository defines the interface for watchlist storage.
type WatchlistRepository interface {
	Create(ctx context.Context, stock *entity.WatchlistStock) error
	FindAll(ctx context.Context) ([]entity.WatchlistStock, error)
	FindBySymbol(ctx context.Context, symbol string) (*entity.WatchlistStock, error)
	Delete(ctx context.Context, id uint) error
}

// NewWatchlistRepository creates a new GORM-based watchlist repository.
func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

type watchlistRepository struct {
	db *gorm.DB
}

func (r *watchlistRepository) Create(ctx context.Context, stock *entity.WatchlistStock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

func (r *watchlistRepository) FindAll(ctx context.Context) ([]entity.WatchlistStock, error) {
	var stocks []entity.WatchlistStock
	if err := r.db.WithContext(ctx).Order("symbol ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *watchlistRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.WatchlistStock, error) {
	var stock entity.WatchlistStock
	if err := r.db.WithContext(ctx).First(&stock, "symbol = ?", symbol).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.WatchlistStock{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
