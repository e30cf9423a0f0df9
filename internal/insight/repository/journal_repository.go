package repository

import (
	"context"
	"errors"

	"golang-stock-insight/internal/entity"

	"gorm.io/gorm"
)

// JournalRepository defines the interface for journal entry storage. The
// journal contract (insertion-ordered listing, remove regardless of status)
// must hold for every implementation.
type JournalRepository interface {
	Create(ctx context.Context, entry *entity.JournalEntry) error
	FindByID(ctx context.Context, id string) (*entity.JournalEntry, error)
	FindAll(ctx context.Context) ([]entity.JournalEntry, error)
	Update(ctx context.Context, entry *entity.JournalEntry) error
	Delete(ctx context.Context, id string) error
}

// NewJournalRepository creates a new GORM-based journal repository.
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

type journalRepository struct {
	db *gorm.DB
}

func (r *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) FindByID(ctx context.Context, id string) (*entity.JournalEntry, error) {
	var entry entity.JournalEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAll returns all entries in insertion order.
func (r *journalRepository) FindAll(ctx context.Context) ([]entity.JournalEntry, error) {
	var entries []entity.JournalEntry
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *journalRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entity.JournalEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
