package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lofinight/internal/entity"
)

type SongRepository interface {
	Create(ctx context.Context, song *entity.Song) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Song, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Song, error)
	Update(ctx context.Context, song *entity.Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublic(ctx context.Context, genreID *uuid.UUID, limit, offset int) ([]entity.Song, error)
	IncrementPlayCount(ctx context.Context, id uuid.UUID) error
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(ctx context.Context, song *entity.Song) error {
	return r.db.WithContext(ctx).Create(song).Error
}

func (r *songRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Song, error) {
	var song entity.Song
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&song).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *songRepository) FindBySlug(ctx context.Context, slug string) (*entity.Song, error) {
	var song entity.Song
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&song).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *songRepository) Update(ctx context.Context, song *entity.Song) error {
	return r.db.WithContext(ctx).Save(song).Error
}

func (r *songRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Song{}, "id = ?", id).Error
}

func (r *songRepository) ListPublic(ctx context.Context, genreID *uuid.UUID, limit, offset int) ([]entity.Song, error) {
	query := r.db.WithContext(ctx).Where("is_public = true").Order("created_at DESC")
	if genreID != nil {
		query = query.Where("genre_id = ?", *genreID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var songs []entity.Song
	if err := query.Find(&songs).Error; err != nil {
		return nil, err
	}
	return songs, nil
}

// IncrementPlayCount is an atomic counter bump at the storage layer.
func (r *songRepository) IncrementPlayCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.Song{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + 1")).
		Error
}
