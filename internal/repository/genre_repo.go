package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lofinight/internal/entity"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]entity.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	return r.db.WithContext(ctx).Create(genre).Error
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	return r.db.WithContext(ctx).Save(genre).Error
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Genre{}, "id = ?", id).Error
}

func (r *genreRepository) ListActive(ctx context.Context) ([]entity.Genre, error) {
	var genres []entity.Genre
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("display_order ASC, name ASC").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}
