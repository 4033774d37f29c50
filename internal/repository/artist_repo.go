package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lofinight/internal/entity"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, limit, offset int) ([]entity.Artist, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Artist{}, "id = ?", id).Error
}

func (r *artistRepository) ListActive(ctx context.Context, limit, offset int) ([]entity.Artist, error) {
	var artists []entity.Artist
	query := r.db.WithContext(ctx).Where("is_active = true").Order("artist_name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}
