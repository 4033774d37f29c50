package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lofinight/internal/entity"
)

type AlbumRepository interface {
	Create(ctx context.Context, album *entity.Album) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Album, error)
	Update(ctx context.Context, album *entity.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublic(ctx context.Context, limit, offset int) ([]entity.Album, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]entity.Album, error)
}

type albumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *entity.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *albumRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	var album entity.Album
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) FindBySlug(ctx context.Context, slug string) (*entity.Album, error) {
	var album entity.Album
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) Update(ctx context.Context, album *entity.Album) error {
	return r.db.WithContext(ctx).Save(album).Error
}

func (r *albumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Album{}, "id = ?", id).Error
}

func (r *albumRepository) ListPublic(ctx context.Context, limit, offset int) ([]entity.Album, error) {
	var albums []entity.Album
	query := r.db.WithContext(ctx).
		Where("is_public = true AND status = ?", entity.AlbumStatusApproved).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]entity.Album, error) {
	var albums []entity.Album
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("release_year DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}
