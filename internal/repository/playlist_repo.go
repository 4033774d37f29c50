package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lofinight/internal/entity"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Playlist, error)
	ListPublic(ctx context.Context, limit, offset int) ([]entity.Playlist, error)

	AddSong(ctx context.Context, entry *entity.PlaylistSong) error
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error
	FindEntry(ctx context.Context, playlistID, songID uuid.UUID) (*entity.PlaylistSong, error)
	ListSongs(ctx context.Context, playlistID uuid.UUID) ([]entity.PlaylistSong, error)
	NextPosition(ctx context.Context, playlistID uuid.UUID) (int, error)
	UpdatePosition(ctx context.Context, entryID uuid.UUID, position int) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	return r.db.WithContext(ctx).Save(playlist).Error
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Playlist{}, "id = ?", id).Error
}

func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Playlist, error) {
	var playlists []entity.Playlist
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *playlistRepository) ListPublic(ctx context.Context, limit, offset int) ([]entity.Playlist, error) {
	query := r.db.WithContext(ctx).Where("is_public = true").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	var playlists []entity.Playlist
	if err := query.Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *playlistRepository) AddSong(ctx context.Context, entry *entity.PlaylistSong) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *playlistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&entity.PlaylistSong{}).
		Error
}

func (r *playlistRepository) FindEntry(ctx context.Context, playlistID, songID uuid.UUID) (*entity.PlaylistSong, error) {
	var entry entity.PlaylistSong
	err := r.db.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *playlistRepository) ListSongs(ctx context.Context, playlistID uuid.UUID) ([]entity.PlaylistSong, error) {
	var entries []entity.PlaylistSong
	err := r.db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *playlistRepository) NextPosition(ctx context.Context, playlistID uuid.UUID) (int, error) {
	var last entity.PlaylistSong
	err := r.db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Position + 1, nil
}

func (r *playlistRepository) UpdatePosition(ctx context.Context, entryID uuid.UUID, position int) error {
	return r.db.WithContext(ctx).
		Model(&entity.PlaylistSong{}).
		Where("id = ?", entryID).
		Update("position", position).
		Error
}
