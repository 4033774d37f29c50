package service

import (
	"context"

	"github.com/google/uuid"

	"lofinight/internal/entity"
	"lofinight/internal/repository"
)

type PlaylistService struct {
	playlists repository.PlaylistRepository
	songs     repository.SongRepository
}

func NewPlaylistService(playlists repository.PlaylistRepository, songs repository.SongRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists, songs: songs}
}

func (s *PlaylistService) Create(ctx context.Context, playlist *entity.Playlist) error {
	return s.playlists.Create(ctx, playlist)
}

func (s *PlaylistService) Get(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrNotFound
	}
	return playlist, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlist *entity.Playlist) error {
	return s.playlists.Update(ctx, playlist)
}

func (s *PlaylistService) Delete(ctx context.Context, id uuid.UUID) error {
	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist == nil {
		return ErrNotFound
	}
	return s.playlists.Delete(ctx, id)
}

func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Playlist, error) {
	return s.playlists.ListByOwner(ctx, ownerID)
}

func (s *PlaylistService) ListPublic(ctx context.Context, limit, offset int) ([]entity.Playlist, error) {
	return s.playlists.ListPublic(ctx, limit, offset)
}

// AddSong appends a song at the next free position. A song can appear only
// once per playlist.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID uuid.UUID, addedBy *uuid.UUID) error {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist == nil {
		return ErrNotFound
	}

	song, err := s.songs.FindByID(ctx, songID)
	if err != nil {
		return err
	}
	if song == nil {
		return ErrNotFound
	}

	existing, err := s.playlists.FindEntry(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}

	position, err := s.playlists.NextPosition(ctx, playlistID)
	if err != nil {
		return err
	}

	entry := &entity.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   position,
		AddedBy:    addedBy,
	}
	if err := s.playlists.AddSong(ctx, entry); err != nil {
		return err
	}

	playlist.TotalSongs++
	return s.playlists.Update(ctx, playlist)
}

func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist == nil {
		return ErrNotFound
	}

	entry, err := s.playlists.FindEntry(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}

	if err := s.playlists.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}

	if playlist.TotalSongs > 0 {
		playlist.TotalSongs--
	}
	return s.playlists.Update(ctx, playlist)
}

func (s *PlaylistService) ListSongs(ctx context.Context, playlistID uuid.UUID) ([]entity.PlaylistSong, error) {
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, ErrNotFound
	}
	return s.playlists.ListSongs(ctx, playlistID)
}

func (s *PlaylistService) MoveSong(ctx context.Context, playlistID, songID uuid.UUID, position int) error {
	if position < 1 {
		return ErrInvalidInput
	}
	entry, err := s.playlists.FindEntry(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrNotFound
	}
	return s.playlists.UpdatePosition(ctx, entry.ID, position)
}
