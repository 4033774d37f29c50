package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lofinight/internal/entity"
)

// MockPlaylistRepository is a mock implementation of repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListPublic(ctx context.Context, limit, offset int) ([]entity.Playlist, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) AddSong(ctx context.Context, entry *entity.PlaylistSong) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) FindEntry(ctx context.Context, playlistID, songID uuid.UUID) (*entity.PlaylistSong, error) {
	args := m.Called(ctx, playlistID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistSong), args.Error(1)
}

func (m *MockPlaylistRepository) ListSongs(ctx context.Context, playlistID uuid.UUID) ([]entity.PlaylistSong, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSong), args.Error(1)
}

func (m *MockPlaylistRepository) NextPosition(ctx context.Context, playlistID uuid.UUID) (int, error) {
	args := m.Called(ctx, playlistID)
	return args.Int(0), args.Error(1)
}

func (m *MockPlaylistRepository) UpdatePosition(ctx context.Context, entryID uuid.UUID, position int) error {
	args := m.Called(ctx, entryID, position)
	return args.Error(0)
}

// MockSongRepository is a mock implementation of repository.SongRepository.
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *entity.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongRepository) FindBySlug(ctx context.Context, slug string) (*entity.Song, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *entity.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) ListPublic(ctx context.Context, genreID *uuid.UUID, limit, offset int) ([]entity.Song, error) {
	args := m.Called(ctx, genreID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Song), args.Error(1)
}

func (m *MockSongRepository) IncrementPlayCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPlaylistService_AddSong(t *testing.T) {
	playlistID := uuid.New()
	songID := uuid.New()
	userID := uuid.New()

	t.Run("appends at next position and bumps counter", func(t *testing.T) {
		playlist := &entity.Playlist{ID: playlistID, TotalSongs: 2}
		playlists := new(MockPlaylistRepository)
		songs := new(MockSongRepository)
		playlists.On("FindByID", mock.Anything, playlistID).Return(playlist, nil)
		songs.On("FindByID", mock.Anything, songID).Return(&entity.Song{ID: songID}, nil)
		playlists.On("FindEntry", mock.Anything, playlistID, songID).Return(nil, nil)
		playlists.On("NextPosition", mock.Anything, playlistID).Return(3, nil)
		playlists.On("AddSong", mock.Anything, mock.MatchedBy(func(entry *entity.PlaylistSong) bool {
			return entry.PlaylistID == playlistID && entry.SongID == songID && entry.Position == 3
		})).Return(nil)
		playlists.On("Update", mock.Anything, playlist).Return(nil)

		svc := NewPlaylistService(playlists, songs)
		require.NoError(t, svc.AddSong(context.Background(), playlistID, songID, &userID))

		assert.Equal(t, 3, playlist.TotalSongs)
		playlists.AssertExpectations(t)
	})

	t.Run("duplicate song rejected", func(t *testing.T) {
		playlists := new(MockPlaylistRepository)
		songs := new(MockSongRepository)
		playlists.On("FindByID", mock.Anything, playlistID).Return(&entity.Playlist{ID: playlistID}, nil)
		songs.On("FindByID", mock.Anything, songID).Return(&entity.Song{ID: songID}, nil)
		playlists.On("FindEntry", mock.Anything, playlistID, songID).
			Return(&entity.PlaylistSong{PlaylistID: playlistID, SongID: songID}, nil)

		svc := NewPlaylistService(playlists, songs)
		err := svc.AddSong(context.Background(), playlistID, songID, &userID)

		assert.ErrorIs(t, err, ErrAlreadyExists)
		playlists.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything)
	})

	t.Run("unknown song rejected", func(t *testing.T) {
		playlists := new(MockPlaylistRepository)
		songs := new(MockSongRepository)
		playlists.On("FindByID", mock.Anything, playlistID).Return(&entity.Playlist{ID: playlistID}, nil)
		songs.On("FindByID", mock.Anything, songID).Return(nil, nil)

		svc := NewPlaylistService(playlists, songs)
		err := svc.AddSong(context.Background(), playlistID, songID, nil)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlaylistService_RemoveSong(t *testing.T) {
	playlistID := uuid.New()
	songID := uuid.New()

	t.Run("removes and decrements counter", func(t *testing.T) {
		playlist := &entity.Playlist{ID: playlistID, TotalSongs: 1}
		playlists := new(MockPlaylistRepository)
		playlists.On("FindByID", mock.Anything, playlistID).Return(playlist, nil)
		playlists.On("FindEntry", mock.Anything, playlistID, songID).
			Return(&entity.PlaylistSong{PlaylistID: playlistID, SongID: songID}, nil)
		playlists.On("RemoveSong", mock.Anything, playlistID, songID).Return(nil)
		playlists.On("Update", mock.Anything, playlist).Return(nil)

		svc := NewPlaylistService(playlists, new(MockSongRepository))
		require.NoError(t, svc.RemoveSong(context.Background(), playlistID, songID))

		assert.Equal(t, 0, playlist.TotalSongs)
	})

	t.Run("missing entry is not found", func(t *testing.T) {
		playlists := new(MockPlaylistRepository)
		playlists.On("FindByID", mock.Anything, playlistID).Return(&entity.Playlist{ID: playlistID}, nil)
		playlists.On("FindEntry", mock.Anything, playlistID, songID).Return(nil, nil)

		svc := NewPlaylistService(playlists, new(MockSongRepository))
		err := svc.RemoveSong(context.Background(), playlistID, songID)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlaylistService_MoveSong(t *testing.T) {
	playlistID := uuid.New()
	songID := uuid.New()
	entryID := uuid.New()

	t.Run("moves to a valid position", func(t *testing.T) {
		playlists := new(MockPlaylistRepository)
		playlists.On("FindEntry", mock.Anything, playlistID, songID).
			Return(&entity.PlaylistSong{ID: entryID, PlaylistID: playlistID, SongID: songID, Position: 4}, nil)
		playlists.On("UpdatePosition", mock.Anything, entryID, 1).Return(nil)

		svc := NewPlaylistService(playlists, new(MockSongRepository))
		assert.NoError(t, svc.MoveSong(context.Background(), playlistID, songID, 1))
	})

	t.Run("position below one rejected", func(t *testing.T) {
		svc := NewPlaylistService(new(MockPlaylistRepository), new(MockSongRepository))
		err := svc.MoveSong(context.Background(), playlistID, songID, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
