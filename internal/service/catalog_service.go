package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"lofinight/internal/cache"
	"lofinight/internal/entity"
	"lofinight/internal/repository"
)

const (
	cacheKeyGenres = "catalog:genres"
	cacheKeySongs  = "catalog:songs"
	cacheKeyAlbums = "catalog:albums"
)

// CatalogService is pass-through persistence for genres, artists, albums and
// songs, with a read-through cache on the public listings.
type CatalogService struct {
	genres   repository.GenreRepository
	artists  repository.ArtistRepository
	albums   repository.AlbumRepository
	songs    repository.SongRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

func NewCatalogService(
	genres repository.GenreRepository,
	artists repository.ArtistRepository,
	albums repository.AlbumRepository,
	songs repository.SongRepository,
	cacheClient *cache.Client,
	cacheTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		genres:   genres,
		artists:  artists,
		albums:   albums,
		songs:    songs,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
	}
}

func (s *CatalogService) ListGenres(ctx context.Context) ([]entity.Genre, error) {
	if data, _ := s.cache.Get(ctx, cacheKeyGenres); data != nil {
		var genres []entity.Genre
		if err := json.Unmarshal(data, &genres); err == nil {
			return genres, nil
		}
	}

	genres, err := s.genres.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(genres); err == nil {
		_ = s.cache.Set(ctx, cacheKeyGenres, data, s.cacheTTL)
	}
	return genres, nil
}

func (s *CatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrNotFound
	}
	return genre, nil
}

func (s *CatalogService) CreateGenre(ctx context.Context, genre *entity.Genre) error {
	existing, err := s.genres.FindBySlug(ctx, genre.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	if err := s.genres.Create(ctx, genre); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyGenres)
	return nil
}

func (s *CatalogService) UpdateGenre(ctx context.Context, genre *entity.Genre) error {
	if err := s.genres.Update(ctx, genre); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyGenres)
	return nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if genre == nil {
		return ErrNotFound
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyGenres)
	return nil
}

func (s *CatalogService) ListArtists(ctx context.Context, limit, offset int) ([]entity.Artist, error) {
	return s.artists.ListActive(ctx, limit, offset)
}

func (s *CatalogService) GetArtist(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, ErrNotFound
	}
	return artist, nil
}

func (s *CatalogService) CreateArtist(ctx context.Context, artist *entity.Artist) error {
	existing, err := s.artists.FindByUserID(ctx, artist.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	return s.artists.Create(ctx, artist)
}

func (s *CatalogService) UpdateArtist(ctx context.Context, artist *entity.Artist) error {
	return s.artists.Update(ctx, artist)
}

func (s *CatalogService) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if artist == nil {
		return ErrNotFound
	}
	return s.artists.Delete(ctx, id)
}

func (s *CatalogService) ListAlbums(ctx context.Context, limit, offset int) ([]entity.Album, error) {
	// only the unpaginated default listing is cached
	if limit == 0 && offset == 0 {
		if data, _ := s.cache.Get(ctx, cacheKeyAlbums); data != nil {
			var albums []entity.Album
			if err := json.Unmarshal(data, &albums); err == nil {
				return albums, nil
			}
		}
	}

	albums, err := s.albums.ListPublic(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if limit == 0 && offset == 0 {
		if data, err := json.Marshal(albums); err == nil {
			_ = s.cache.Set(ctx, cacheKeyAlbums, data, s.cacheTTL)
		}
	}
	return albums, nil
}

func (s *CatalogService) GetAlbum(ctx context.Context, id uuid.UUID) (*entity.Album, error) {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrNotFound
	}
	return album, nil
}

func (s *CatalogService) CreateAlbum(ctx context.Context, album *entity.Album) error {
	existing, err := s.albums.FindBySlug(ctx, album.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyAlbums)
	return nil
}

func (s *CatalogService) UpdateAlbum(ctx context.Context, album *entity.Album) error {
	if err := s.albums.Update(ctx, album); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyAlbums)
	return nil
}

func (s *CatalogService) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if album == nil {
		return ErrNotFound
	}
	if err := s.albums.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeyAlbums)
	return nil
}

func (s *CatalogService) ListSongs(ctx context.Context, genreID *uuid.UUID, limit, offset int) ([]entity.Song, error) {
	if genreID == nil && limit == 0 && offset == 0 {
		if data, _ := s.cache.Get(ctx, cacheKeySongs); data != nil {
			var songs []entity.Song
			if err := json.Unmarshal(data, &songs); err == nil {
				return songs, nil
			}
		}
	}

	songs, err := s.songs.ListPublic(ctx, genreID, limit, offset)
	if err != nil {
		return nil, err
	}
	if genreID == nil && limit == 0 && offset == 0 {
		if data, err := json.Marshal(songs); err == nil {
			_ = s.cache.Set(ctx, cacheKeySongs, data, s.cacheTTL)
		}
	}
	return songs, nil
}

func (s *CatalogService) GetSong(ctx context.Context, id uuid.UUID) (*entity.Song, error) {
	song, err := s.songs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, ErrNotFound
	}
	return song, nil
}

func (s *CatalogService) CreateSong(ctx context.Context, song *entity.Song) error {
	existing, err := s.songs.FindBySlug(ctx, song.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}
	if err := s.songs.Create(ctx, song); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeySongs)
	return nil
}

func (s *CatalogService) UpdateSong(ctx context.Context, song *entity.Song) error {
	if err := s.songs.Update(ctx, song); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeySongs)
	return nil
}

func (s *CatalogService) DeleteSong(ctx context.Context, id uuid.UUID) error {
	song, err := s.songs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if song == nil {
		return ErrNotFound
	}
	if err := s.songs.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cacheKeySongs)
	return nil
}

// RecordPlay bumps the play counter; listen bookkeeping never fails a request.
func (s *CatalogService) RecordPlay(ctx context.Context, id uuid.UUID) error {
	return s.songs.IncrementPlayCount(ctx, id)
}
