package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lofinight/internal/dto"
	"lofinight/internal/entity"
	"lofinight/internal/service"
)

type CatalogHandler struct {
	Service  *service.CatalogService
	Validate *validator.Validate
}

func NewCatalogHandler(svc *service.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{Service: svc, Validate: validate}
}

func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres, err := h.Service.ListGenres(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *CatalogHandler) GetGenre(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid genre id")
	}
	genre, err := h.Service.GetGenre(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, genre)
}

func (h *CatalogHandler) CreateGenre(c echo.Context) error {
	var req dto.CreateGenreRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	genre := &entity.Genre{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Color:        req.Color,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.ParentGenreID != nil {
		parentID, err := uuid.Parse(*req.ParentGenreID)
		if err != nil {
			return writeValidationError(c, "invalid parent genre id")
		}
		genre.ParentGenreID = &parentID
	}
	if err := h.Service.CreateGenre(c.Request().Context(), genre); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, genre)
}

func (h *CatalogHandler) UpdateGenre(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid genre id")
	}
	var req dto.UpdateGenreRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	genre, err := h.Service.GetGenre(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.Name != nil {
		genre.Name = *req.Name
	}
	if req.Description != nil {
		genre.Description = *req.Description
	}
	if req.Color != nil {
		genre.Color = *req.Color
	}
	if req.IsActive != nil {
		genre.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		genre.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		genre.DisplayOrder = *req.DisplayOrder
	}
	if err := h.Service.UpdateGenre(c.Request().Context(), genre); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, genre)
}

func (h *CatalogHandler) DeleteGenre(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid genre id")
	}
	if err := h.Service.DeleteGenre(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListArtists(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	artists, err := h.Service.ListArtists(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *CatalogHandler) GetArtist(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid artist id")
	}
	artist, err := h.Service.GetArtist(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, artist)
}

func (h *CatalogHandler) CreateArtist(c echo.Context) error {
	var req dto.CreateArtistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return writeValidationError(c, "invalid user id")
	}
	artist := &entity.Artist{
		UserID:      userID,
		ArtistName:  req.ArtistName,
		Bio:         req.Bio,
		Country:     req.Country,
		SocialLinks: req.SocialLinks,
		IsActive:    true,
	}
	if err := h.Service.CreateArtist(c.Request().Context(), artist); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, artist)
}

func (h *CatalogHandler) UpdateArtist(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid artist id")
	}
	var req dto.UpdateArtistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	artist, err := h.Service.GetArtist(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.ArtistName != nil {
		artist.ArtistName = *req.ArtistName
	}
	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.Avatar != nil {
		artist.Avatar = req.Avatar
	}
	if req.CoverImage != nil {
		artist.CoverImage = req.CoverImage
	}
	if req.Country != nil {
		artist.Country = *req.Country
	}
	if req.SocialLinks != nil {
		artist.SocialLinks = req.SocialLinks
	}
	if req.IsVerified != nil {
		artist.IsVerified = *req.IsVerified
	}
	if req.IsActive != nil {
		artist.IsActive = *req.IsActive
	}
	if err := h.Service.UpdateArtist(c.Request().Context(), artist); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, artist)
}

func (h *CatalogHandler) DeleteArtist(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid artist id")
	}
	if err := h.Service.DeleteArtist(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListAlbums(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	albums, err := h.Service.ListAlbums(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, albums)
}

func (h *CatalogHandler) GetAlbum(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid album id")
	}
	album, err := h.Service.GetAlbum(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

func (h *CatalogHandler) CreateAlbum(c echo.Context) error {
	var req dto.CreateAlbumRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return writeValidationError(c, "invalid artist id")
	}
	album := &entity.Album{
		Title:       req.Title,
		Slug:        req.Slug,
		ArtistID:    artistID,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		ReleaseDate: req.ReleaseDate,
		IsPublic:    true,
		Status:      entity.AlbumStatusPending,
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			return writeValidationError(c, "invalid genre id")
		}
		album.GenreID = &genreID
	}
	if req.IsPublic != nil {
		album.IsPublic = *req.IsPublic
	}
	if err := h.Service.CreateAlbum(c.Request().Context(), album); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, album)
}

func (h *CatalogHandler) UpdateAlbum(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid album id")
	}
	var req dto.UpdateAlbumRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	album, err := h.Service.GetAlbum(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			return writeValidationError(c, "invalid genre id")
		}
		album.GenreID = &genreID
	}
	if req.CoverImage != nil {
		album.CoverImage = req.CoverImage
	}
	if req.Description != nil {
		album.Description = *req.Description
	}
	if req.ReleaseYear != nil {
		album.ReleaseYear = req.ReleaseYear
	}
	if req.IsPublic != nil {
		album.IsPublic = *req.IsPublic
	}
	if req.Status != nil {
		album.Status = entity.AlbumStatus(*req.Status)
	}
	if err := h.Service.UpdateAlbum(c.Request().Context(), album); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

func (h *CatalogHandler) DeleteAlbum(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid album id")
	}
	if err := h.Service.DeleteAlbum(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListSongs(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	var genreID *uuid.UUID
	if raw := c.QueryParam("genreId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return writeValidationError(c, "invalid genre id")
		}
		genreID = &id
	}
	songs, err := h.Service.ListSongs(c.Request().Context(), genreID, limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, songs)
}

func (h *CatalogHandler) GetSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	song, err := h.Service.GetSong(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, song)
}

func (h *CatalogHandler) CreateSong(c echo.Context) error {
	var req dto.CreateSongRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return writeValidationError(c, "invalid artist id")
	}
	song := &entity.Song{
		Title:    req.Title,
		Slug:     req.Slug,
		ArtistID: artistID,
		Duration: req.Duration,
		Lyrics:   req.Lyrics,
		IsPublic: true,
	}
	if req.AlbumID != nil {
		albumID, err := uuid.Parse(*req.AlbumID)
		if err != nil {
			return writeValidationError(c, "invalid album id")
		}
		song.AlbumID = &albumID
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			return writeValidationError(c, "invalid genre id")
		}
		song.GenreID = &genreID
	}
	if req.IsPublic != nil {
		song.IsPublic = *req.IsPublic
	}
	if err := h.Service.CreateSong(c.Request().Context(), song); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, song)
}

func (h *CatalogHandler) UpdateSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	var req dto.UpdateSongRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	song, err := h.Service.GetSong(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.AlbumID != nil {
		albumID, err := uuid.Parse(*req.AlbumID)
		if err != nil {
			return writeValidationError(c, "invalid album id")
		}
		song.AlbumID = &albumID
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			return writeValidationError(c, "invalid genre id")
		}
		song.GenreID = &genreID
	}
	if req.Duration != nil {
		song.Duration = *req.Duration
	}
	if req.CoverImage != nil {
		song.CoverImage = req.CoverImage
	}
	if req.Lyrics != nil {
		song.Lyrics = *req.Lyrics
	}
	if req.IsPublic != nil {
		song.IsPublic = *req.IsPublic
	}
	if err := h.Service.UpdateSong(c.Request().Context(), song); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, song)
}

func (h *CatalogHandler) DeleteSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	if err := h.Service.DeleteSong(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) RecordPlay(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	if err := h.Service.RecordPlay(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
