package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lofinight/api/middleware"
	"lofinight/internal/dto"
	"lofinight/internal/entity"
	"lofinight/internal/service"
)

type PlaylistHandler struct {
	Service  *service.PlaylistService
	Validate *validator.Validate
}

func NewPlaylistHandler(svc *service.PlaylistService, validate *validator.Validate) *PlaylistHandler {
	return &PlaylistHandler{Service: svc, Validate: validate}
}

// ResolveOwner looks up the playlist from the :id param and reports its owner.
// Used by the ownership gate on mutating playlist routes.
func (h *PlaylistHandler) ResolveOwner(c echo.Context) (uuid.UUID, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return uuid.Nil, err
	}
	playlist, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return uuid.Nil, err
	}
	return playlist.OwnerID, nil
}

func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	var req dto.CreatePlaylistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	playlist := &entity.Playlist{
		Name:        req.Name,
		OwnerID:     userID,
		Description: req.Description,
		IsPublic:    true,
	}
	if req.IsPublic != nil {
		playlist.IsPublic = *req.IsPublic
	}
	if err := h.Service.Create(c.Request().Context(), playlist); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, playlist)
}

func (h *PlaylistHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	playlist, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, playlist)
}

func (h *PlaylistHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	playlists, err := h.Service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, playlists)
}

func (h *PlaylistHandler) ListPublic(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	playlists, err := h.Service.ListPublic(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, playlists)
}

func (h *PlaylistHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	var req dto.UpdatePlaylistRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	playlist, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if req.Name != nil {
		playlist.Name = *req.Name
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}
	if req.CoverImage != nil {
		playlist.CoverImage = req.CoverImage
	}
	if req.IsPublic != nil {
		playlist.IsPublic = *req.IsPublic
	}
	if err := h.Service.Update(c.Request().Context(), playlist); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, playlist)
}

func (h *PlaylistHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlaylistHandler) ListSongs(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	songs, err := h.Service.ListSongs(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, songs)
}

func (h *PlaylistHandler) AddSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	var req dto.AddPlaylistSongRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	songID, err := uuid.Parse(req.SongID)
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	var addedBy *uuid.UUID
	if userID, ok := middleware.UserIDFromContext(c); ok {
		addedBy = &userID
	}
	if err := h.Service.AddSong(c.Request().Context(), id, songID, addedBy); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "song added"})
}

func (h *PlaylistHandler) RemoveSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	songID, err := parseUUIDParam(c, "songId")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	if err := h.Service.RemoveSong(c.Request().Context(), id, songID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlaylistHandler) MoveSong(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid playlist id")
	}
	songID, err := parseUUIDParam(c, "songId")
	if err != nil {
		return writeValidationError(c, "invalid song id")
	}
	var req dto.MovePlaylistSongRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.MoveSong(c.Request().Context(), id, songID, req.Position); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "song moved"})
}

func (h *PlaylistHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
