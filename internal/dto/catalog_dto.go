package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateGenreRequest struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Slug          string  `json:"slug" validate:"required,max=120"`
	Description   string  `json:"description" validate:"omitempty,max=500"`
	Color         string  `json:"color" validate:"omitempty,hexcolor"`
	ParentGenreID *string `json:"parentGenreId" validate:"omitempty,uuid"`
	DisplayOrder  int     `json:"displayOrder"`
}

type UpdateGenreRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	Color        *string `json:"color" validate:"omitempty,hexcolor"`
	IsActive     *bool   `json:"isActive"`
	IsFeatured   *bool   `json:"isFeatured"`
	DisplayOrder *int    `json:"displayOrder"`
}

type CreateArtistRequest struct {
	UserID      string         `json:"userId" validate:"required,uuid"`
	ArtistName  string         `json:"artistName" validate:"required,max=255"`
	Bio         string         `json:"bio" validate:"omitempty,max=1000"`
	Country     string         `json:"country" validate:"omitempty,max=100"`
	SocialLinks datatypes.JSON `json:"socialLinks" validate:"omitempty"`
}

type UpdateArtistRequest struct {
	ArtistName  *string        `json:"artistName" validate:"omitempty,max=255"`
	Bio         *string        `json:"bio" validate:"omitempty,max=1000"`
	Avatar      *string        `json:"avatar" validate:"omitempty,url"`
	CoverImage  *string        `json:"coverImage" validate:"omitempty,url"`
	Country     *string        `json:"country" validate:"omitempty,max=100"`
	SocialLinks datatypes.JSON `json:"socialLinks" validate:"omitempty"`
	IsVerified  *bool          `json:"isVerified"`
	IsActive    *bool          `json:"isActive"`
}

type CreateAlbumRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"required,max=300"`
	ArtistID    string     `json:"artistId" validate:"required,uuid"`
	GenreID     *string    `json:"genreId" validate:"omitempty,uuid"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	ReleaseYear *int       `json:"releaseYear" validate:"omitempty,min=1900"`
	ReleaseDate *time.Time `json:"releaseDate"`
	IsPublic    *bool      `json:"isPublic"`
}

type UpdateAlbumRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	GenreID     *string `json:"genreId" validate:"omitempty,uuid"`
	CoverImage  *string `json:"coverImage" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	ReleaseYear *int    `json:"releaseYear" validate:"omitempty,min=1900"`
	IsPublic    *bool   `json:"isPublic"`
	Status      *string `json:"status" validate:"omitempty,oneof=draft pending approved rejected"`
}

type CreateSongRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Slug     string  `json:"slug" validate:"required,max=300"`
	ArtistID string  `json:"artistId" validate:"required,uuid"`
	AlbumID  *string `json:"albumId" validate:"omitempty,uuid"`
	GenreID  *string `json:"genreId" validate:"omitempty,uuid"`
	Duration int     `json:"duration" validate:"required,min=1"`
	Lyrics   string  `json:"lyrics" validate:"omitempty"`
	IsPublic *bool   `json:"isPublic"`
}

type UpdateSongRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=255"`
	AlbumID    *string `json:"albumId" validate:"omitempty,uuid"`
	GenreID    *string `json:"genreId" validate:"omitempty,uuid"`
	Duration   *int    `json:"duration" validate:"omitempty,min=1"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
	Lyrics     *string `json:"lyrics" validate:"omitempty"`
	IsPublic   *bool   `json:"isPublic"`
}
