package entity

import (
	"time"

	"github.com/google/uuid"
)

type AlbumStatus string

const (
	AlbumStatusDraft    AlbumStatus = "draft"
	AlbumStatusPending  AlbumStatus = "pending"
	AlbumStatusApproved AlbumStatus = "approved"
	AlbumStatusRejected AlbumStatus = "rejected"
)

type Album struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug     string    `gorm:"type:varchar(300);uniqueIndex;not null" json:"slug"`
	ArtistID uuid.UUID `gorm:"type:uuid;not null;index" json:"artistId"`
	Artist   Artist    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	GenreID *uuid.UUID `gorm:"type:uuid;index" json:"genreId"`

	CoverImage  *string    `gorm:"type:text" json:"coverImage"`
	Description string     `gorm:"type:varchar(1000)" json:"description"`
	ReleaseYear *int       `json:"releaseYear"`
	ReleaseDate *time.Time `json:"releaseDate"`

	TotalTracks   int   `gorm:"default:0" json:"totalTracks"`
	TotalDuration int   `gorm:"default:0" json:"totalDuration"`
	TotalPlays    int64 `gorm:"default:0" json:"totalPlays"`

	IsPublic bool        `gorm:"default:true" json:"isPublic"`
	Status   AlbumStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
