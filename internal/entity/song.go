package entity

import (
	"time"

	"github.com/google/uuid"
)

type Song struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug     string    `gorm:"type:varchar(300);uniqueIndex;not null" json:"slug"`
	ArtistID uuid.UUID `gorm:"type:uuid;not null;index" json:"artistId"`
	Artist   Artist    `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	AlbumID *uuid.UUID `gorm:"type:uuid;index" json:"albumId"`
	GenreID *uuid.UUID `gorm:"type:uuid;index" json:"genreId"`

	Duration   int     `gorm:"not null" json:"duration"`
	CoverImage *string `gorm:"type:text" json:"coverImage"`
	Lyrics     string  `gorm:"type:text" json:"lyrics,omitempty"`

	PlayCount int64 `gorm:"default:0" json:"playCount"`
	LikeCount int64 `gorm:"default:0" json:"likeCount"`

	IsPublic bool `gorm:"default:true" json:"isPublic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
