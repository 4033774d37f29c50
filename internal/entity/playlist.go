package entity

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`

	Description string  `gorm:"type:varchar(1000)" json:"description"`
	CoverImage  *string `gorm:"type:text" json:"coverImage"`
	IsPublic    bool    `gorm:"default:true" json:"isPublic"`

	TotalSongs int `gorm:"default:0" json:"totalSongs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaylistSong links a song into a playlist at a position. A song appears at
// most once per playlist.
type PlaylistSong struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_song" json:"playlistId"`
	Playlist   Playlist  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SongID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_playlist_song" json:"songId"`
	Song       Song      `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Position int        `gorm:"not null" json:"position"`
	AddedBy  *uuid.UUID `gorm:"type:uuid" json:"addedBy"`

	CreatedAt time.Time `json:"createdAt"`
}
