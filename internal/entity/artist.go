package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Artist struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	User   User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	ArtistName string  `gorm:"type:varchar(255);not null" json:"artistName"`
	Bio        string  `gorm:"type:varchar(1000)" json:"bio"`
	Avatar     *string `gorm:"type:text" json:"avatar"`
	CoverImage *string `gorm:"type:text" json:"coverImage"`
	Country    string  `gorm:"type:varchar(100)" json:"country"`

	SocialLinks datatypes.JSON `json:"socialLinks,omitempty"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`
	IsActive   bool `gorm:"default:true" json:"isActive"`

	TotalPlays     int64 `gorm:"default:0" json:"totalPlays"`
	TotalFollowers int64 `gorm:"default:0" json:"totalFollowers"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
