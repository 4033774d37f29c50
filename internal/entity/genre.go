package entity

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Color       string    `gorm:"type:varchar(7);default:'#6366f1'" json:"color"`

	ParentGenreID *uuid.UUID `gorm:"type:uuid;index" json:"parentGenreId"`

	IsActive     bool `gorm:"default:true" json:"isActive"`
	IsFeatured   bool `gorm:"default:false" json:"isFeatured"`
	DisplayOrder int  `gorm:"default:0" json:"displayOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
