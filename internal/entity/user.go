package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lofinight/internal/authz"
)

type User struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"username"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string     `gorm:"type:text;not null" json:"-"`
	FullName string     `gorm:"type:varchar(100);not null" json:"fullName"`
	Role     authz.Role `gorm:"type:varchar(20);default:'user';not null" json:"role"`

	Avatar   *string `gorm:"type:text" json:"avatar"`
	Bio      string  `gorm:"type:varchar(500)" json:"bio"`
	Phone    *string `gorm:"type:varchar(20)" json:"phone"`
	Location string  `gorm:"type:varchar(100)" json:"location"`

	IsActive        bool `gorm:"default:true" json:"isActive"`
	IsEmailVerified bool `gorm:"default:false" json:"isEmailVerified"`

	LastLoginAt   *time.Time `json:"lastLoginAt"`
	LoginAttempts int        `gorm:"default:0" json:"-"`
	LockUntil     *time.Time `json:"-"`

	EmailVerificationToken   *string    `gorm:"type:text" json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`
	PasswordResetToken       *string    `gorm:"type:text" json:"-"`
	PasswordResetExpires     *time.Time `json:"-"`

	Preferences datatypes.JSON `json:"preferences,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsLocked reports whether the lockout window is still open. Expired locks
// are cleared lazily on the next login attempt, never by a sweeper.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}
