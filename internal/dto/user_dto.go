package dto

import (
	"time"

	"gorm.io/datatypes"

	"lofinight/internal/entity"
)

type UserResponse struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	Email           string         `json:"email"`
	FullName        string         `json:"fullName"`
	Role            string         `json:"role"`
	Avatar          *string        `json:"avatar"`
	Bio             string         `json:"bio,omitempty"`
	Phone           *string        `json:"phone,omitempty"`
	Location        string         `json:"location,omitempty"`
	IsActive        bool           `json:"isActive"`
	IsEmailVerified bool           `json:"isEmailVerified"`
	LastLoginAt     *time.Time     `json:"lastLoginAt,omitempty"`
	Preferences     datatypes.JSON `json:"preferences,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		Role:            string(user.Role),
		Avatar:          user.Avatar,
		Bio:             user.Bio,
		Phone:           user.Phone,
		Location:        user.Location,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		LastLoginAt:     user.LastLoginAt,
		Preferences:     user.Preferences,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}

type UpdateProfileRequest struct {
	FullName    *string        `json:"fullName" validate:"omitempty,max=100"`
	Avatar      *string        `json:"avatar" validate:"omitempty,url"`
	Bio         *string        `json:"bio" validate:"omitempty,max=500"`
	Phone       *string        `json:"phone" validate:"omitempty,min=10,max=20"`
	Location    *string        `json:"location" validate:"omitempty,max=100"`
	Preferences datatypes.JSON `json:"preferences" validate:"omitempty"`
}

type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
