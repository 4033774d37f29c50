package dto

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	IsPublic    *bool  `json:"isPublic"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	CoverImage  *string `json:"coverImage" validate:"omitempty,url"`
	IsPublic    *bool   `json:"isPublic"`
}

type AddPlaylistSongRequest struct {
	SongID string `json:"songId" validate:"required,uuid"`
}

type MovePlaylistSongRequest struct {
	Position int `json:"position" validate:"required,min=1"`
}
