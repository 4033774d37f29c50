package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserListOrder(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"defaults", "", "", "created_at DESC"},
		{"whitelisted column ascending", "username", "asc", "username ASC"},
		{"camel case alias", "lastLoginAt", "desc", "last_login_at DESC"},
		{"snake case alias", "created_at", "asc", "created_at ASC"},
		{"unknown column falls back", "favorite_color", "asc", "created_at ASC"},
		{
			"smuggled subquery falls back",
			"(SELECT CASE WHEN (SELECT count(*) FROM users WHERE password LIKE 'x%') > 0 THEN username ELSE email END)",
			"asc",
			"created_at ASC",
		},
		{"statement terminator falls back", "username; DROP TABLE users", "desc", "created_at DESC"},
		{"direction is never raw input", "email", "asc; SELECT 1", "email DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userListOrder(tt.sortBy, tt.sortOrder))
		})
	}
}
