package payload

import (
	"time"

	"github.com/inkwell/api/database"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserStatsResponse struct {
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}

type ProfileResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Bio         string            `json:"bio"`
	Avatar      string            `json:"avatar"`
	CreatedAt   time.Time         `json:"created_at"`
	LastLoginAt *time.Time        `json:"last_login_at"`
	Stats       UserStatsResponse `json:"stats"`
}

func GetUserResponse(user *database.User) UserResponse {
	return UserResponse{
		ID:    user.UUID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func GetProfileResponse(user *database.User, stats UserStatsResponse) ProfileResponse {
	return ProfileResponse{
		ID:          user.UUID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Bio:         user.Bio,
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
		Stats:       stats,
	}
}
