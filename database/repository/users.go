package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type Users struct {
	DB *database.Connection
}

func (r Users) FindByEmail(email string) *database.User {
	user := database.User{}

	result := r.DB.Sql().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

func (r Users) FindByUUID(userUUID string) *database.User {
	user := database.User{}

	result := r.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(userUUID)).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

func (r Users) Create(attrs database.UsersAttrs) (*database.User, error) {
	role := attrs.Role
	if role == "" {
		role = "author"
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Name:         attrs.Name,
		Email:        strings.ToLower(strings.TrimSpace(attrs.Email)),
		PasswordHash: attrs.PasswordHash,
		Role:         role,
		Bio:          attrs.Bio,
		Avatar:       attrs.Avatar,
	}

	if result := r.DB.Sql().Create(&user); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating user [%s]: %w", attrs.Email, result.Error)
	}

	return &user, nil
}

// RegisterLogin stamps a successful login and clears the failure counter.
func (r Users) RegisterLogin(user *database.User) error {
	now := time.Now().UTC()

	result := r.DB.Sql().
		Model(user).
		Updates(map[string]any{
			"last_login_at":   now,
			"failed_attempts": 0,
		})

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue registering login for [%s]: %w", user.Email, result.Error)
	}

	user.LastLoginAt = &now
	user.FailedAttempts = 0

	return nil
}

// RegisterFailedLogin bumps the failure counter for a rejected password.
func (r Users) RegisterFailedLogin(user *database.User) error {
	result := r.DB.Sql().
		Model(user).
		UpdateColumn("failed_attempts", stdgorm.Expr("failed_attempts + 1"))

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue registering failed login for [%s]: %w", user.Email, result.Error)
	}

	return nil
}

func (r Users) CountPosts(userID uint64) int64 {
	var count int64

	r.DB.Sql().
		Model(&database.Post{}).
		Where("author_id = ?", userID).
		Count(&count)

	return count
}

func (r Users) CountComments(userID uint64) int64 {
	var count int64

	r.DB.Sql().
		Model(&database.Comment{}).
		Where("user_id = ?", userID).
		Count(&count)

	return count
}
