package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/gorm"
)

type UsersSeed struct {
	db *database.Connection
}

func MakeUsersSeed(db *database.Connection) *UsersSeed {
	return &UsersSeed{
		db: db,
	}
}

func (s UsersSeed) Create(attrs database.UsersAttrs) (database.User, error) {
	pass, err := auth.MakePassword("password")
	if err != nil {
		return database.User{}, fmt.Errorf("failed to generate seed password: %w", err)
	}

	fake := database.User{
		UUID:         uuid.NewString(),
		Name:         attrs.Name,
		Email:        attrs.Email,
		PasswordHash: pass.GetHash(),
		Role:         attrs.Role,
		Bio:          "Writes about software and everything around it.",
		Verified:     true,
	}

	result := s.db.Sql().Create(&fake)

	if gorm.HasDbIssues(result.Error) {
		return database.User{}, fmt.Errorf("issues creating users: %s", result.Error)
	}

	return fake, nil
}
