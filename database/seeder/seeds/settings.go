package seeds

import (
	"fmt"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type SettingsSeed struct {
	db *database.Connection
}

func MakeSettingsSeed(db *database.Connection) *SettingsSeed {
	return &SettingsSeed{
		db: db,
	}
}

func (s SettingsSeed) Create() error {
	setting := database.Setting{
		Key:   database.SettingCommentApproval,
		Value: "true",
	}

	if result := s.db.Sql().Create(&setting); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("error seeding settings: %s", result.Error)
	}

	return nil
}
