package repository

import (
	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type Settings struct {
	DB *database.Connection
}

func (r Settings) Get(key string) (string, bool) {
	setting := database.Setting{}

	result := r.DB.Sql().
		Where("key = ?", key).
		First(&setting)

	if gorm.HasDbIssues(result.Error) {
		return "", false
	}

	return setting.Value, true
}

// RequiresCommentApproval reports whether guest comments start out pending.
// Moderation is on unless the setting explicitly opts out.
func (r Settings) RequiresCommentApproval() bool {
	value, found := r.Get(database.SettingCommentApproval)

	if !found {
		return true
	}

	return value != "false"
}
