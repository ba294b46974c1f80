package repository_test

import (
	"testing"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
)

func TestSettingsRequiresCommentApproval(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	repo := repository.Settings{DB: conn}

	// Missing key: moderation stays on.
	if !repo.RequiresCommentApproval() {
		t.Fatalf("moderation must default to on")
	}

	setting := database.Setting{Key: database.SettingCommentApproval, Value: "false"}
	if err := db.Create(&setting).Error; err != nil {
		t.Fatalf("create setting: %v", err)
	}

	if repo.RequiresCommentApproval() {
		t.Fatalf("explicit false must switch moderation off")
	}

	// Anything that is not the literal string "false" keeps moderation on.
	if err := db.Model(&setting).Update("value", "no").Error; err != nil {
		t.Fatalf("update setting: %v", err)
	}

	if !repo.RequiresCommentApproval() {
		t.Fatalf("non-false values keep moderation on")
	}
}
