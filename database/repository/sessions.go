package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type Sessions struct {
	DB *database.Connection
}

// Create records an issued token for auditing. Authorization never reads this
// table; the signed token is authoritative.
func (r Sessions) Create(attrs database.SessionsAttrs) (*database.Session, error) {
	session := database.Session{
		UUID:      uuid.NewString(),
		UserID:    attrs.UserID,
		ExpiresAt: attrs.ExpiresAt,
	}

	if result := r.DB.Sql().Create(&session); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating session for user [%d]: %w", attrs.UserID, result.Error)
	}

	return &session, nil
}

// PruneExpired removes session records past their expiry. Run by the cron
// scheduler.
func (r Sessions) PruneExpired(ctx context.Context) (int64, error) {
	result := r.DB.Sql().
		WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&database.Session{})

	if gorm.HasDbIssues(result.Error) {
		return 0, fmt.Errorf("issue pruning expired sessions: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// PruneJob adapts PruneExpired for the cron scheduler.
func (r Sessions) PruneJob() func(context.Context) error {
	return func(ctx context.Context) error {
		count, err := r.PruneExpired(ctx)

		if err != nil {
			return err
		}

		if count > 0 {
			slog.Info("pruned expired sessions", "count", count)
		}

		return nil
	}
}
