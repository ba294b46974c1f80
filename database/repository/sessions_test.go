package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/pkg/auth"
)

func TestSessionsPruneExpired(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	repo := repository.Sessions{DB: conn}

	user := seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)

	live, err := repo.Create(database.SessionsAttrs{
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create live session: %v", err)
	}

	if _, err := repo.Create(database.SessionsAttrs{
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("create stale session: %v", err)
	}

	pruned, err := repo.PruneExpired(context.Background())
	if err != nil {
		t.Fatalf("prune: %v", err)
	}

	if pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}

	var remaining []database.Session
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].UUID != live.UUID {
		t.Fatalf("only the live session should survive: %+v", remaining)
	}
}
