package scheduler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	stdgorm "gorm.io/gorm"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/pkg/scheduler"
)

func TestNewRejectsBadInput(t *testing.T) {
	noop := func(context.Context) error { return nil }

	if _, err := scheduler.New("", noop); err == nil {
		t.Fatalf("empty expression must be rejected")
	}

	if _, err := scheduler.New("@daily", nil); err == nil {
		t.Fatalf("nil job must be rejected")
	}

	if _, err := scheduler.New("every blue moon", noop); err == nil {
		t.Fatalf("unparsable expression must be rejected")
	}
}

func TestRunExecutesPruneJob(t *testing.T) {
	conn := newSessionsConnection(t)
	sessions := repository.Sessions{DB: conn}

	user := database.User{
		UUID:         uuid.NewString(),
		Name:         "Wren",
		Email:        "wren@example.test",
		PasswordHash: "not-a-real-hash",
		Role:         "author",
	}
	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	expired := database.Session{
		UUID:      uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	if err := conn.Sql().Create(&expired).Error; err != nil {
		t.Fatalf("create expired session: %v", err)
	}

	live, err := sessions.Create(database.SessionsAttrs{
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create live session: %v", err)
	}

	pruner, err := scheduler.New("@hourly", sessions.PruneJob(), scheduler.WithJobTimeout(time.Minute))
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var remaining []database.Session
	if err := conn.Sql().Find(&remaining).Error; err != nil {
		t.Fatalf("load sessions: %v", err)
	}

	if len(remaining) != 1 || remaining[0].UUID != live.UUID {
		t.Fatalf("prune run must remove only the expired session, got %d rows", len(remaining))
	}
}

func TestRunSurfacesJobErrors(t *testing.T) {
	pruner, err := scheduler.New("@hourly", func(context.Context) error {
		return errors.New("db went away")
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if err := pruner.Run(context.Background()); err == nil {
		t.Fatalf("job errors must reach the caller")
	}
}

func TestJobTimeoutBoundsTheContext(t *testing.T) {
	var sawDeadline atomic.Bool

	job := func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)

		return nil
	}

	pruner, err := scheduler.New("@daily", job, scheduler.WithJobTimeout(time.Minute))
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if err := pruner.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !sawDeadline.Load() {
		t.Fatalf("a job timeout must put a deadline on the job context")
	}
}

func TestStartFiresOnSchedule(t *testing.T) {
	var calls atomic.Int64
	fired := make(chan struct{}, 1)

	job := func(context.Context) error {
		calls.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}

		return nil
	}

	pruner, err := scheduler.New(
		"@every 1s",
		job,
		scheduler.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pruner.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer pruner.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduled job never fired")
	}

	if calls.Load() < 1 {
		t.Fatalf("expected at least one run")
	}
}

func TestStartTwiceFails(t *testing.T) {
	pruner, err := scheduler.New("@daily", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}

	if err := pruner.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	t.Cleanup(pruner.Stop)

	if err := pruner.Start(context.Background()); err == nil {
		t.Fatalf("a started scheduler must refuse a second start")
	}
}

func newSessionsConnection(t *testing.T) *database.Connection {
	t.Helper()

	db, err := stdgorm.Open(sqlite.Open(":memory:"), &stdgorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&database.User{}, &database.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db)
}
