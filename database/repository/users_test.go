package repository_test

import (
	"testing"
	"time"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/pkg/auth"
)

func TestUsersFindByEmailIsCaseInsensitive(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	repo := repository.Users{DB: conn}

	seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)

	if repo.FindByEmail("  WREN@Example.Test ") == nil {
		t.Fatalf("lookup should fold case and trim whitespace")
	}

	if repo.FindByEmail("nobody@example.test") != nil {
		t.Fatalf("unknown email must resolve to nil")
	}
}

func TestUsersLoginBookkeeping(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	repo := repository.Users{DB: conn}

	user := seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)

	if err := repo.RegisterFailedLogin(&user); err != nil {
		t.Fatalf("failed login: %v", err)
	}
	if err := repo.RegisterFailedLogin(&user); err != nil {
		t.Fatalf("failed login: %v", err)
	}

	fresh := repo.FindByUUID(user.UUID)
	if fresh.FailedAttempts != 2 {
		t.Fatalf("failed_attempts = %d, want 2", fresh.FailedAttempts)
	}

	if err := repo.RegisterLogin(fresh); err != nil {
		t.Fatalf("register login: %v", err)
	}

	fresh = repo.FindByUUID(user.UUID)
	if fresh.FailedAttempts != 0 {
		t.Fatalf("login must clear the failure counter, got %d", fresh.FailedAttempts)
	}
	if fresh.LastLoginAt == nil {
		t.Fatalf("login must stamp last_login_at")
	}
}

func TestUsersCreateDefaultsRole(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	repo := repository.Users{DB: conn}

	user, err := repo.Create(database.UsersAttrs{
		Name:         "Wren",
		Email:        "WREN@Example.Test",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.Role != auth.RoleAuthor {
		t.Fatalf("role = %q, want author", user.Role)
	}
	if user.Email != "wren@example.test" {
		t.Fatalf("email must be stored lowercased, got %q", user.Email)
	}
}

func TestUsersContentCounts(t *testing.T) {
	conn, _ := newSQLiteConnection(t)
	repo := repository.Users{DB: conn}

	user := seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)
	post := seedPost(t, conn, user.ID, "Public", "public", database.PostPublished)

	comment := seedComment(t, conn, post.ID, database.CommentApproved, nil, time.Now().UTC())
	if err := conn.Sql().Model(&comment).Update("user_id", user.ID).Error; err != nil {
		t.Fatalf("bind comment: %v", err)
	}

	if got := repo.CountPosts(user.ID); got != 1 {
		t.Fatalf("posts = %d, want 1", got)
	}
	if got := repo.CountComments(user.ID); got != 1 {
		t.Fatalf("comments = %d, want 1", got)
	}
}
