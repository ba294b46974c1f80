package handler

import (
	baseHttp "net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/middleware"
)

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&database.User{},
		&database.Session{},
		&database.Category{},
		&database.Tag{},
		&database.Post{},
		&database.PostCategory{},
		&database.PostTag{},
		&database.Comment{},
		&database.Setting{},
	); err != nil {
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

func createTestUser(t *testing.T, conn *database.Connection, name, email, role, password string) database.User {
	t.Helper()

	pass, err := auth.MakePassword(password)
	if err != nil {
		t.Fatalf("make password: %v", err)
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: pass.GetHash(),
		Role:         role,
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func createTestPost(t *testing.T, conn *database.Connection, authorID uint64, title, slug, status string) database.Post {
	t.Helper()

	post := database.Post{
		UUID:     uuid.NewString(),
		AuthorID: authorID,
		Title:    title,
		Slug:     slug,
		Excerpt:  "excerpt",
		Content:  "content",
		Status:   status,
	}

	if status == database.PostPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := conn.Sql().Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	return post
}

func asCaller(r *baseHttp.Request, user database.User) *baseHttp.Request {
	return middleware.WithCaller(r, &auth.Caller{
		ID:    user.ID,
		UUID:  user.UUID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}
