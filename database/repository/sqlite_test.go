package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell/api/database"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
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

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db), db
}

func seedUser(t *testing.T, conn *database.Connection, name, email, role string) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedPost(t *testing.T, conn *database.Connection, authorID uint64, title, slug, status string) database.Post {
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

func seedCategory(t *testing.T, conn *database.Connection, name, slug string) database.Category {
	t.Helper()

	category := database.Category{
		UUID: uuid.NewString(),
		Name: name,
		Slug: slug,
	}

	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	return category
}

func seedTag(t *testing.T, conn *database.Connection, name, slug string) database.Tag {
	t.Helper()

	tag := database.Tag{
		UUID: uuid.NewString(),
		Name: name,
		Slug: slug,
	}

	if err := conn.Sql().Create(&tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return tag
}

func seedComment(t *testing.T, conn *database.Connection, postID uint64, status string, parentID *uint64, createdAt time.Time) database.Comment {
	t.Helper()

	comment := database.Comment{
		UUID:        uuid.NewString(),
		PostID:      postID,
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.test",
		Content:     "a comment",
		Status:      status,
		ParentID:    parentID,
		CreatedAt:   createdAt,
	}

	if err := conn.Sql().Create(&comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}

	return comment
}
