package repository_test

import (
	"testing"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository"
	"github.com/inkwell/api/pkg/auth"
)

func TestTagsFindOrCreateReusesExistingSlug(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	repo := repository.Tags{DB: conn}

	existing := seedTag(t, conn, "go", "go")

	tag, err := repo.FindOrCreate(db, "GO")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}

	if tag.ID != existing.ID {
		t.Fatalf("case variants must resolve to the same tag")
	}

	var count int64
	db.Model(&database.Tag{}).Count(&count)
	if count != 1 {
		t.Fatalf("no duplicate tag rows expected, got %d", count)
	}
}

func TestTagsAttachSkipsBlanksAndDuplicates(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	repo := repository.Tags{DB: conn}

	author := seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)
	post := seedPost(t, conn, author.ID, "Public", "public", database.PostPublished)

	names := []string{"go", "  ", "", "distributed systems", "go"}

	if err := repo.Attach(db, post.ID, names); err != nil {
		t.Fatalf("attach: %v", err)
	}

	var links int64
	db.Model(&database.PostTag{}).Where("post_id = ?", post.ID).Count(&links)
	if links != 2 {
		t.Fatalf("expected 2 links, got %d", links)
	}

	// Re-attaching the same names is a no-op.
	if err := repo.Attach(db, post.ID, names); err != nil {
		t.Fatalf("re-attach: %v", err)
	}

	db.Model(&database.PostTag{}).Where("post_id = ?", post.ID).Count(&links)
	if links != 2 {
		t.Fatalf("attach must be idempotent, got %d links", links)
	}
}

func TestTagsSyncReplacesSet(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	repo := repository.Tags{DB: conn}

	author := seedUser(t, conn, "Wren", "wren@example.test", auth.RoleAuthor)
	post := seedPost(t, conn, author.ID, "Public", "public", database.PostPublished)

	if err := repo.Attach(db, post.ID, []string{"go", "sql"}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := repo.Sync(db, post.ID, []string{"career"}); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var links []database.PostTag
	db.Where("post_id = ?", post.ID).Find(&links)
	if len(links) != 1 {
		t.Fatalf("sync should leave exactly one link, got %d", len(links))
	}

	tag := repo.FindBySlug(db, "career")
	if tag == nil || links[0].TagID != tag.ID {
		t.Fatalf("surviving link should point at the career tag")
	}

	// The replaced tags stay in the catalogue, only the links go.
	if repo.FindBySlug(db, "go") == nil {
		t.Fatalf("sync must not delete tag rows")
	}
}
