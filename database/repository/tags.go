package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/portal"
)

type Tags struct {
	DB *database.Connection
}

func (t Tags) FindBySlug(tx *stdgorm.DB, slug string) *database.Tag {
	tag := database.Tag{}

	result := tx.
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}

// FindOrCreate resolves a display name to its tag row, lazily creating the
// tag when the derived slug is unknown. The create is an upsert so two
// concurrent writers racing on the same slug cannot both insert.
func (t Tags) FindOrCreate(tx *stdgorm.DB, name string) (*database.Tag, error) {
	slug := portal.NewStringable(name).TagSlug()

	if tag := t.FindBySlug(tx, slug); tag != nil {
		return tag, nil
	}

	tag := database.Tag{
		UUID: uuid.NewString(),
		Name: strings.TrimSpace(name),
		Slug: slug,
	}

	result := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&tag)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating tag [%s]: %w", name, result.Error)
	}

	if result.RowsAffected == 0 {
		// Lost the race; the row exists now.
		if existing := t.FindBySlug(tx, slug); existing != nil {
			return existing, nil
		}

		return nil, fmt.Errorf("tag [%s] vanished during upsert", slug)
	}

	return &tag, nil
}

// Attach links the supplied tag names to the post, creating missing tags on
// the fly. Blank names are skipped and duplicate links are ignored, so the
// operation is idempotent.
func (t Tags) Attach(tx *stdgorm.DB, postID uint64, names []string) error {
	for _, name := range portal.FilterNonEmpty(names) {
		tag, err := t.FindOrCreate(tx, name)

		if err != nil {
			return err
		}

		link := database.PostTag{
			PostID: postID,
			TagID:  tag.ID,
		}

		result := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&link)

		if gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue linking tag [%s] to post [%d]: %w", tag.Slug, postID, result.Error)
		}
	}

	return nil
}

// Sync replaces the post's tag set wholesale: every prior link is dropped
// before the supplied names are attached.
func (t Tags) Sync(tx *stdgorm.DB, postID uint64, names []string) error {
	result := tx.
		Where("post_id = ?", postID).
		Delete(&database.PostTag{})

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue clearing tags for post [%d]: %w", postID, result.Error)
	}

	return t.Attach(tx, postID, names)
}
