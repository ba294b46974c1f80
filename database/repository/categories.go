package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

// CategoryCount is the public listing row: a category plus how many
// published posts sit in it.
type CategoryCount struct {
	UUID        string
	Name        string
	Slug        string
	Description string
	PostCount   int64
}

func (c Categories) GetAllWithCounts() ([]CategoryCount, error) {
	var items []CategoryCount

	err := c.DB.Sql().
		Model(&database.Category{}).
		Select(
			`categories.uuid,
			 categories.name,
			 categories.slug,
			 categories.description,
			 COUNT(DISTINCT CASE WHEN posts.status = ? AND posts.deleted_at IS NULL THEN posts.id END) AS post_count`,
			database.PostPublished,
		).
		Joins("LEFT JOIN post_categories ON post_categories.category_id = categories.id").
		Joins("LEFT JOIN posts ON posts.id = post_categories.post_id").
		Where("categories.deleted_at IS NULL").
		Group("categories.id").
		Order("categories.name asc").
		Scan(&items).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing categories: %w", err)
	}

	return items, nil
}

func (c Categories) FindBySlug(slug string) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Where("LOWER(slug) = ?", strings.ToLower(slug)).
		First(&category)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}

func (c Categories) Create(attrs database.CategoriesAttrs) (*database.Category, error) {
	category := database.Category{
		UUID:        uuid.NewString(),
		Name:        strings.TrimSpace(attrs.Name),
		Slug:        attrs.Slug,
		Description: attrs.Description,
	}

	if result := c.DB.Sql().Create(&category); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating category [%s]: %w", attrs.Name, result.Error)
	}

	return &category, nil
}

// Attach links the given category uuids to the post. Unknown uuids resolve to
// nothing and are skipped; duplicate links are ignored.
func (c Categories) Attach(tx *stdgorm.DB, postID uint64, categoryUUIDs []string) error {
	for _, categoryUUID := range categoryUUIDs {
		category := database.Category{}

		result := tx.
			Where("uuid = ?", strings.TrimSpace(categoryUUID)).
			First(&category)

		if gorm.HasDbIssues(result.Error) {
			continue
		}

		link := database.PostCategory{
			PostID:     postID,
			CategoryID: category.ID,
		}

		result = tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&link)

		if gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue linking category [%s] to post [%d]: %w", category.Slug, postID, result.Error)
		}
	}

	return nil
}

// Sync replaces the post's category set wholesale.
func (c Categories) Sync(tx *stdgorm.DB, postID uint64, categoryUUIDs []string) error {
	result := tx.
		Where("post_id = ?", postID).
		Delete(&database.PostCategory{})

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue clearing categories for post [%d]: %w", postID, result.Error)
	}

	return c.Attach(tx, postID, categoryUUIDs)
}
