package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository/pagination"
	"github.com/inkwell/api/database/repository/queries"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/portal"
)

type Posts struct {
	DB         *database.Connection
	Categories Categories
	Tags       Tags
}

func MakePostsRepository(conn *database.Connection) Posts {
	return Posts{
		DB:         conn,
		Categories: Categories{DB: conn},
		Tags:       Tags{DB: conn},
	}
}

// uniqueSlug derives the post slug from its title, suffixing a timestamp when
// the plain slug is already taken. Soft-deleted rows still hold their slug, so
// the probe runs unscoped. excludeID skips the post's own row on updates.
func (p Posts) uniqueSlug(tx *stdgorm.DB, title string, excludeID uint64) (string, error) {
	slug := portal.NewStringable(title).Slug()

	var count int64

	query := tx.
		Unscoped().
		Model(&database.Post{}).
		Where("slug = ?", slug)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return "", fmt.Errorf("issue probing slug [%s]: %w", slug, err)
	}

	if count > 0 {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UTC().Unix())
	}

	return slug, nil
}

func (p Posts) Create(attrs database.PostsAttrs) (*database.Post, error) {
	post := database.Post{}

	err := p.DB.Transaction(func(tx *stdgorm.DB) error {
		slug, err := p.uniqueSlug(tx, attrs.Title, 0)
		if err != nil {
			return err
		}

		status := attrs.Status
		if status == "" {
			status = database.PostDraft
		}

		publishedAt := attrs.PublishedAt
		if status == database.PostPublished && publishedAt == nil {
			now := time.Now().UTC()
			publishedAt = &now
		}

		post = database.Post{
			UUID:        uuid.NewString(),
			AuthorID:    attrs.AuthorID,
			Title:       strings.TrimSpace(attrs.Title),
			Slug:        slug,
			Excerpt:     attrs.Excerpt,
			Content:     attrs.Content,
			Status:      status,
			Featured:    attrs.Featured,
			PublishedAt: publishedAt,
		}

		if result := tx.Create(&post); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue creating post [%s]: %w", attrs.Title, result.Error)
		}

		if len(attrs.CategoryUUIDs) > 0 {
			if err := p.Categories.Attach(tx, post.ID, attrs.CategoryUUIDs); err != nil {
				return err
			}
		}

		if len(attrs.TagNames) > 0 {
			if err := p.Tags.Attach(tx, post.ID, attrs.TagNames); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// GetVisible fetches a fully hydrated post by its public id, honouring the
// caller's read visibility. Returns nil when the post does not exist or the
// caller may not see it.
func (p Posts) GetVisible(postUUID string, caller *auth.Caller) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Scopes(queries.VisiblePosts(caller)).
		Where("posts.uuid = ?", strings.TrimSpace(postUUID)).
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

func (p Posts) FindByUUID(postUUID string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(postUUID)).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// IncrementViews bumps the read counter without touching updated_at.
func (p Posts) IncrementViews(post *database.Post) error {
	result := p.DB.Sql().
		Model(post).
		UpdateColumn("view_count", stdgorm.Expr("view_count + 1"))

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue counting view for post [%s]: %w", post.UUID, result.Error)
	}

	return nil
}

// GetPage returns one page of posts the caller may see, newest first, with
// the requested filters layered on top.
func (p Posts) GetPage(paginate pagination.Paginate, filters queries.PostFilters, caller *auth.Caller) (*pagination.Pagination[database.Post], error) {
	var posts []database.Post
	var numItems int64

	query := p.DB.Sql().
		Model(&database.Post{}).
		Scopes(queries.VisiblePosts(caller))

	query = filters.Apply(query, caller)

	if err := pagination.Count(&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, fmt.Errorf("issue counting posts: %w", err)
	}

	err := query.
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Order("posts.created_at desc").
		Offset(paginate.GetOffset()).
		Limit(paginate.Limit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching posts: %w", err)
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Post](posts, paginate), nil
}

// Update applies a partial edit. It reports false without touching the row or
// its associations when no recognised field was supplied. A title change
// regenerates the slug; setting the status to published restamps published_at
// even when the post was already published.
func (p Posts) Update(post *database.Post, attrs database.PostUpdateAttrs) (bool, error) {
	if !attrs.HasChanges() {
		return false, nil
	}

	err := p.DB.Transaction(func(tx *stdgorm.DB) error {
		updates := map[string]any{}

		if attrs.Title != nil {
			slug, err := p.uniqueSlug(tx, *attrs.Title, post.ID)
			if err != nil {
				return err
			}

			updates["title"] = strings.TrimSpace(*attrs.Title)
			updates["slug"] = slug
		}

		if attrs.Content != nil {
			updates["content"] = *attrs.Content
		}

		if attrs.Excerpt != nil {
			updates["excerpt"] = *attrs.Excerpt
		}

		if attrs.Status != nil {
			updates["status"] = *attrs.Status

			if *attrs.Status == database.PostPublished {
				updates["published_at"] = time.Now().UTC()
			}
		}

		if attrs.Featured != nil {
			updates["featured"] = *attrs.Featured
		}

		result := tx.Model(post).Updates(updates)

		if gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("issue updating post [%s]: %w", post.UUID, result.Error)
		}

		if len(attrs.CategoryUUIDs) > 0 {
			if err := p.Categories.Sync(tx, post.ID, attrs.CategoryUUIDs); err != nil {
				return err
			}
		}

		if len(attrs.TagNames) > 0 {
			if err := p.Tags.Sync(tx, post.ID, attrs.TagNames); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return false, err
	}

	return true, nil
}

// Delete soft-deletes the post. Its slug stays reserved.
func (p Posts) Delete(post *database.Post) error {
	result := p.DB.Sql().Delete(post)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting post [%s]: %w", post.UUID, result.Error)
	}

	return nil
}
