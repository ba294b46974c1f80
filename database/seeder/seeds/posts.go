package seeds

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
	"github.com/inkwell/api/pkg/portal"
)

type PostsSeed struct {
	db *database.Connection
}

func MakePostsSeed(db *database.Connection) *PostsSeed {
	return &PostsSeed{
		db: db,
	}
}

// Create seeds one published and one draft post per author so the visibility
// rules have something to bite on.
func (s PostsSeed) Create(authors ...database.User) ([]database.Post, error) {
	var posts []database.Post

	now := time.Now().UTC()

	for i, author := range authors {
		publishedTitle := fmt.Sprintf("Shipping Notes %d", i+1)
		draftTitle := fmt.Sprintf("Unfinished Thoughts %d", i+1)

		posts = append(posts,
			database.Post{
				UUID:        uuid.NewString(),
				AuthorID:    author.ID,
				Title:       publishedTitle,
				Slug:        portal.NewStringable(publishedTitle).Slug(),
				Excerpt:     "What we learned shipping this release.",
				Content:     "The long-form write-up of everything that went right and wrong.",
				Status:      database.PostPublished,
				Featured:    i == 0,
				PublishedAt: &now,
			},
			database.Post{
				UUID:     uuid.NewString(),
				AuthorID: author.ID,
				Title:    draftTitle,
				Slug:     portal.NewStringable(draftTitle).Slug(),
				Excerpt:  "Still cooking.",
				Content:  "Notes that are not ready for readers yet.",
				Status:   database.PostDraft,
			},
		)
	}

	result := s.db.Sql().Create(&posts)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating posts: %s", result.Error)
	}

	return posts, nil
}

// Attach links every post to the given category and tag rows.
func (s PostsSeed) Attach(posts []database.Post, categories []database.Category, tags []database.Tag) error {
	for i, post := range posts {
		if len(categories) > 0 {
			link := database.PostCategory{
				PostID:     post.ID,
				CategoryID: categories[i%len(categories)].ID,
			}

			if result := s.db.Sql().Create(&link); gorm.HasDbIssues(result.Error) {
				return fmt.Errorf("issue linking seed categories: %s", result.Error)
			}
		}

		if len(tags) > 0 {
			link := database.PostTag{
				PostID: post.ID,
				TagID:  tags[i%len(tags)].ID,
			}

			if result := s.db.Sql().Create(&link); gorm.HasDbIssues(result.Error) {
				return fmt.Errorf("issue linking seed tags: %s", result.Error)
			}
		}
	}

	return nil
}
