package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/gorm"
)

type CommentsSeed struct {
	db *database.Connection
}

func MakeCommentsSeed(db *database.Connection) *CommentsSeed {
	return &CommentsSeed{
		db: db,
	}
}

// Create seeds an approved thread with one reply plus a pending guest comment
// on every published post.
func (s CommentsSeed) Create(author database.User, posts ...database.Post) ([]database.Comment, error) {
	var comments []database.Comment

	for _, post := range posts {
		if !post.IsPublished() {
			continue
		}

		parent := database.Comment{
			UUID:        uuid.NewString(),
			PostID:      post.ID,
			UserID:      &author.ID,
			AuthorName:  author.Name,
			AuthorEmail: author.Email,
			Content:     "Great write-up, thanks for sharing.",
			Status:      database.CommentApproved,
		}

		if result := s.db.Sql().Create(&parent); gorm.HasDbIssues(result.Error) {
			return nil, fmt.Errorf("error creating seed comments: %s", result.Error)
		}

		reply := database.Comment{
			UUID:        uuid.NewString(),
			PostID:      post.ID,
			UserID:      &author.ID,
			AuthorName:  author.Name,
			AuthorEmail: author.Email,
			Content:     "Following up with a small correction.",
			Status:      database.CommentApproved,
			ParentID:    &parent.ID,
		}

		guest := database.Comment{
			UUID:        uuid.NewString(),
			PostID:      post.ID,
			AuthorName:  "Drive-by Reader",
			AuthorEmail: "reader@example.com",
			Content:     "First time here, nice blog.",
			Status:      database.CommentPending,
		}

		if result := s.db.Sql().Create(&reply); gorm.HasDbIssues(result.Error) {
			return nil, fmt.Errorf("error creating seed replies: %s", result.Error)
		}

		if result := s.db.Sql().Create(&guest); gorm.HasDbIssues(result.Error) {
			return nil, fmt.Errorf("error creating seed guest comments: %s", result.Error)
		}

		comments = append(comments, parent, reply, guest)
	}

	return comments, nil
}
