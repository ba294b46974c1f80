package payload

import (
	"time"

	"github.com/inkwell/api/database"
)

type StoreCommentRequest struct {
	PostID      string `json:"post_id" validate:"required"`
	Content     string `json:"content" validate:"required"`
	ParentID    string `json:"parent_id"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email" validate:"omitempty,email"`
}

// CommentResponse deliberately omits the author's email: it is collected for
// moderation, never published.
type CommentResponse struct {
	ID         string            `json:"id"`
	AuthorName string            `json:"author_name"`
	Content    string            `json:"content"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	Replies    []CommentResponse `json:"replies,omitempty"`
}

type CommentsIndexResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type CommentCreatedResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func GetCommentResponse(comment database.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.UUID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		Status:     comment.Status,
		CreatedAt:  comment.CreatedAt,
		Replies:    GetCommentsResponse(comment.Replies),
	}
}

func GetCommentsResponse(comments []database.Comment) []CommentResponse {
	if len(comments) == 0 {
		return nil
	}

	data := make([]CommentResponse, 0, len(comments))

	for _, comment := range comments {
		data = append(data, GetCommentResponse(comment))
	}

	return data
}
