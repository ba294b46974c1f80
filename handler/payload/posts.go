package payload

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository/queries"
)

type StorePostRequest struct {
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
	Featured    bool     `json:"featured"`
	CategoryIDs []string `json:"category_ids"`
	TagNames    []string `json:"tag_names"`
}

// UpdatePostRequest models a partial edit: nil means the client left the
// field out.
type UpdatePostRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Excerpt     *string  `json:"excerpt"`
	Status      *string  `json:"status" validate:"omitempty,oneof=draft published"`
	Featured    *bool    `json:"featured"`
	CategoryIDs []string `json:"category_ids"`
	TagNames    []string `json:"tag_names"`
}

type PostResponse struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Excerpt      string       `json:"excerpt"`
	Content      string       `json:"content"`
	Status       string       `json:"status"`
	Featured     bool         `json:"featured"`
	ViewCount    uint64       `json:"view_count"`
	CommentCount int64        `json:"comment_count"`
	PublishedAt  *time.Time   `json:"published_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Author       UserResponse `json:"author"`

	Categories []CategoryResponse `json:"categories"`
	Tags       []TagResponse      `json:"tags"`
}

type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PostsIndexResponse struct {
	Posts      []PostResponse     `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type PostMutatedResponse struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// GetPostFiltersFrom reads the optional listing filters off the query string.
// Featured filters on presence alone, mirroring how clients send it.
func GetPostFiltersFrom(query url.Values) queries.PostFilters {
	return queries.PostFilters{
		Category:   query.Get("category"),
		Tag:        query.Get("tag"),
		Status:     query.Get("status"),
		AuthorUUID: query.Get("author_id"),
		Featured:   query.Has("featured"),
	}
}

func GetPostIDFrom(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("id"))
}

func GetPostResponse(p database.Post, commentCount int64) PostResponse {
	return PostResponse{
		ID:           p.UUID,
		Slug:         p.Slug,
		Title:        p.Title,
		Excerpt:      p.Excerpt,
		Content:      p.Content,
		Status:       p.Status,
		Featured:     p.Featured,
		ViewCount:    p.ViewCount,
		CommentCount: commentCount,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Author:       GetUserResponse(&p.Author),
		Categories:   GetCategoriesResponse(p.Categories),
		Tags:         GetTagsResponse(p.Tags),
	}
}
