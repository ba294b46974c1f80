package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/database/repository/queries"
	"github.com/inkwell/api/pkg/auth"
	"github.com/inkwell/api/pkg/gorm"
)

type Comments struct {
	DB *database.Connection
}

func (c Comments) FindByUUID(commentUUID string) *database.Comment {
	comment := database.Comment{}

	result := c.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(commentUUID)).
		First(&comment)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &comment
}

// ListThreads returns top-level comments newest-first, each with its replies
// oldest-first. A nil post lists threads across all posts, which is how
// moderation dashboards page through the queue. Moderation visibility follows
// the caller: only admins see pending rows or may narrow by status — but the
// status filter applies to the threads alone, an admin always gets every
// reply under a matched thread.
func (c Comments) ListThreads(post *database.Post, caller *auth.Caller, status string) ([]database.Comment, error) {
	var threads []database.Comment

	query := c.DB.Sql().
		Scopes(queries.VisibleComments(caller, status)).
		Where("comments.parent_id IS NULL")

	if post != nil {
		query = query.Where("comments.post_id = ?", post.ID)
	}

	err := query.
		Preload("User").
		Order("comments.created_at desc").
		Find(&threads).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing comments: %w", err)
	}

	for i := range threads {
		var replies []database.Comment

		err = c.DB.Sql().
			Scopes(queries.VisibleComments(caller, "")).
			Where("comments.parent_id = ?", threads[i].ID).
			Preload("User").
			Order("comments.created_at asc").
			Find(&replies).Error

		if err != nil {
			return nil, fmt.Errorf("issue listing replies for comment [%s]: %w", threads[i].UUID, err)
		}

		threads[i].Replies = replies
	}

	return threads, nil
}

// ListReplies returns a single comment's direct children oldest-first, under
// the same moderation visibility as ListThreads.
func (c Comments) ListReplies(parent *database.Comment, caller *auth.Caller, status string) ([]database.Comment, error) {
	var replies []database.Comment

	err := c.DB.Sql().
		Scopes(queries.VisibleComments(caller, status)).
		Where("comments.parent_id = ?", parent.ID).
		Preload("User").
		Order("comments.created_at asc").
		Find(&replies).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing replies for comment [%s]: %w", parent.UUID, err)
	}

	return replies, nil
}

// FindParent resolves a reply target. The parent must exist, belong to the
// same post, and itself be top level: threads only nest one level deep.
func (c Comments) FindParent(post *database.Post, parentUUID string) *database.Comment {
	parent := c.FindByUUID(parentUUID)

	if parent == nil || parent.PostID != post.ID || !parent.IsTopLevel() {
		return nil
	}

	return parent
}

func (c Comments) Create(attrs database.CommentsAttrs) (*database.Comment, error) {
	comment := database.Comment{
		UUID:        uuid.NewString(),
		PostID:      attrs.PostID,
		UserID:      attrs.UserID,
		AuthorName:  strings.TrimSpace(attrs.AuthorName),
		AuthorEmail: strings.ToLower(strings.TrimSpace(attrs.AuthorEmail)),
		Content:     attrs.Content,
		Status:      attrs.Status,
		ParentID:    attrs.ParentID,
	}

	if result := c.DB.Sql().Create(&comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating comment on post [%d]: %w", attrs.PostID, result.Error)
	}

	return &comment, nil
}

// CountApproved maps post ids to their approved comment totals, for listings
// that show a comment count per post.
func (c Comments) CountApproved(postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))

	if len(postIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PostID uint64
		Total  int64
	}

	var rows []row

	err := c.DB.Sql().
		Model(&database.Comment{}).
		Select("comments.post_id, COUNT(*) AS total").
		Where("comments.post_id IN ?", postIDs).
		Where("comments.status = ?", database.CommentApproved).
		Group("comments.post_id").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("issue counting comments: %w", err)
	}

	for _, item := range rows {
		counts[item.PostID] = item.Total
	}

	return counts, nil
}
