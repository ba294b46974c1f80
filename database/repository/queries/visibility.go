package queries

import (
	"gorm.io/gorm"

	"github.com/inkwell/api/database"
	"github.com/inkwell/api/pkg/auth"
)

// VisiblePosts narrows a posts query to what the caller may read: anonymous
// callers get published rows only, authors additionally get their own rows,
// admins get everything.
func VisiblePosts(caller *auth.Caller) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case caller.IsAdmin():
			return db
		case caller.IsAnonymous():
			return db.Where("posts.status = ?", database.PostPublished)
		default:
			return db.Where(
				"posts.author_id = ? OR posts.status = ?",
				caller.ID, database.PostPublished,
			)
		}
	}
}

// VisibleComments gates comment rows by moderation status. Non-admins only
// ever see approved comments; admins see everything and may narrow to an
// explicit status.
func VisibleComments(caller *auth.Caller, status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !auth.CanModerateComments(caller) {
			return db.Where("comments.status = ?", database.CommentApproved)
		}

		if status != "" {
			return db.Where("comments.status = ?", status)
		}

		return db
	}
}
