package queries

import (
	"strings"

	"gorm.io/gorm"

	"github.com/inkwell/api/pkg/auth"
)

// PostFilters captures the optional narrowing a caller may request on a post
// listing. Category and Tag take slugs; AuthorUUID takes the author's public
// id. Featured filters on presence alone.
type PostFilters struct {
	Category   string
	Tag        string
	Status     string
	AuthorUUID string
	Featured   bool
}

// Apply layers the requested filters onto the query. The status filter is
// only honoured when the policy allows it for this caller.
func (f PostFilters) Apply(db *gorm.DB, caller *auth.Caller) *gorm.DB {
	if category := strings.TrimSpace(f.Category); category != "" {
		db = db.Where(
			`EXISTS (
				SELECT 1 FROM post_categories
				JOIN categories ON categories.id = post_categories.category_id
				WHERE post_categories.post_id = posts.id AND categories.slug = ?
			)`,
			category,
		)
	}

	if tag := strings.TrimSpace(f.Tag); tag != "" {
		db = db.Where(
			`EXISTS (
				SELECT 1 FROM post_tags
				JOIN tags ON tags.id = post_tags.tag_id
				WHERE post_tags.post_id = posts.id AND tags.slug = ?
			)`,
			tag,
		)
	}

	if author := strings.TrimSpace(f.AuthorUUID); author != "" {
		db = db.Where("posts.author_id IN (SELECT id FROM users WHERE uuid = ?)", author)
	}

	if status := strings.TrimSpace(f.Status); status != "" && auth.CanFilterPostStatus(caller, f.AuthorUUID) {
		db = db.Where("posts.status = ?", status)
	}

	if f.Featured {
		db = db.Where("posts.featured = ?", true)
	}

	return db
}
