package database

import (
	"time"

	"gorm.io/gorm"
)

const DriverName = "postgres"

// Post lifecycle states. Others may exist upstream but only these two drive
// behaviour.
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// Comment moderation states.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
)

// SettingCommentApproval toggles moderation for guest comments.
const SettingCommentApproval = "require_comment_approval"

type User struct {
	ID             uint64 `gorm:"primaryKey"`
	UUID           string `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string `gorm:"size:255;not null"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash   string `gorm:"size:255;not null"`
	Role           string `gorm:"size:16;not null;default:author"`
	Bio            string `gorm:"type:text"`
	Gender         string `gorm:"size:32"`
	Mobile         string `gorm:"size:32"`
	Avatar         string `gorm:"size:255"`
	Instagram      string `gorm:"size:255"`
	Twitter        string `gorm:"size:255"`
	Verified       bool   `gorm:"not null;default:false"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Posts    []Post    `gorm:"foreignKey:AuthorID"`
	Comments []Comment `gorm:"foreignKey:UserID"`
}

// Session is an auditable record of an issued token. Authorization relies on
// the signed token itself, not on a session lookup.
type Session struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"type:uuid;not null;uniqueIndex"`
	UserID    uint64 `gorm:"not null;index"`
	User      User   `gorm:"foreignKey:UserID"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

type Post struct {
	ID          uint64 `gorm:"primaryKey"`
	UUID        string `gorm:"type:uuid;not null;uniqueIndex"`
	AuthorID    uint64 `gorm:"not null;index"`
	Author      User   `gorm:"foreignKey:AuthorID"`
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;not null;uniqueIndex"`
	Excerpt     string `gorm:"type:text"`
	Content     string `gorm:"type:text;not null"`
	Status      string `gorm:"size:16;not null;default:draft;index"`
	Featured    bool   `gorm:"not null;default:false"`
	ViewCount   uint64 `gorm:"not null;default:0"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Categories []Category `gorm:"many2many:post_categories;"`
	Tags       []Tag      `gorm:"many2many:post_tags;"`
	Comments   []Comment  `gorm:"foreignKey:PostID"`
}

func (p Post) IsPublished() bool {
	return p.Status == PostPublished
}

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	UUID        string `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string `gorm:"size:255;not null;uniqueIndex"`
	Slug        string `gorm:"size:255;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Posts []Post `gorm:"many2many:post_categories;"`
}

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string `gorm:"size:255;not null"`
	Slug      string `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time

	Posts []Post `gorm:"many2many:post_tags;"`
}

type PostCategory struct {
	PostID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint64 `gorm:"primaryKey;autoIncrement:false"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}

type PostTag struct {
	PostID uint64 `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint64 `gorm:"primaryKey;autoIncrement:false"`
}

func (PostTag) TableName() string {
	return "post_tags"
}

type Comment struct {
	ID          uint64  `gorm:"primaryKey"`
	UUID        string  `gorm:"type:uuid;not null;uniqueIndex"`
	PostID      uint64  `gorm:"not null;index"`
	Post        Post    `gorm:"foreignKey:PostID"`
	UserID      *uint64 `gorm:"index"`
	User        *User   `gorm:"foreignKey:UserID"`
	AuthorName  string  `gorm:"size:255;not null"`
	AuthorEmail string  `gorm:"size:255;not null"`
	Content     string  `gorm:"type:text;not null"`
	Status      string  `gorm:"size:16;not null;default:pending;index"`
	ParentID    *uint64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Replies []Comment `gorm:"foreignKey:ParentID"`
}

func (c Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Key   string `gorm:"size:64;not null;uniqueIndex"`
	Value string `gorm:"size:255;not null"`
}

// GetSchemaTables lists every table in creation order. Truncation walks it
// backwards.
func GetSchemaTables() []string {
	return []string{
		"users",
		"sessions",
		"categories",
		"tags",
		"posts",
		"post_categories",
		"post_tags",
		"comments",
		"settings",
	}
}
