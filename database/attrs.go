package database

import (
	"time"
)

type UsersAttrs struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Bio          string
	Avatar       string
}

type PostsAttrs struct {
	AuthorID      uint64
	Title         string
	Excerpt       string
	Content       string
	Status        string
	Featured      bool
	PublishedAt   *time.Time
	CategoryUUIDs []string
	TagNames      []string
}

// PostUpdateAttrs models a partial update: nil means the field was not
// supplied by the caller.
type PostUpdateAttrs struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Status        *string
	Featured      *bool
	CategoryUUIDs []string
	TagNames      []string
}

// HasChanges reports whether any recognised post field was supplied. Pure
// association updates do not count as a row change.
func (a PostUpdateAttrs) HasChanges() bool {
	return a.Title != nil || a.Content != nil || a.Excerpt != nil ||
		a.Status != nil || a.Featured != nil
}

type CategoriesAttrs struct {
	Name        string
	Slug        string
	Description string
}

type CommentsAttrs struct {
	PostID      uint64
	UserID      *uint64
	AuthorName  string
	AuthorEmail string
	Content     string
	Status      string
	ParentID    *uint64
}

type SessionsAttrs struct {
	UserID    uint64
	ExpiresAt time.Time
}
