package auth

// Roles recognised by the access policy.
const (
	RoleAdmin  = "admin"
	RoleAuthor = "author"
)

// Caller identifies who issued the current request. A nil *Caller means the
// request is anonymous. Callers are always passed explicitly, never stashed
// in package-level state.
type Caller struct {
	ID    uint64
	UUID  string
	Email string
	Name  string
	Role  string
}

func (c *Caller) IsAnonymous() bool {
	return c == nil
}

func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Owns reports whether the caller is the author identified by authorID.
func (c *Caller) Owns(authorID uint64) bool {
	return c != nil && c.ID == authorID
}
