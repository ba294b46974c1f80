package auth

import "errors"

// Policy outcomes. Handlers translate these into 401/403 responses.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)

// CanMutatePost authorises updates and deletes of a post, including the
// category/tag attachments hanging off it. Absence of a caller fails before
// ownership is even checked.
func CanMutatePost(caller *Caller, authorID uint64) error {
	if caller.IsAnonymous() {
		return ErrUnauthenticated
	}

	if caller.IsAdmin() || caller.Owns(authorID) {
		return nil
	}

	return ErrForbidden
}

// CanCreateCategory restricts category creation to admins.
func CanCreateCategory(caller *Caller) error {
	if caller.IsAnonymous() {
		return ErrUnauthenticated
	}

	if !caller.IsAdmin() {
		return ErrForbidden
	}

	return nil
}

// CanFilterPostStatus reports whether an explicit status filter is honoured:
// admins always, authors only when the author filter resolves to themselves.
func CanFilterPostStatus(caller *Caller, authorUUID string) bool {
	if caller.IsAdmin() {
		return true
	}

	return caller != nil && authorUUID != "" && caller.UUID == authorUUID
}

// CanModerateComments reports whether the caller sees comments regardless of
// moderation status and may filter by an explicit one.
func CanModerateComments(caller *Caller) bool {
	return caller.IsAdmin()
}
