package domain

import "errors"

// Business-rule failures. These are expected outcomes, surfaced to callers as
// distinguishable values so the presentation layer can map them to precise
// responses. Storage failures are not part of this set and are wrapped and
// propagated separately.
var (
	// ErrUnauthorized indicates no authenticated principal was supplied.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPostNotFound indicates the referenced post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrForbidden indicates the principal lacks rights over this post.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition indicates the requested status change is not
	// permitted for the role, or a concurrent transition won the race.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPostNotOwned indicates an edit matched no row for the given
	// id+author pair. "Not found" and "not owned" are deliberately
	// collapsed so edits do not leak the existence of other users' posts.
	ErrPostNotOwned = errors.New("post not found or not owned by user")

	// ErrEmailTaken indicates a signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login. Unknown email and
	// wrong password produce the same error.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound indicates an unknown or expired session token.
	ErrSessionNotFound = errors.New("session not found")
)
