package domain

import "errors"

var (
	// ErrUnauthenticated is returned before any network call when an
	// operation is attempted without a signed-in user.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound signals a missing project id. Callers render a
	// not-found state rather than treating it as a failure.
	ErrNotFound = errors.New("project not found")
)
