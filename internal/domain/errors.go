package domain

import "errors"

var (
	// ErrInvalidQuery signals a search query that is empty or normalizes to an empty token set.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrValidation signals a rejected field on item creation or mutation.
	ErrValidation = errors.New("validation failed")
	// ErrItemNotFound signals a missing content item.
	ErrItemNotFound = errors.New("item not found")
	// ErrForbidden signals an access attempt on a private item by a non-owner.
	ErrForbidden = errors.New("forbidden")
	// ErrStoreUnavailable signals a failed collaborator read. Retryable by the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
