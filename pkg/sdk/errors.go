package tagrank

import "github.com/clipstack/tagrank/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrValidation       = domain.ErrValidation
	ErrItemNotFound     = domain.ErrItemNotFound
	ErrForbidden        = domain.ErrForbidden
	ErrStoreUnavailable = domain.ErrStoreUnavailable
)
