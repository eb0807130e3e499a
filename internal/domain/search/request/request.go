// Package request models a single search request with clamped pagination.
package request

// Pagination bounds. Out-of-range values clamp, they never error.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 30

	// MaxPage bounds the page number so window arithmetic stays in int
	// range. A page this deep is past the end of any real result set and
	// yields an empty window.
	MaxPage = 1_000_000
)

// Request is one search invocation. ViewerID is empty for anonymous viewers.
type Request struct {
	query    string
	viewerID string
	page     int
	limit    int
}

// New creates a Request, clamping page and limit. Zero or negative page
// becomes 1; page above MaxPage becomes MaxPage; zero or negative limit
// becomes the default; limit above MaxLimit becomes MaxLimit. Query
// validity is checked during expansion, not here.
func New(query, viewerID string, page, limit int) Request {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{query: query, viewerID: viewerID, page: page, limit: limit}
}

// Query returns the raw query string.
func (r *Request) Query() string { return r.query }

// ViewerID returns the authenticated viewer, or "" for anonymous.
func (r *Request) ViewerID() string { return r.viewerID }

// IsAnonymous reports whether no viewer identity is attached.
func (r *Request) IsAnonymous() bool { return r.viewerID == "" }

// Page returns the clamped 1-based page number.
func (r *Request) Page() int { return r.page }

// Limit returns the clamped page size.
func (r *Request) Limit() int { return r.limit }

// Offset returns the zero-indexed slice offset for the page window.
func (r *Request) Offset() int { return (r.page - 1) * r.limit }
