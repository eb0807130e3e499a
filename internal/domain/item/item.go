// Package item holds the content item aggregate and its tag derivation.
package item

import (
	"fmt"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/text"
)

// Visibility controls whether an item appears on the public search surface.
type Visibility string

const (
	// Public items are searchable by anyone.
	Public Visibility = "public"
	// Private items are reachable only by their owner through the owner listing.
	Private Visibility = "private"
)

// MaxTitleLen and MaxDescriptionLen bound the text fields in bytes.
const (
	MaxTitleLen       = 256
	MaxDescriptionLen = 8192
)

// Item is a searchable content unit. Tags are always derived from title and
// description, never hand-edited.
type Item struct {
	id           string
	ownerID      string
	title        string
	description  string
	tags         []string
	visibility   Visibility
	thumbnailRef string
	durationSec  float64
	views        int64
	createdAt    int64 // unix seconds
}

// New validates and creates an Item, deriving its tag set from title and
// description.
func New(
	id, ownerID, title, description string,
	visibility Visibility, thumbnailRef string, durationSec float64, createdAt int64,
) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("%w: item ID is required", domain.ErrValidation)
	}
	if ownerID == "" {
		return Item{}, fmt.Errorf("%w: owner ID is required", domain.ErrValidation)
	}
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(title) > MaxTitleLen {
		return Item{}, fmt.Errorf("%w: title too long (max %d bytes)", domain.ErrValidation, MaxTitleLen)
	}
	if description == "" {
		return Item{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if len(description) > MaxDescriptionLen {
		return Item{}, fmt.Errorf("%w: description too long (max %d bytes)", domain.ErrValidation, MaxDescriptionLen)
	}
	switch visibility {
	case Public, Private:
		// ok
	default:
		return Item{}, fmt.Errorf("%w: visibility must be %q or %q, got %q", domain.ErrValidation, Public, Private, visibility)
	}
	if durationSec < 0 {
		return Item{}, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}

	return Item{
		id:           id,
		ownerID:      ownerID,
		title:        title,
		description:  description,
		tags:         DeriveTags(title, description),
		visibility:   visibility,
		thumbnailRef: thumbnailRef,
		durationSec:  durationSec,
		createdAt:    createdAt,
	}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(
	id, ownerID, title, description string, tags []string,
	visibility Visibility, thumbnailRef string, durationSec float64,
	views, createdAt int64,
) Item {
	return Item{
		id:           id,
		ownerID:      ownerID,
		title:        title,
		description:  description,
		tags:         tags,
		visibility:   visibility,
		thumbnailRef: thumbnailRef,
		durationSec:  durationSec,
		views:        views,
		createdAt:    createdAt,
	}
}

// DeriveTags produces the persisted tag set for a title/description pair:
// normalize both fields, concatenate, and deduplicate preserving
// first-occurrence order. The result fully replaces any previous tag set.
func DeriveTags(title, description string) []string {
	tokens := append(text.Normalize(title), text.Normalize(description)...)
	return text.Dedup(tokens)
}

// WithText returns a copy with new title and description and a freshly
// derived tag set. Stale tags never survive a rename.
func (i *Item) WithText(title, description string) (Item, error) {
	updated, err := New(
		i.id, i.ownerID, title, description,
		i.visibility, i.thumbnailRef, i.durationSec, i.createdAt,
	)
	if err != nil {
		return Item{}, err
	}
	updated.views = i.views
	return updated, nil
}

// WithVisibility returns a copy with the given visibility.
func (i *Item) WithVisibility(v Visibility) Item {
	copied := *i
	copied.visibility = v
	return copied
}

// ID returns the item identifier.
func (i *Item) ID() string { return i.id }

// OwnerID returns the creator's identifier.
func (i *Item) OwnerID() string { return i.ownerID }

// Title returns the title.
func (i *Item) Title() string { return i.title }

// Description returns the description.
func (i *Item) Description() string { return i.description }

// Tags returns the derived tag set.
func (i *Item) Tags() []string { return i.tags }

// Visibility returns the visibility flag.
func (i *Item) Visibility() Visibility { return i.visibility }

// IsPublic reports whether the item is on the public search surface.
func (i *Item) IsPublic() bool { return i.visibility == Public }

// ThumbnailRef returns the thumbnail storage reference.
func (i *Item) ThumbnailRef() string { return i.thumbnailRef }

// DurationSec returns the media duration in seconds.
func (i *Item) DurationSec() float64 { return i.durationSec }

// Views returns the view counter.
func (i *Item) Views() int64 { return i.views }

// CreatedAt returns the creation time in unix seconds.
func (i *Item) CreatedAt() int64 { return i.createdAt }
