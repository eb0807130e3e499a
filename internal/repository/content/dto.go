package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clipstack/tagrank/internal/domain/item"
)

// itemToHash converts a domain Item to a map for HSET. Tags are space-joined:
// normalized tokens contain only [a-z0-9], so a space is a safe separator.
func itemToHash(it item.Item) map[string]string {
	return map[string]string{
		"owner":       it.OwnerID(),
		"title":       it.Title(),
		"description": it.Description(),
		"tags":        strings.Join(it.Tags(), " "),
		"visibility":  string(it.Visibility()),
		"thumbnail":   it.ThumbnailRef(),
		"duration":    strconv.FormatFloat(it.DurationSec(), 'f', -1, 64),
		"views":       strconv.FormatInt(it.Views(), 10),
		"created_at":  strconv.FormatInt(it.CreatedAt(), 10),
	}
}

// itemFromHash hydrates a domain Item from an HGETALL result map.
func itemFromHash(id string, m map[string]string) (item.Item, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return item.Item{}, fmt.Errorf("invalid created_at for item %s: %w", id, err)
	}

	views := int64(0)
	if v := m["views"]; v != "" {
		views, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return item.Item{}, fmt.Errorf("invalid views for item %s: %w", id, err)
		}
	}

	duration := 0.0
	if d := m["duration"]; d != "" {
		duration, err = strconv.ParseFloat(d, 64)
		if err != nil {
			return item.Item{}, fmt.Errorf("invalid duration for item %s: %w", id, err)
		}
	}

	var tags []string
	if raw := m["tags"]; raw != "" {
		tags = strings.Fields(raw)
	}

	return item.Reconstruct(
		id, m["owner"], m["title"], m["description"], tags,
		item.Visibility(m["visibility"]), m["thumbnail"], duration,
		views, createdAt,
	), nil
}
