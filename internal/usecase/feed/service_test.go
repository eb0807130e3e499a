package feed

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
)

// --- Mocks ---

type mockContent struct {
	public      []item.Item
	publicTotal int
	publicErr   error

	byOwner    map[string][]item.Item
	ownerErr   error
	lastOffset int
	lastLimit  int
}

func (m *mockContent) ListPublic(_ context.Context, offset, limit int) ([]item.Item, int, error) {
	m.lastOffset = offset
	m.lastLimit = limit
	return m.public, m.publicTotal, m.publicErr
}

func (m *mockContent) RecentPublicByOwner(_ context.Context, ownerID string, max int) ([]item.Item, int, error) {
	if m.ownerErr != nil {
		return nil, 0, m.ownerErr
	}
	items := m.byOwner[ownerID]
	if len(items) > max {
		items = items[:max]
	}
	return items, len(m.byOwner[ownerID]), nil
}

type mockAffinity struct {
	following []string
	err       error
}

func (m *mockAffinity) Following(_ context.Context, _ string) ([]string, error) {
	return m.following, m.err
}

func feedItem(id, owner string, createdAt int64) item.Item {
	return item.Reconstruct(id, owner, "t", "d", nil, item.Public, "", 0, 0, createdAt)
}

// --- Tests ---

func TestPublic(t *testing.T) {
	content := &mockContent{
		public:      []item.Item{feedItem("a", "o1", 300), feedItem("b", "o2", 200)},
		publicTotal: 7,
	}
	svc := New(content, &mockAffinity{})

	page, err := svc.Public(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.lastOffset != 2 || content.lastLimit != 2 {
		t.Errorf("offset/limit = %d/%d, want 2/2", content.lastOffset, content.lastLimit)
	}
	if page.TotalCount != 7 || len(page.Items) != 2 {
		t.Errorf("total/len = %d/%d, want 7/2", page.TotalCount, len(page.Items))
	}
}

func TestPublic_ClampsPagination(t *testing.T) {
	content := &mockContent{}
	svc := New(content, &mockAffinity{})

	page, err := svc.Public(context.Background(), -1, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 || page.Limit != 30 {
		t.Errorf("page/limit = %d/%d, want 1/30", page.Page, page.Limit)
	}
}

func TestPublic_StoreDown(t *testing.T) {
	content := &mockContent{publicErr: errors.New("conn refused")}
	svc := New(content, &mockAffinity{})

	_, err := svc.Public(context.Background(), 1, 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
}

func TestSubscribed_NoSubscriptions(t *testing.T) {
	svc := New(&mockContent{}, &mockAffinity{})

	page, err := svc.Subscribed(context.Background(), "viewer-1", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Errorf("items = %v, want empty non-nil", page.Items)
	}
}

func TestSubscribed_MergesByRecency(t *testing.T) {
	content := &mockContent{byOwner: map[string][]item.Item{
		"o1": {feedItem("a", "o1", 300), feedItem("c", "o1", 100)},
		"o2": {feedItem("b", "o2", 200)},
	}}
	affinity := &mockAffinity{following: []string{"o1", "o2"}}
	svc := New(content, affinity)

	page, err := svc.Subscribed(context.Background(), "viewer-1", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 3 {
		t.Errorf("total = %d, want 3", page.TotalCount)
	}

	want := []string{"a", "b", "c"}
	if len(page.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(page.Items), len(want))
	}
	for i, id := range want {
		if page.Items[i].ID() != id {
			t.Errorf("pos %d: got %s, want %s", i, page.Items[i].ID(), id)
		}
	}
}

func TestSubscribed_PagePastEnd(t *testing.T) {
	content := &mockContent{byOwner: map[string][]item.Item{
		"o1": {feedItem("a", "o1", 300)},
	}}
	svc := New(content, &mockAffinity{following: []string{"o1"}})

	page, err := svc.Subscribed(context.Background(), "viewer-1", 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("items = %d, want 0", len(page.Items))
	}
	if page.TotalCount != 1 {
		t.Errorf("total = %d, want 1", page.TotalCount)
	}
}

// A huge but parseable page number clamps and yields an empty window; the
// merge/slice arithmetic must not wrap around.
func TestSubscribed_HugePageIsEmptyWindow(t *testing.T) {
	content := &mockContent{byOwner: map[string][]item.Item{
		"o1": {feedItem("a", "o1", 300)},
	}}
	svc := New(content, &mockAffinity{following: []string{"o1"}})

	page, err := svc.Subscribed(context.Background(), "viewer-1", math.MaxInt, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("items = %d, want 0", len(page.Items))
	}
	if page.TotalCount != 1 {
		t.Errorf("total = %d, want 1", page.TotalCount)
	}
}

func TestPublic_HugePageKeepsOffsetPositive(t *testing.T) {
	content := &mockContent{}
	svc := New(content, &mockAffinity{})

	if _, err := svc.Public(context.Background(), math.MaxInt, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.lastOffset < 0 {
		t.Errorf("offset = %d, want >= 0", content.lastOffset)
	}
}

func TestSubscribed_AffinityDown(t *testing.T) {
	svc := New(&mockContent{}, &mockAffinity{err: errors.New("conn refused")})

	_, err := svc.Subscribed(context.Background(), "viewer-1", 1, 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
}
