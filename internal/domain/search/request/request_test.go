package request

import (
	"math"
	"testing"
)

func TestNew_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 5, 1, 5},
		{"negative limit", 2, -1, 2, 10},
		{"limit above max", 1, 100, 1, 30},
		{"limit at max", 1, 30, 1, 30},
		{"page above max", MaxPage + 1, 10, MaxPage, 10},
		{"huge page", math.MaxInt, 30, MaxPage, 30},
		{"in range", 4, 25, 4, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New("q", "", tc.page, tc.limit)
			if r.Page() != tc.wantPage {
				t.Errorf("page = %d, want %d", r.Page(), tc.wantPage)
			}
			if r.Limit() != tc.wantLimit {
				t.Errorf("limit = %d, want %d", r.Limit(), tc.wantLimit)
			}
		})
	}
}

func TestRequest_Anonymous(t *testing.T) {
	anon := New("q", "", 1, 10)
	if !anon.IsAnonymous() {
		t.Error("empty viewer should be anonymous")
	}

	viewer := New("q", "user-1", 1, 10)
	if viewer.IsAnonymous() {
		t.Error("viewer should not be anonymous")
	}
}

func TestRequest_Offset(t *testing.T) {
	r := New("q", "", 3, 10)
	if r.Offset() != 20 {
		t.Errorf("offset = %d, want 20", r.Offset())
	}
}

// The offset of any constructible request must stay non-negative; a huge
// parseable page number clamps instead of wrapping around.
func TestRequest_OffsetNeverOverflows(t *testing.T) {
	r := New("q", "", math.MaxInt, math.MaxInt)
	if r.Offset() < 0 {
		t.Errorf("offset = %d, want >= 0", r.Offset())
	}
	if r.Offset() != (MaxPage-1)*MaxLimit {
		t.Errorf("offset = %d, want %d", r.Offset(), (MaxPage-1)*MaxLimit)
	}
}
