package preferences

import (
	"reflect"
	"testing"
)

func TestToggleFavorite(t *testing.T) {
	store := NewStore()

	if got := store.ToggleFavorite(7); got != true {
		t.Error("first toggle should mark the channel favorite")
	}
	if !store.IsFavorite(7) {
		t.Error("channel 7 should be a favorite after the first toggle")
	}
	if got := store.ToggleFavorite(7); got != false {
		t.Error("second toggle should remove the favorite")
	}
	if store.IsFavorite(7) {
		t.Error("channel 7 should no longer be a favorite")
	}
	if len(store.Favorites()) != 0 {
		t.Error("favorites should be empty after toggling twice")
	}
}

func TestMarkRecentOrderAndDedupe(t *testing.T) {
	store := NewStore()

	store.MarkRecent(3)
	store.MarkRecent(5)
	store.MarkRecent(3)

	if got := store.Recent(0); !reflect.DeepEqual(got, []int{3, 5}) {
		t.Errorf("expected recency order [3 5], got %v", got)
	}
}

func TestMarkRecentBounded(t *testing.T) {
	store := NewStore()

	for id := 1; id <= 25; id++ {
		store.MarkRecent(id)
	}

	all := store.Recent(0)
	if len(all) != recentLimit {
		t.Fatalf("expected recency list capped at %d, got %d", recentLimit, len(all))
	}
	if all[0] != 25 {
		t.Errorf("expected most recent channel first, got %d", all[0])
	}
	for _, id := range all {
		if id <= 5 {
			t.Errorf("channel %d should have been evicted", id)
		}
	}
}

func TestRecentLimit(t *testing.T) {
	store := NewStore()
	for id := 1; id <= 10; id++ {
		store.MarkRecent(id)
	}

	limited := store.Recent(8)
	if len(limited) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(limited))
	}
	if limited[0] != 10 || limited[7] != 3 {
		t.Errorf("unexpected window %v", limited)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	store := NewStore()
	store.MarkRecent(1)
	store.MarkRecent(2)

	got := store.Recent(0)
	got[0] = 99

	if store.Recent(0)[0] != 2 {
		t.Error("Recent must return a copy, not the backing slice")
	}
}
