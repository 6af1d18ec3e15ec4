// Package preferences tracks favorite-channel membership and a bounded
// recently-viewed list. State is process-lifetime only; nothing is persisted.
package preferences

import "sync"

// recentLimit bounds the recency list.
const recentLimit = 20

// Store holds per-process viewing preferences. Construct one with NewStore and
// pass it to whatever needs it; handlers and the guide orchestrator share a
// single instance, tests build their own. The mutex keeps the read-your-writes
// and no-duplicate-entry invariants intact under concurrent requests.
type Store struct {
	mu        sync.Mutex
	favorites map[int]struct{}
	recent    []int
}

// NewStore returns an empty preference store.
func NewStore() *Store {
	return &Store{
		favorites: make(map[int]struct{}),
	}
}

// ToggleFavorite flips the favorite status of a channel and reports the new
// state: true means the channel is now a favorite.
func (s *Store) ToggleFavorite(channelID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.favorites[channelID]; found {
		delete(s.favorites, channelID)
		return false
	}
	s.favorites[channelID] = struct{}{}
	return true
}

// IsFavorite reports whether a channel is currently a favorite.
func (s *Store) IsFavorite(channelID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.favorites[channelID]
	return found
}

// Favorites returns the ids of all favorite channels. Membership only; the
// order is unspecified.
func (s *Store) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	return ids
}

// MarkRecent records a channel view: the channel moves to the front of the
// recency list, any earlier occurrence is removed, and the list is truncated
// to its bound.
func (s *Store) MarkRecent(channelID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]int, 0, len(s.recent)+1)
	filtered = append(filtered, channelID)
	for _, id := range s.recent {
		if id != channelID {
			filtered = append(filtered, id)
		}
	}

	if len(filtered) > recentLimit {
		filtered = filtered[:recentLimit]
	}
	s.recent = filtered
}

// Recent returns up to limit recently viewed channel ids, most recent first.
// A non-positive limit returns the whole bounded list.
func (s *Store) Recent(limit int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.recent) {
		limit = len(s.recent)
	}

	out := make([]int, limit)
	copy(out, s.recent[:limit])
	return out
}
