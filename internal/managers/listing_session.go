package managers

import (
	"sync"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// ListingSession guards a folder view against the late-response race: a
// listing request that resolves after the user has navigated elsewhere must
// not overwrite the newer view. Each navigation begins a new generation;
// deliveries for older generations are discarded.
type ListingSession struct {
	mu         sync.Mutex
	scope      domain.ListingScope
	generation uint64
	entries    []domain.FileEntry
}

// ListingTicket identifies one in-flight listing request.
type ListingTicket struct {
	scope      domain.ListingScope
	generation uint64
}

func NewListingSession() *ListingSession {
	return &ListingSession{}
}

// Begin navigates the session to a scope and returns the ticket the eventual
// response must present.
func (s *ListingSession) Begin(scope domain.ListingScope) ListingTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.scope = scope

	return ListingTicket{scope: scope, generation: s.generation}
}

// Deliver applies a listing response. It reports false, leaving the current
// entries untouched, when the ticket is stale.
func (s *ListingSession) Deliver(ticket ListingTicket, entries []domain.FileEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.generation != s.generation || !ticket.scope.Equal(s.scope) {
		return false
	}

	s.entries = entries
	return true
}

// Current returns the active scope and the last delivered entries for it.
func (s *ListingSession) Current() (domain.ListingScope, []domain.FileEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scope, s.entries
}
