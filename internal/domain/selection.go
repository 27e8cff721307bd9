package domain

// ListingScope identifies one folder view. Listing responses carry the scope
// they were requested for; a response whose scope is no longer current is
// discarded instead of overwriting newer state.
type ListingScope struct {
	ParentFolderID *string
	View           ListView
}

func (s ListingScope) Equal(other ListingScope) bool {
	if s.View != other.View {
		return false
	}
	if (s.ParentFolderID == nil) != (other.ParentFolderID == nil) {
		return false
	}
	return s.ParentFolderID == nil || *s.ParentFolderID == *other.ParentFolderID
}

// Selection tracks the set of selected entry ids within one folder view.
// Navigating to a different scope clears it.
type Selection struct {
	scope ListingScope
	ids   map[string]struct{}
}

func NewSelection(scope ListingScope) *Selection {
	return &Selection{scope: scope, ids: make(map[string]struct{})}
}

func (s *Selection) Scope() ListingScope {
	return s.scope
}

// SetScope moves the selection to a new folder view, clearing it when the
// scope actually changes.
func (s *Selection) SetScope(scope ListingScope) {
	if s.scope.Equal(scope) {
		return
	}
	s.scope = scope
	s.ids = make(map[string]struct{})
}

func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) SelectAll(ids []string) {
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in no particular order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}
