package artist

// ListState combines the source artists, the query and the sort direction
// into the display list. Every setter recomputes the list.
type ListState struct {
	source    []Artist
	query     string
	ascending bool
	items     []Artist
}

// NewListState creates a state holder for the given sort direction.
func NewListState(ascending bool) ListState {
	s := ListState{ascending: ascending}
	s.recompute()
	return s
}

// SetArtists replaces the source collection.
func (s *ListState) SetArtists(artists []Artist) {
	s.source = artists
	s.recompute()
}

// SetQuery updates the filter query.
func (s *ListState) SetQuery(query string) {
	s.query = query
	s.recompute()
}

// SetAscending updates the sort direction.
func (s *ListState) SetAscending(ascending bool) {
	s.ascending = ascending
	s.recompute()
}

// Artists returns the source collection.
func (s ListState) Artists() []Artist { return s.source }

// Query returns the current query.
func (s ListState) Query() string { return s.query }

// Ascending reports the current sort direction.
func (s ListState) Ascending() bool { return s.ascending }

// Items returns the derived display list.
func (s ListState) Items() []Artist { return s.items }

// Len returns the size of the display list.
func (s ListState) Len() int { return len(s.items) }

// IsEmpty reports whether there is nothing to display.
func (s ListState) IsEmpty() bool { return len(s.items) == 0 }

func (s *ListState) recompute() {
	s.items = Display(s.source, s.query, s.ascending)
}
