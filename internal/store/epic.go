package store

func cloneEpic(e *Epic) Epic {
	out := *e
	out.SprintIDs = cloneStrings(e.SprintIDs)
	return out
}

// ListEpics filters by owning community; ScopeAll returns everything.
// Order is insertion order (newest first, since creates insert at the head).
func (s *Store) ListEpics(scope string) []Epic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Epic
	for _, e := range s.epics {
		if scope == ScopeAll || e.CommunityID == scope {
			out = append(out, cloneEpic(e))
		}
	}
	return out
}

func (s *Store) GetEpic(id string) (Epic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.epics {
		if e.ID == id {
			return cloneEpic(e), true
		}
	}
	return Epic{}, false
}

// InsertEpic puts the record at the head of the collection.
func (s *Store) InsertEpic(e Epic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epics = append([]*Epic{&e}, s.epics...)
}

func (s *Store) ReplaceEpics(list []Epic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epics = s.epics[:0]
	for i := range list {
		e := list[i]
		s.epics = append(s.epics, &e)
	}
}

// MutateEpic applies fn to the stored record. Returns false when the id is
// absent, in which case fn never ran.
func (s *Store) MutateEpic(id string, fn func(*Epic)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.epics {
		if e.ID == id {
			fn(e)
			return true
		}
	}
	return false
}

func (s *Store) SetCurrentEpic(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentEpic = id
}

func (s *Store) CurrentEpic() (Epic, bool) {
	s.mu.RLock()
	id := s.currentEpic
	s.mu.RUnlock()
	if id == "" {
		return Epic{}, false
	}
	return s.GetEpic(id)
}
