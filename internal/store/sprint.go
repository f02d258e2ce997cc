package store

func cloneSprint(sp *Sprint) Sprint {
	out := *sp
	if sp.WeeklySprints != nil {
		out.WeeklySprints = make([]WeeklySprint, len(sp.WeeklySprints))
		copy(out.WeeklySprints, sp.WeeklySprints)
	}
	return out
}

func (s *Store) ListSprints(scope string) []Sprint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Sprint
	for _, sp := range s.sprints {
		if scope == ScopeAll || sp.CommunityID == scope {
			out = append(out, cloneSprint(sp))
		}
	}
	return out
}

func (s *Store) GetSprint(id string) (Sprint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.sprints {
		if sp.ID == id {
			return cloneSprint(sp), true
		}
	}
	return Sprint{}, false
}

func (s *Store) InsertSprint(sp Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprints = append([]*Sprint{&sp}, s.sprints...)
}

func (s *Store) ReplaceSprints(list []Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprints = s.sprints[:0]
	for i := range list {
		sp := list[i]
		s.sprints = append(s.sprints, &sp)
	}
}

func (s *Store) MutateSprint(id string, fn func(*Sprint)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.sprints {
		if sp.ID == id {
			fn(sp)
			return true
		}
	}
	return false
}

func (s *Store) SetCurrentSprint(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSprint = id
}

func (s *Store) CurrentSprint() (Sprint, bool) {
	s.mu.RLock()
	id := s.currentSprint
	s.mu.RUnlock()
	if id == "" {
		return Sprint{}, false
	}
	return s.GetSprint(id)
}
