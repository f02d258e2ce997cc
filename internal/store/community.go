package store

func cloneCommunity(c *Community) Community {
	out := *c
	out.ChildIDs = cloneStrings(c.ChildIDs)
	return out
}

// ListCommunities returns every community in insertion order. Communities are
// not scoped; the tree is walked by id through ChildIDs.
func (s *Store) ListCommunities() []Community {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Community, 0, len(s.communities))
	for _, c := range s.communities {
		out = append(out, cloneCommunity(c))
	}
	return out
}

func (s *Store) GetCommunity(id string) (Community, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.communities {
		if c.ID == id {
			return cloneCommunity(c), true
		}
	}
	return Community{}, false
}

// ReplaceCommunities swaps the whole collection (fetch semantics).
func (s *Store) ReplaceCommunities(list []Community) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.communities = s.communities[:0]
	for i := range list {
		c := list[i]
		s.communities = append(s.communities, &c)
	}
}

func (s *Store) SetCurrentCommunity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentCommunity = id
}

func (s *Store) CurrentCommunity() (Community, bool) {
	s.mu.RLock()
	id := s.currentCommunity
	s.mu.RUnlock()
	if id == "" {
		return Community{}, false
	}
	return s.GetCommunity(id)
}

// ChildrenOf resolves a community's child list to records, skipping ids that
// are not present in the collection.
func (s *Store) ChildrenOf(id string) []Community {
	c, ok := s.GetCommunity(id)
	if !ok {
		return nil
	}
	var out []Community
	for _, childID := range c.ChildIDs {
		if child, ok := s.GetCommunity(childID); ok {
			out = append(out, child)
		}
	}
	return out
}
