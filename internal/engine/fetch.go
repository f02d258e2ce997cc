package engine

import "github.com/Shubham12sharma/Assign-Alert/internal/store"

// FetchCommunities lists the community tree and auto-selects the main
// community when none is selected.
func (s *Service) FetchCommunities() *Call[[]store.Community] {
	s.store.SetLoading(store.KindCommunity, true)
	return newCall(s.lat.Fetch, func() ([]store.Community, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindCommunity, false)

		list := s.store.ListCommunities()
		if _, ok := s.store.CurrentCommunity(); !ok {
			for _, c := range list {
				if c.IsMain {
					s.store.SetCurrentCommunity(c.ID)
					break
				}
			}
		}
		s.store.SetError(store.KindCommunity, "")
		return list, nil
	})
}

// FetchEpics lists epics owned by the scope community, or all of them for
// store.ScopeAll.
func (s *Service) FetchEpics(scope string) *Call[[]store.Epic] {
	s.store.SetLoading(store.KindEpic, true)
	return newCall(s.lat.Fetch, func() ([]store.Epic, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindEpic, false)

		s.store.SetError(store.KindEpic, "")
		return s.store.ListEpics(scope), nil
	})
}

// FetchSprints lists sprints in scope and auto-selects the active sprint
// (falling back to the first) when none is selected.
func (s *Service) FetchSprints(scope string) *Call[[]store.Sprint] {
	s.store.SetLoading(store.KindSprint, true)
	return newCall(s.lat.Fetch, func() ([]store.Sprint, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindSprint, false)

		list := s.store.ListSprints(scope)
		if _, ok := s.store.CurrentSprint(); !ok && len(list) > 0 {
			current := list[0].ID
			for _, sp := range list {
				if sp.Status == string(SprintActive) {
					current = sp.ID
					break
				}
			}
			s.store.SetCurrentSprint(current)
		}
		s.store.SetError(store.KindSprint, "")
		return list, nil
	})
}

func (s *Service) FetchTasks(scope string) *Call[[]store.Task] {
	s.store.SetLoading(store.KindTask, true)
	return newCall(s.lat.Fetch, func() ([]store.Task, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		defer s.store.SetLoading(store.KindTask, false)

		s.store.SetError(store.KindTask, "")
		return s.store.ListTasks(scope), nil
	})
}
