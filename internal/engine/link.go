package engine

import "github.com/Shubham12sharma/Assign-Alert/internal/store"

// LinkSprintToEpic adds or removes a sprint from an epic's linked set and
// synchronously recomputes the epic's derived aggregates before settling.
// Linking is idempotent; unlinking an absent sprint is a no-op. The sprint's
// back-reference is kept in sync with the epic's set.
func (s *Service) LinkSprintToEpic(epicID, sprintID string, link bool) *Call[store.Epic] {
	return newCall(s.lat.Link, func() (store.Epic, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.store.GetEpic(epicID); !ok {
			return store.Epic{}, NotFoundError{Kind: "epic", ID: epicID}
		}
		if _, ok := s.store.GetSprint(sprintID); !ok {
			return store.Epic{}, NotFoundError{Kind: "sprint", ID: sprintID}
		}

		s.store.MutateEpic(epicID, func(e *store.Epic) {
			if link {
				for _, id := range e.SprintIDs {
					if id == sprintID {
						return
					}
				}
				e.SprintIDs = append(e.SprintIDs, sprintID)
				return
			}
			out := e.SprintIDs[:0]
			for _, id := range e.SprintIDs {
				if id != sprintID {
					out = append(out, id)
				}
			}
			e.SprintIDs = out
		})
		s.store.MutateSprint(sprintID, func(sp *store.Sprint) {
			if link {
				sp.EpicID = epicID
			} else if sp.EpicID == epicID {
				sp.EpicID = ""
			}
		})

		s.recomputeEpic(epicID)
		e, _ := s.store.GetEpic(epicID)
		return e, nil
	})
}

// recomputeEpic refreshes one epic's derived fields from its current linked
// sprint set. Caller holds s.mu.
func (s *Service) recomputeEpic(epicID string) {
	e, ok := s.store.GetEpic(epicID)
	if !ok {
		return
	}
	var linked []store.Sprint
	for _, id := range e.SprintIDs {
		if sp, ok := s.store.GetSprint(id); ok {
			linked = append(linked, sp)
		}
	}
	s.store.MutateEpic(epicID, func(e *store.Epic) {
		RecomputeEpic(e, linked)
	})
}

// recomputeEpicsLinking refreshes every epic whose linked set contains the
// sprint. Caller holds s.mu.
func (s *Service) recomputeEpicsLinking(sprintID string) {
	for _, e := range s.store.ListEpics(store.ScopeAll) {
		for _, id := range e.SprintIDs {
			if id == sprintID {
				s.recomputeEpic(e.ID)
				break
			}
		}
	}
}
