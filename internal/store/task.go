package store

func cloneTask(t *Task) Task {
	out := *t
	out.Tags = cloneStrings(t.Tags)
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.Comments != nil {
		out.Comments = make([]Comment, len(t.Comments))
		copy(out.Comments, t.Comments)
	}
	if t.ActivityLog != nil {
		out.ActivityLog = make([]Activity, len(t.ActivityLog))
		copy(out.ActivityLog, t.ActivityLog)
	}
	return out
}

func (s *Store) ListTasks(scope string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Task
	for _, t := range s.tasks {
		if scope == ScopeAll || t.CommunityID == scope {
			out = append(out, cloneTask(t))
		}
	}
	return out
}

func (s *Store) GetTask(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return Task{}, false
}

func (s *Store) InsertTask(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]*Task{&t}, s.tasks...)
}

func (s *Store) ReplaceTasks(list []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = s.tasks[:0]
	for i := range list {
		t := list[i]
		s.tasks = append(s.tasks, &t)
	}
}

func (s *Store) MutateTask(id string, fn func(*Task)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			fn(t)
			return true
		}
	}
	return false
}

func (s *Store) SetCurrentTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTask = id
}

func (s *Store) CurrentTask() (Task, bool) {
	s.mu.RLock()
	id := s.currentTask
	s.mu.RUnlock()
	if id == "" {
		return Task{}, false
	}
	return s.GetTask(id)
}
