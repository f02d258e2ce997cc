package store

// PushNotification inserts at the head and bumps the unread counter when the
// record arrives unread (they all do; read-state only changes via MarkRead).
func (s *Store) PushNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]*Notification{&n}, s.notifications...)
	if !n.Read {
		s.unread++
	}
}

func (s *Store) ListNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, *n)
	}
	return out
}

// MarkRead flips a single notification to read. Marking an already-read or
// unknown id is a no-op and reports false.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == id {
			if n.Read {
				return false
			}
			n.Read = true
			s.unread--
			return true
		}
	}
	return false
}

func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		n.Read = true
	}
	s.unread = 0
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}
