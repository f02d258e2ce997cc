package store

import "sync"

// ScopeAll matches every record regardless of owning community.
const ScopeAll = "all"

// Kind identifies an entity collection for loading/error flags.
type Kind string

const (
	KindCommunity    Kind = "community"
	KindEpic         Kind = "epic"
	KindSprint       Kind = "sprint"
	KindTask         Kind = "task"
	KindNotification Kind = "notification"
)

// Store owns the normalized in-memory collections. All records live here and
// relations are by-id only; readers get copies, writers go through the
// Mutate* helpers. The zero Store is not usable; call New or Seed.
type Store struct {
	mu sync.RWMutex

	communities   []*Community
	epics         []*Epic
	sprints       []*Sprint
	tasks         []*Task
	notifications []*Notification

	currentCommunity string
	currentEpic      string
	currentSprint    string
	currentTask      string

	loading map[Kind]bool
	lastErr map[Kind]string

	unread int
}

func New() *Store {
	return &Store{
		loading: map[Kind]bool{},
		lastErr: map[Kind]string{},
	}
}

func (s *Store) SetLoading(k Kind, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[k] = v
}

func (s *Store) Loading(k Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[k]
}

func (s *Store) SetError(k Kind, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr[k] = msg
}

func (s *Store) Error(k Kind) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr[k]
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
