package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// Latency is the simulated round-trip per command family. The values mirror
// the delays the UI was written against.
type Latency struct {
	Fetch   time.Duration
	Create  time.Duration
	Update  time.Duration
	Link    time.Duration
	Comment time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		Fetch:   600 * time.Millisecond,
		Create:  400 * time.Millisecond,
		Update:  400 * time.Millisecond,
		Link:    300 * time.Millisecond,
		Comment: 300 * time.Millisecond,
	}
}

// NoLatency settles every call immediately; used by tests and the HTTP layer
// when configured with latency scale 0.
func NoLatency() Latency { return Latency{} }

type Options struct {
	User    string // acting user recorded on comments/activity; defaults to "John Doe"
	Latency Latency
	Now     func() time.Time
	NewID   func() string
}

// Service is the command layer. It owns no state of its own beyond identity
// and clocks; all records live in the injected store. A single mutex
// serializes command effects so each settle is atomic with respect to every
// other command, which preserves issuance order for awaited commands.
type Service struct {
	store *store.Store

	mu    sync.Mutex
	user  string
	lat   Latency
	now   func() time.Time
	newID func() string
}

func NewService(st *store.Store, opts Options) *Service {
	s := &Service{
		store: st,
		user:  opts.User,
		lat:   opts.Latency,
		now:   opts.Now,
		newID: opts.NewID,
	}
	if s.user == "" {
		s.user = "John Doe"
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

func (s *Service) Store() *store.Store { return s.store }

// User returns the acting user name recorded on comments and activity.
func (s *Service) User() string { return s.user }
