package state

import (
	"sync"
	"time"

	"github.com/five82/wodview/internal/schedule"
)

// Config is the view configuration shared by every component.
type Config struct {
	CurrentWeek          int
	CurrentYear          int
	AvailableWeeks       []schedule.WeekRef
	DarkMode             bool
	NotificationsEnabled bool
}

// DefaultConfig returns the startup configuration.
func DefaultConfig() Config {
	return Config{
		CurrentWeek:          52,
		CurrentYear:          2025,
		DarkMode:             true,
		NotificationsEnabled: true,
	}
}

// Key returns the configured week key.
func (c Config) Key() schedule.WeekKey {
	return schedule.WeekKey{Week: c.CurrentWeek, Year: c.CurrentYear}
}

// LoadStatus describes the lifecycle of the displayed week.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadPending
	LoadReady
	LoadFailed
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Config    Config
	Document  *schedule.Document
	Requested schedule.WeekKey
	Status    LoadStatus
	LoadError error
	LoadedAt  time.Time
	LoadToken uint64 // token of the load that produced Document or LoadError
	Version   uint64
}

// Store owns Config and the displayed document. All access goes through its
// methods; subscribers get a coalesced signal after every change.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	latest   uint64 // token of the most recent BeginLoad
	subs     map[int]chan struct{}
	nextSub  int
}

// NewStore creates a store holding cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.snapshot.Config = cloneConfig(cfg)
	return s
}

// Snapshot returns a copy of the current snapshot. The document is shared;
// documents are never mutated after a load completes.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Config = cloneConfig(s.snapshot.Config)
	return snap
}

// Config returns a copy of the configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneConfig(s.snapshot.Config)
}

// Update applies fn to a copy of the configuration and commits the result.
// Weeks outside 1..52 are rejected by keeping the previous value.
func (s *Store) Update(fn func(*Config)) {
	s.mu.Lock()
	next := cloneConfig(s.snapshot.Config)
	fn(&next)
	if !next.Key().Valid() {
		next.CurrentWeek = s.snapshot.Config.CurrentWeek
		next.CurrentYear = s.snapshot.Config.CurrentYear
	}
	s.snapshot.Config = next
	s.snapshot.Version++
	s.mu.Unlock()
	s.publish()
}

// SetWeek commits a new current week.
func (s *Store) SetWeek(key schedule.WeekKey) {
	s.Update(func(c *Config) {
		c.CurrentWeek = key.Week
		c.CurrentYear = key.Year
	})
}

// SetAvailableWeeks replaces the known week list.
func (s *Store) SetAvailableWeeks(weeks []schedule.WeekRef) {
	s.Update(func(c *Config) {
		c.AvailableWeeks = cloneWeeks(weeks)
	})
}

// BeginLoad records a new week request and returns its token. Any result
// carrying an older token is discarded by CompleteLoad.
func (s *Store) BeginLoad(key schedule.WeekKey) uint64 {
	s.mu.Lock()
	s.latest++
	token := s.latest
	s.snapshot.Requested = key
	s.snapshot.Status = LoadPending
	s.snapshot.Version++
	s.mu.Unlock()
	s.publish()
	return token
}

// CompleteLoad applies a finished load when token is still the latest. It
// reports whether the result was applied. On error the previous document is
// dropped so the UI shows the error panel for the requested week.
func (s *Store) CompleteLoad(token uint64, doc *schedule.Document, err error) bool {
	s.mu.Lock()
	if token != s.latest {
		s.mu.Unlock()
		return false
	}
	if err != nil {
		s.snapshot.Document = nil
		s.snapshot.Status = LoadFailed
		s.snapshot.LoadError = err
	} else {
		s.snapshot.Document = doc
		s.snapshot.Status = LoadReady
		s.snapshot.LoadError = nil
	}
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.LoadToken = token
	s.snapshot.Version++
	s.mu.Unlock()
	s.publish()
	return true
}

// Subscribe returns a channel signalled after every change and a function
// that cancels the subscription. Signals coalesce: a slow reader sees one
// pending signal, never a backlog.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]chan struct{})
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) publish() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func cloneConfig(c Config) Config {
	c.AvailableWeeks = cloneWeeks(c.AvailableWeeks)
	return c
}

func cloneWeeks(weeks []schedule.WeekRef) []schedule.WeekRef {
	if len(weeks) == 0 {
		return nil
	}
	dup := make([]schedule.WeekRef, len(weeks))
	copy(dup, weeks)
	return dup
}
