// Package debounce coalesces bursts of change events into a single
// recomputation.
package debounce

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Paintersrp/notelist/internal/logging"
)

const (
	DefaultShortDelay = 50 * time.Millisecond
	DefaultLongDelay  = 500 * time.Millisecond
)

var ErrClosed = errors.New("debounce: scheduler closed")

// Event names the upstream change that asked for a recomputation.
type Event int

const (
	AuthChanged Event = iota
	NoteDeletedForever
	NoteRestored
	NotesLoaded
	TrashSelected
	TagSelected
	AllNotesSelected
	TagsLoaded
	NoteTrashed
	NotePinned
	SortChanged

	NoteUpdatedRemotely
	SearchInput
)

var eventNames = map[Event]string{
	AuthChanged:         "auth-changed",
	NoteDeletedForever:  "note-deleted-forever",
	NoteRestored:        "note-restored",
	NotesLoaded:         "notes-loaded",
	TrashSelected:       "trash-selected",
	TagSelected:         "tag-selected",
	AllNotesSelected:    "all-notes-selected",
	TagsLoaded:          "tags-loaded",
	NoteTrashed:         "note-trashed",
	NotePinned:          "note-pinned",
	SortChanged:         "sort-changed",
	NoteUpdatedRemotely: "note-updated-remotely",
	SearchInput:         "search-input",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Long reports whether the event waits for the long delay. Content edits and
// typing settle slower than structural changes.
func (e Event) Long() bool {
	return e == NoteUpdatedRemotely || e == SearchInput
}

type Option func(*Scheduler)

func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithDelays(short, long time.Duration) Option {
	return func(s *Scheduler) {
		if short > 0 {
			s.short = short
		}
		if long > 0 {
			s.long = long
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Scheduler) { s.log = l }
}

// Scheduler keeps at most one pending timer. Every Notify replaces it, and
// the delay is taken from the most recent event.
type Scheduler struct {
	mu       sync.Mutex
	fire     func()
	clock    Clock
	log      logrus.FieldLogger
	short    time.Duration
	long     time.Duration
	timer    Timer
	gen      uint64
	deadline time.Time
	closed   bool
}

// New returns a scheduler that calls fire once per settled burst. fire runs
// on the timer goroutine and should only hand off work.
func New(fire func(), opts ...Option) *Scheduler {
	s := &Scheduler{
		fire:  fire,
		clock: realClock{},
		log:   logging.Discard(),
		short: DefaultShortDelay,
		long:  DefaultLongDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the wait applied for ev.
func (s *Scheduler) Delay(ev Event) time.Duration {
	if ev.Long() {
		return s.long
	}
	return s.short
}

func (s *Scheduler) Notify(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	coalesced := false
	if s.timer != nil {
		s.timer.Stop()
		coalesced = true
	}

	s.gen++
	gen := s.gen
	delay := s.Delay(ev)
	s.deadline = s.clock.Now().Add(delay)
	s.timer = s.clock.AfterFunc(delay, func() { s.expire(gen) })

	s.log.WithFields(logrus.Fields{
		"event":     ev.String(),
		"delay":     delay,
		"gen":       gen,
		"coalesced": coalesced,
	}).Debug("recompute scheduled")
	return nil
}

// expire runs the callback unless a newer Notify superseded this timer after
// it had already started.
func (s *Scheduler) expire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		s.log.WithField("gen", gen).Debug("stale timer dropped")
		return
	}
	s.timer = nil
	s.deadline = time.Time{}
	s.mu.Unlock()

	s.fire()
}

func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Deadline is the zero time when nothing is pending.
func (s *Scheduler) Deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deadline
}

// Close stops the pending timer. Later calls to Notify fail with ErrClosed.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.deadline = time.Time{}
	return nil
}
