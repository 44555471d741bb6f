package session

import (
	"sync"
	"time"

	"sirs/internal/score"
	"sirs/internal/utils"
)

// Estimate is one computed score kept in a session history.
type Estimate struct {
	Time    time.Time      `json:"time"`
	Profile score.Document `json:"profile"`
	Result  score.Result   `json:"result"`
}

// NotFoundError is returned when a session has no history.
type NotFoundError struct {
	id string
}

func (e *NotFoundError) Error() string {
	return "session not found: " + e.id
}

// NewNotFoundError creates a NotFoundError for the session id.
func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{id: id}
}

// Repository is a thread-safe in-memory store of recent estimates per
// session. Every session keeps a ring buffer of fixed length; sessions not
// updated for longer than ttl are removed by Serve.
//
//	repo := session.NewRepository(10, 30*time.Minute)
//	go repo.Serve(time.Minute)
//	defer repo.Stop()
type Repository struct {
	length int
	ttl    time.Duration

	sessions map[string]*utils.RingBuffer[Estimate]
	updates  map[string]time.Time
	mu       sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// Append stores e in the history of session id, creating it if needed, and
// returns the estimate that was newest before it. Concurrent appends to one
// session each see a distinct previous estimate.
func (r *Repository) Append(id string, e Estimate) (Estimate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buffer, found := r.sessions[id]
	if !found {
		buffer = utils.NewRingBuffer[Estimate](r.length)
		r.sessions[id] = buffer
	}
	r.updates[id] = r.now()

	previous, ok := buffer.Last()
	buffer.Push(e)

	return previous, ok
}

// Get returns a copy of the history of session id, oldest first.
func (r *Repository) Get(id string) ([]Estimate, error) {
	r.mu.RLock()
	buffer, found := r.sessions[id]
	r.mu.RUnlock()
	if !found {
		return nil, NewNotFoundError(id)
	}
	return buffer.ToSlice(), nil
}

// Last returns the newest estimate of session id.
func (r *Repository) Last(id string) (Estimate, bool) {
	r.mu.RLock()
	buffer, found := r.sessions[id]
	r.mu.RUnlock()
	if !found {
		return Estimate{}, false
	}
	return buffer.Last()
}

// Serve removes outdated sessions every interval until Stop is called. It
// blocks and is meant to run in its own goroutine. A non-positive ttl
// disables eviction.
func (r *Repository) Serve(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.evict()
		}
	}
}

// Stop ends Serve. It is safe to call more than once and before Serve.
func (r *Repository) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Repository) evict() int {
	if r.ttl <= 0 {
		return 0
	}

	var outdated []string

	r.mu.RLock()
	now := r.now()
	for id, ts := range r.updates {
		if now.Sub(ts) > r.ttl {
			outdated = append(outdated, id)
		}
	}
	r.mu.RUnlock()

	if len(outdated) == 0 {
		return 0
	}

	r.mu.Lock()
	removed := 0
	for _, id := range outdated {
		// the session may have been refreshed since it was collected
		ts, ok := r.updates[id]
		if !ok || now.Sub(ts) <= r.ttl {
			continue
		}
		delete(r.sessions, id)
		delete(r.updates, id)
		removed++
	}
	r.mu.Unlock()

	return removed
}

// NewRepository creates a repository keeping up to length estimates per
// session for ttl after the last update.
func NewRepository(length int, ttl time.Duration) *Repository {
	return &Repository{
		length:   length,
		ttl:      ttl,
		sessions: make(map[string]*utils.RingBuffer[Estimate]),
		updates:  make(map[string]time.Time),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
}
