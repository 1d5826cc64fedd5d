package sendjob

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds at most one send job per owner. It is the single shared
// mutable resource between the dispatching goroutine (one writer per
// job) and any number of observers; all access goes through the mutex
// and readers only ever receive deep copies.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*job
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*job)}
}

// Create installs a fresh job in sending state for owner and returns a
// handle for the goroutine that will drive it. Fails with
// ErrAlreadySending when the owner's current job is still in flight;
// a finished (or absent) job is silently replaced.
func (s *Store) Create(owner string, total int) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if j, ok := s.jobs[owner]; ok && j.status == StatusSending {
		return nil, ErrAlreadySending
	}

	j := &job{
		id:     uuid.NewString(),
		total:  total,
		status: StatusSending,
	}
	s.jobs[owner] = j
	return &Handle{store: s, owner: owner, id: j.id}, nil
}

// Snapshot returns a copy of the owner's current job state. Owners
// without a job get a zero-progress idle snapshot, which lets status
// surfaces treat "never sent" and "job present" uniformly.
func (s *Store) Snapshot(owner string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[owner]
	if !ok {
		return Snapshot{Status: StatusIdle, Errors: []SendError{}}
	}
	return j.snapshot()
}

// Clear discards the owner's job, whatever its state.
func (s *Store) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, owner)
}

// Handle is the write side of one job instance, held only by the
// goroutine dispatching it. Every mutation checks that the store still
// holds this exact job: after Clear, or after a terminal transition, the
// handle degrades to a no-op so a stale goroutine can never corrupt a
// newer job under the same owner.
type Handle struct {
	store *Store
	owner string
	id    string
}

// mutate applies fn to the live job if it is still this handle's job
// and not yet terminal.
func (h *Handle) mutate(fn func(*job)) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()

	j, ok := h.store.jobs[h.owner]
	if !ok || j.id != h.id || j.status.Terminal() {
		return
	}
	fn(j)
}

// SetCurrent publishes the address currently being processed.
func (h *Handle) SetCurrent(address string) {
	h.mutate(func(j *job) { j.current = address })
}

// RecordSent counts one successful delivery.
func (h *Handle) RecordSent() {
	h.mutate(func(j *job) { j.sent++ })
}

// RecordFailed counts one failed delivery and appends its error.
// A single failed recipient never terminates the job.
func (h *Handle) RecordFailed(address, message string) {
	h.mutate(func(j *job) {
		j.failed++
		j.errs = append(j.errs, SendError{Address: address, Message: message})
	})
}

// Complete marks the job finished and clears the current target.
func (h *Handle) Complete() {
	h.mutate(func(j *job) {
		j.status = StatusCompleted
		j.current = ""
	})
}

// Fail aborts the job with a top-level reason. Used only for transport
// establishment failures; per-recipient faults go through RecordFailed.
func (h *Handle) Fail(reason string) {
	h.mutate(func(j *job) {
		j.status = StatusError
		j.current = ""
		j.reason = reason
	})
}
