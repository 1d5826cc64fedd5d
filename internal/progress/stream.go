// Package progress pushes live send-job snapshots to observers over
// server-sent events.
//
// Every push is a complete snapshot, never a delta: the protocol stays
// idempotent, a dropped or repeated event costs nothing, and an
// observer that reconnects mid-job resumes with the next tick. The
// stream's cadence is independent of the dispatch pace, so observers
// may see the same snapshot twice or skip an intermediate one; neither
// is an error.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sendloop/sendloop/internal/sendjob"
)

// defaultInterval is the push cadence.
const defaultInterval = 500 * time.Millisecond

// ErrStreamingUnsupported indicates the response writer cannot flush.
var ErrStreamingUnsupported = errors.New("progress: streaming unsupported")

// Streamer serves snapshot streams for job owners. Observers are
// read-only and independent: any number may watch the same owner.
type Streamer struct {
	store    *sendjob.Store
	interval time.Duration
	log      *slog.Logger
}

// Option configures the Streamer.
type Option func(*Streamer)

// WithInterval sets the push cadence.
func WithInterval(d time.Duration) Option {
	return func(s *Streamer) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the streamer's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Streamer) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStreamer creates a Streamer reading from store.
func NewStreamer(store *sendjob.Store, opts ...Option) *Streamer {
	s := &Streamer{
		store:    store,
		interval: defaultInterval,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stream writes an SSE snapshot stream for owner until the job reaches
// a terminal state or the observer disconnects. The terminal snapshot
// is pushed exactly once, then the stream closes.
func (s *Streamer) Stream(w http.ResponseWriter, r *http.Request, owner string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return ErrStreamingUnsupported
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// First push happens immediately so a reconnecting observer does not
	// wait a full tick for its initial state.
	if done, err := s.push(w, flusher, owner); done || err != nil {
		return err
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return nil
		case <-ticker.C:
			if done, err := s.push(w, flusher, owner); done || err != nil {
				return err
			}
		}
	}
}

// push writes one full snapshot event. Returns done=true after a
// terminal snapshot has been delivered.
func (s *Streamer) push(w http.ResponseWriter, flusher http.Flusher, owner string) (bool, error) {
	snap := s.store.Snapshot(owner)
	data, err := json.Marshal(snap)
	if err != nil {
		return false, fmt.Errorf("progress: marshal snapshot: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return false, err
	}
	flusher.Flush()
	return snap.Terminal(), nil
}
