package progress_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sendloop/sendloop/internal/progress"
	"github.com/sendloop/sendloop/internal/sendjob"
)

// decodeEvents parses SSE frames into snapshots.
func decodeEvents(t *testing.T, body string) []sendjob.Snapshot {
	t.Helper()
	var snaps []sendjob.Snapshot
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := sc.Text()
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			var snap sendjob.Snapshot
			require.NoError(t, json.Unmarshal([]byte(data), &snap))
			snaps = append(snaps, snap)
		}
	}
	return snaps
}

func TestStreamer_TerminalJobPushedOnceThenCloses(t *testing.T) {
	t.Parallel()

	store := sendjob.NewStore()
	h, err := store.Create("owner", 1)
	require.NoError(t, err)
	h.RecordSent()
	h.Complete()

	s := progress.NewStreamer(store, progress.WithInterval(time.Millisecond))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/send/progress", nil)

	require.NoError(t, s.Stream(rec, req, "owner"))

	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	snaps := decodeEvents(t, rec.Body.String())
	require.Len(t, snaps, 1)
	require.Equal(t, sendjob.StatusCompleted, snaps[0].Status)
	require.Equal(t, 1, snaps[0].Sent)
}

func TestStreamer_StreamsUntilCompletion(t *testing.T) {
	t.Parallel()

	store := sendjob.NewStore()
	h, err := store.Create("owner", 2)
	require.NoError(t, err)

	s := progress.NewStreamer(store, progress.WithInterval(2*time.Millisecond))

	go func() {
		time.Sleep(5 * time.Millisecond)
		h.RecordSent()
		time.Sleep(5 * time.Millisecond)
		h.RecordFailed("b@x.com", "bounce")
		h.Complete()
	}()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/send/progress", nil)

	require.NoError(t, s.Stream(rec, req, "owner"))

	snaps := decodeEvents(t, rec.Body.String())
	require.NotEmpty(t, snaps)

	// Counters never regress and status never reverses across pushes.
	prev := snaps[0]
	for _, snap := range snaps[1:] {
		require.GreaterOrEqual(t, snap.Sent, prev.Sent)
		require.GreaterOrEqual(t, snap.Failed, prev.Failed)
		if prev.Status.Terminal() {
			t.Fatal("snapshot pushed after terminal state")
		}
		prev = snap
	}

	last := snaps[len(snaps)-1]
	require.Equal(t, sendjob.StatusCompleted, last.Status)
	require.Equal(t, 1, last.Sent)
	require.Equal(t, 1, last.Failed)
}

func TestStreamer_ObserverDisconnectEndsStream(t *testing.T) {
	t.Parallel()

	store := sendjob.NewStore()
	_, err := store.Create("owner", 1)
	require.NoError(t, err)

	s := progress.NewStreamer(store, progress.WithInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/send/progress", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() { done <- s.Stream(rec, req, "owner") }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not end on disconnect")
	}
}

func TestStreamer_IdleOwnerStreamsIdleSnapshots(t *testing.T) {
	t.Parallel()

	store := sendjob.NewStore()
	s := progress.NewStreamer(store, progress.WithInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/send/progress", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	require.NoError(t, s.Stream(rec, req, "owner"))

	snaps := decodeEvents(t, rec.Body.String())
	require.NotEmpty(t, snaps)
	for _, snap := range snaps {
		require.Equal(t, sendjob.StatusIdle, snap.Status)
	}
}

func TestStreamer_RejectsNonFlushableWriter(t *testing.T) {
	t.Parallel()

	store := sendjob.NewStore()
	s := progress.NewStreamer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/send/progress", nil)
	err := s.Stream(nopWriter{}, req, "owner")
	require.ErrorIs(t, err, progress.ErrStreamingUnsupported)
}

// nopWriter implements http.ResponseWriter without http.Flusher.
type nopWriter struct{}

func (nopWriter) Header() http.Header       { return http.Header{} }
func (nopWriter) WriteHeader(int)           {}
func (nopWriter) Write(p []byte) (int, error) { return io.Discard.Write(p) }
