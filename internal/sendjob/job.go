package sendjob

// Status is the lifecycle state of a send job. Transitions only move
// forward: idle -> sending -> completed | error.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSending   Status = "sending"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Terminal reports whether the status allows no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// SendError records one failed delivery. Appended in dispatch order and
// never removed during a run.
type SendError struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

// Snapshot is a complete, immutable copy of a job's state at one
// instant, safe to serialize and hand to observers without locking.
type Snapshot struct {
	Total         int         `json:"total"`
	Sent          int         `json:"sent"`
	Failed        int         `json:"failed"`
	Status        Status      `json:"status"`
	CurrentTarget string      `json:"current_target"`
	Errors        []SendError `json:"errors"`
	Reason        string      `json:"reason,omitempty"` // top-level fault for StatusError
}

// Terminal reports whether this snapshot shows a finished job.
func (s Snapshot) Terminal() bool {
	return s.Status.Terminal()
}

// job is the store-internal mutable state behind snapshots.
type job struct {
	id      string
	total   int
	sent    int
	failed  int
	status  Status
	current string
	errs    []SendError
	reason  string
}

func (j *job) snapshot() Snapshot {
	errs := make([]SendError, len(j.errs))
	copy(errs, j.errs)
	return Snapshot{
		Total:         j.total,
		Sent:          j.sent,
		Failed:        j.failed,
		Status:        j.status,
		CurrentTarget: j.current,
		Errors:        errs,
		Reason:        j.reason,
	}
}
