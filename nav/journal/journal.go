package journal

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/pkg/errors"
)

// Event kinds recorded by the navigation session.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindToggle       = "toggle"
	KindFitAll       = "fit_all"
)

// Event is a single journal record: a session lifecycle marker or a mode
// change, stamped with the camera pose at the time it happened.
type Event struct {
	Time      time.Time  `json:"time"`
	Kind      string     `json:"kind"`
	Detail    string     `json:"detail,omitempty"`
	Position  [3]float64 `json:"position"`
	Azimuth   float64    `json:"azimuth"`
	Elevation float64    `json:"elevation"`
	WalkSpeed float64    `json:"walk_speed"`
}

// Journal records navigation session events. Implementations must not block
// the caller: events arrive on the host's single event thread.
type Journal interface {
	// Record appends one event to the journal. A zero Time is stamped with
	// the current time.
	//
	// Parameters:
	//   - ev: the event to record
	Record(ev Event)

	// Close releases the journal's resources. Events recorded after Close
	// are dropped.
	//
	// Returns:
	//   - error: error if the underlying file could not be closed
	Close() error
}

// fileJournal appends JSON lines to a file. Encoding and the file write run
// on a single-worker pool so the event thread never waits on disk; one
// worker keeps the append order identical to the record order.
type fileJournal struct {
	mu     sync.Mutex
	file   *os.File
	pool   worker.DynamicWorkerPool
	nextID int
	log    *slog.Logger
}

var _ Journal = &fileJournal{}

// NewFileJournal opens (or creates) an append-only JSONL journal at path.
//
// Parameters:
//   - path: the journal file path
//
// Returns:
//   - Journal: the file-backed journal
//   - error: error if the file could not be opened
func NewFileJournal(path string) (Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open journal file")
	}
	return &fileJournal{
		file: f,
		pool: worker.NewDynamicWorkerPool(1, 256, 1*time.Second),
		log:  slog.Default(),
	}, nil
}

func (j *fileJournal) Record(ev Event) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	j.mu.Lock()
	id := j.nextID
	j.nextID++
	j.mu.Unlock()

	j.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			data, err := json.Marshal(ev)
			if err != nil {
				j.log.Warn("failed to encode journal event", "kind", ev.Kind, "error", err)
				return nil, errors.Wrap(err, "failed to encode journal event")
			}

			j.mu.Lock()
			defer j.mu.Unlock()
			if j.file == nil {
				return nil, nil
			}
			if _, err := j.file.Write(append(data, '\n')); err != nil {
				j.log.Warn("failed to append journal event", "kind", ev.Kind, "error", err)
				return nil, errors.Wrap(err, "failed to append journal event")
			}
			return nil, nil
		},
	})
}

func (j *fileJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	f := j.file
	j.file = nil
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close journal file")
	}
	return nil
}

// noopJournal drops every event. Used when journaling is disabled.
type noopJournal struct{}

func (noopJournal) Record(Event) {}
func (noopJournal) Close() error { return nil }

// Noop returns a journal that discards all events.
//
// Returns:
//   - Journal: the no-op journal
func Noop() Journal {
	return noopJournal{}
}
