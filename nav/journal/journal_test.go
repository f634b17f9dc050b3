package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileJournalAppendsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	j, err := NewFileJournal(path)
	require.NoError(t, err)
	defer j.Close()

	j.Record(Event{Kind: KindSessionStart, Position: [3]float64{1, 2, 3}, WalkSpeed: 100})
	j.Record(Event{Kind: KindToggle, Detail: "mouse_frozen"})
	j.Record(Event{Kind: KindSessionEnd})

	// Writes happen off the caller's goroutine; wait for the pool to drain.
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		return strings.Count(strings.TrimSpace(string(data)), "\n") == 2
	}, 2*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var first Event
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, KindSessionStart, first.Kind)
	assert.Equal(t, [3]float64{1, 2, 3}, first.Position)
	assert.Equal(t, 100.0, first.WalkSpeed)
	assert.False(t, first.Time.IsZero(), "zero event time should be stamped")

	var second Event
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "mouse_frozen", second.Detail)
}

func TestFileJournalCloseDropsLaterEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	j, err := NewFileJournal(path)
	require.NoError(t, err)

	require.NoError(t, j.Close())
	require.NoError(t, j.Close(), "close must be idempotent")

	j.Record(Event{Kind: KindFitAll})
	time.Sleep(50 * time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNoopJournal(t *testing.T) {
	j := Noop()
	j.Record(Event{Kind: KindSessionStart})
	assert.NoError(t, j.Close())
}
