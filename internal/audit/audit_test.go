package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) Log {
	t.Helper()
	log, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	log := openTestLog(t)

	e := &Entry{Instruction: "list files", Command: "ls -la"}
	require.NoError(t, log.Record(context.Background(), e))

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.RunAt.IsZero())
}

func TestRecent_ReturnsNewestFirst(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, cmd := range []string{"ls", "pwd", "whoami"} {
		require.NoError(t, log.Record(ctx, &Entry{
			RunAt:       base.Add(time.Duration(i) * time.Minute),
			Instruction: "step",
			Command:     cmd,
			ExitCode:    i,
			Confirmed:   i%2 == 0,
		}))
	}

	entries, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "whoami", entries[0].Command)
	assert.Equal(t, "ls", entries[2].Command)
	assert.Equal(t, 2, entries[0].ExitCode)
	assert.True(t, entries[0].Confirmed)
	assert.False(t, entries[1].Confirmed)
}

func TestRecent_HonorsLimit(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Record(ctx, &Entry{Instruction: "x", Command: "ls"}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecent_EmptyLog(t *testing.T) {
	log := openTestLog(t)
	entries, err := log.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "audit.db")
	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.Record(context.Background(), &Entry{Instruction: "x", Command: "ls"}))

	entries, err := log.Recent(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
