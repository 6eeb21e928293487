package session

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	s := newTestSession(t)
	want := Record{PID: 4321, Command: "python3 -i", StartedAt: 1700000000.25}
	require.NoError(t, s.saveRecord(want))

	got, err := s.loadRecord()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestRecordStartedTime(t *testing.T) {
	rec := Record{StartedAt: 1700000000.5}
	want := time.Unix(1700000000, 500000000)
	assert.WithinDuration(t, want, rec.StartedTime(), time.Millisecond)
}

func TestLoadRecordAbsent(t *testing.T) {
	s := newTestSession(t)
	rec, err := s.loadRecord()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLoadRecordCorrupt(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, os.WriteFile(s.recordPath(), []byte("{not json"), 0o600))

	_, err := s.loadRecord()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt session record")
}

func TestSaveRecordOverwrites(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.saveRecord(Record{PID: 1, Command: "cat"}))
	require.NoError(t, s.saveRecord(Record{PID: 2, Command: "sh"}))

	got, err := s.loadRecord()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.PID)
	assert.Equal(t, "sh", got.Command)

	// Replacement-by-rename must not litter the directory with temp files.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteRecordIdempotent(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.saveRecord(Record{PID: 1, Command: "cat"}))
	require.NoError(t, s.deleteRecord())
	require.NoError(t, s.deleteRecord())

	rec, err := s.loadRecord()
	require.NoError(t, err)
	assert.Nil(t, rec)
}
