package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Record identifies the managed child process across controller
// invocations. StartedAt is seconds since the Unix epoch with a fractional
// part, matching the on-disk JSON layout consumed by external tooling.
type Record struct {
	PID       int     `json:"pid"`
	Command   string  `json:"command"`
	StartedAt float64 `json:"started_at"`
}

// StartedTime converts the epoch-seconds timestamp to a time.Time.
func (r *Record) StartedTime() time.Time {
	sec := int64(r.StartedAt)
	nsec := int64((r.StartedAt - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// saveRecord overwrites the session record. The bytes go to a temp file in
// the same directory and are renamed into place, so a concurrent reader
// sees either the old record or the new one, never a torn write.
func (s *Session) saveRecord(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, RecordName+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.recordPath())
}

// loadRecord returns the persisted record, or nil when none exists.
func (s *Session) loadRecord() (*Record, error) {
	data, err := os.ReadFile(s.recordPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("corrupt session record %s: %w", s.recordPath(), err)
	}
	return &rec, nil
}

// deleteRecord removes the record; an already-absent record is a no-op.
func (s *Session) deleteRecord() error {
	if err := os.Remove(s.recordPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
