// Package session implements a durable control channel to an interactive
// child process. A session lives in one directory and consists of two
// named pipes — input_pipe feeding the child's stdin and output_pipe
// carrying its stdout/stderr — plus a JSON record identifying the child,
// so independent controller invocations can keep addressing the same
// process.
package session

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/esxr/AgentShell/pkg/lib"
)

var logger = log.New(io.Discard, "session: ", log.LstdFlags)

// Fixed names inside the session directory. Children and controllers find
// each other purely through these paths.
const (
	InputPipeName  = "input_pipe"
	OutputPipeName = "output_pipe"
	RecordName     = ".agentshell_session.json"
)

// Session addresses one interactive session. The zero value is not usable;
// construct with New or NewIsolated. A Session holds no open resources and
// no mutable state, so it is cheap to rebuild on every controller
// invocation.
type Session struct {
	dir string
}

// New returns a handle over dir using the fixed channel and record names.
// dir must already exist.
func New(dir string) *Session {
	return &Session{dir: dir}
}

// NewIsolated creates a uniquely named directory under base and returns a
// handle over it. Sessions in distinct directories are fully independent.
func NewIsolated(base string) (*Session, error) {
	dir := filepath.Join(base, "agentshell-"+lib.NewID())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Session{dir: dir}, nil
}

// Dir returns the session directory.
func (s *Session) Dir() string { return s.dir }

// InputPath returns the path of the input channel.
func (s *Session) InputPath() string { return filepath.Join(s.dir, InputPipeName) }

// OutputPath returns the path of the output channel.
func (s *Session) OutputPath() string { return filepath.Join(s.dir, OutputPipeName) }

func (s *Session) recordPath() string { return filepath.Join(s.dir, RecordName) }
