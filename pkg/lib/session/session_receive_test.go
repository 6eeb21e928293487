package session

import (
	"testing"
	"time"

	"github.com/esxr/AgentShell/pkg/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiveWithoutChannels(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Receive(time.Second)
	require.ErrorIs(t, err, lib.ErrChannelUnavailable)
}

func TestReceiveTimeoutWhenIdle(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.EnsureChannels())

	begin := time.Now()
	out, err := s.Receive(1 * time.Second)
	elapsed := time.Since(begin)

	require.NoError(t, err)
	assert.Empty(t, out)
	// Bounded by the timeout plus at most one poll interval of slack.
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond)
	assert.Less(t, elapsed, 1*time.Second+3*pollInterval)
}

func TestReceiveRoundTrip(t *testing.T) {
	s, _ := startSession(t, "cat")

	require.NoError(t, s.Send("hello"))

	out, err := s.Receive(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestReceiveBurstThenQuiet(t *testing.T) {
	// The trailing sleep keeps the child (and with it the write side of
	// the output channel) open across both reads; once the last holder of
	// a FIFO exits, the kernel discards anything still buffered.
	s, _ := startSession(t, "sh", "-c", "echo A; sleep 2; echo B; sleep 30")

	// The first call sees the A burst and must not wait out the timeout
	// for B.
	begin := time.Now()
	out, err := s.Receive(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "A\n", string(out))
	assert.Less(t, time.Since(begin), 2*time.Second,
		"burst-then-quiet must return before the full timeout")

	// B is not lost; it stays buffered for the next call.
	time.Sleep(2500*time.Millisecond - time.Since(begin))
	out, err = s.Receive(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "B\n", string(out))
}

func TestReceiveSeesChildStderr(t *testing.T) {
	s, _ := startSession(t, "sh", "-c", "echo oops 1>&2; sleep 30")

	out, err := s.Receive(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "oops\n", string(out))
}

func TestReceiveInterleavedExchanges(t *testing.T) {
	// A child that evaluates each input line, like the calculator example.
	s, _ := startSession(t, "sh", "-c", `while read n; do echo $((n + n)); done`)

	for _, tc := range []struct{ in, want string }{
		{"1", "2\n"},
		{"21", "42\n"},
	} {
		require.NoError(t, s.Send(tc.in))
		out, err := s.Receive(3 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out))
	}
}
