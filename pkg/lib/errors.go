package lib

import "errors"

var (
	// ErrNoCommand is returned when a launch is requested without a command.
	ErrNoCommand = errors.New("command is required")

	// ErrChannelUnavailable is returned when a channel that an operation
	// needs does not exist. Run setup first.
	ErrChannelUnavailable = errors.New("channel is not available")

	// ErrChannelClosed is returned when a channel disappears in the middle
	// of a read.
	ErrChannelClosed = errors.New("channel closed during read")

	// ErrLaunchFailed is returned when the child process cannot be spawned.
	ErrLaunchFailed = errors.New("failed to launch command")
)
