package session

import (
	"github.com/esxr/AgentShell/pkg/lib"
)

// Status reports the health of the session. pid selects the process to
// probe; pass 0 to fall back to the session record, and when no record
// exists either, the process check is skipped rather than failed.
//
// The session is healthy iff both channels are present and either no
// process is known or the known process is alive. Status never mutates
// anything.
func (s *Session) Status(pid int) (*lib.StatusReport, error) {
	report := &lib.StatusReport{
		InputChannel:  channelPresent(s.InputPath()),
		OutputChannel: channelPresent(s.OutputPath()),
		Overall:       lib.Unhealthy,
	}

	if pid == 0 {
		rec, err := s.loadRecord()
		if err != nil {
			return nil, err
		}
		if rec != nil {
			pid = rec.PID
			report.Command = rec.Command
		}
	}

	if pid != 0 {
		report.PID = pid
		report.Process = processAlive(pid)
	}

	if report.InputChannel && report.OutputChannel {
		if pid == 0 || report.Process {
			report.Overall = lib.Healthy
		}
	}

	return report, nil
}
