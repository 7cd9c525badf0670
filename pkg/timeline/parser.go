// Package timeline implements the transcript correlation and timeline
// merge engine: it takes independently produced per-agent event logs and
// builds one chronologically ordered, de-duplicated list of display
// groups in which tool invocations are paired with their results and
// subagent activity is coalesced into runs.
//
// Every stage is a pure function of its inputs; the package holds no
// state between calls and is safe for concurrent use.
package timeline

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/traceline/pkg/models"
)

// RawLog is the textual contents of one agent's transcript log, one JSON
// object per line. AgentID is the producer; records that omit agentId
// inherit it (legacy logs from the main agent omit both).
type RawLog struct {
	AgentID string
	Data    string
}

// ParseStats accounts for lines the parser discarded. JSON-syntax
// failures and missing-required-field records are counted separately.
type ParseStats struct {
	SkippedLines      int
	MissingFieldLines int
}

// ParseOptions control line handling.
type ParseOptions struct {
	// CountBlankLines treats blank lines as malformed instead of
	// skipping them silently. Off by default: trailing newlines are
	// normal in appended logs.
	CountBlankLines bool
}

// ParseLogs parses the raw per-agent logs into events. Malformed lines
// are skipped and counted, never fatal; the caller surfaces the counts
// as a data-quality warning.
func ParseLogs(logs []RawLog, opts ParseOptions) ([]models.Event, ParseStats) {
	var events []models.Event
	var stats ParseStats

	for _, log := range logs {
		for _, line := range strings.Split(log.Data, "\n") {
			if strings.TrimSpace(line) == "" {
				if opts.CountBlankLines {
					stats.SkippedLines++
				}
				continue
			}

			var event models.Event
			if err := json.Unmarshal([]byte(line), &event); err != nil {
				stats.SkippedLines++
				slog.Debug("Skipping malformed transcript line", "agent_id", log.AgentID, "error", err)
				continue
			}

			if event.UUID == "" || event.Role == "" {
				stats.MissingFieldLines++
				slog.Debug("Skipping transcript line with missing required field",
					"agent_id", log.AgentID, "uuid", event.UUID, "role", event.Role)
				continue
			}

			if event.AgentID == "" {
				event.AgentID = log.AgentID
			}
			events = append(events, event)
		}
	}

	return events, stats
}
