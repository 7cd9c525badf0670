package timeline

import (
	"github.com/codeready-toolchain/traceline/pkg/models"
)

// TimelineRequest carries everything BuildTimeline needs for one session.
type TimelineRequest struct {
	// SessionID is the root session the logs belong to. Required.
	SessionID string
	// RootAgentID identifies the main agent. Optional: when empty,
	// SessionID doubles as the main-agent indicator (legacy logs).
	RootAgentID string
	// Logs holds one entry per agent log snapshot. Required (may be
	// empty, but not nil — a nil slice signals a caller bug upstream).
	Logs []RawLog
	// Names resolves agent ids to display names. Optional.
	Names NameResolver
	// Masker redacts tool-result content. Optional.
	Masker Masker
	// ParseOptions control blank-line accounting.
	ParseOptions ParseOptions
}

// TimelineResult is the engine's complete output for one session.
type TimelineResult struct {
	Groups      []models.TimelineGroup `json:"groups"`
	Diagnostics models.Diagnostics     `json:"diagnostics"`
}

// BuildTimeline runs the full pipeline: parse → merge → correlate →
// enrich → elide → group. It is a pure function of the request: no
// state survives the call and the same request always yields the same
// result, regardless of how the per-agent logs were concatenated before
// the snapshot was taken.
//
// Data-quality defects (malformed lines, unmatched or duplicate tool
// results) degrade gracefully and are reported in Diagnostics. Only a
// caller contract violation returns an error, always matching
// ErrInvalidInput.
func BuildTimeline(req TimelineRequest) (*TimelineResult, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("SessionID", "required")
	}
	if req.Logs == nil {
		return nil, NewValidationError("Logs", "required")
	}

	rootAgentID := req.RootAgentID
	if rootAgentID == "" {
		rootAgentID = req.SessionID
	}

	events, stats := ParseLogs(req.Logs, req.ParseOptions)
	merged := MergeChronological(events)
	corr := Correlate(merged)

	visible := make([]models.Event, 0, len(merged))
	for i := range merged {
		if !corr.Elidable[merged[i].UUID] {
			visible = append(visible, merged[i])
		}
	}

	enriched := EnrichEvents(visible, corr, rootAgentID, req.Names, req.Masker)

	return &TimelineResult{
		Groups: BuildGroups(enriched),
		Diagnostics: models.Diagnostics{
			SkippedLines:           stats.SkippedLines,
			MissingFieldLines:      stats.MissingFieldLines,
			DuplicateToolResultIDs: corr.DuplicateIDs,
		},
	}, nil
}
