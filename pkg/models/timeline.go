package models

// ToolOutcome is the resolved result of one tool invocation, carried over
// from the tool_result block that matched it.
type ToolOutcome struct {
	Content         string `json:"content"`
	IsError         bool   `json:"is_error"`
	SourceEventUUID string `json:"source_event_uuid"`
}

// ToolInvocation pairs a tool_use block with its result, if one was found
// anywhere later in the merged timeline. A nil Result means the invocation
// is still pending (or its result never arrived); that is not an error.
type ToolInvocation struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Input        map[string]any `json:"input,omitempty"`
	SubagentType string         `json:"subagent_type,omitempty"`
	Result       *ToolOutcome   `json:"result,omitempty"`
}

// EnrichedEvent is an Event plus everything the rendering layer needs:
// subagent classification, display text, and correlated tool invocations.
type EnrichedEvent struct {
	Event
	IsSubagent      bool             `json:"is_subagent"`
	SubagentLabel   string           `json:"subagent_label,omitempty"`
	DisplayText     string           `json:"display_text"`
	ToolInvocations []ToolInvocation `json:"tool_invocations,omitempty"`
}

// TimelineGroup kinds.
const (
	GroupKindMain        = "main"
	GroupKindSubagentRun = "subagent_run"
)

// TimelineGroup is the engine's final output unit: either a single
// main-agent event or one contiguous run of same-agent subagent events.
// GroupKey is stable for a fixed input and unique within one timeline,
// so callers can key UI state (expand/collapse, selection) by it.
type TimelineGroup struct {
	Kind     string          `json:"kind"`
	GroupKey string          `json:"group_key"`
	AgentID  string          `json:"agent_id,omitempty"`
	Label    string          `json:"label,omitempty"`
	Events   []EnrichedEvent `json:"events"`
}

// Main returns the single event of a main group. Panics if called on a
// subagent run; callers switch on Kind first.
func (g *TimelineGroup) Main() *EnrichedEvent {
	if g.Kind != GroupKindMain {
		panic("Main() called on " + g.Kind + " group")
	}
	return &g.Events[0]
}

// Diagnostics reports data-quality defects encountered while building a
// timeline. Defects never abort the build; callers surface these counts
// as warnings.
type Diagnostics struct {
	// SkippedLines counts lines that failed to parse as JSON.
	SkippedLines int `json:"skipped_lines"`
	// MissingFieldLines counts lines that parsed but lacked a required
	// field (uuid, role). Counted separately to aid diagnosis.
	MissingFieldLines int `json:"missing_field_lines"`
	// DuplicateToolResultIDs lists tool ids that received more than one
	// result block; only the first match (in merged order) is kept.
	DuplicateToolResultIDs []string `json:"duplicate_tool_result_ids,omitempty"`
}
