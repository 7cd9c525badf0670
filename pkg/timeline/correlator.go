package timeline

import (
	"log/slog"

	"github.com/codeready-toolchain/traceline/pkg/models"
)

// Correlation is the correlator's output: resolved results per tool id,
// the set of events whose content is fully absorbed into those results,
// and the duplicate result ids seen along the way.
type Correlation struct {
	// Results maps tool id → resolved outcome. Every tool_use id in the
	// input has an entry; the value is nil while the result is pending.
	Results map[string]*models.ToolOutcome
	// Elidable holds the UUIDs of events that consist solely of matched
	// tool_result blocks and therefore do not appear in the timeline.
	Elidable map[string]bool
	// DuplicateIDs lists tool ids that received more than one result,
	// each id reported once no matter how many extra results appeared.
	DuplicateIDs []string
}

// Correlate matches tool_use blocks to tool_result blocks across the
// merged event sequence. The first result (in the order of the supplied
// events) for a given tool id is authoritative; later results for the
// same id are recorded in DuplicateIDs and otherwise ignored. A result
// referencing an unknown tool id stays unmatched and keeps its owning
// event visible.
//
// Events should already be in merged chronological order so that
// "first match wins" is a deterministic policy rather than an artifact
// of log concatenation order.
func Correlate(events []models.Event) Correlation {
	corr := Correlation{
		Results:  make(map[string]*models.ToolOutcome),
		Elidable: make(map[string]bool),
	}

	// Index every tool_use id. Only presence matters for matching and
	// elision; the owning event's uuid is kept for diagnostics.
	uses := make(map[string]string)
	for i := range events {
		e := &events[i]
		for j := range e.Content {
			b := &e.Content[j]
			if b.Type != models.BlockTypeToolUse || b.ID == "" {
				continue
			}
			if prev, exists := uses[b.ID]; exists {
				// Duplicate tool_use ids should not happen; keep the first.
				slog.Warn("Duplicate tool_use id in transcript",
					"tool_id", b.ID, "event_uuid", e.UUID, "first_event_uuid", prev)
				continue
			}
			uses[b.ID] = e.UUID
			corr.Results[b.ID] = nil
		}
	}

	duplicates := make(map[string]bool)
	for i := range events {
		e := &events[i]
		for j := range e.Content {
			b := &e.Content[j]
			if b.Type != models.BlockTypeToolResult || b.ToolUseID == "" {
				continue
			}
			if _, known := uses[b.ToolUseID]; !known {
				continue
			}
			if corr.Results[b.ToolUseID] != nil {
				if !duplicates[b.ToolUseID] {
					duplicates[b.ToolUseID] = true
					corr.DuplicateIDs = append(corr.DuplicateIDs, b.ToolUseID)
				}
				slog.Warn("Duplicate tool_result for tool id, keeping first match",
					"tool_id", b.ToolUseID, "event_uuid", e.UUID)
				continue
			}
			isError := b.IsError != nil && *b.IsError
			corr.Results[b.ToolUseID] = &models.ToolOutcome{
				Content:         b.Content,
				IsError:         isError,
				SourceEventUUID: e.UUID,
			}
		}
	}

	for i := range events {
		e := &events[i]
		if !e.IsToolResultOnly() {
			continue
		}
		matched := true
		for j := range e.Content {
			if _, known := uses[e.Content[j].ToolUseID]; !known {
				matched = false
				break
			}
		}
		if matched {
			corr.Elidable[e.UUID] = true
		}
	}

	return corr
}

// Invocations extracts the ToolInvocation list for one event, attaching
// the correlator's resolved outcomes.
func (c *Correlation) Invocations(e *models.Event) []models.ToolInvocation {
	var out []models.ToolInvocation
	for i := range e.Content {
		b := &e.Content[i]
		if b.Type != models.BlockTypeToolUse || b.ID == "" {
			continue
		}
		out = append(out, models.ToolInvocation{
			ID:           b.ID,
			Name:         b.Name,
			Input:        b.Input,
			SubagentType: b.SubagentType,
			Result:       c.Results[b.ID],
		})
	}
	return out
}
