package timeline

import (
	"github.com/codeready-toolchain/traceline/pkg/models"
)

// BuildGroups folds the merged, elision-filtered event sequence into
// display groups in a single pass. Main-agent events each get their own
// group; consecutive events from the same subagent coalesce into one
// run. Grouping is strictly adjacency-based: any intervening event from
// a different source closes the run, and a later run by the same agent
// gets a brand-new key.
func BuildGroups(events []models.EnrichedEvent) []models.TimelineGroup {
	var groups []models.TimelineGroup

	for i := range events {
		e := &events[i]

		if !e.IsSubagent {
			groups = append(groups, models.TimelineGroup{
				Kind:     models.GroupKindMain,
				GroupKey: "main:" + e.UUID,
				AgentID:  e.AgentID,
				Events:   []models.EnrichedEvent{*e},
			})
			continue
		}

		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if last.Kind == models.GroupKindSubagentRun && last.AgentID == e.AgentID {
				last.Events = append(last.Events, *e)
				continue
			}
		}

		// GroupKey includes the first event's UUID so a reappearing
		// agent gets a distinct key for each run.
		groups = append(groups, models.TimelineGroup{
			Kind:     models.GroupKindSubagentRun,
			GroupKey: e.AgentID + ":" + e.UUID,
			AgentID:  e.AgentID,
			Label:    e.SubagentLabel,
			Events:   []models.EnrichedEvent{*e},
		})
	}

	return groups
}
