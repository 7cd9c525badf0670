package timeline

import (
	"strings"

	"github.com/codeready-toolchain/traceline/pkg/models"
)

// NameResolver resolves an agent id to a human display name.
// config.AgentNameRegistry satisfies this.
type NameResolver interface {
	Resolve(agentID string) string
}

// Masker redacts sensitive material from tool-result content before it
// reaches the rendering layer. masking.Service satisfies this.
type Masker interface {
	MaskContent(content string) string
}

// EnrichEvents derives the display-ready form of each event: subagent
// classification against rootAgentID, a label from the resolver, the
// concatenated text content, and the correlated tool invocations.
// resolver and masker may be nil.
func EnrichEvents(
	events []models.Event,
	corr Correlation,
	rootAgentID string,
	resolver NameResolver,
	masker Masker,
) []models.EnrichedEvent {
	enriched := make([]models.EnrichedEvent, 0, len(events))
	for i := range events {
		e := &events[i]

		isSubagent := e.AgentID != "" && e.AgentID != rootAgentID && e.AgentID != e.SessionID

		var label string
		if isSubagent {
			label = e.AgentID
			if resolver != nil {
				label = resolver.Resolve(e.AgentID)
			}
		}

		invocations := corr.Invocations(e)
		if masker != nil {
			for j := range invocations {
				if invocations[j].Result != nil {
					masked := *invocations[j].Result
					masked.Content = masker.MaskContent(masked.Content)
					invocations[j].Result = &masked
				}
			}
		}

		enriched = append(enriched, models.EnrichedEvent{
			Event:           *e,
			IsSubagent:      isSubagent,
			SubagentLabel:   label,
			DisplayText:     displayText(e),
			ToolInvocations: invocations,
		})
	}
	return enriched
}

// displayText concatenates the event's text blocks, newline-separated.
func displayText(e *models.Event) string {
	var parts []string
	for i := range e.Content {
		b := &e.Content[i]
		if b.Type == models.BlockTypeText && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}
