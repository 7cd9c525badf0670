package timeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/traceline/pkg/models"
)

// textEvent builds an event containing a single text block.
func textEvent(uuid, agentID, timestamp, role, text string) models.Event {
	return models.Event{
		UUID:      uuid,
		AgentID:   agentID,
		SessionID: "session-1",
		Timestamp: timestamp,
		Role:      role,
		Content:   []models.ContentBlock{{Type: models.BlockTypeText, Text: text}},
	}
}

// toolUseEvent builds an assistant event containing a single tool_use block.
func toolUseEvent(uuid, agentID, timestamp, toolID, toolName string) models.Event {
	return models.Event{
		UUID:      uuid,
		AgentID:   agentID,
		SessionID: "session-1",
		Timestamp: timestamp,
		Role:      models.RoleAssistant,
		Content: []models.ContentBlock{{
			Type: models.BlockTypeToolUse,
			ID:   toolID,
			Name: toolName,
		}},
	}
}

// toolResultEvent builds a user event containing a single tool_result block.
func toolResultEvent(uuid, agentID, timestamp, toolID, content string, isError bool) models.Event {
	var errPtr *bool
	if isError {
		errPtr = &isError
	}
	return models.Event{
		UUID:      uuid,
		AgentID:   agentID,
		SessionID: "session-1",
		Timestamp: timestamp,
		Role:      models.RoleUser,
		Content: []models.ContentBlock{{
			Type:      models.BlockTypeToolResult,
			ToolUseID: toolID,
			Content:   content,
			IsError:   errPtr,
		}},
	}
}

// logFromEvents serializes events into one newline-delimited raw log.
func logFromEvents(t *testing.T, agentID string, events ...models.Event) RawLog {
	t.Helper()
	var lines []string
	for _, e := range events {
		data, err := json.Marshal(e)
		require.NoError(t, err)
		lines = append(lines, string(data))
	}
	return RawLog{AgentID: agentID, Data: strings.Join(lines, "\n") + "\n"}
}
