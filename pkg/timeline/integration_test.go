package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/traceline/pkg/config"
	"github.com/codeready-toolchain/traceline/pkg/masking"
	"github.com/codeready-toolchain/traceline/pkg/models"
)

// Full pipeline with the real registry and masking service: a session
// where the main agent dispatches a subagent, the subagent runs a tool
// that leaks a credential, and the result event is elided.
func TestBuildTimeline_FullPipeline(t *testing.T) {
	registry := config.NewAgentNameRegistry(map[string]string{
		"agent-researcher": "Researcher",
	})
	masker := masking.NewService(config.BuiltinMaskingConfig())

	mainLog := RawLog{AgentID: "session-1", Data: `
{"uuid":"m-1","sessionId":"session-1","timestamp":"2026-01-02T10:00:00Z","role":"user","content":"Investigate the flaky test"}
{"uuid":"m-2","sessionId":"session-1","timestamp":"2026-01-02T10:00:01Z","role":"assistant","content":[{"type":"text","text":"Dispatching a researcher"},{"type":"tool_use","id":"tool-task-1","name":"Task","input":{"prompt":"find the flake"},"subagent_type":"researcher"}]}
{"uuid":"m-4","sessionId":"session-1","timestamp":"2026-01-02T10:00:30Z","role":"assistant","content":"The retry loop races the teardown."}
`}
	subLog := RawLog{AgentID: "agent-researcher", Data: `
{"uuid":"s-1","agentId":"agent-researcher","sessionId":"session-1","timestamp":"2026-01-02T10:00:05Z","role":"assistant","content":[{"type":"tool_use","id":"tool-bash-1","name":"Bash","input":{"command":"env"}}]}
{"uuid":"s-2","agentId":"agent-researcher","sessionId":"session-1","timestamp":"2026-01-02T10:00:06Z","role":"user","content":[{"type":"tool_result","tool_use_id":"tool-bash-1","content":"API_KEY=sk-live-1234 FLAKY=1"}]}
{"uuid":"s-3","agentId":"agent-researcher","sessionId":"session-1","timestamp":"2026-01-02T10:00:07Z","role":"assistant","content":"Found it"}
{"uuid":"m-3","agentId":"session-1","sessionId":"session-1","timestamp":"2026-01-02T10:00:08Z","role":"user","content":[{"type":"tool_result","tool_use_id":"tool-task-1","content":"Research complete"}]}
`}

	result, err := BuildTimeline(TimelineRequest{
		SessionID: "session-1",
		Logs:      []RawLog{mainLog, subLog},
		Names:     registry,
		Masker:    masker,
	})
	require.NoError(t, err)

	// s-2 and m-3 are fully matched result events and disappear;
	// what remains is main, main, subagent run (s-1, s-3), main.
	require.Len(t, result.Groups, 4)

	assert.Equal(t, models.GroupKindMain, result.Groups[0].Kind)
	assert.Equal(t, "Investigate the flaky test", result.Groups[0].Main().DisplayText)

	dispatch := result.Groups[1].Main()
	require.Len(t, dispatch.ToolInvocations, 1)
	task := dispatch.ToolInvocations[0]
	assert.Equal(t, "Task", task.Name)
	assert.Equal(t, "researcher", task.SubagentType)
	require.NotNil(t, task.Result)
	assert.Equal(t, "Research complete", task.Result.Content)
	assert.Equal(t, "m-3", task.Result.SourceEventUUID)

	run := result.Groups[2]
	assert.Equal(t, models.GroupKindSubagentRun, run.Kind)
	assert.Equal(t, "Researcher", run.Label)
	require.Len(t, run.Events, 2)
	bash := run.Events[0].ToolInvocations[0]
	require.NotNil(t, bash.Result)
	// The leaked credential is redacted before display.
	assert.NotContains(t, bash.Result.Content, "sk-live-1234")
	assert.Contains(t, bash.Result.Content, "***MASKED***")

	assert.Equal(t, models.GroupKindMain, result.Groups[3].Kind)

	assert.Equal(t, models.Diagnostics{}, result.Diagnostics)
}
