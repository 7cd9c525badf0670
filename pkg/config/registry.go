package config

import "sort"

// AgentNameRegistry maps agent ids to human display names. Lookups fall
// back to the raw id, so an unregistered agent is still labeled.
type AgentNameRegistry struct {
	names map[string]string
}

// NewAgentNameRegistry creates a registry from an id → name map. The map
// is copied; the caller's map is not retained.
func NewAgentNameRegistry(names map[string]string) *AgentNameRegistry {
	copied := make(map[string]string, len(names))
	for id, name := range names {
		copied[id] = name
	}
	return &AgentNameRegistry{names: copied}
}

// Resolve returns the display name for the given agent id, or the id
// itself when no name is registered.
func (r *AgentNameRegistry) Resolve(agentID string) string {
	if r == nil {
		return agentID
	}
	if name, ok := r.names[agentID]; ok && name != "" {
		return name
	}
	return agentID
}

// AgentIDs returns the registered ids in sorted order.
func (r *AgentNameRegistry) AgentIDs() []string {
	ids := make([]string, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
