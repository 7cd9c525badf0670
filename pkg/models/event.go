// Package models defines the transcript data model: raw per-agent log
// events, their content blocks, and the derived timeline structures the
// engine produces for a rendering layer.
package models

import (
	"encoding/json"
	"fmt"
)

// ContentBlock type discriminators. The set is closed: the correlator
// matches exhaustively over these three kinds and treats anything else
// as inert.
const (
	BlockTypeText       = "text"
	BlockTypeToolUse    = "tool_use"
	BlockTypeToolResult = "tool_result"
)

// Event roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContentBlock is one element of an event's content. Exactly one kind is
// populated, selected by Type:
//
//   - text: Text
//   - tool_use: ID, Name, Input, SubagentType
//   - tool_result: ToolUseID, Content, IsError
//
// Blocks with an unrecognized Type are kept (so nothing is silently
// dropped from an event) but ignored by correlation and display.
type ContentBlock struct {
	Type         string         `json:"type"`
	Text         string         `json:"text,omitempty"`
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	Input        map[string]any `json:"input,omitempty"`
	SubagentType string         `json:"subagent_type,omitempty"`
	ToolUseID    string         `json:"tool_use_id,omitempty"`
	Content      string         `json:"content,omitempty"`
	IsError      *bool          `json:"is_error,omitempty"`
}

// Event is one record from a per-agent transcript log.
type Event struct {
	UUID       string         `json:"uuid"`
	ParentUUID *string        `json:"parentUuid,omitempty"`
	AgentID    string         `json:"agentId,omitempty"`
	SessionID  string         `json:"sessionId,omitempty"`
	Timestamp  string         `json:"timestamp,omitempty"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
}

// eventJSON mirrors Event with a raw content payload so UnmarshalJSON can
// accept both the plain-string and block-array forms producers emit.
type eventJSON struct {
	UUID       string          `json:"uuid"`
	ParentUUID *string         `json:"parentUuid"`
	AgentID    string          `json:"agentId"`
	SessionID  string          `json:"sessionId"`
	Timestamp  string          `json:"timestamp"`
	Role       string          `json:"role"`
	Content    json.RawMessage `json:"content"`
}

// UnmarshalJSON decodes an event record, normalizing a plain-string
// content field into a single text block so downstream stages only ever
// see the block form.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.UUID = raw.UUID
	e.ParentUUID = raw.ParentUUID
	e.AgentID = raw.AgentID
	e.SessionID = raw.SessionID
	e.Timestamp = raw.Timestamp
	e.Role = raw.Role
	e.Content = nil

	if len(raw.Content) == 0 {
		return nil
	}

	blocks, err := decodeContent(raw.Content)
	if err != nil {
		return err
	}
	e.Content = blocks
	return nil
}

// decodeContent accepts either a JSON string or an array of block objects.
func decodeContent(raw json.RawMessage) ([]ContentBlock, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if text == "" {
			return nil, nil
		}
		return []ContentBlock{{Type: BlockTypeText, Text: text}}, nil
	}

	var rawBlocks []json.RawMessage
	if err := json.Unmarshal(raw, &rawBlocks); err != nil {
		return nil, fmt.Errorf("content is neither string nor block array: %w", err)
	}

	blocks := make([]ContentBlock, 0, len(rawBlocks))
	for i, rb := range rawBlocks {
		block, err := decodeBlock(rb)
		if err != nil {
			return nil, fmt.Errorf("content block %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// blockJSON mirrors ContentBlock with a raw nested-content payload:
// tool_result content may itself be a string or an array of text blocks.
type blockJSON struct {
	Type         string          `json:"type"`
	Text         string          `json:"text"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Input        map[string]any  `json:"input"`
	SubagentType string          `json:"subagent_type"`
	ToolUseID    string          `json:"tool_use_id"`
	Content      json.RawMessage `json:"content"`
	IsError      *bool           `json:"is_error"`
}

func decodeBlock(raw json.RawMessage) (ContentBlock, error) {
	var bj blockJSON
	if err := json.Unmarshal(raw, &bj); err != nil {
		return ContentBlock{}, err
	}

	block := ContentBlock{
		Type:         bj.Type,
		Text:         bj.Text,
		ID:           bj.ID,
		Name:         bj.Name,
		Input:        bj.Input,
		SubagentType: bj.SubagentType,
		ToolUseID:    bj.ToolUseID,
		IsError:      bj.IsError,
	}

	if len(bj.Content) > 0 {
		content, err := flattenResultContent(bj.Content)
		if err != nil {
			return ContentBlock{}, err
		}
		block.Content = content
	}
	return block, nil
}

// flattenResultContent normalizes tool_result content to a string. The
// array form concatenates the text of its text blocks; non-text nested
// blocks contribute nothing.
func flattenResultContent(raw json.RawMessage) (string, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, nil
	}

	var nested []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return "", fmt.Errorf("tool_result content is neither string nor block array: %w", err)
	}

	var out string
	for _, n := range nested {
		if n.Type == BlockTypeText {
			out += n.Text
		}
	}
	return out, nil
}

// IsToolResultOnly reports whether the event has at least one content
// block and every block is a tool_result. Such events are candidates for
// elision once all their results are matched to a tool_use.
func (e *Event) IsToolResultOnly() bool {
	if len(e.Content) == 0 {
		return false
	}
	for _, b := range e.Content {
		if b.Type != BlockTypeToolResult {
			return false
		}
	}
	return true
}
