package models

// GroupPrompt records that a prompt was shared into a group.
type GroupPrompt struct {
	GroupID  string `json:"group_id,omitempty"`
	PromptID string `json:"prompt_id,omitempty"`
	SharedBy string `json:"shared_by,omitempty"`
	SharedAt string `json:"shared_at,omitempty"`
}
