package models

// PromptShare grants a user access to a prompt independent of the prompt's
// visibility flag.
type PromptShare struct {
	PromptID        string `json:"prompt_id,omitempty"`
	SharedWith      string `json:"shared_with,omitempty"`
	SharedBy        string `json:"shared_by,omitempty"`
	PermissionLevel string `json:"permission_level,omitempty"`
	ExpiresAt       string `json:"expires_at,omitempty"`
}
