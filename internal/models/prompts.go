package models

import "time"

type Prompt struct {
	ID             string   `json:"id,omitempty"`
	UserID         string   `json:"user_id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Content        string   `json:"content,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Visibility     string   `json:"visibility,omitempty"`
	FavoritesCount int      `json:"favorites_count"`
	SharedCount    int      `json:"shared_count"`
	AccessCount    int      `json:"access_count"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

type CreatePromptRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Visibility string   `json:"visibility"`
}

type UpdatePromptRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Visibility *string   `json:"visibility,omitempty"`
}

type SharePromptRequest struct {
	PromptID        string     `json:"prompt_id"`
	SharedWith      string     `json:"shared_with"`
	PermissionLevel string     `json:"permission_level"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
