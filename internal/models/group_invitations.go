package models

// GroupInvite statuses: pending, accepted, declined, expired. Only pending
// invites may transition.
type GroupInvite struct {
	ID        string `json:"id,omitempty"`
	GroupID   string `json:"group_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status,omitempty"`
	InvitedBy string `json:"invited_by,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type InviteMemberRequest struct {
	Email string `json:"email"`
}
