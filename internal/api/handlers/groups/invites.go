package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// FUNC TO LIST THE CALLER'S PENDING INVITES
func (h *Handler) FetchInvites(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.EmailFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rows, err := h.db.From("group_invite_details").
		Select("*").
		Eq("email", email).
		Eq("status", "pending").
		Order("created_at").
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if rows == nil {
		rows = []map[string]interface{}{}
	}
	utils.WriteJSON(w, rows)
}

// FUNC TO INVITE A MEMBER BY EMAIL
//
// The invite is created pending. The notification email is best-effort: a
// failed send is logged and never fails the request.
func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	groupID := r.PathValue("id")

	var req models.InviteMemberRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	email := strings.TrimSpace(req.Email)
	if email == "" {
		utils.WriteError(w, "email is required", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("group_invites").
		Insert(map[string]interface{}{
			"group_id":   groupID,
			"email":      email,
			"invited_by": userID,
		}).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "failed to create invite", http.StatusBadRequest)
		return
	}

	if h.mailer.Enabled() {
		go h.sendInviteEmail(groupID, email)
	}

	utils.WriteJSON(w, rows[0])
}

func (h *Handler) sendInviteEmail(groupID, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := h.db.From("groups").
		Select("name,description").
		Eq("id", groupID).
		Single().
		Execute(ctx)
	if err != nil || len(rows) == 0 {
		utils.Logger.Errorf("failed to load group %s for invite email: %v", groupID, err)
		return
	}

	name, _ := rows[0]["name"].(string)
	description, _ := rows[0]["description"].(string)

	if err := h.mailer.SendGroupInviteEmail(email, name, description); err != nil {
		utils.Logger.Errorf("failed to send invite email to %s: %v", email, err)
	}
}

// FUNC TO CANCEL A PENDING INVITE
func (h *Handler) CancelInvite(w http.ResponseWriter, r *http.Request) {
	inviteID := r.PathValue("inviteId")

	rows, err := h.db.From("group_invites").
		Delete().
		Eq("id", inviteID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "invite not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Invite canceled successfully"})
}

// FUNC TO ACCEPT AN INVITE
//
// Acceptance is a backend-side atomic procedure that flips the invite to
// accepted and inserts the membership row in one transaction.
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	inviteID := r.PathValue("inviteId")

	if _, err := h.db.RPC(r.Context(), "accept_group_invite", map[string]interface{}{
		"invite_id": inviteID,
	}); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Invite accepted successfully"})
}

// FUNC TO DECLINE AN INVITE
func (h *Handler) DeclineInvite(w http.ResponseWriter, r *http.Request) {
	inviteID := r.PathValue("inviteId")

	rows, err := h.db.From("group_invites").
		Update(map[string]interface{}{"status": "declined"}).
		Eq("id", inviteID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "invite not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Invite declined successfully"})
}
