package prompts

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// FUNC TO SHARE A PROMPT WITH ANOTHER USER
//
// The share row is created regardless of the prompt's visibility flag. An
// expiry, when present, is normalized to RFC 3339 UTC before storage.
func (h *Handler) SharePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	promptID := r.PathValue("id")

	var req models.SharePromptRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.PromptID == "" {
		req.PromptID = promptID
	}
	if req.SharedWith == "" {
		utils.WriteError(w, "shared_with is required", http.StatusBadRequest)
		return
	}
	if req.PermissionLevel == "" {
		req.PermissionLevel = "read"
	}

	share := map[string]interface{}{
		"prompt_id":        req.PromptID,
		"shared_with":      req.SharedWith,
		"permission_level": req.PermissionLevel,
		"shared_by":        userID,
	}
	if req.ExpiresAt != nil {
		share["expires_at"] = req.ExpiresAt.UTC().Format(time.RFC3339)
	}

	rows, err := h.db.From("prompt_shares").
		Insert(share).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "failed to share prompt", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO REVOKE A USER'S ACCESS TO A PROMPT
//
// Revocation deletes by the (prompt_id, shared_with) composite key, not by
// share-row id.
func (h *Handler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	promptID := r.PathValue("id")
	sharedWith := r.PathValue("sharedWith")

	_, err := h.db.From("prompt_shares").
		Delete().
		Match(map[string]string{"prompt_id": promptID, "shared_with": sharedWith}).
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Access revoked successfully"})
}

// FUNC TO LIST SHARES FOR A PROMPT
func (h *Handler) FetchShares(w http.ResponseWriter, r *http.Request) {
	promptID := r.PathValue("id")

	rows, err := h.db.From("prompt_shares").
		Select("*, shared_with:users(email)").
		Eq("prompt_id", promptID).
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
