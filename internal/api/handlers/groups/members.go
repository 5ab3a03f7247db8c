package groups

import (
	"encoding/json"
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// FUNC TO FETCH GROUP MEMBERS
func (h *Handler) FetchMembers(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	rows, err := h.db.From("group_member_details").
		Select("*").
		Eq("group_id", groupID).
		Order("joined_at").
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

// FUNC TO ADD A MEMBER DIRECTLY
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	var req models.AddMemberRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.UserID == "" {
		utils.WriteError(w, "user_id is required", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = "member"
	}

	rows, err := h.db.From("group_members").
		Insert(map[string]interface{}{
			"group_id": groupID,
			"user_id":  req.UserID,
			"role":     req.Role,
		}).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "the specified group does not exist", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO CHANGE A MEMBER ROLE
func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	memberID := r.PathValue("memberId")

	var req models.UpdateMemberRoleRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Role == "" {
		utils.WriteError(w, "role is required", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("group_members").
		Update(map[string]interface{}{"role": req.Role}).
		Match(map[string]string{"group_id": groupID, "user_id": memberID}).
		Returning().
		Single().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "member not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO REMOVE A MEMBER
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	memberID := r.PathValue("memberId")

	_, err := h.db.From("group_members").
		Delete().
		Match(map[string]string{"group_id": groupID, "user_id": memberID}).
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Member removed successfully"})
}
