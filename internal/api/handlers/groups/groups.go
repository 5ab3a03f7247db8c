package groups

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

type Handler struct {
	db     *supabase.Client
	mailer *utils.Mailer
}

func NewHandler(db *supabase.Client, mailer *utils.Mailer) *Handler {
	return &Handler{db: db, mailer: mailer}
}

// FUNC TO FETCH ALL GROUPS VISIBLE TO THE CALLER
//
// A caller sees a group when its privacy is public or when the caller is a
// member. The caller's member group ids are computed first, then the union
// is fetched in one query with the member list embedded, so each group can
// be annotated with is_member. A caller with no memberships still gets the
// public set; an empty membership list is not an error.
func (h *Handler) FetchGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memberRows, err := h.db.From("group_members").
		Select("group_id").
		Eq("user_id", userID).
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	memberGroupIDs := make([]string, 0, len(memberRows))
	for _, row := range memberRows {
		if id, ok := row["group_id"].(string); ok {
			memberGroupIDs = append(memberGroupIDs, id)
		}
	}

	filter := "privacy.eq.public"
	if len(memberGroupIDs) > 0 {
		filter = fmt.Sprintf("privacy.eq.public,id.in.(%s)", strings.Join(memberGroupIDs, ","))
	}

	groupRows, err := h.db.From("groups").
		Select("*, members:group_members(user_id)").
		Or(filter).
		Order("name").
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	processed := make([]map[string]interface{}, 0, len(groupRows))
	for _, group := range groupRows {
		group["is_member"] = isMember(group["members"], userID)
		processed = append(processed, group)
	}

	utils.WriteJSON(w, processed)
}

func isMember(members interface{}, userID string) bool {
	list, ok := members.([]interface{})
	if !ok {
		return false
	}
	for _, entry := range list {
		if m, ok := entry.(map[string]interface{}); ok && m["user_id"] == userID {
			return true
		}
	}
	return false
}

// FUNC TO CREATE A GROUP
//
// Any authenticated caller may create a group. The creator is recorded as
// created_by; no membership row is created for the creator.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateGroupRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Description == "" || req.Privacy == "" {
		utils.WriteError(w, "name, description and privacy are required", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("groups").
		Insert(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"privacy":     req.Privacy,
			"created_by":  userID,
		}).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "failed to create group", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO UPDATE GROUP NAME/DESCRIPTION/PRIVACY
//
// Any authenticated caller may update any group by id; there is no
// ownership check here.
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	var req models.UpdateGroupRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Privacy != nil {
		updates["privacy"] = *req.Privacy
	}

	if len(updates) == 0 {
		utils.WriteError(w, "no updates provided", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("groups").
		Update(updates).
		Eq("id", groupID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "group not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO DELETE A GROUP
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	rows, err := h.db.From("groups").
		Delete().
		Eq("id", groupID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "group not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Group deleted successfully"})
}
