package groups

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// FUNC TO FETCH PROMPTS SHARED INTO A GROUP
func (h *Handler) FetchGroupPrompts(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")

	rows, err := h.db.From("group_prompt_details").
		Select("*").
		Eq("group_id", groupID).
		Order("shared_at").
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

// FUNC TO SHARE A PROMPT INTO A GROUP
func (h *Handler) SharePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	groupID := r.PathValue("id")
	promptID := r.PathValue("promptId")

	rows, err := h.db.From("group_prompts").
		Insert(map[string]interface{}{
			"group_id":  groupID,
			"prompt_id": promptID,
			"shared_by": userID,
		}).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{"detail": "Prompt shared successfully"}
	if len(rows) > 0 {
		response["data"] = rows[0]
	}
	utils.WriteJSON(w, response)
}

// FUNC TO UNSHARE A PROMPT FROM A GROUP
func (h *Handler) UnsharePrompt(w http.ResponseWriter, r *http.Request) {
	groupID := r.PathValue("id")
	promptID := r.PathValue("promptId")

	_, err := h.db.From("group_prompts").
		Delete().
		Match(map[string]string{"group_id": groupID, "prompt_id": promptID}).
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Prompt unshared successfully"})
}
