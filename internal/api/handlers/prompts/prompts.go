package prompts

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

type Handler struct {
	db *supabase.Client
}

func NewHandler(db *supabase.Client) *Handler {
	return &Handler{db: db}
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// FUNC TO FETCH ALL PROMPTS
func (h *Handler) FetchPrompts(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.From("prompts").
		Select("*").
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

// FUNC TO CREATE A PROMPT
//
// Counters start at zero and both timestamps are set server-side before the
// insert, so the returned record is complete even if the table has no
// defaults.
func (h *Handler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreatePromptRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Content == "" {
		utils.WriteError(w, "title and content are required", http.StatusBadRequest)
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	now := nowTimestamp()
	rows, err := h.db.From("prompts").
		Insert(map[string]interface{}{
			"title":           req.Title,
			"content":         req.Content,
			"category":        req.Category,
			"tags":            req.Tags,
			"visibility":      req.Visibility,
			"user_id":         userID,
			"favorites_count": 0,
			"shared_count":    0,
			"access_count":    0,
			"created_at":      now,
			"updated_at":      now,
		}).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "failed to create prompt", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO UPDATE A PROMPT
//
// The update filters on both the prompt id and the caller as owner; a
// zero-row result means the prompt does not exist or is not theirs.
func (h *Handler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	promptID := r.PathValue("id")

	var req models.UpdatePromptRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}
	if req.Visibility != nil {
		updates["visibility"] = *req.Visibility
	}

	if len(updates) == 0 {
		utils.WriteError(w, "no updates provided", http.StatusBadRequest)
		return
	}
	updates["updated_at"] = nowTimestamp()

	rows, err := h.db.From("prompts").
		Update(updates).
		Eq("id", promptID).
		Eq("user_id", userID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "prompt not found or not owned by you", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO DELETE A PROMPT
func (h *Handler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	promptID := r.PathValue("id")

	rows, err := h.db.From("prompts").
		Delete().
		Eq("id", promptID).
		Eq("user_id", userID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "prompt not found or not owned by you", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Prompt deleted successfully"})
}

// FUNC TO UPDATE PROMPT VISIBILITY
func (h *Handler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	promptID := r.PathValue("id")

	visibility := r.URL.Query().Get("visibility")
	if visibility == "" {
		utils.WriteError(w, "visibility is required", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("prompts").
		Update(map[string]interface{}{"visibility": visibility}).
		Eq("id", promptID).
		Eq("user_id", userID).
		Returning().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "prompt not found or not owned by you", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"detail": "Visibility updated successfully"})
}
