package openai

import (
	"encoding/json"
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/services"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

type Handler struct {
	client *services.OpenAIClient
}

func NewHandler(client *services.OpenAIClient) *Handler {
	return &Handler{client: client}
}

type completionBody struct {
	Prompt string `json:"prompt"`
}

// FUNC TO RELAY A COMPLETION REQUEST
//
// The upstream response body is returned verbatim; upstream failures become
// an opaque 500.
func (h *Handler) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	var req completionBody
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Prompt == "" {
		utils.WriteError(w, "prompt is required", http.StatusBadRequest)
		return
	}

	response, err := h.client.CreateCompletion(r.Context(), req.Prompt)
	if err != nil {
		utils.Logger.Errorf("completion request failed: %v", err)
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}
