package routers

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/prompts"
)

func registerPromptRoutes(mux *http.ServeMux, h *prompts.Handler) {
	mux.HandleFunc("GET /prompts", h.FetchPrompts)
	mux.HandleFunc("POST /prompts", h.CreatePrompt)
	mux.HandleFunc("PATCH /prompts/{id}", h.UpdatePrompt)
	mux.HandleFunc("DELETE /prompts/{id}", h.DeletePrompt)

	mux.HandleFunc("POST /prompts/{id}/share", h.SharePrompt)
	mux.HandleFunc("DELETE /prompts/{id}/share/{sharedWith}", h.RevokeAccess)
	mux.HandleFunc("GET /prompts/{id}/shares", h.FetchShares)
	mux.HandleFunc("PATCH /prompts/{id}/visibility", h.UpdateVisibility)
}
