package routers

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/auth"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/groups"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/health"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/openai"
	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/prompts"
)

// Handlers bundles the per-area handler sets wired in main.
type Handlers struct {
	Auth    *auth.Handler
	Groups  *groups.Handler
	Prompts *prompts.Handler
	OpenAI  *openai.Handler
}

func MainRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /hello", health.Hello)
	mux.HandleFunc("POST /openai", h.OpenAI.CreateCompletion)

	registerAuthRoutes(mux, h.Auth)
	registerGroupRoutes(mux, h.Groups)
	registerPromptRoutes(mux, h.Prompts)

	return mux
}
