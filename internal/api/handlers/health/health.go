package health

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

// Health reports process liveness. Public, no auth.
func Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]interface{}{"status": "ok"})
}

// Hello echoes a greeting plus the caller's token claims, for verifying
// token authorization end to end.
func Hello(w http.ResponseWriter, r *http.Request) {
	claims, _ := utils.ClaimsFromContext(r.Context())
	utils.WriteJSON(w, map[string]interface{}{
		"message": "Hello, world!",
		"user":    claims,
	})
}
