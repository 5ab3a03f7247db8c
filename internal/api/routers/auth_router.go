package routers

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/auth"
)

func registerAuthRoutes(mux *http.ServeMux, h *auth.Handler) {
	mux.HandleFunc("POST /auth/signin", h.SignIn)
	mux.HandleFunc("POST /auth/signup", h.SignUp)

	mux.HandleFunc("GET /auth/user", h.GetUser)
	mux.HandleFunc("PATCH /auth/user", h.UpdateProfile)
	mux.HandleFunc("POST /auth/user/avatar", h.UploadAvatar)
	mux.HandleFunc("POST /auth/signout", h.SignOut)
}
