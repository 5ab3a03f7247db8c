package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cmwalshWVU/prompt-pad-api/internal/models"
	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

const avatarBucket = "profile-pictures"

type Handler struct {
	db *supabase.Client
}

func NewHandler(db *supabase.Client) *Handler {
	return &Handler{db: db}
}

// FUNC TO SIGN IN A USER
//
// Public: forwards the credentials to the auth provider and passes the
// session JSON through.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	session, err := h.db.Auth().SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, session)
}

// FUNC TO SIGN UP A NEW USER
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result, err := h.db.Auth().SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, result)
}

// FUNC TO FETCH THE CURRENT USER AND PROFILE
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, _ := utils.UserIDFromContext(r.Context())

	rows, err := h.db.From("user_profiles").
		Select("*").
		Eq("id", userID).
		Single().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "profile not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"user":    claims,
		"profile": rows[0],
	})
}

// FUNC TO UPDATE THE CURRENT USER'S PROFILE
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) == 0 {
		utils.WriteError(w, "no updates provided", http.StatusBadRequest)
		return
	}

	rows, err := h.db.From("user_profiles").
		Update(updates).
		Eq("id", userID).
		Returning().
		Single().
		Execute(r.Context())
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		utils.WriteError(w, "profile not found", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, rows[0])
}

// FUNC TO UPLOAD AN AVATAR
//
// The upload and the profile update are sequential and non-transactional: a
// successful upload followed by a failed profile update leaves an orphaned
// object in storage. Known limitation.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		utils.Logger.Errorf("failed to read avatar upload: %v", err)
		utils.WriteError(w, "failed to read file", http.StatusBadRequest)
		return
	}

	ext := "bin"
	if parts := strings.Split(header.Filename, "."); len(parts) > 1 {
		ext = parts[len(parts)-1]
	}
	filePath := fmt.Sprintf("%s/%s.%s", userID, uuid.New().String(), ext)

	bucket := h.db.Storage(avatarBucket)
	if err := bucket.Upload(r.Context(), filePath, fileBytes, header.Header.Get("Content-Type")); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	publicURL := bucket.GetPublicURL(filePath)

	if _, err := h.db.From("user_profiles").
		Update(map[string]interface{}{"avatar_url": publicURL}).
		Eq("id", userID).
		Returning().
		Single().
		Execute(r.Context()); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{"avatar_url": publicURL})
}

// FUNC TO SIGN OUT
//
// Sessions are managed client-side; this exists so frontends have a uniform
// place to hook server-side cleanup later.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]interface{}{"message": "Signed out successfully"})
}
