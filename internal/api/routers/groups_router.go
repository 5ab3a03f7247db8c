package routers

import (
	"net/http"

	"github.com/cmwalshWVU/prompt-pad-api/internal/api/handlers/groups"
)

func registerGroupRoutes(mux *http.ServeMux, h *groups.Handler) {
	mux.HandleFunc("GET /groups", h.FetchGroups)
	mux.HandleFunc("POST /groups", h.CreateGroup)
	mux.HandleFunc("PATCH /groups/{id}", h.UpdateGroup)
	mux.HandleFunc("DELETE /groups/{id}", h.DeleteGroup)

	mux.HandleFunc("GET /groups/{id}/members", h.FetchMembers)
	mux.HandleFunc("POST /groups/{id}/members", h.AddMember)
	mux.HandleFunc("PATCH /groups/{id}/members/{memberId}", h.UpdateMemberRole)
	mux.HandleFunc("DELETE /groups/{id}/members/{memberId}", h.RemoveMember)

	mux.HandleFunc("GET /groups/{id}/prompts", h.FetchGroupPrompts)
	mux.HandleFunc("POST /groups/{id}/prompts/{promptId}", h.SharePrompt)
	mux.HandleFunc("DELETE /groups/{id}/prompts/{promptId}", h.UnsharePrompt)

	// Literal segments win over {id} wildcards, so /groups/invites routes
	// never collide with /groups/{id}. Accept and decline stay group-scoped;
	// an unscoped /groups/invites/{inviteId}/accept pattern would conflict
	// with /groups/{id}/prompts/{promptId} at registration.
	mux.HandleFunc("GET /groups/invites", h.FetchInvites)
	mux.HandleFunc("POST /groups/{id}/invites", h.InviteMember)
	mux.HandleFunc("DELETE /groups/invites/{inviteId}", h.CancelInvite)
	mux.HandleFunc("POST /groups/{id}/invites/{inviteId}/accept", h.AcceptInvite)
	mux.HandleFunc("POST /groups/{id}/invites/{inviteId}/decline", h.DeclineInvite)
}
