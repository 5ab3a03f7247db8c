package groups

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchMembers_OrderedByJoinDate(t *testing.T) {
	var query url.Values
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/group_member_details", r.URL.Path)
		query = r.URL.Query()
		io.WriteString(w, `[{"user_id":"u1","role":"admin"},{"user_id":"u2","role":"member"}]`)
	})

	req := authedRequest(http.MethodGet, "/groups/g1/members", nil)
	req.SetPathValue("id", "g1")
	w := httptest.NewRecorder()
	handler.FetchMembers(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "eq.g1", query.Get("group_id"))
	require.Equal(t, "joined_at", query.Get("order"))

	var got []map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 2)
}

func TestAddMember_DefaultRole(t *testing.T) {
	var inserted map[string]interface{}
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/group_members", r.URL.Path)

		var rows []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		inserted = rows[0]

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"group_id":"g1","user_id":"u2","role":"member"}]`)
	})

	req := authedRequest(http.MethodPost, "/groups/g1/members", strings.NewReader(`{"user_id":"u2"}`))
	req.SetPathValue("id", "g1")
	w := httptest.NewRecorder()
	handler.AddMember(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "g1", inserted["group_id"])
	require.Equal(t, "u2", inserted["user_id"])
	require.Equal(t, "member", inserted["role"])
}

func TestAddMember_RequiresUserID(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected without a user id")
	})

	req := authedRequest(http.MethodPost, "/groups/g1/members", strings.NewReader(`{}`))
	req.SetPathValue("id", "g1")
	w := httptest.NewRecorder()
	handler.AddMember(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMemberRole_MatchesGroupAndUser(t *testing.T) {
	var query url.Values
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		query = r.URL.Query()
		io.WriteString(w, `{"group_id":"g1","user_id":"u2","role":"admin"}`)
	})

	req := authedRequest(http.MethodPut, "/groups/g1/members/u2", strings.NewReader(`{"role":"admin"}`))
	req.SetPathValue("id", "g1")
	req.SetPathValue("memberId", "u2")
	w := httptest.NewRecorder()
	handler.UpdateMemberRole(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "eq.g1", query.Get("group_id"))
	require.Equal(t, "eq.u2", query.Get("user_id"))
}

func TestRemoveMember_DeletesByCompositeKey(t *testing.T) {
	var query url.Values
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		query = r.URL.Query()
		w.WriteHeader(http.StatusNoContent)
	})

	req := authedRequest(http.MethodDelete, "/groups/g1/members/u2", nil)
	req.SetPathValue("id", "g1")
	req.SetPathValue("memberId", "u2")
	w := httptest.NewRecorder()
	handler.RemoveMember(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "eq.g1", query.Get("group_id"))
	require.Equal(t, "eq.u2", query.Get("user_id"))
}

func TestShareGroupPrompt_RecordsSharer(t *testing.T) {
	var inserted map[string]interface{}
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/group_prompts", r.URL.Path)

		var rows []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		inserted = rows[0]

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"group_id":"g1","prompt_id":"p1","shared_by":"u1"}]`)
	})

	req := authedRequest(http.MethodPost, "/groups/g1/prompts/p1", nil)
	req.SetPathValue("id", "g1")
	req.SetPathValue("promptId", "p1")
	w := httptest.NewRecorder()
	handler.SharePrompt(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u1", inserted["shared_by"])

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Equal(t, "Prompt shared successfully", got["detail"])
	require.NotNil(t, got["data"])
}

func TestUnshareGroupPrompt(t *testing.T) {
	var query url.Values
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/rest/v1/group_prompts", r.URL.Path)
		query = r.URL.Query()
		w.WriteHeader(http.StatusNoContent)
	})

	req := authedRequest(http.MethodDelete, "/groups/g1/prompts/p1", nil)
	req.SetPathValue("id", "g1")
	req.SetPathValue("promptId", "p1")
	w := httptest.NewRecorder()
	handler.UnsharePrompt(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "eq.g1", query.Get("group_id"))
	require.Equal(t, "eq.p1", query.Get("prompt_id"))
}
