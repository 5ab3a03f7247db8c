package groups

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmwalshWVU/prompt-pad-api/internal/config"
	"github.com/cmwalshWVU/prompt-pad-api/internal/repositories/supabase"
	"github.com/cmwalshWVU/prompt-pad-api/pkg/utils"
)

func newTestHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	db := supabase.New(&config.AppConfig{
		SupabaseURL:        srv.URL,
		SupabaseServiceKey: "test-key",
	})
	return NewHandler(db, &utils.Mailer{})
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), utils.UserIDKey, "u1")
	ctx = context.WithValue(ctx, utils.EmailKey, "u1@example.com")
	return req.WithContext(ctx)
}

func TestFetchGroups_VisibilityAndMembership(t *testing.T) {
	var groupsQuery string
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/group_members":
			io.WriteString(w, `[{"group_id":"gA"}]`)
		case "/rest/v1/groups":
			groupsQuery = r.URL.Query().Get("or")
			io.WriteString(w, `[
				{"id":"gA","name":"Alpha","privacy":"private","members":[{"user_id":"u1"},{"user_id":"u2"}]},
				{"id":"gB","name":"Beta","privacy":"public","members":[{"user_id":"u2"}]},
				{"id":"gC","name":"Gamma","privacy":"public","members":[]}
			]`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	w := httptest.NewRecorder()
	handler.FetchGroups(w, authedRequest(http.MethodGet, "/groups", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "(privacy.eq.public,id.in.(gA))", groupsQuery)

	var got []map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 3)
	require.Equal(t, true, got[0]["is_member"])
	require.Equal(t, false, got[1]["is_member"])
	require.Equal(t, false, got[2]["is_member"])
}

func TestFetchGroups_NoMembershipsStillSeesPublic(t *testing.T) {
	var groupsQuery string
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/group_members":
			io.WriteString(w, `[]`)
		case "/rest/v1/groups":
			groupsQuery = r.URL.Query().Get("or")
			io.WriteString(w, `[]`)
		}
	})

	w := httptest.NewRecorder()
	handler.FetchGroups(w, authedRequest(http.MethodGet, "/groups", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "(privacy.eq.public)", groupsQuery)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateGroup_RecordsCreatorWithoutMembershipRow(t *testing.T) {
	var insertedTables []string
	var inserted map[string]interface{}
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			insertedTables = append(insertedTables, r.URL.Path)
		}
		require.Equal(t, "/rest/v1/groups", r.URL.Path)

		var rows []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		inserted = rows[0]

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"id":"g-new","name":"Alpha","created_by":"u1"}]`)
	})

	body := strings.NewReader(`{"name":"Alpha","description":"a group","privacy":"public"}`)
	w := httptest.NewRecorder()
	handler.CreateGroup(w, authedRequest(http.MethodPost, "/groups", body))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u1", inserted["created_by"])
	require.Equal(t, []string{"/rest/v1/groups"}, insertedTables)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Equal(t, "g-new", got["id"])
}

func TestCreateGroup_RequiresFields(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected for an invalid request")
	})

	body := strings.NewReader(`{"name":"  ","description":"d","privacy":"public"}`)
	w := httptest.NewRecorder()
	handler.CreateGroup(w, authedRequest(http.MethodPost, "/groups", body))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Contains(t, got["detail"], "required")
}

func TestUpdateGroup_NoFields(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected when nothing changes")
	})

	req := authedRequest(http.MethodPut, "/groups/g1", strings.NewReader(`{}`))
	req.SetPathValue("id", "g1")
	w := httptest.NewRecorder()
	handler.UpdateGroup(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteGroup_NotFound(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		io.WriteString(w, `[]`)
	})

	req := authedRequest(http.MethodDelete, "/groups/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.DeleteGroup(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Equal(t, "group not found", got["detail"])
}

func TestInviteMember_CreatesPendingInvite(t *testing.T) {
	var inserted map[string]interface{}
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/group_invites", r.URL.Path)

		var rows []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		inserted = rows[0]

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"id":"inv-1","group_id":"g1","email":"new@example.com","status":"pending"}]`)
	})

	req := authedRequest(http.MethodPost, "/groups/g1/invites", strings.NewReader(`{"email":" new@example.com "}`))
	req.SetPathValue("id", "g1")
	w := httptest.NewRecorder()
	handler.InviteMember(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "g1", inserted["group_id"])
	require.Equal(t, "new@example.com", inserted["email"])
	require.Equal(t, "u1", inserted["invited_by"])
}

func TestAcceptInvite_RPCErrorIsBadRequest(t *testing.T) {
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/rpc/accept_group_invite", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"invite is not pending"}`)
	})

	req := authedRequest(http.MethodPost, "/groups/invites/inv-1/accept", nil)
	req.SetPathValue("inviteId", "inv-1")
	w := httptest.NewRecorder()
	handler.AcceptInvite(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Equal(t, "invite is not pending", got["detail"])
}

func TestDeclineInvite_FiltersByIDOnly(t *testing.T) {
	var query map[string][]string
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		query = r.URL.Query()
		io.WriteString(w, `[{"id":"inv-1","status":"declined"}]`)
	})

	req := authedRequest(http.MethodPost, "/groups/invites/inv-1/decline", nil)
	req.SetPathValue("inviteId", "inv-1")
	w := httptest.NewRecorder()
	handler.DeclineInvite(w, req)

	// declining an already declined invite succeeds again: the update
	// filters on id alone, not on status
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"eq.inv-1"}, query["id"])
	require.NotContains(t, query, "status")
}

func TestFetchInvites_ScopedToCallerEmailAndPending(t *testing.T) {
	var query map[string][]string
	handler := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/group_invite_details", r.URL.Path)
		query = r.URL.Query()
		io.WriteString(w, `[{"id":"inv-1","group_name":"Alpha"}]`)
	})

	w := httptest.NewRecorder()
	handler.FetchInvites(w, authedRequest(http.MethodGet, "/groups/invites", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"eq.u1@example.com"}, query["email"])
	require.Equal(t, []string{"eq.pending"}, query["status"])
}
