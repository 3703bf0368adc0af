package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/handler"
	"github.com/oggyb/muzz-dating/internal/service/account"
	"github.com/oggyb/muzz-dating/internal/service/conversation"
	"github.com/oggyb/muzz-dating/internal/service/discovery"
	"github.com/oggyb/muzz-dating/internal/service/matching"
	"github.com/oggyb/muzz-dating/internal/testutil"
)

type api struct {
	t      *testing.T
	router *gin.Engine
	env    *testutil.Env
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := testutil.NewEnv(t)
	issuer := auth.NewIssuer(env.App.Config)
	engine := matching.NewEngine(env.App)

	router := handler.Setup(env.App, issuer, handler.Services{
		Account:   account.NewGRPCServer(account.NewService(env.App, issuer)),
		Match:     matching.NewGRPCServer(engine),
		Discovery: discovery.NewGRPCServer(discovery.NewFilter(env.App, engine)),
		Chat:      conversation.NewGRPCServer(conversation.NewGate(env.App)),
	})
	return &api{t: t, router: router, env: env}
}

// do sends a request and decodes the JSON body (if any) into a map.
func (a *api) do(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

type user struct {
	id    uint64
	token string
}

// signup registers a user and fills in a complete profile.
func (a *api) signup(name, gender string) user {
	a.t.Helper()
	email := strings.ToLower(name) + "@test.com"

	code, body := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": email, "password": "password123",
	})
	require.Equal(a.t, http.StatusCreated, code, body)
	// 64-bit integers travel as JSON strings
	id, err := strconv.ParseUint(body["user_id"].(string), 10, 64)
	require.NoError(a.t, err)
	u := user{id: id, token: body["access_token"].(string)}

	code, body = a.do(http.MethodPut, "/api/profile", u.token, map[string]any{
		"name": name, "age": 30, "gender": gender, "interests": []string{"music"},
	})
	require.Equal(a.t, http.StatusOK, code, body)
	return u
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)

	code, _ := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "x@test.com", "password": "password123"})
	assert.Equal(t, http.StatusCreated, code)

	code, body := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "X@test.com", "password": "password123"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "EMAIL_TAKEN", body["reason"])

	code, _ = a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "y@test.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "x@test.com", "password": "password123"})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["access_token"])

	code, body = a.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "x@test.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", body["reason"])

	code, _ = a.do(http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = a.do(http.MethodGet, "/api/profile", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProfileEndpoints(t *testing.T) {
	a := newAPI(t)
	alice := a.signup("Alice", "female")
	bob := a.signup("Bob", "male")

	code, body := a.do(http.MethodGet, "/api/profile", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Alice", body["name"])
	assert.Equal(t, []any{"music"}, body["interests"])

	code, body = a.do(http.MethodGet, fmt.Sprintf("/api/users/%d", bob.id), alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Bob", body["name"])

	code, _ = a.do(http.MethodGet, "/api/users/999999", alice.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.do(http.MethodGet, "/api/users/abc", alice.token, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = a.do(http.MethodPut, "/api/profile", alice.token, map[string]any{"name": "Alice", "age": 16, "gender": "female"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ARGUMENT", body["reason"])

	code, _ = a.do(http.MethodDelete, "/api/account", bob.token, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = a.do(http.MethodGet, fmt.Sprintf("/api/users/%d", bob.id), alice.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLikeMatchAndChatFlow(t *testing.T) {
	a := newAPI(t)
	alice := a.signup("Alice", "female")
	bob := a.signup("Bob", "male")

	// chat is closed until both sides like each other
	code, body := a.do(http.MethodPost, fmt.Sprintf("/api/chat/%d", bob.id), alice.token, map[string]any{"content": "hi"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NOT_MATCHED", body["reason"])

	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/like/%d", alice.id), alice.token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "SELF_LIKE", body["reason"])

	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/like/%d", bob.id), alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["is_match"])

	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/like/%d", bob.id), alice.token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "DUPLICATE_LIKE", body["reason"])

	code, body = a.do(http.MethodGet, "/api/likes/received/count", bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/like/%d", alice.id), bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["is_match"])

	code, body = a.do(http.MethodGet, "/api/matches", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	matches := body["matches"].([]any)
	require.Len(t, matches, 1)
	assert.Equal(t, strconv.FormatUint(bob.id, 10), matches[0].(map[string]any)["user_id"])

	code, _ = a.do(http.MethodPost, fmt.Sprintf("/api/chat/%d", bob.id), alice.token, map[string]any{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/chat/%d", bob.id), alice.token, map[string]any{"content": strings.Repeat("x", 1001)})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "MESSAGE_TOO_LONG", body["reason"])

	code, body = a.do(http.MethodPost, fmt.Sprintf("/api/chat/%d", bob.id), alice.token, map[string]any{"content": "hi bob"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "hi bob", body["content"])
	assert.Equal(t, false, body["is_read"])
	assert.NotContains(t, body, "read_at", "unset optional fields are omitted")

	code, body = a.do(http.MethodGet, "/api/messages/unread-count", bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, body = a.do(http.MethodGet, fmt.Sprintf("/api/chat/%d", alice.id), bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)
	assert.Equal(t, true, msgs[0].(map[string]any)["is_read"])
	assert.Contains(t, msgs[0], "read_at")

	code, body = a.do(http.MethodGet, "/api/messages/unread-count", bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["count"])

	code, body = a.do(http.MethodGet, "/api/messages", bob.token, nil)
	require.Equal(t, http.StatusOK, code)
	convs := body["conversations"].([]any)
	require.Len(t, convs, 1)
	assert.Equal(t, strconv.FormatUint(alice.id, 10), convs[0].(map[string]any)["counterpart_user_id"])
}

func TestMessageContentIsPlainText(t *testing.T) {
	a := newAPI(t)
	alice := a.signup("Alice", "female")
	bob := a.signup("Bob", "male")
	testutil.CreateMatch(t, a.env.DB, alice.id, bob.id)

	code, body := a.do(http.MethodPost, fmt.Sprintf("/api/chat/%d", bob.id), alice.token, map[string]any{"content": "Tom & Jerry say 5 < 6 <b>hi</b>"})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "Tom & Jerry say 5 < 6 hi", body["content"])

	code, body = a.do(http.MethodGet, "/api/matches?limit=abc", alice.token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ARGUMENT", body["reason"])
}

func TestDiscoverAndPass(t *testing.T) {
	a := newAPI(t)

	// registered but no profile yet
	code, body := a.do(http.MethodPost, "/api/auth/register", "", map[string]any{"email": "new@test.com", "password": "password123"})
	require.Equal(t, http.StatusCreated, code)
	code, body = a.do(http.MethodGet, "/api/discover", body["access_token"].(string), nil)
	assert.Equal(t, http.StatusPreconditionFailed, code)
	assert.Equal(t, "PROFILE_INCOMPLETE", body["reason"])

	alice := a.signup("Alice", "female")
	bob := a.signup("Bob", "male")
	carol := a.signup("Carol", "female")

	code, body = a.do(http.MethodGet, "/api/discover", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["candidates"].([]any), 2)

	code, _ = a.do(http.MethodPost, fmt.Sprintf("/api/pass/%d", bob.id), alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = a.do(http.MethodPost, fmt.Sprintf("/api/like/%d", carol.id), alice.token, nil)
	require.Equal(t, http.StatusOK, code)

	code, body = a.do(http.MethodGet, "/api/discover", alice.token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["candidates"].([]any))

	code, _ = a.do(http.MethodPost, "/api/pass/999999", alice.token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)
	code, body := a.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
