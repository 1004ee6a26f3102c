package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskforge/task-tracker/internal/infrastructure/db/sqlite"
	"github.com/taskforge/task-tracker/internal/pkg/config"
)

// TestRouter_EndToEnd exercises the whole stack against a real SQLite file:
// registration, token issuance, ownership filtering and role-gated deletion.
// It runs as one flow because the prometheus middleware registers collectors
// with the default registry and cannot be built twice per process.
func TestRouter_EndToEnd(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "e2e.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		Port: "0",
		Env:  "test",
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-test-secret",
			TokenTTL:   20 * time.Minute,
			BcryptCost: 4,
		},
	}

	e, err := NewRouter(store, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	doJSON := func(method, path, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	register := func(username, password, role string) *httptest.ResponseRecorder {
		t.Helper()
		body := fmt.Sprintf(`{"username":%q,"email":"%s@x.com","password":%q,"first_name":"First","last_name":"Last","role":%q}`,
			username, username, password, role)
		return doJSON(http.MethodPost, "/auth/register", "", body)
	}

	login := func(username, password string) (string, int) {
		t.Helper()
		form := url.Values{"username": {username}, "password": {password}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			return "", rec.Code
		}
		var resp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("token response: %v", err)
		}
		if resp.TokenType != "bearer" {
			t.Fatalf("unexpected token type: %q", resp.TokenType)
		}
		return resp.AccessToken, rec.Code
	}

	// --- auth status and empty store ---
	if rec := doJSON(http.MethodGet, "/auth/", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("GET /auth/: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodGet, "/todos", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /todos on empty store: expected 404, got %d", rec.Code)
	}

	// --- registration ---
	if rec := register("alice", "pw1", "user"); rec.Code != http.StatusCreated {
		t.Fatalf("register alice: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := register("alice", "pw1", "user"); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}
	if rec := register("xy", "pw1", "user"); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("short username: expected 422, got %d", rec.Code)
	}

	// --- login ---
	aliceToken, code := login("alice", "pw1")
	if code != http.StatusOK || aliceToken == "" {
		t.Fatalf("login alice: expected 200 with token, got %d", code)
	}
	if _, code := login("alice", "wrong"); code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", code)
	}
	if _, code := login("nobody", "pw1"); code != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", code)
	}

	// --- task creation ---
	if rec := doJSON(http.MethodPost, "/todos", "", `{"title":"buy milk","description":"2% please","priority":2}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: expected 401, got %d", rec.Code)
	}

	rec := doJSON(http.MethodPost, "/todos", aliceToken, `{"title":"buy milk","description":"2% please","priority":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var task struct {
		ID      int64 `json:"id"`
		OwnerID int64 `json:"owner_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("task response: %v", err)
	}
	if task.OwnerID == 0 {
		t.Fatalf("expected owner_id to be set, got %+v", task)
	}

	// --- reads are open to anyone ---
	if rec := doJSON(http.MethodGet, "/todos", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("GET /todos: expected 200, got %d", rec.Code)
	}
	path := fmt.Sprintf("/todos/%d", task.ID)
	if rec := doJSON(http.MethodGet, path, "", ""); rec.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
	}
	if rec := doJSON(http.MethodGet, "/todos/9999", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("GET missing task: expected 404, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodGet, "/todos/abc", "", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("GET non-numeric id: expected 422, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodPost, "/todos", aliceToken, `{"title":"broken`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("malformed create body: expected 422, got %d", rec.Code)
	}

	// --- ownership: another user's update looks like a missing task ---
	if rec := register("bob", "pw2", "user"); rec.Code != http.StatusCreated {
		t.Fatalf("register bob: expected 201, got %d", rec.Code)
	}
	bobToken, _ := login("bob", "pw2")

	update := `{"title":"hijacked","description":"not yours","priority":1}`
	if rec := doJSON(http.MethodPut, path, bobToken, update); rec.Code != http.StatusNotFound {
		t.Fatalf("cross-owner update: expected 404, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodPut, path, aliceToken, `{"title":"buy oat milk","description":"the good kind","priority":1,"completed":true}`); rec.Code != http.StatusAccepted {
		t.Fatalf("owner update: expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := doJSON(http.MethodPut, path, aliceToken, `{"title":"x","description":"y","priority":9}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid priority: expected 422, got %d", rec.Code)
	}

	// --- deletion is role-gated, not ownership-gated ---
	if rec := doJSON(http.MethodDelete, path, aliceToken, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("owner delete without elevated role: expected 403, got %d", rec.Code)
	}

	if rec := register("root", "pw3", "admin"); rec.Code != http.StatusCreated {
		t.Fatalf("register admin: expected 201, got %d", rec.Code)
	}
	adminToken, _ := login("root", "pw3")

	if rec := doJSON(http.MethodDelete, path, adminToken, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("admin delete: expected 204, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodDelete, path, adminToken, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}

	// --- probes ---
	if rec := doJSON(http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}
}
