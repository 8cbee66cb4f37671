//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/app"
	"github.com/mark47B/pr-health-dashboard/internal/infra/auth"
	"github.com/mark47B/pr-health-dashboard/internal/infra/github"
	"github.com/mark47B/pr-health-dashboard/internal/infra/storage/pg"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest"
	"github.com/mark47B/pr-health-dashboard/internal/infra/transport/rest/gen"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
)

// fakeGitHub serves open pull requests per "owner/repo" and fails for unknown repositories.
type fakeGitHub struct {
	mu    sync.Mutex
	pulls map[string][]map[string]any
}

func (f *fakeGitHub) set(fullName string, pulls []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls[fullName] = pulls
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fullName := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/repos/"), "/pulls")
	pulls, ok := f.pulls[fullName]
	if !ok {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		return
	}
	if pulls == nil || r.URL.Query().Get("page") != "1" {
		pulls = []map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pulls)
}

func pull(id int64, title, author string, created time.Time) map[string]any {
	return map[string]any{
		"id":         id,
		"number":     id,
		"title":      title,
		"state":      "open",
		"html_url":   fmt.Sprintf("https://github.com/acme/api/pull/%d", id),
		"created_at": created.UTC().Format(time.RFC3339),
		"user":       map[string]any{"login": author},
		"head":       map[string]any{"ref": "feature/" + title},
		"base":       map[string]any{"ref": "main"},
	}
}

type testClient struct {
	server  *httptest.Server
	github  *fakeGitHub
	client  *http.Client
	baseURL string
}

func newTestClient(t *testing.T, db *sql.DB) *testClient {
	t.Helper()

	log := zap.NewNop().Sugar()

	gh := &fakeGitHub{pulls: map[string][]map[string]any{}}
	ghServer := httptest.NewServer(gh)
	t.Cleanup(ghServer.Close)

	svc := app.NewService(app.Deps{
		Users:       pg.NewUserStorage(db, log),
		Projects:    pg.NewProjectStorage(db, log),
		Assignments: pg.NewAssignmentStorage(db, log),
		TxManager:   pg.NewTxManager(db, log),
		Source:      github.NewClient(github.Options{BaseURL: ghServer.URL, MaxPages: 3}, log),
		Hasher:      auth.NewBcryptHasher(4),
		Tokens:      auth.NewTokenManager("e2e-secret", time.Hour),
		Log:         log,
	})

	_, err := svc.EnsureAdmin(context.Background(), "Admin", adminEmail, adminPassword)
	require.NoError(t, err)

	router, err := rest.NewRouter(svc, log)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testClient{
		server:  server,
		github:  gh,
		client:  server.Client(),
		baseURL: server.URL,
	}
}

func (c *testClient) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (c *testClient) login(t *testing.T, email, password string) string {
	t.Helper()

	resp := c.do(t, http.MethodPost, "/users/login", "", gen.LoginRequest{Email: openapi_types.Email(email), Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[gen.TokenResponse](t, resp).AccessToken
}

func TestE2EScenarios(t *testing.T) {
	db := setupTestDB(t)
	c := newTestClient(t, db)

	now := time.Now().UTC()
	c.github.set("acme/api", []map[string]any{
		pull(1, "fresh", "ann", now.Add(-36*time.Hour)),
		pull(2, "boundary", "bob", now.Add(-7*24*time.Hour-time.Hour)),
		pull(3, "old", "cid", now.Add(-10*24*time.Hour-time.Hour)),
	})
	c.github.set("acme/empty", nil)

	adminToken := c.login(t, adminEmail, adminPassword)

	var lead gen.User
	t.Run("admin creates a tech lead", func(t *testing.T) {
		resp := c.do(t, http.MethodPost, "/users", adminToken, gen.CreateUserRequest{
			Name: "Lead", Email: "lead@example.com", Password: "lead-password", Role: gen.TECHLEAD,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		lead = decode[gen.User](t, resp)
		assert.Equal(t, gen.TECHLEAD, lead.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp := c.do(t, http.MethodPost, "/users", adminToken, gen.CreateUserRequest{
			Name: "Again", Email: "lead@example.com", Password: "lead-password", Role: gen.TECHLEAD,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	leadToken := c.login(t, "lead@example.com", "lead-password")

	var project, empty, broken gen.Project
	t.Run("admin creates projects", func(t *testing.T) {
		resp := c.do(t, http.MethodPost, "/projects", adminToken, gen.CreateProjectRequest{
			Name: "API", RepoUrl: "https://github.com/acme/api",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		project = decode[gen.Project](t, resp)

		resp = c.do(t, http.MethodPost, "/projects", adminToken, gen.CreateProjectRequest{
			Name: "Empty", RepoUrl: "https://github.com/acme/empty/",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		empty = decode[gen.Project](t, resp)

		resp = c.do(t, http.MethodPost, "/projects", adminToken, gen.CreateProjectRequest{
			Name: "Gone", RepoUrl: "https://github.com/acme/gone",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		broken = decode[gen.Project](t, resp)
	})

	t.Run("tech lead cannot create projects", func(t *testing.T) {
		resp := c.do(t, http.MethodPost, "/projects", leadToken, gen.CreateProjectRequest{
			Name: "Nope", RepoUrl: "https://github.com/acme/nope",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("unassigned tech lead is forbidden", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests/summary", project.Id), leadToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp = c.do(t, http.MethodGet, "/projects", leadToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, decode[[]gen.Project](t, resp))
	})

	t.Run("assignment is idempotent", func(t *testing.T) {
		path := fmt.Sprintf("/projects/%d/assign/%d", project.Id, lead.Id)
		require.Equal(t, http.StatusNoContent, c.do(t, http.MethodPost, path, adminToken, nil).StatusCode)
		require.Equal(t, http.StatusNoContent, c.do(t, http.MethodPost, path, adminToken, nil).StatusCode)

		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/users", project.Id), adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		users := decode[[]gen.User](t, resp)
		require.Len(t, users, 1)
		assert.Equal(t, lead.Id, users[0].Id)

		resp = c.do(t, http.MethodGet, "/projects", leadToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		projects := decode[[]gen.Project](t, resp)
		require.Len(t, projects, 1)
		assert.Equal(t, project.Id, projects[0].Id)
	})

	t.Run("assigned tech lead sees details", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests", project.Id), leadToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		prs := decode[[]gen.PullRequest](t, resp)
		require.Len(t, prs, 3)
		assert.Equal(t, 1, prs[0].DaysOpen)
		assert.False(t, prs[0].IsStale)
		assert.Equal(t, 7, prs[1].DaysOpen)
		assert.False(t, prs[1].IsStale)
		assert.Equal(t, 10, prs[2].DaysOpen)
		assert.True(t, prs[2].IsStale)
		assert.Equal(t, "feature/old", prs[2].SourceBranch)
		assert.Equal(t, "main", prs[2].TargetBranch)
	})

	t.Run("summary", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests/summary", project.Id), leadToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, gen.PullRequestSummary{
			TotalOpenPrs:    3,
			StalePrs:        1,
			AverageDaysOpen: 6,
			OldestPrDays:    10,
		}, decode[gen.PullRequestSummary](t, resp))
	})

	t.Run("trends count every pull request", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests/trends", project.Id), adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		trends := decode[gen.PullRequestTrends](t, resp)
		daily, weekly := 0, 0
		for _, n := range trends.Daily {
			daily += n
		}
		for _, n := range trends.Weekly {
			weekly += n
		}
		assert.Equal(t, 3, daily)
		assert.Equal(t, 3, weekly)
	})

	t.Run("empty repository yields zero summary", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests/summary", empty.Id), adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, gen.PullRequestSummary{}, decode[gen.PullRequestSummary](t, resp))
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, fmt.Sprintf("/projects/%d/pull-requests/summary", broken.Id), adminToken, nil)
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, gen.UPSTREAMERROR, decode[gen.ErrorResponse](t, resp).Error.Code)
	})

	t.Run("unknown project", func(t *testing.T) {
		resp := c.do(t, http.MethodGet, "/projects/9999/pull-requests/trends", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unassign then delete user", func(t *testing.T) {
		path := fmt.Sprintf("/projects/%d/users/%d", project.Id, lead.Id)
		require.Equal(t, http.StatusNoContent, c.do(t, http.MethodDelete, path, adminToken, nil).StatusCode)
		assert.Equal(t, http.StatusNotFound, c.do(t, http.MethodDelete, path, adminToken, nil).StatusCode)

		resp := c.do(t, http.MethodDelete, fmt.Sprintf("/users/%d", lead.Id), adminToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = c.do(t, http.MethodGet, "/projects", leadToken, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("delete project", func(t *testing.T) {
		resp := c.do(t, http.MethodDelete, fmt.Sprintf("/projects/%d", empty.Id), adminToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = c.do(t, http.MethodDelete, fmt.Sprintf("/projects/%d", empty.Id), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
