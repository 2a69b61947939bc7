package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/config"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/handlers"
)

func newTestApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	if err := RegisterRoutes(app, cfg, nil, nil); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return app
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "secret",
		SessionCookieName: "app_session_id",
		SessionTTL:        time.Hour,
		AppEnv:            "test",
	}
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

func TestHealthWithoutDatabase(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" || body["database"] != "unavailable" {
		t.Fatalf("unexpected health response %d %v", resp.StatusCode, body)
	}
}

func TestProcedureGatesAndErrors(t *testing.T) {
	app := newTestApp(t, testConfig())

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		code    string
		message string
	}{
		{"protected query", http.MethodGet, "/api/trpc/sleep.list", 401, "UNAUTHORIZED", "Please login"},
		{"protected mutation", http.MethodPost, "/api/trpc/water.add", 401, "UNAUTHORIZED", "Please login"},
		{"admin anonymous", http.MethodPost, "/api/trpc/blog.create", 401, "UNAUTHORIZED", "Please login"},
		{"public without store", http.MethodGet, "/api/trpc/blog.list", 503, "SERVICE_UNAVAILABLE", "Database not available"},
		{"unknown procedure", http.MethodGet, "/api/trpc/steps.list", 404, "NOT_FOUND", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, app, httptest.NewRequest(tt.method, tt.path, nil))
			if resp.StatusCode != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != tt.code {
				t.Fatalf("expected error code %s, got %+v", tt.code, body.Error)
			}
			if tt.message != "" && body.Error.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, body.Error.Message)
			}
		})
	}
}

func TestPublicInquiryValidatesBeforeStore(t *testing.T) {
	app := newTestApp(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/trpc/inquiries.create", strings.NewReader(`{"name":"A","email":"nope","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest || body.Error == nil || body.Error.Code != "BAD_REQUEST" {
		t.Fatalf("expected validation error, got %d %+v", resp.StatusCode, body.Error)
	}
}

func TestAnonymousMeAndLogout(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/trpc/auth.me", nil))
	if resp.StatusCode != http.StatusOK || string(body.Result) != "null" {
		t.Fatalf("expected null user, got %d %s", resp.StatusCode, body.Result)
	}

	resp, body = doRequest(t, app, httptest.NewRequest(http.MethodPost, "/api/trpc/auth.logout", nil))
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body.Result), `"success":true`) {
		t.Fatalf("unexpected logout response %d %s", resp.StatusCode, body.Result)
	}
	if cookie := resp.Header.Get("Set-Cookie"); !strings.Contains(cookie, "app_session_id=") {
		t.Fatalf("expected the session cookie to be cleared, got %q", cookie)
	}
}

func TestDocsCatalogue(t *testing.T) {
	cfg := testConfig()
	cfg.AppEnv = "development"
	cfg.EnableDocs = true
	app := newTestApp(t, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	page, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected docs page, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Security-Policy"); !strings.Contains(got, "default-src 'none'") {
		t.Fatalf("expected restrictive CSP, got %q", got)
	}
	for _, name := range []string{"sleep.create", "goals.progress", "export.csv"} {
		if !strings.Contains(string(page), name) {
			t.Fatalf("docs page is missing %s", name)
		}
	}

	jsonResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/procedures.json", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer jsonResp.Body.Close()
	var catalogue struct {
		Procedures []Procedure `json:"procedures"`
	}
	if err := json.NewDecoder(jsonResp.Body).Decode(&catalogue); err != nil {
		t.Fatalf("decode: %v", err)
	}
	tiers := map[string]string{}
	for _, p := range catalogue.Procedures {
		tiers[p.Name] = p.Tier
	}
	if tiers["blog.create"] != "admin" || tiers["sleep.list"] != "protected" || tiers["blog.list"] != "public" {
		t.Fatalf("unexpected tiers: %v", tiers)
	}
}

func TestDocsDisabledOutsideDevelopment(t *testing.T) {
	cfg := testConfig()
	cfg.EnableDocs = true
	app := newTestApp(t, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected docs to be hidden, got %d", resp.StatusCode)
	}
}
