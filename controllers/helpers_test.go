package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/routes"
	"github.com/campusmentor/booking-portal/sheets"
)

const testSecret = "test-secret"

// newTestApp builds the full route tree the way main does. Env-dependent
// middleware reads the secret at registration time, so the env comes first.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("SESSION_SECRET", testSecret)

	app := fiber.New()
	routes.SetupPageRoutes(app)
	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupAPIRoutes(app)
	return app
}

// fakeBackend stands in for the spreadsheet web app. It records every
// function invoked and replies from a canned per-function response table.
type fakeBackend struct {
	mu         sync.Mutex
	calls      []string
	lastParams map[string]any
	responses  map[string]string
}

func startFakeBackend(t *testing.T, responses map[string]string) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{responses: responses}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env struct {
			Function   string         `json:"function"`
			Parameters map[string]any `json:"parameters"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))

		fb.mu.Lock()
		fb.calls = append(fb.calls, env.Function)
		fb.lastParams = env.Parameters
		fb.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if resp, ok := responses[env.Function]; ok {
			_, _ = w.Write([]byte(resp))
			return
		}
		_, _ = w.Write([]byte(`{"success":false,"error":"unexpected function ` + env.Function + `"}`))
	}))
	t.Cleanup(srv.Close)

	prev := sheets.Default
	sheets.Default = sheets.New(srv.URL)
	t.Cleanup(func() { sheets.Default = prev })
	return fb
}

func (fb *fakeBackend) callCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.calls)
}

func (fb *fakeBackend) params() map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastParams
}

func studentCookie(t *testing.T) *http.Cookie {
	return sessionCookie(t, auth.Identity{
		Kind:       auth.KindStudent,
		Subject:    "21BCE100",
		Name:       "Asha",
		Email:      "asha@college.edu",
		RollNumber: "21BCE100",
	})
}

func mentorCookie(t *testing.T) *http.Cookie {
	return sessionCookie(t, auth.Identity{
		Kind:    auth.KindMentor,
		Subject: "g-123",
		Name:    "Ravi",
		Email:   "ravi@example.com",
	})
}

func sessionCookie(t *testing.T, id auth.Identity) *http.Cookie {
	t.Helper()
	token, err := auth.NewSessionToken(id, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func adminCookie() *http.Cookie {
	return &http.Cookie{Name: middleware.AdminCookie, Value: "true"}
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
