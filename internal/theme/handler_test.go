package theme_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/bootstrap"
	"resume-studio/internal/shared/config"
	"resume-studio/internal/theme"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:           "0",
		StorageBackend: "memory",
		Env:            "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, theme.Theme) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var th theme.Theme
	if resp.Code == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&th); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, th
}

func TestThemeDefaultsAndSetters(t *testing.T) {
	app := newTestApp(t)

	resp, th := doJSON(t, app.Router, http.MethodGet, "/api/v1/theme", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if th.AccentColor != theme.DefaultAccentColor || th.FontTheme != theme.DefaultFontTheme {
		t.Fatalf("expected defaults, got %+v", th)
	}

	resp, th = doJSON(t, app.Router, http.MethodPut, "/api/v1/theme/accent-color", `{"value":"#EF4444"}`)
	if resp.Code != http.StatusOK || th.AccentColor != "#EF4444" {
		t.Fatalf("accent color not updated: %d %+v", resp.Code, th)
	}

	resp, th = doJSON(t, app.Router, http.MethodPut, "/api/v1/theme/font-theme", `{"value":"classic"}`)
	if resp.Code != http.StatusOK || th.FontTheme != theme.FontClassic {
		t.Fatalf("font theme not updated: %d %+v", resp.Code, th)
	}
}

func TestThemeRejectsUnknownFont(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app.Router, http.MethodPut, "/api/v1/theme/font-theme", `{"value":"papyrus"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestThemeReset(t *testing.T) {
	app := newTestApp(t)

	_, _ = doJSON(t, app.Router, http.MethodPut, "/api/v1/theme/accent-color", `{"value":"#000000"}`)
	resp, th := doJSON(t, app.Router, http.MethodPost, "/api/v1/theme/reset", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if th != theme.DefaultTheme() {
		t.Fatalf("expected defaults after reset, got %+v", th)
	}
}
