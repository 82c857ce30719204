package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testServer(connected bool, bearerToken string) *Server {
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("mcp"))
	})
	return New(mcpHandler, func() bool { return connected }, bearerToken, slog.Default())
}

// TestHealthEndpoint verifies the health payload including the Garmin
// connection flag.
func TestHealthEndpoint(t *testing.T) {
	srv := testServer(true, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["server"] != "FreeStride" {
		t.Errorf("body = %v", body)
	}
	if body["garmin_connected"] != true {
		t.Errorf("garmin_connected = %v, want true", body["garmin_connected"])
	}
}

// TestHealthDisconnected verifies the flag flips when no session is
// loaded.
func TestHealthDisconnected(t *testing.T) {
	srv := testServer(false, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["garmin_connected"] != false {
		t.Errorf("garmin_connected = %v, want false", body["garmin_connected"])
	}
}

// TestMCPRequiresAuth verifies that /mcp is gated by the bearer token
// while /health stays open.
func TestMCPRequiresAuth(t *testing.T) {
	srv := testServer(true, "secret")

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated /mcp status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "mcp" {
		t.Errorf("authenticated /mcp = %d %q, want the MCP handler response", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("/health status = %d, want 200 without auth", rec.Code)
	}
}

// TestMCPOpenWithoutToken verifies that an empty configured token leaves
// /mcp unauthenticated for local use.
func TestMCPOpenWithoutToken(t *testing.T) {
	srv := testServer(true, "")

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("/mcp status = %d, want 200 with auth disabled", rec.Code)
	}
}
