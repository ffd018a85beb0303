// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/covid19-portal/auth"
	"github.com/danielhkuo/covid19-portal/cliparse"
	"github.com/danielhkuo/covid19-portal/db"
	"github.com/danielhkuo/covid19-portal/models"
	"github.com/danielhkuo/covid19-portal/store"
)

// TestSecret signs tokens in tests
const TestSecret = "test-jwt-secret"

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps SetupTestDB in a store.Store
func SetupTestStore(t *testing.T) (*sql.DB, *store.Store) {
	t.Helper()
	conn := SetupTestDB(t)
	return conn, store.New(conn, db.SQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3000,
		DatabaseType:       "sqlite",
		DatabaseURL:        "test.db",
		JWTSecret:          TestSecret,
		LogLevel:           "error",
		LogFormat:          "json",
		CORSAllowedOrigins: "*",
	}
}

// NewTestTokenManager returns a TokenManager using TestSecret and no expiry
func NewTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(TestSecret, 0)
	if err != nil {
		t.Fatalf("Failed to create token manager: %v", err)
	}
	return tm
}

// CreateTestToken issues a valid token for username
func CreateTestToken(t *testing.T, username string) string {
	t.Helper()
	token, err := NewTestTokenManager(t).Issue(username)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return token
}

// AuthHeader returns request headers carrying a bearer token
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestUser inserts a user with a bcrypt hash of password
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if _, err := conn.Exec(`INSERT INTO "user" (username, password) VALUES (?, ?)`, username, hash); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestState inserts a state row
func CreateTestState(t *testing.T, conn *sql.DB, stateID int64, name string, population int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO state (state_id, state_name, population)
		VALUES (?, ?, ?)
	`, stateID, name, population)
	if err != nil {
		t.Fatalf("Failed to create test state: %v", err)
	}
}

// CreateTestDistrict inserts a district and returns its ID
func CreateTestDistrict(t *testing.T, s *store.Store, d models.DistrictRow) int64 {
	t.Helper()

	id, err := s.CreateDistrict(context.Background(), d)
	if err != nil {
		t.Fatalf("Failed to create test district: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertBody checks the plain text body
func AssertBody(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	b, _ := io.ReadAll(w.Body)
	if string(b) != expected {
		t.Errorf("Expected body %q, got %q", expected, string(b))
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
