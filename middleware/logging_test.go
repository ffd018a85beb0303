// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func loggedHandler(buf *bytes.Buffer, h http.Handler) http.Handler {
	log := zerolog.New(buf)
	return Chain(h, WithLogger(log), RequestID, AccessLog, Recover)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := loggedHandler(&buf, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	}))

	req := httptest.NewRequest("POST", "/districts/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusCreated || w.Body.String() != "created" {
		t.Fatalf("Logging changed the response: %d %q", w.Code, w.Body.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "request completed" {
		t.Errorf("Unexpected message: %v", entry["message"])
	}
	if entry["method"] != "POST" || entry["path"] != "/districts/" {
		t.Errorf("Unexpected method/path: %v %v", entry["method"], entry["path"])
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Errorf("Expected status 201 in log, got %v", entry["status"])
	}
	if entry["size"] != float64(len("created")) {
		t.Errorf("Expected size 7 in log, got %v", entry["size"])
	}
	if entry["request_id"] != w.Header().Get(RequestIDHeader) {
		t.Errorf("Expected request_id %q in log, got %v", w.Header().Get(RequestIDHeader), entry["request_id"])
	}
}

func TestRequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		var buf bytes.Buffer
		h := loggedHandler(&buf, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected generated UUID request id, got %q", id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		var buf bytes.Buffer
		h := loggedHandler(&buf, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-id-1")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "upstream-id-1" {
			t.Errorf("Expected upstream request id, got %q", got)
		}
		if !strings.Contains(buf.String(), `"request_id":"upstream-id-1"`) {
			t.Errorf("Expected upstream request id in log, got %q", buf.String())
		}
	})
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	h := loggedHandler(&buf, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/states/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if w.Body.String() != "Internal Server Error" {
		t.Errorf("Expected plain 500 body, got %q", w.Body.String())
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("Expected panic to be logged, got %q", buf.String())
	}
}
