package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_AssignsIdentifierWhenMissing(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, req)

	if seen == "" {
		t.Fatal("expected a request id in the handler context")
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestID_HonorsCallerSuppliedIdentifier(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, req)

	if seen != "caller-supplied-id" {
		t.Fatalf("expected caller supplied id, got %q", seen)
	}
}
