package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestExchangeHashID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("hashid") != "abc" {
			t.Errorf("expected hashid header 'abc', got %q", r.Header.Get("hashid"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t1","message":"Token generated successfully"}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, 5*time.Second, testLogger())
	token, err := c.ExchangeHashID(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "t1" {
		t.Errorf("expected token 't1', got %q", token)
	}
}

func TestExchangeHashID_EmptyHashID(t *testing.T) {
	c := NewIdentityClient("http://unused", 5*time.Second, testLogger())
	if _, err := c.ExchangeHashID(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestExchangeHashID_TokenWithWrongMessage(t *testing.T) {
	// A token alongside an error message must not be accepted as valid.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t1","message":"Account suspended"}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.ExchangeHashID(context.Background(), "abc"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestExchangeHashID_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"","message":"Token generated successfully"}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.ExchangeHashID(context.Background(), "abc"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestExchangeHashID_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, 5*time.Second, testLogger())
	if _, err := c.ExchangeHashID(context.Background(), "abc"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestExchangeHashID_Unreachable(t *testing.T) {
	c := NewIdentityClient("http://127.0.0.1:1", 2*time.Second, testLogger())
	if _, err := c.ExchangeHashID(context.Background(), "abc"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}
