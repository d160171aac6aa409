package tracker

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDailyCachedClient(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/err" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "payload")
	}))
	defer srv.Close()

	// The server port is random, so the cache keys are fresh for this run.
	client := DailyCachedClient(0)
	get := func(path string) string {
		t.Helper()
		resp, err := client.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("reading %s body: %v", path, err)
		}
		return string(body)
	}

	if got := get("/quote"); got != "payload" {
		t.Fatalf("GET body = %q, want %q", got, "payload")
	}
	if got := get("/quote"); got != "payload" {
		t.Errorf("cached GET body = %q, want %q", got, "payload")
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1 (the second GET comes from the cache)", calls)
	}

	// Failures are not cached: the next attempt hits the server again.
	get("/err")
	get("/err")
	if calls != 3 {
		t.Errorf("server calls = %d, want 3 (error responses are retried)", calls)
	}

	// Only GETs are cached.
	if _, err := client.Post(srv.URL+"/quote", "text/plain", nil); err != nil {
		t.Fatalf("POST error = %v", err)
	}
	if _, err := client.Post(srv.URL+"/quote", "text/plain", nil); err != nil {
		t.Fatalf("POST error = %v", err)
	}
	if calls != 5 {
		t.Errorf("server calls = %d, want 5 (POST is never cached)", calls)
	}
}
