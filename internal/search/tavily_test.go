package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *TavilyClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewTavilyClient("test-key", srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestBuildQuery(t *testing.T) {
	got := BuildQuery([]string{"python", "sql"})
	want := "jobs hiring now for (python sql) site:linkedin.com OR site:ethiojobs.net OR site:remoteok.com"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSearchJobsEmptySkills(t *testing.T) {
	client, err := NewTavilyClient("test-key", "", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.SearchJobs(context.Background(), nil); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchJobsPassthroughPayload(t *testing.T) {
	var req searchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"results":[{"title":"Backend Engineer","url":"https://example.com"}]}`))
	})

	payload, err := client.SearchJobs(context.Background(), []string{"go", "sql"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if req.APIKey != "test-key" {
		t.Fatalf("expected api key in body, got %q", req.APIKey)
	}
	if req.Query != BuildQuery([]string{"go", "sql"}) {
		t.Fatalf("unexpected query %q", req.Query)
	}

	var parsed struct {
		Results []struct {
			Title string `json:"title"`
		} `json:"results"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("payload not passthrough JSON: %v", err)
	}
	if len(parsed.Results) != 1 || parsed.Results[0].Title != "Backend Engineer" {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestSearchJobsForbidden(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		if _, err := client.SearchJobs(context.Background(), []string{"go"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("status %d: expected ErrForbidden, got %v", status, err)
		}
	}
}

func TestSearchJobsServerErrorIsNotForbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.SearchJobs(context.Background(), []string{"go"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrForbidden) {
		t.Fatalf("server error must not map to ErrForbidden: %v", err)
	}
}
