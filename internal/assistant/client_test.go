package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAsk(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody askRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(askResponse{
			Text: "Il capocannoniere è Mario Rossi.",
			Sources: []sourceResponse{
				{URI: "https://example.com/classifica", Title: "Classifica marcatori"},
				{},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "secret", HTTPClient: srv.Client()})
	answer, err := client.Ask(context.Background(), "stato squadra", "chi ha segnato di più?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/answers" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotBody.Question != "chi ha segnato di più?" || gotBody.Context != "stato squadra" {
		t.Fatalf("unexpected request body %+v", gotBody)
	}
	if answer.Text != "Il capocannoniere è Mario Rossi." {
		t.Fatalf("unexpected answer %+v", answer)
	}
	if len(answer.Sources) != 1 || answer.Sources[0].URI != "https://example.com/classifica" {
		t.Fatalf("expected empty sources filtered, got %+v", answer.Sources)
	}
}

func TestAskUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.Ask(context.Background(), "", "domanda"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
