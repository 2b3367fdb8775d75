package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestClient_Me_ParsesIdentity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/auth/me" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("no content type expected on a bodyless request, got %q", ct)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"userId": "1", "email": "a@b.com"},
		})
	}))

	identity, res := client.Me(context.Background())
	if !res.OK() {
		t.Fatalf("expected ok, got %+v", res)
	}
	if identity == nil || identity.UserID != "1" || identity.Email != "a@b.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestClient_Me_DeniedOn401(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	identity, res := client.Me(context.Background())
	if identity != nil {
		t.Fatalf("expected no identity, got %+v", identity)
	}
	if !res.Denied() {
		t.Fatalf("expected denied outcome, got %+v", res)
	}
}

func TestClient_Login_SendsJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		var creds domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if creds.Email != "a@b.com" || creds.Password != "pw" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	res := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "pw"})
	if !res.OK() {
		t.Fatalf("expected ok on 204, got %+v", res)
	}
}

func TestClient_CookiePersistsAcrossCalls(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok-1", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/auth/me":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user": map[string]string{"userId": "1", "email": "a@b.com"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	if res := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "pw"}); !res.OK() {
		t.Fatalf("login failed: %+v", res)
	}
	identity, res := client.Me(context.Background())
	if !res.OK() || identity == nil {
		t.Fatalf("expected the session cookie to ride along, got %+v", res)
	}
}

func TestClient_PostRoutes(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		var payload postPayload
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode payload: %v", err)
			}
			if payload.Title != "T" || payload.Content != "B" {
				t.Errorf("unexpected payload: %+v", payload)
			}
		}
		w.WriteHeader(http.StatusOK)
	}))

	input := ports.PostInput{Title: "T", Body: "B"}

	client.Create(context.Background(), input)
	if gotMethod != http.MethodPost || gotPath != "/posts" {
		t.Fatalf("create sent %s %s", gotMethod, gotPath)
	}

	client.Update(context.Background(), "42", input)
	if gotMethod != http.MethodPut || gotPath != "/posts/42" {
		t.Fatalf("update sent %s %s", gotMethod, gotPath)
	}

	client.Delete(context.Background(), "42")
	if gotMethod != http.MethodDelete || gotPath != "/posts/42" {
		t.Fatalf("delete sent %s %s", gotMethod, gotPath)
	}
}

func TestClient_List_DecodesCollection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"_id": "1", "title": "First", "content": "Body"},
			{"_id": "2", "title": "Second", "content": "Body"},
		})
	}))

	posts, res := client.List(context.Background())
	if !res.OK() {
		t.Fatalf("expected ok, got %+v", res)
	}
	if len(posts) != 2 || posts[0].ID != "1" || posts[1].Title != "Second" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestClient_Classification(t *testing.T) {
	status := http.StatusOK
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	cases := []struct {
		status  int
		outcome domain.Outcome
	}{
		{http.StatusNoContent, domain.OutcomeOK},
		{http.StatusUnauthorized, domain.OutcomeDenied},
		{http.StatusNotFound, domain.OutcomeRejected},
		{http.StatusUnprocessableEntity, domain.OutcomeRejected},
		{http.StatusInternalServerError, domain.OutcomeUnavailable},
		{http.StatusBadGateway, domain.OutcomeUnavailable},
	}
	for _, tc := range cases {
		status = tc.status
		res := client.Logout(context.Background())
		if res.Outcome != tc.outcome {
			t.Fatalf("status %d classified as %s, want %s", tc.status, res.Outcome, tc.outcome)
		}
		if res.Status != tc.status {
			t.Fatalf("expected status %d recorded, got %d", tc.status, res.Status)
		}
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(srv.URL, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	srv.Close()

	res := client.Logout(context.Background())
	if res.Outcome != domain.OutcomeTransport {
		t.Fatalf("expected transport outcome, got %+v", res)
	}
	if res.Err == nil {
		t.Fatalf("transport failure must carry its cause")
	}
	if res.Status != 0 {
		t.Fatalf("no HTTP status expected, got %d", res.Status)
	}
}
