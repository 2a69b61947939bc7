package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type stubUserStore struct {
	upserts []repository.UpsertUserInput
	users   map[string]*models.User
	err     error
}

func (s *stubUserStore) Upsert(_ context.Context, input repository.UpsertUserInput) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserts = append(s.upserts, input)
	return &models.User{OpenID: input.OpenID}, nil
}

func (s *stubUserStore) GetByOpenID(_ context.Context, openID string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[openID], nil
}

func newTestService(store *stubUserStore, admins ...string) *Service {
	sessions := NewSessionManager("test-secret", "app_session_id", time.Hour, false)
	return NewService(store, NewAdminPolicy(admins), sessions)
}

func TestAdminPolicyForcesConfiguredIdentities(t *testing.T) {
	policy := NewAdminPolicy([]string{" owner-1 ", "", "owner-2"})

	if role := policy.RoleFor("owner-1"); role == nil || *role != models.RoleAdmin {
		t.Fatalf("expected admin role for owner-1, got %v", role)
	}
	if role := policy.RoleFor("owner-2"); role == nil {
		t.Fatalf("expected admin role for owner-2")
	}
	if role := policy.RoleFor("someone"); role != nil {
		t.Fatalf("expected stored role to be kept for regular users, got %s", *role)
	}
}

func TestLoginUpsertsWithPolicyRole(t *testing.T) {
	store := &stubUserStore{}
	service := newTestService(store, "owner")

	token, err := service.Login(context.Background(), Identity{OpenID: "owner", Name: "Olivia", LoginMethod: "google"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(store.upserts))
	}
	input := store.upserts[0]
	if input.Role == nil || *input.Role != models.RoleAdmin {
		t.Fatalf("expected admin role on upsert, got %v", input.Role)
	}
	if input.Email != nil {
		t.Fatalf("empty email should not overwrite the stored value")
	}
	if input.LastSignedIn.IsZero() {
		t.Fatalf("expected last signed in timestamp")
	}

	if _, err := service.Login(context.Background(), Identity{OpenID: "member"}); err != nil {
		t.Fatalf("Login member: %v", err)
	}
	if store.upserts[1].Role != nil {
		t.Fatalf("non admin login must not write a role")
	}
}

func TestLoginDegradesWithoutDatabase(t *testing.T) {
	service := newTestService(&stubUserStore{err: repository.ErrStoreUnavailable})

	token, err := service.Login(context.Background(), Identity{OpenID: "u1"})
	if err != nil {
		t.Fatalf("expected login to degrade gracefully, got %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token even without database")
	}
}

func TestLoginPropagatesOtherStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	service := newTestService(&stubUserStore{err: boom})

	if _, err := service.Login(context.Background(), Identity{OpenID: "u1"}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	user := &models.User{ID: 7, OpenID: "u7", Role: models.RoleUser}
	store := &stubUserStore{users: map[string]*models.User{"u7": user}}
	service := newTestService(store)
	ctx := context.Background()

	token, err := service.Sessions().Issue("u7", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	resolved, err := service.Resolve(ctx, token)
	if err != nil || resolved == nil || resolved.ID != 7 {
		t.Fatalf("expected user 7, got %+v (%v)", resolved, err)
	}

	for _, bad := range []string{"", "not-a-jwt"} {
		resolved, err := service.Resolve(ctx, bad)
		if err != nil || resolved != nil {
			t.Fatalf("token %q should resolve to anonymous, got %+v (%v)", bad, resolved, err)
		}
	}

	orphan, _ := service.Sessions().Issue("deleted-user", "")
	if resolved, _ := service.Resolve(ctx, orphan); resolved != nil {
		t.Fatalf("orphaned token should resolve to anonymous")
	}

	store.err = repository.ErrStoreUnavailable
	if resolved, err := service.Resolve(ctx, token); err != nil || resolved != nil {
		t.Fatalf("unavailable store should resolve to anonymous, got %+v (%v)", resolved, err)
	}
}

func TestSessionCookies(t *testing.T) {
	sessions := NewSessionManager("s", "app_session_id", 2*time.Hour, true)

	cookie := sessions.Cookie("tok")
	if cookie.Name != "app_session_id" || !cookie.HTTPOnly || !cookie.Secure || cookie.MaxAge != 7200 {
		t.Fatalf("unexpected session cookie: %+v", cookie)
	}
	cleared := sessions.ClearCookie()
	if cleared.MaxAge != -1 || cleared.Value != "" {
		t.Fatalf("unexpected cleared cookie: %+v", cleared)
	}
}

func TestOAuthClientExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["code"] != "abc" || body["clientId"] != "client-1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "at-1"})
		case "/oauth/userinfo":
			if r.Header.Get("Authorization") != "Bearer at-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(Identity{OpenID: "oid-9", Name: "Kim", Email: "kim@example.com"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewOAuthClient(server.URL+"/", "client-1")
	identity, err := client.Exchange(context.Background(), "abc", "https://app.example.com/api/oauth/callback")
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if identity.OpenID != "oid-9" || identity.Email != "kim@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := client.Exchange(context.Background(), "wrong", ""); err == nil {
		t.Fatalf("expected error for rejected code")
	}

	if _, err := NewOAuthClient("", "").Exchange(context.Background(), "abc", ""); !errors.Is(err, ErrOAuthNotConfigured) {
		t.Fatalf("expected ErrOAuthNotConfigured, got %v", err)
	}
}

func TestRedirectURIFromState(t *testing.T) {
	state := base64.StdEncoding.EncodeToString([]byte("https://app.example.com/api/oauth/callback"))
	if got := RedirectURIFromState(state); got != "https://app.example.com/api/oauth/callback" {
		t.Fatalf("unexpected redirect uri: %s", got)
	}
	if got := RedirectURIFromState("%%%"); got != "" {
		t.Fatalf("expected empty redirect uri for garbage state, got %s", got)
	}
}
