package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/internal/admin/store/drivers/sqlite"
	"github.com/nextx/admin-api/pkg/jwtx"
)

type fixture struct {
	router *Router
	store  store.Store
	users  *service.UserService

	nextIP int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	accessCodec := jwtx.NewCodec(jwtx.KindAccess, []byte("access-secret"))
	refreshCodec := jwtx.NewCodec(jwtx.KindRefresh, []byte("refresh-secret"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(accessCodec, "test", st, logger)
	router.SessionService = &service.SessionService{
		Store:        st,
		AccessCodec:  accessCodec,
		RefreshCodec: refreshCodec,
		AccessTTL:    time.Hour,
		RefreshTTL:   24 * time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.NomenclatureService = &service.NomenclatureService{Store: st}
	router.CategoryService = &service.CategoryService{Store: st}
	router.ApplyRoutes()

	return &fixture{router: router, store: st, users: router.UserService}
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"status_code"`
}

// do runs a request through the full router with a unique client IP per
// call, so the per-IP rate limits never interfere across test steps.
func (f *fixture) do(t *testing.T, method, path, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := httptest.NewRequest(method, path, body)
	f.nextIP++
	r.RemoteAddr = fmt.Sprintf("10.1.%d.%d:4000", f.nextIP/250, f.nextIP%250)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, r)

	var env envelope
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func (f *fixture) doJSON(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return f.do(t, method, path, token, strings.NewReader(string(body)), "application/json")
}

// seed creates a user through the service and returns its generated password.
func (f *fixture) seed(t *testing.T, username string, scopes, roles []string) (domain.User, string) {
	t.Helper()
	u, password, err := f.users.CreateUser(t.Context(), service.CreateUserInput{
		Username: username,
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Scopes:   scopes,
		Roles:    roles,
	})
	require.NoError(t, err)
	return u, password
}

// login performs the password grant and returns the access and refresh tokens.
func (f *fixture) login(t *testing.T, username, password string, scopes ...string) (string, string) {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("scope", strings.Join(scopes, " "))

	rec, env := f.do(t, http.MethodPost, "/api/v1/admin/account/token", "",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken, pair.RefreshToken
}

func allScopes() []string {
	catalog := domain.ScopeCatalog()
	scopes := make([]string, len(catalog))
	for i, s := range catalog {
		scopes[i] = s.Name
	}
	return scopes
}

func TestLoginAndProfileFlow(t *testing.T) {
	f := newFixture(t)
	_, password := f.seed(t, "alice", allScopes(), []string{domain.RoleAdmin})

	access, _ := f.login(t, "alice", password, domain.ScopeUsersRead)

	rec, env := f.do(t, http.MethodGet, "/api/v1/admin/user", access, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	require.Equal(t, "alice", profile.Username)
	require.Equal(t, "alice@example.com", profile.Email)
}

func TestLoginFailureEnvelope(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "alice", nil, nil)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrong")

	rec, env := f.do(t, http.MethodPost, "/api/v1/admin/account/token", "",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Incorrect username or password", env.Message)
	require.Equal(t, http.StatusUnauthorized, env.StatusCode)
	require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestRefreshFlow(t *testing.T) {
	f := newFixture(t)
	_, password := f.seed(t, "alice", allScopes(), []string{domain.RoleAdmin})

	_, refresh := f.login(t, "alice", password, domain.ScopeUsersRead)

	rec, env := f.doJSON(t, http.MethodPost, "/api/v1/admin/account/token/refresh", "",
		map[string]string{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, rec.Code)

	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.Empty(t, pair.RefreshToken)

	// The refreshed access token must be usable.
	rec, _ = f.do(t, http.MethodGet, "/api/v1/admin/user", pair.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// An access token is not a refresh token.
	rec, env = f.doJSON(t, http.MethodPost, "/api/v1/admin/account/token/refresh", "",
		map[string]string{"refresh_token": pair.AccessToken})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Could not validate credentials", env.Message)
}

func TestGuardRejections(t *testing.T) {
	f := newFixture(t)
	_, adminPassword := f.seed(t, "admin", allScopes(), []string{domain.RoleAdmin})
	_, userPassword := f.seed(t, "bob", allScopes(), []string{"Viewer"})

	t.Run("missing token", func(t *testing.T) {
		rec, env := f.do(t, http.MethodGet, "/api/v1/admin/user", "", nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Could not validate credentials", env.Message)
	})

	t.Run("missing scope", func(t *testing.T) {
		// Authenticated admin, but the token was granted no scopes.
		access, _ := f.login(t, "admin", adminPassword)
		rec, env := f.do(t, http.MethodGet, "/api/v1/admin/user/admin", access, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "must stay 401, never 403")
		require.Equal(t, "Not enough permissions", env.Message)
	})

	t.Run("missing role", func(t *testing.T) {
		access, _ := f.login(t, "bob", userPassword, domain.ScopeUsersRead)
		rec, env := f.do(t, http.MethodGet, "/api/v1/admin/user/admin", access, nil, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Not allowed user role", env.Message)
	})

	t.Run("non-admin role can read own profile", func(t *testing.T) {
		access, _ := f.login(t, "bob", userPassword, domain.ScopeUsersRead)
		rec, _ := f.do(t, http.MethodGet, "/api/v1/admin/user", access, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserAdminCRUD(t *testing.T) {
	f := newFixture(t)
	_, password := f.seed(t, "admin", allScopes(), []string{domain.RoleAdmin})
	access, _ := f.login(t, "admin", password, allScopes()...)

	// Create: server generates the password and returns it once.
	rec, env := f.doJSON(t, http.MethodPost, "/api/v1/admin/user/admin", access,
		map[string]any{
			"username": "carol",
			"email":    "carol@example.com",
			"scopes":   []string{domain.ScopeUsersRead},
		})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var created struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.Password)

	// Duplicate username conflicts.
	rec, _ = f.doJSON(t, http.MethodPost, "/api/v1/admin/user/admin", access,
		map[string]any{"username": "carol"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// Get by id.
	rec, env = f.do(t, http.MethodGet, "/api/v1/admin/user/admin/"+created.ID, access, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Equal(t, "carol", fetched.Username)

	// Partial update leaves absent fields alone.
	rec, env = f.doJSON(t, http.MethodPut, "/api/v1/admin/user/admin/"+created.ID, access,
		map[string]any{"disabled": true})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Email    string `json:"email"`
		Disabled bool   `json:"disabled"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.True(t, updated.Disabled)
	require.Equal(t, "carol@example.com", updated.Email)

	// List with a filter.
	rec, env = f.do(t, http.MethodGet, "/api/v1/admin/user/admin?filters=username:carol", access, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)

	// Delete answers 202; a second delete is 404.
	rec, _ = f.do(t, http.MethodDelete, "/api/v1/admin/user/admin/"+created.ID, access, nil, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	rec, _ = f.do(t, http.MethodDelete, "/api/v1/admin/user/admin/"+created.ID, access, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNomenclatureCRUD(t *testing.T) {
	f := newFixture(t)
	_, password := f.seed(t, "admin", allScopes(), []string{domain.RoleAdmin})
	access, _ := f.login(t, "admin", password, allScopes()...)

	// The type catalog is public.
	rec, env := f.do(t, http.MethodGet, "/api/v1/admin/nomenclature/types", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var types []string
	require.NoError(t, json.Unmarshal(env.Data, &types))
	require.Contains(t, types, "DataType")

	// Unknown type is rejected.
	rec, env = f.doJSON(t, http.MethodPost, "/api/v1/admin/nomenclature", access,
		map[string]any{"name": "x", "type": "Bogus"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "Unknown nomenclature type", env.Message)

	rec, env = f.doJSON(t, http.MethodPost, "/api/v1/admin/nomenclature", access,
		map[string]any{"name": "string", "type": "DataType", "pattern": ".*"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// By-type listing.
	rec, env = f.do(t, http.MethodGet, "/api/v1/admin/nomenclature/type/DataType", access, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)

	// Update then delete.
	rec, _ = f.doJSON(t, http.MethodPut, "/api/v1/admin/nomenclature/"+created.ID, access,
		map[string]any{"name": "text", "type": "DataType"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, "/api/v1/admin/nomenclature/"+created.ID, access, nil, "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/admin/nomenclature/"+created.ID, access, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDemoCategoriesArePublic(t *testing.T) {
	f := newFixture(t)

	rec, env := f.doJSON(t, http.MethodPost, "/api/v1/admin/demo/category", "",
		map[string]any{"name": "climate", "priority": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ = f.do(t, http.MethodGet, "/api/v1/admin/demo/"+created.ID, "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/admin/demo", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)

	rec, _ = f.do(t, http.MethodDelete, "/api/v1/admin/demo/category/"+created.ID, "", nil, "")
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestSystemEndpoints(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/admin/health", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Server is alive", env.Message)

	rec, _ = f.do(t, http.MethodGet, "/livez", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/readyz", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/admin/account/scopes", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var catalog []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog, 9)
}

func TestLoginRateLimit(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "alice", nil, nil)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("password", "wrong")

	// Same client IP for every attempt.
	var last *httptest.ResponseRecorder
	for range 6 {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/account/token",
			strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.RemoteAddr = "10.9.9.9:4000"
		last = httptest.NewRecorder()
		f.router.ServeHTTP(last, r)
	}
	require.Equal(t, http.StatusTooManyRequests, last.Code)
}
