package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/service"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/httpx"
	"github.com/nextx/admin-api/pkg/jwtx"
	"github.com/nextx/admin-api/pkg/slogx"

	_ "github.com/nextx/admin-api/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const basePath = "/api/v1/admin"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	accessCodec  *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	SessionService      *service.SessionService
	UserService         *service.UserService
	NomenclatureService *service.NomenclatureService
	CategoryService     *service.CategoryService
}

func NewRouter(
	accessCodec *jwtx.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		accessCodec:  accessCodec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccount()
	r.registerUsers()
	r.registerNomenclatures()
	r.registerCategories()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Admin Backend API
//	@version		0.1.0
//	@description	REST backend for the admin frontend: account sessions, user
//	@description	administration, nomenclature reference data and the demo category CRUD.
//	@description
//	@description				Access tokens are HS256 JWTs presented as "Bearer {token}".
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1/admin
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccount() {
	h := &AccountHandler{SessionService: r.SessionService}

	// POST /account/token - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST "+basePath+"/account/token",
		httpx.Chain(http.HandlerFunc(h.HandleToken),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /account/token/refresh - moderate rate limit by IP
	r.Mux.Handle("POST "+basePath+"/account/token/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /account/scopes - public catalog, lenient limit
	r.Mux.Handle("GET "+basePath+"/account/scopes",
		httpx.Chain(http.HandlerFunc(h.HandleScopes),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	// GET /user - own profile, any role with users:read
	r.Mux.Handle("GET "+basePath+"/user",
		httpx.Chain(http.HandlerFunc(h.HandleProfile),
			httpx.Guard(r.accessCodec, httpx.Policy{Scopes: []string{domain.ScopeUsersRead}}),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	adminRead := httpx.Policy{
		Scopes: []string{domain.ScopeUsersRead},
		Roles:  []string{domain.RoleAdmin},
	}
	adminWrite := httpx.Policy{
		Scopes: []string{domain.ScopeUsersWrite},
		Roles:  []string{domain.RoleAdmin},
	}
	adminDelete := httpx.Policy{
		Scopes: []string{domain.ScopeUsersDelete},
		Roles:  []string{domain.RoleAdmin},
	}

	r.Mux.Handle("GET "+basePath+"/user/admin",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.Guard(r.accessCodec, adminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET "+basePath+"/user/admin/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.Guard(r.accessCodec, adminRead),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST "+basePath+"/user/admin",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.Guard(r.accessCodec, adminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT "+basePath+"/user/admin/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.Guard(r.accessCodec, adminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE "+basePath+"/user/admin/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.Guard(r.accessCodec, adminDelete),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerNomenclatures() {
	h := &NomenclatureHandler{NomenclatureService: r.NomenclatureService}

	// GET /nomenclature/types - public enum catalog
	r.Mux.Handle("GET "+basePath+"/nomenclature/types",
		httpx.Chain(http.HandlerFunc(h.HandleTypes),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	read := httpx.Policy{
		Scopes: []string{domain.ScopeNomenclRead},
		Roles:  []string{domain.RoleAdmin},
	}
	write := httpx.Policy{
		Scopes: []string{domain.ScopeNomenclWrite},
		Roles:  []string{domain.RoleAdmin},
	}
	del := httpx.Policy{
		Scopes: []string{domain.ScopeNomenclDel},
		Roles:  []string{domain.RoleAdmin},
	}

	r.Mux.Handle("GET "+basePath+"/nomenclature",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.Guard(r.accessCodec, read),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET "+basePath+"/nomenclature/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.Guard(r.accessCodec, read),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET "+basePath+"/nomenclature/type/{type}",
		httpx.Chain(http.HandlerFunc(h.HandleListByType),
			httpx.Guard(r.accessCodec, read),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST "+basePath+"/nomenclature",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.Guard(r.accessCodec, write),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT "+basePath+"/nomenclature/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.Guard(r.accessCodec, write),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE "+basePath+"/nomenclature/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.Guard(r.accessCodec, del),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCategories() {
	h := &CategoryHandler{CategoryService: r.CategoryService}

	// Demo CRUD is public; lenient per-IP limits keep it from being abused.
	r.Mux.Handle("GET "+basePath+"/demo",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET "+basePath+"/demo/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST "+basePath+"/demo/category",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE "+basePath+"/demo/category/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET "+basePath+"/health",
		httpx.Chain(HealthHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
