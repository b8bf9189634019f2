package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"

	_ "github.com/aussiebroadwan/vaultshare/api/vault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	usersOnly  = domain.NewRoleSet(domain.RoleUser)
	adminsOnly = domain.NewRoleSet(domain.RoleAdmin)
	anyRole    = domain.NewRoleSet(domain.RoleUser, domain.RoleAdmin)
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Cookie configures the access_token cookie set at login.
	Cookie httpx.CookieOptions

	UserService      *service.UserService
	AccountService   *service.AccountService
	WorkspaceService *service.WorkspaceService
	SharingService   *service.SharingService
	AdminService     *service.AdminService
}

// NewRouter creates a router. Credentialed cross-origin requests are
// accepted from the listed origins.
func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	origins ...string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Cookie:       httpx.CookieOptions{TTL: time.Hour},
	}

	r.middlewares = []httpx.Middleware{
		httpx.CORS(origins...),
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerAccounts()
	r.registerWorkspaces()
	r.registerSharing()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			vaultshare API
//	@version		0.1.0
//	@description	Credential vault with shared workspaces. Stored account passwords are sealed at rest
//	@description	and returned in plaintext to their owner and to workspace members.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/vaultshare
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}". Browsers may send the access_token cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication, the role guard and a per-user limit.
func (r *Router) secured(h http.HandlerFunc, roles domain.RoleSet, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		requireRoles(roles),
		httpx.RateLimitByUser(limit),
	)
}

// requireRoles adapts the domain role check to the httpx guard.
func requireRoles(roles domain.RoleSet) httpx.Middleware {
	return httpx.RequireRole(func(role string) bool {
		return domain.Allowed(roles, domain.Role(role))
	})
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService, Cookie: r.Cookie}

	// Account creation and confirmation - strict limit by IP
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("POST /api/auth/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm), httpx.RateLimitByIP(httpx.StrictLimit)),
	)

	// Credential and OTP attempts - strict limit by IP + email to slow brute force
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")),
	)
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")),
	)
	r.Mux.Handle("POST /api/auth/verify-otp",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyOTP), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")),
	)
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")),
	)

	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout), httpx.RateLimitByIP(httpx.LenientLimit)),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, AdminService: r.AdminService}

	r.Mux.Handle("GET /api/users/me", r.secured(h.HandleMe, anyRole, httpx.LenientLimit))
	r.Mux.Handle("GET /api/users", r.secured(h.HandleList, adminsOnly, httpx.LenientLimit))
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /api/accounts/store", r.secured(h.HandleStore, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/accounts", r.secured(h.HandleList, usersOnly, httpx.LenientLimit))
	r.Mux.Handle("GET /api/accounts/{accountId}", r.secured(h.HandleGet, usersOnly, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/accounts/update/{accountId}", r.secured(h.HandleUpdate, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/accounts/delete/{accountId}", r.secured(h.HandleDelete, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/accounts/restore/{accountId}", r.secured(h.HandleRestore, adminsOnly, httpx.ModerateLimit))
}

func (r *Router) registerWorkspaces() {
	h := &WorkspacesHandler{WorkspaceService: r.WorkspaceService}

	r.Mux.Handle("POST /api/workspaces/create", r.secured(h.HandleCreate, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/workspaces", r.secured(h.HandleList, usersOnly, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/workspaces/update/{workspaceId}", r.secured(h.HandleUpdate, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/workspaces/soft-delete/{workspaceId}", r.secured(h.HandleDelete, usersOnly, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/workspaces/restore/{workspaceId}", r.secured(h.HandleRestore, adminsOnly, httpx.ModerateLimit))
}

func (r *Router) registerSharing() {
	h := &SharingHandler{SharingService: r.SharingService}

	r.Mux.Handle("POST /api/sharing-workspace/create", r.secured(h.HandleCreate, usersOnly, httpx.ModerateLimit))

	// The invitation id is the credential - strict limit by IP
	r.Mux.Handle("POST /api/sharing-workspace/confirm-invitation",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{AdminService: r.AdminService}

	r.Mux.Handle("GET /api/dashboard/user-registrations", r.secured(h.HandleUserRegistrations, adminsOnly, httpx.LenientLimit))
	r.Mux.Handle("GET /api/dashboard/accounts-of-users", r.secured(h.HandleAccountsByDomain, adminsOnly, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
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
