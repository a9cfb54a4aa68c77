package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/internal/auth/store"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/jwtx"
	"github.com/moodmate/auth/pkg/slogx"

	_ "github.com/moodmate/auth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	UserService     *service.UserService
	PasswordService *service.PasswordService
}

func NewRouter(
	codec *jwtx.Codec,
	allowedOrigins []string,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(allowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerProfile()
	r.registerPasswords()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MoodMate Authentication API
//	@version		0.1.0
//	@description	User accounts and session authentication: registration, login, token refresh, profile management, and password recovery.
//	@description
//	@description				Access tokens are HS256-signed JWTs presented as bearer tokens. Refresh tokens are long-lived JWTs that can be revoked server-side.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
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

func (r *Router) registerSessions() {
	// POST /register and POST /login - strict rate limit by IP
	// (credential handling endpoints, the main brute force targets)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /refresh and POST /logout - moderate rate limit by IP.
	// Both take the refresh token in the body, not a bearer header.
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &MeHandler{UserService: r.UserService}

	// Authenticated endpoints - lenient rate limit by subject
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitBySubject(httpx.LenientLimit),
	)
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitBySubject(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/v1/auth/me", securedGet)
	r.Mux.Handle("PUT /api/v1/auth/me", securedUpdate)
}

func (r *Router) registerPasswords() {
	// POST /forgot-password and /reset-password - strict rate limit by IP
	// (unauthenticated endpoints touching credentials)
	forgotHandler := &ForgotPasswordHandler{PasswordService: r.PasswordService}
	r.Mux.Handle("POST /api/v1/auth/forgot-password",
		httpx.Chain(forgotHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	resetHandler := &ResetPasswordHandler{PasswordService: r.PasswordService}
	r.Mux.Handle("POST /api/v1/auth/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /change-password - authenticated, strict rate limit by subject
	changeHandler := &ChangePasswordHandler{
		UserService:     r.UserService,
		PasswordService: r.PasswordService,
	}
	secured := httpx.Chain(changeHandler,
		httpx.AuthnMiddleware(r.codec),
		httpx.RateLimitBySubject(httpx.StrictLimit),
	)
	r.Mux.Handle("POST /api/v1/auth/change-password", secured)
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
