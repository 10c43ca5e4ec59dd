package http

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/auth"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/memo"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/system"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/team"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/user"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/config"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/handler"
	appmiddleware "github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/middleware"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	errs := response.NewNormalizer(log)
	authMw := appmiddleware.Auth(deps.JWTProvider, errs)
	adminOnly := appmiddleware.RequireRole(errs, domain.RoleAdmin)
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo:      deps.UserRepo,
		AuthorityRepo: deps.AuthorityRepo,
		TeamRepo:      deps.TeamRepo,
		JWTProvider:   deps.JWTProvider,
	})
	userSvc := user.NewService(deps.UserRepo)
	teamSvc := team.NewService(deps.TeamRepo, deps.SystemRepo)
	systemSvc := system.NewService(deps.SystemRepo, deps.QualityRepo)
	memoSvc := memo.NewService(memo.ServiceDeps{
		MemoRepo:  deps.MemoRepo,
		UserRepo:  deps.UserRepo,
		Publisher: deps.Publisher,
	})

	healthH := handler.NewHealthHandler(errs)
	authH := handler.NewAuthHandler(authSvc, errs)
	userH := handler.NewUserHandler(userSvc, errs)
	teamH := handler.NewTeamHandler(teamSvc, errs)
	systemH := handler.NewSystemHandler(systemSvc, errs)
	memoH := handler.NewMemoHandler(memoSvc, errs)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/signup", authH.Signup)
		r.With(sensitiveRL.Limit).Post("/login", authH.Login)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/me", userH.Me)
			r.Delete("/users/me", userH.Withdraw)
			r.Get("/teams", teamH.List)
			r.Get("/teams/{id}", teamH.Get)
			r.Get("/systems/{id}", systemH.Get)
			r.Get("/systems/{id}/qualities", systemH.Qualities)
			r.Get("/memos/{id}", memoH.Get)

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)

				r.Post("/memos", memoH.Create)
				r.Patch("/memos/{id}", memoH.Update)
				r.Delete("/memos/{id}", memoH.Delete)
			})
		})
	})

	return r
}
