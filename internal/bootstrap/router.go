package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/trekfolio/brochure-backend/internal/api/http"
	apimw "github.com/trekfolio/brochure-backend/internal/api/http/middleware"
	"github.com/trekfolio/brochure-backend/internal/assets"
	authmw "github.com/trekfolio/brochure-backend/internal/auth/middleware"
	"github.com/trekfolio/brochure-backend/internal/projects"
	"github.com/trekfolio/brochure-backend/internal/theme"
	"github.com/trekfolio/brochure-backend/internal/users"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	AuthClient *fbauth.Client // nil enables the dev header fallback
	Users      *users.Repo    // nil disables the Postgres user mirror
	Sessions   *projects.Manager
	Assets     *assets.Service // nil disables uploads

	DB    *pgxpool.Pool
	Redis *redis.Client

	RateRPS   rate.Limit
	RateBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(apimw.RequestID())

	if dep.RateRPS > 0 {
		if dep.RateBurst <= 0 {
			dep.RateBurst = int(dep.RateRPS) * 2
		}
		api.Use(apimw.RateLimit(dep.RateRPS, dep.RateBurst))
	}

	// Theme derivation is pure and user-independent; no auth needed.
	theme.Register(api.Group("/themes"))

	authed := api.Group("")
	authed.Use(authmw.RequireUser(dep.AuthClient, dep.Users))

	projects.Register(authed.Group("/projects"), dep.Sessions)
	projects.RegisterSignout(authed.Group("/auth"), dep.Sessions)
	assets.Register(authed.Group("/assets"), dep.Assets)

	if dep.Users != nil {
		users.Register(authed.Group("/accounts"), dep.Users)
	}

	return r
}
