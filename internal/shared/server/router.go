package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/config"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

// APIPrefix is the route prefix of every endpoint.
const APIPrefix = "/api/v1"

// Rate limit groups.
const (
	GroupDefault = "DEFAULT"
	GroupChat    = "CHAT"
)

// chatRateDivisor makes model-backed endpoints stricter than the rest of the API.
const chatRateDivisor = 5

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter constructs the Gin engine with middleware, health and metrics endpoints and the given
// feature routes registered under APIPrefix.
func NewRouter(cfg config.Config, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(RateLimitConfig(cfg)),
	)

	api := r.Group(APIPrefix)
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	for _, reg := range registrars {
		if reg != nil {
			reg.RegisterRoutes(api)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		respond.NotFound(c, "route not found")
	})
	return r
}

// RateLimitConfig derives per-group token buckets from cfg. Interview endpoints call the model and
// get a fifth of the default rate.
func RateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	chatBurst := cfg.RateLimitBurst / chatRateDivisor
	if chatBurst < 1 && cfg.RateLimitBurst > 0 {
		chatBurst = 1
	}
	return middleware.RateLimitConfig{
		DefaultGroup: GroupDefault,
		GroupFor:     RateLimitGroup,
		Rules: map[string]middleware.RateLimitRule{
			GroupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			GroupChat:    {Rate: cfg.RateLimitRPS / chatRateDivisor, Burst: chatBurst},
		},
	}
}

// RateLimitGroup maps a request onto its rate limit group.
func RateLimitGroup(c *gin.Context) string {
	if strings.HasPrefix(c.Request.URL.Path, APIPrefix+"/interview/") {
		return GroupChat
	}
	return GroupDefault
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
