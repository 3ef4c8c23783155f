package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything NewRouter needs besides the handler.
type RouterConfig struct {
	CORSOrigins []string
	// PublicDir is served under /public. Empty disables static assets.
	PublicDir string
	// Gatherer backs /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter wires middleware and routes.
func NewRouter(h *OnboardingHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), Recovery())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api := router.Group("/api")
	{
		api.POST("/onboarding", h.SubmitOnboarding)
		api.POST("/client-details/:id", h.SaveClientDetails)
	}

	if cfg.PublicDir != "" {
		router.Static("/public", cfg.PublicDir)
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/health", Health(h.Store))

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", requestIDHeader}
	c.ExposeHeaders = []string{requestIDHeader}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
