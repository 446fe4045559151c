// Package router assembles the gin engine from the application's modules.
package router

import (
	"net/http"
	"strings"

	apphttp "wholesale_portal_backend/internal/http"
	"wholesale_portal_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with middleware, health endpoint and all module
// routes mounted.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()

	engine.Use(httpkit.Recovery(app.Logger))
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(app))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	forms := engine.Group("/")
	if app.RateLimiter != nil {
		forms.Use(app.RateLimiter.Middleware())
	}

	ctx := &apphttp.RouterContext{
		Engine: engine,
		Forms:  forms,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

// corsMiddleware allows the storefront-hosted forms to post cross-origin.
func corsMiddleware(app *apphttp.App) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}

	if app.Config.GetCORSAllowAll() || len(app.Config.GetCORSOrigins()) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range app.Config.GetCORSOrigins() {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		}
	}

	return cors.New(cfg)
}
