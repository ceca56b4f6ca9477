package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"codeberg.org/tubespark/server/api/rest/dashboard"
	"codeberg.org/tubespark/server/api/rest/generate"
	"codeberg.org/tubespark/server/api/rest/health"
	"codeberg.org/tubespark/server/api/rest/ideas"
	"codeberg.org/tubespark/server/api/rest/scripts"
	"codeberg.org/tubespark/server/api/rest/usage"
	"codeberg.org/tubespark/server/docs"
	"codeberg.org/tubespark/server/internal/logger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))
	router.Use(logger.Middleware())
	router.Use(server.metrics.Middleware())

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(server.metrics.Handler()))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)
		v1.GET("/docs/openapi.json", openAPIHandler)

		authenticated := v1.Group("")
		authenticated.Use(server.services.Auth.Middleware())

		generate.RegisterRoutes(authenticated, server.services.Orchestrator, server.services.RateLimit)
		scripts.RegisterRoutes(authenticated, server.services.Scripts, server.services.RateLimit)
		ideas.RegisterRoutes(authenticated, server.services.Ideas)
		usage.RegisterRoutes(authenticated, server.services.Ledger, server.services.Reporter)
		dashboard.RegisterRoutes(authenticated, server.services.Reporter)
	}
}

func openAPIHandler(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
