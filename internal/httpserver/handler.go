package httpserver

import (
	"context"

	"task-intelligence/internal/middleware"
	"task-intelligence/internal/model"
	pkgErrors "task-intelligence/pkg/errors"
	"task-intelligence/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(func(c *gin.Context) {
		response.Error(c, pkgErrors.ErrNotFound, nil)
	})
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
