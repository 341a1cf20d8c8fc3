package app

import (
	"cyber_academy_backend/docs"
	"cyber_academy_backend/internal/middleware"
	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func middlewareChain() []gin.HandlerFunc {
	return []gin.HandlerFunc{middleware.Recovery(), middleware.RequestLogger()}
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		util.Success(ctx, gin.H{"message": "CyberAcademy API is running"})
	})

	router.NoRoute(func(ctx *gin.Context) {
		util.NotFound(ctx, util.MsgRouteNotFound)
	})

	// 1. Public routes
	a.registerPublicRoutes(router, c)

	// 2. Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth))
	{
		a.registerMemberRoutes(authGroup, c)
	}

	// 3. Admin routes
	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/modules", c.module.ListModules)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/modules/:id", c.module.GetModule)
	rg.POST("/activity/submit", c.activity.SubmitActivity)
	rg.GET("/dashboard", c.dashboard.GetDashboard)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(a.services.auth), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/modules/import", c.catalog.ImportModules)
	}
}
