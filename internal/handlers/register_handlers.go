package handlers

import (
	"github.com/docflowhq/docflow_backend/cmd/docs"
	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/docflowhq/docflow_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Authenticated API v1 routes
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	RegisterInvoiceInRoutes(v1, services.InvoiceIn, services.User)
	registerInvoiceOutRoutes(v1, services.InvoiceOut, services.User)
	registerExpenseClaimRoutes(v1, services.ExpenseClaim, services.User)
	registerReimbursementRoutes(v1, services.Reimbursement, services.User)
	registerAuditLogRoutes(v1, services.Audit)
	registerDocumentFileRoutes(v1, services.DocumentFile, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
