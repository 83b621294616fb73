package app

import (
	_ "github.com/nirajdighe005/alj-java-challenge/docs"
	"github.com/nirajdighe005/alj-java-challenge/internal/auth"
	"github.com/nirajdighe005/alj-java-challenge/internal/employee"
	"github.com/nirajdighe005/alj-java-challenge/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	store *auth.Store,
	logger *zap.Logger,
) {
	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.BasicAuthorizer(store, auth.DefaultRules(), logger))

	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
	}

	// Public per the authorization rule table.
	router.GET("/swagger-ui/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
