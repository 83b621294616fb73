package app

import (
	"os"

	"github.com/nirajdighe005/alj-java-challenge/internal/auth"
	"github.com/nirajdighe005/alj-java-challenge/internal/employee"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers all modules on the
// router.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&employee.Employee{}); err != nil {
		return err
	}

	store, err := auth.NewStore(
		auth.Account{
			Username: envOr("API_USER_USERNAME", "user"),
			Password: envOr("API_USER_PASSWORD", "password"),
			Role:     auth.RoleUser,
		},
		auth.Account{
			Username: envOr("API_ADMIN_USERNAME", "admin"),
			Password: envOr("API_ADMIN_PASSWORD", "admin"),
			Role:     auth.RoleAdmin,
		},
	)
	if err != nil {
		return err
	}

	registerModules(router, db, store, logger)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
