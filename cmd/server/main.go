package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"dfontes/server/config"
	"dfontes/server/internal/api"
	"dfontes/server/internal/auth"
	"dfontes/server/internal/repository"
	"dfontes/server/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	var st store.Store
	if cfg.Database.Path == "" {
		logger.Warn("No database path configured, using in-memory store")
		st = store.NewMemoryStore()
	} else {
		sqliteStore, err := store.NewSQLiteStore(cfg.Database.Path)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open database")
		}
		defer sqliteStore.Close()
		logger.Infof("Using database at: %s", cfg.Database.Path)
		st = sqliteStore
	}

	properties := repository.NewPropertyRepository(st, logger)
	clients := repository.NewClientRepository(st, logger)
	proposals := repository.NewProposalRepository(st, logger)
	messages := repository.NewMessageRepository(st, logger)

	sessions := auth.NewSessionManager(st, logger)

	adminHash := cfg.Admin.PasswordHash
	if adminHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH not set, falling back to the development password")
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			logger.WithError(err).Fatal("Failed to hash development password")
		}
		adminHash = string(hashed)
	}

	authenticator := auth.NewAuthenticator(auth.AdminAccount{
		ID:           1,
		Email:        cfg.Admin.Email,
		Name:         cfg.Admin.Name,
		PasswordHash: adminHash,
	}, auth.NewBcryptVerifier(), sessions, clients, logger)

	handler := api.NewHandler(properties, clients, proposals, messages, authenticator, logger)

	router := gin.Default()
	api.SetupRoutes(router, handler, cfg.Server.AllowedOrigins)

	logger.Infof("Starting server on port %d", cfg.Server.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
