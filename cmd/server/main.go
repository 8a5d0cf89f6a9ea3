package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"pharmatrace/docs"
	"pharmatrace/internal/auth"
	"pharmatrace/internal/cache"
	"pharmatrace/internal/chain"
	"pharmatrace/internal/config"
	"pharmatrace/internal/db"
	"pharmatrace/internal/handler"
	"pharmatrace/internal/model"
	"pharmatrace/internal/pinning"
	"pharmatrace/internal/qr"
	"pharmatrace/internal/repository"
	"pharmatrace/internal/router"
	"pharmatrace/internal/service"
)

const shutdownGrace = 10 * time.Second

// @title Pharmaceutical Batch Registry API
// @version 1.0
// @description Batch registration, verification and participant approval backed by an on-chain registry.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log.SetLevel(logLevel(cfg.LogLevel))
	log.SetHeader("${time_rfc3339} ${level} ${short_file}:${line}")

	if cfg.PrivateKey == "" || cfg.ContractAddress == "" {
		log.Fatal("PRIVATE_KEY and CONTRACT_ADDRESS must be set")
	}

	gormDB, err := db.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables...")
		if err := gormDB.Migrator().DropTable(&model.RegistrationRequest{}, &model.PPBRecord{}); err != nil {
			log.Warnf("drop tables: %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.RegistrationRequest{}, &model.PPBRecord{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "pharmatrace:")
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warnf("redis unavailable at %s, serving without cache: %v", cfg.RedisAddr, err)
	}
	defer cacheClient.Close()

	registry, err := chain.Dial(ctx, cfg.RPCURL, cfg.PrivateKey, cfg.ContractAddress, cfg.ChainTimeout)
	if err != nil {
		log.Fatalf("chain init: %v", err)
	}
	defer registry.Close()
	log.Infof("signing registry writes as %s", registry.Signer())

	// Initialize repositories
	registrationRepo := repository.NewRegistrationRepository(gormDB)
	ppbRepo := repository.NewPPBRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	adminAuth := auth.NewAdminAuthenticator(cfg.AdminPasswordHash)

	// Initialize services
	ppbService := service.NewPPBService(ppbRepo, cacheClient)
	if _, err := ppbService.SeedIfEmpty(ctx); err != nil {
		log.Fatalf("seed PPB registry: %v", err)
	}
	registrationService := service.NewRegistrationService(registrationRepo, ppbService, registry, jwtService)
	batchService := service.NewBatchService(
		registry,
		pinning.NewClient(cfg.PinataURL, cfg.PinataJWT, cfg.PinTimeout),
		qr.NewEncoder(0),
		cfg.FrontendURL,
		cfg.VerifyQR,
	)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, jwtService, cfg.AdminAuthEnabled(), router.Handlers{
		Registration: handler.NewRegistrationHandler(registrationService),
		Batch:        handler.NewBatchHandler(batchService, cfg.RevokeResponse),
		PPB:          handler.NewPPBHandler(ppbService),
		Auth:         handler.NewAuthHandler(adminAuth, jwtService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)
	if !cfg.AdminAuthEnabled() {
		log.Warn("ADMIN_PASSWORD_HASH not set: admin routes are unauthenticated")
	}

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func logLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
