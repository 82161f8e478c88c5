package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"lexcase/internal/core/auth"
	"lexcase/internal/core/cache"
	"lexcase/internal/core/config"
	"lexcase/internal/core/database"
	"lexcase/internal/core/logger"
	"lexcase/internal/core/server"
	"lexcase/internal/repo"
	"lexcase/internal/service"
	"lexcase/internal/transport/http/handler"
	mdw "lexcase/internal/transport/http/middleware"
	"lexcase/internal/transport/http/router"
	"lexcase/internal/validation"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log, cleanup := logger.FromConfig(cfg.Log, cfg.IsProduction())
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()
	gin.DefaultWriter = logger.ToWriter(log.Named("gin"), zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log.Named("gin"), zapcore.ErrorLevel)

	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.DSN)),
	)
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter, err := auth.NewJWTer(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		log.Fatal("jwt", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	var identities service.IdentityLoader = service.NewIdentities(users)
	if cfg.Redis.Addr != "" {
		rc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = rc.Close() }()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rc.Ping(ctx); err != nil {
			// lookups still fall through to the database
			log.Warn("redis unreachable, identity cache degraded", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
		identities = service.NewCachedIdentities(identities, rc, time.Duration(cfg.Redis.IdentityCacheSec)*time.Second)
	}

	v := validation.New()
	authSvc := service.NewAuthService(users, auth.NewHasher(cfg.BcryptCost), jwter, log)
	caseSvc := service.NewCaseService(repo.NewCaseRepo(db), log)

	r := router.NewAPIEngine(
		router.Deps{Log: log, Production: cfg.IsProduction(), Limits: cfg.Limits},
		handler.NewAuthHandler(authSvc, v),
		handler.NewCaseHandler(caseSvc, v, mdw.Authenticate(jwter, identities)),
	)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()
	log.Info("api started",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
		zap.Bool("identity_cache", cfg.Redis.Addr != ""),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("api stopped")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		PrepareStmt:        cfg.DB.PrepareStmt,
		Log:                logger.ToStdLogger(l.Named("gorm"), zapcore.WarnLevel),
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	if err := database.Ping(db); err != nil {
		l.Fatal("db ping", zap.Error(err))
	}
	return db
}
