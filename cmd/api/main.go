package main

import (
	"go-hris-registry/internal/app"
	"go-hris-registry/internal/bootstrap"
	"go-hris-registry/internal/config"
	"go-hris-registry/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	if err := bootstrap.StartHTTPServer(r, cfg.HTTP, bootstrap.NewStdoutAuditLogger(logger)); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
