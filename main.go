package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hgpnguyen/restaurant/configs"
	"github.com/hgpnguyen/restaurant/middlewares"
	"github.com/hgpnguyen/restaurant/pkg/logger"
	"github.com/hgpnguyen/restaurant/routes"
)

func main() {
	if err := logger.Init(os.Getenv("ENV") == "development"); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedGroups(); err != nil {
		log.Fatal("seed groups failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
