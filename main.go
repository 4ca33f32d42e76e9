package main

import (
	"github.com/go-redis/redis/v8"

	"github.com/playgrid/arcade/config"
	"github.com/playgrid/arcade/logger"
	"github.com/playgrid/arcade/monitor"
	"github.com/playgrid/arcade/persistence"
	"github.com/playgrid/arcade/server"
	"github.com/playgrid/arcade/services"
	"github.com/playgrid/arcade/timer"
)

func main() {
	// Initialize logger
	logger.Init()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Optional match archive
	var db persistence.Database
	if cfg.Database.Enabled {
		db, err = persistence.NewGormPostgreSQL(
			cfg.Database.Postgres.Host,
			cfg.Database.Postgres.Port,
			cfg.Database.Postgres.User,
			cfg.Database.Postgres.Password,
			cfg.Database.Postgres.DBName,
		)
		if err != nil {
			logger.Log.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Log.Info("Database connection successful.")
	}

	// Optional leaderboard
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		logger.Log.Infof("Leaderboard redis at %s", cfg.Redis.Addr)
	}

	stats := services.NewStatsService(db, rdb)

	// Metrics endpoint
	mon := monitor.NewMonitor("arcade")
	mon.StartServer(cfg.Server.MetricsAddress)

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg.Server.HTTPAddress, stats, mon)

	// Idle-room eviction
	timers := timer.NewTimerManager()
	gameServer.ScheduleEviction(timers, cfg.Rooms.SweepInterval, cfg.Rooms.IdleTTL)

	// Start Server
	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
