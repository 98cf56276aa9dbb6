package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"botguard-srv/config"
	configMinio "botguard-srv/config/minio"
	configPostgre "botguard-srv/config/postgre"
	configRabbit "botguard-srv/config/rabbitmq"
	configRedis "botguard-srv/config/redis"
	"botguard-srv/internal/httpserver"
	"botguard-srv/pkg/discord"
	"botguard-srv/pkg/encrypter"
	pkgJWT "botguard-srv/pkg/jwt"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/minio"
	"botguard-srv/pkg/rabbitmq"
)

// @title       SMAP BotGuard Service API
// @description Bot detection and alerting engine for promoter engagement metrics.
// @version     1
// @host        botguard-srv.tantai.dev
// @schemes     https
// @BasePath    /botguard
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smap_auth_token
// @description Authentication token stored in HttpOnly cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Redis (alert frequency counters)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize RabbitMQ (alert fan-out; optional)
	var amqpConn rabbitmq.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		amqpConn, err = configRabbit.Connect(cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available, alerts degrade to audit-only: %v", err)
			amqpConn = nil
		} else {
			defer configRabbit.Disconnect()
			logger.Infof(ctx, "RabbitMQ connected successfully")
		}
	}

	// 8. Initialize MinIO (report archive; optional)
	var storage minio.MinIO
	if cfg.MinIO.Endpoint != "" {
		storage, err = configMinio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf(ctx, "MinIO not available, summaries stay local: %v", err)
			storage = nil
		} else {
			defer configMinio.Disconnect()
			logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
		}
	}

	// 9. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 10. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging & Storage Configuration
		AMQPConn: amqpConn,
		Storage:  storage,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
