package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"botguard-srv/config"
	configKafka "botguard-srv/config/kafka"
	configMinio "botguard-srv/config/minio"
	configPostgre "botguard-srv/config/postgre"
	configRabbit "botguard-srv/config/rabbitmq"
	configRedis "botguard-srv/config/redis"
	"botguard-srv/internal/consumer"
	"botguard-srv/pkg/discord"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/minio"
	"botguard-srv/pkg/rabbitmq"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting BotGuard Consumer Service...")

	// Kafka Producer (for publishing detection results)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO (report archive; optional)
	var minioClient minio.MinIO
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = configMinio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf(ctx, "MinIO not available, summaries stay local: %v", err)
			minioClient = nil
		} else {
			defer configMinio.Disconnect()
			logger.Info(ctx, "MinIO client initialized")
		}
	}

	// RabbitMQ (alert fan-out; optional)
	var amqpConn rabbitmq.IRabbitMQ
	if cfg.RabbitMQ.URL != "" {
		amqpConn, err = configRabbit.Connect(cfg.RabbitMQ)
		if err != nil {
			logger.Warnf(ctx, "RabbitMQ not available, alerts degrade to audit-only: %v", err)
			amqpConn = nil
		} else {
			defer configRabbit.Disconnect()
			logger.Info(ctx, "RabbitMQ client initialized")
		}
	}

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		AMQPConn:      amqpConn,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}
}
