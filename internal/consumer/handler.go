package consumer

import (
	"context"
	"fmt"
	"time"

	alertingFile "botguard-srv/internal/alerting/repository/file"
	alertingPostgre "botguard-srv/internal/alerting/repository/postgre"
	alertingRedis "botguard-srv/internal/alerting/repository/redis"
	alertingUsecase "botguard-srv/internal/alerting/usecase"
	analysisUsecase "botguard-srv/internal/analysis/usecase"
	ingestionConsumer "botguard-srv/internal/ingestion/delivery/kafka/consumer"
	"botguard-srv/internal/monitoring"
	monitoringPostgre "botguard-srv/internal/monitoring/repository/postgre"
	monitoringUsecase "botguard-srv/internal/monitoring/usecase"
	normalizerUsecase "botguard-srv/internal/normalizer/usecase"
	pkgHTTP "botguard-srv/pkg/http"
	"botguard-srv/pkg/rabbitmq"
)

// domains holds references to the started domain consumers for cleanup
type domains struct {
	ingestionConsumer *ingestionConsumer.Consumer
	monitoringUC      monitoring.UseCase
	schedulerCancel   context.CancelFunc
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domains, error) {
	cfg := srv.config

	// Initialize normalizer and analysis domains
	normalizerUC := normalizerUsecase.New(srv.l, normalizerUsecase.Config{
		ExtremeValueCap: cfg.Detection.ExtremeValueCap,
	})
	analysisUC := analysisUsecase.New(srv.l, analysisUsecase.Config{
		BanThreshold:           cfg.Detection.BanThreshold,
		WarningThreshold:       cfg.Detection.WarningThreshold,
		MonitorThreshold:       cfg.Detection.MonitorThreshold,
		ViewLikeRatioNormal:    cfg.Detection.ViewLikeRatioNormal,
		ViewCommentRatioNormal: cfg.Detection.ViewCommentRatioNormal,
		SpikeThresholdPercent:  cfg.Detection.SpikeThresholdPercent,
		SpikeWindowMinutes:     cfg.Detection.SpikeWindowMinutes,
		ViewVelocityCeiling:    cfg.Detection.ViewVelocityCeiling,
	})

	// Initialize alerting domain
	alertRepo := alertingPostgre.New(srv.postgresDB, srv.l)
	counterRepo := alertingRedis.New(srv.l, srv.redisClient)
	auditRepo, err := alertingFile.New(srv.l, cfg.Alerting.AuditDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audit trail: %w", err)
	}

	amqpChannel, err := srv.alertChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize alert channel: %w", err)
	}

	alertingUC := alertingUsecase.New(srv.l, alertingUsecase.Config{
		Enabled:          cfg.Alerting.Enabled,
		FrequencyLimit:   cfg.Alerting.FrequencyLimit,
		FrequencyWindow:  time.Duration(cfg.Alerting.FrequencyWindowMinutes) * time.Minute,
		DashboardEnabled: cfg.Alerting.DashboardEnabled,
		EmailEnabled:     cfg.Alerting.EmailEnabled,
		WebhookEnabled:   cfg.Alerting.WebhookEnabled,
		WebhookURL:       cfg.Alerting.WebhookURL,
		Recipients:       cfg.Alerting.Recipients,
		Exchange:         cfg.RabbitMQ.Exchange,
	}, alertRepo, counterRepo, auditRepo, amqpChannel, pkgHTTP.NewClient(pkgHTTP.DefaultConfig()), srv.discord)

	// Initialize monitoring domain
	summaryRepo := monitoringPostgre.New(srv.postgresDB, srv.l)
	monitoringUC := monitoringUsecase.New(srv.l, monitoringUsecase.Config{
		Enabled:                true,
		ReportDir:              cfg.Reporting.ReportDir,
		SummaryInterval:        time.Duration(cfg.Reporting.SummaryIntervalHours) * time.Hour,
		ResetCountersOnSummary: cfg.Reporting.ResetCountersOnSummary,
		ErrorRateThreshold:     cfg.Reporting.ErrorRateThreshold,
		UnackedCriticalCeiling: cfg.Reporting.UnackedCriticalCeiling,
		Bucket:                 cfg.MinIO.Bucket,
	}, alertingUC, alertRepo, summaryRepo, srv.minioClient)

	// Initialize ingestion consumer
	ingestionCons, err := ingestionConsumer.New(ingestionConsumer.Config{
		Logger:       srv.l,
		KafkaConfig:  cfg.Kafka,
		NormalizerUC: normalizerUC,
		AnalysisUC:   analysisUC,
		MonitoringUC: monitoringUC,
		Producer:     srv.kafkaProducer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion consumer: %w", err)
	}

	srv.l.Infof(ctx, "Detection pipeline initialized")

	return &domains{
		ingestionConsumer: ingestionCons,
		monitoringUC:      monitoringUC,
	}, nil
}

// alertChannel opens a channel on the alert exchange. Without a broker the
// alerting pipeline degrades to audit-only.
func (srv *ConsumerServer) alertChannel() (rabbitmq.IChannel, error) {
	if srv.amqpConn == nil {
		return nil, nil
	}

	ch, err := srv.amqpConn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    srv.config.RabbitMQ.Exchange,
		Type:    "topic",
		Durable: true,
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, d *domains) error {
	// Start ingestion consumer
	if err := d.ingestionConsumer.ConsumeEngagementSamples(ctx); err != nil {
		return fmt.Errorf("failed to start ingestion consumer: %w", err)
	}

	// Start summary scheduler
	schedulerCtx, cancel := context.WithCancel(ctx)
	d.schedulerCancel = cancel
	go d.monitoringUC.StartScheduler(schedulerCtx)

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, d *domains) {
	if d.schedulerCancel != nil {
		d.schedulerCancel()
	}

	if d.ingestionConsumer != nil {
		if err := d.ingestionConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing ingestion consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
