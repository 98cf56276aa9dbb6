package httpserver

import (
	"fmt"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	alertingHTTP "botguard-srv/internal/alerting/delivery/http"
	alertingFile "botguard-srv/internal/alerting/repository/file"
	alertingPostgre "botguard-srv/internal/alerting/repository/postgre"
	alertingRedis "botguard-srv/internal/alerting/repository/redis"
	alertingUsecase "botguard-srv/internal/alerting/usecase"
	analysisHTTP "botguard-srv/internal/analysis/delivery/http"
	analysisUsecase "botguard-srv/internal/analysis/usecase"
	"botguard-srv/internal/middleware"
	monitoringHTTP "botguard-srv/internal/monitoring/delivery/http"
	monitoringPostgre "botguard-srv/internal/monitoring/repository/postgre"
	monitoringUsecase "botguard-srv/internal/monitoring/usecase"
	normalizerHTTP "botguard-srv/internal/normalizer/delivery/http"
	normalizerUsecase "botguard-srv/internal/normalizer/usecase"
	pkgHTTP "botguard-srv/pkg/http"
	"botguard-srv/pkg/rabbitmq"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Initialize normalizer domain
	normalizerUC := normalizerUsecase.New(srv.l, normalizerUsecase.Config{
		ExtremeValueCap: srv.config.Detection.ExtremeValueCap,
	})

	// Initialize analysis domain
	analysisUC := analysisUsecase.New(srv.l, analysisUsecase.Config{
		BanThreshold:           srv.config.Detection.BanThreshold,
		WarningThreshold:       srv.config.Detection.WarningThreshold,
		MonitorThreshold:       srv.config.Detection.MonitorThreshold,
		ViewLikeRatioNormal:    srv.config.Detection.ViewLikeRatioNormal,
		ViewCommentRatioNormal: srv.config.Detection.ViewCommentRatioNormal,
		SpikeThresholdPercent:  srv.config.Detection.SpikeThresholdPercent,
		SpikeWindowMinutes:     srv.config.Detection.SpikeWindowMinutes,
		ViewVelocityCeiling:    srv.config.Detection.ViewVelocityCeiling,
	})

	// Initialize alerting domain
	alertRepo := alertingPostgre.New(srv.postgresDB, srv.l)
	counterRepo := alertingRedis.New(srv.l, srv.redisClient)
	auditRepo, err := alertingFile.New(srv.l, srv.config.Alerting.AuditDir)
	if err != nil {
		return fmt.Errorf("failed to initialize audit trail: %w", err)
	}

	amqpChannel, err := srv.alertChannel()
	if err != nil {
		return fmt.Errorf("failed to initialize alert channel: %w", err)
	}

	webhookClient := pkgHTTP.NewClient(pkgHTTP.DefaultConfig())

	alertingUC := alertingUsecase.New(srv.l, alertingUsecase.Config{
		Enabled:          srv.config.Alerting.Enabled,
		FrequencyLimit:   srv.config.Alerting.FrequencyLimit,
		FrequencyWindow:  time.Duration(srv.config.Alerting.FrequencyWindowMinutes) * time.Minute,
		DashboardEnabled: srv.config.Alerting.DashboardEnabled,
		EmailEnabled:     srv.config.Alerting.EmailEnabled,
		WebhookEnabled:   srv.config.Alerting.WebhookEnabled,
		WebhookURL:       srv.config.Alerting.WebhookURL,
		Recipients:       srv.config.Alerting.Recipients,
		Exchange:         srv.config.RabbitMQ.Exchange,
	}, alertRepo, counterRepo, auditRepo, amqpChannel, webhookClient, srv.discord)

	// Initialize monitoring domain
	summaryRepo := monitoringPostgre.New(srv.postgresDB, srv.l)
	monitoringUC := monitoringUsecase.New(srv.l, monitoringUsecase.Config{
		Enabled:                true,
		ReportDir:              srv.config.Reporting.ReportDir,
		SummaryInterval:        time.Duration(srv.config.Reporting.SummaryIntervalHours) * time.Hour,
		ResetCountersOnSummary: srv.config.Reporting.ResetCountersOnSummary,
		ErrorRateThreshold:     srv.config.Reporting.ErrorRateThreshold,
		UnackedCriticalCeiling: srv.config.Reporting.UnackedCriticalCeiling,
		Bucket:                 srv.config.MinIO.Bucket,
	}, alertingUC, alertRepo, summaryRepo, srv.storage)

	// Initialize HTTP handlers
	normalizerHandler := normalizerHTTP.New(srv.l, normalizerUC, srv.discord)
	analysisHandler := analysisHTTP.New(srv.l, analysisUC, monitoringUC, srv.discord)
	alertingHandler := alertingHTTP.New(srv.l, alertingUC, srv.discord)
	monitoringHandler := monitoringHTTP.New(srv.l, monitoringUC, srv.discord)

	// Map routes
	root := srv.gin.Group("")
	normalizerHandler.RegisterRoutes(root, mw)
	analysisHandler.RegisterRoutes(root, mw)
	alertingHandler.RegisterRoutes(root, mw)
	monitoringHandler.RegisterRoutes(root, mw)

	return nil
}

// alertChannel opens a channel on the alert exchange. Without a broker the
// alerting pipeline degrades to audit-only.
func (srv HTTPServer) alertChannel() (rabbitmq.IChannel, error) {
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

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Prometheus scrape endpoint
	srv.gin.GET("/metrics", prometheusHandler())

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
