package consumer

import (
	"fmt"

	"botguard-srv/config"
	"botguard-srv/internal/analysis"
	"botguard-srv/internal/monitoring"
	"botguard-srv/internal/normalizer"
	pkgKafka "botguard-srv/pkg/kafka"
	"botguard-srv/pkg/log"
)

// Config holds the configuration for the ingestion consumer
type Config struct {
	Logger       log.Logger
	KafkaConfig  config.KafkaConfig
	NormalizerUC normalizer.UseCase
	AnalysisUC   analysis.UseCase
	MonitoringUC monitoring.UseCase
	Producer     pkgKafka.IProducer
}

// Consumer manages Kafka consumer groups for the detection pipeline
type Consumer struct {
	l            log.Logger
	kafkaConfig  config.KafkaConfig
	normalizerUC normalizer.UseCase
	analysisUC   analysis.UseCase
	monitoringUC monitoring.UseCase
	producer     pkgKafka.IProducer

	engagementSamplesGroup pkgKafka.IConsumer
}

// New creates a new ingestion consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.NormalizerUC == nil {
		return nil, fmt.Errorf("normalizer usecase is required")
	}
	if cfg.AnalysisUC == nil {
		return nil, fmt.Errorf("analysis usecase is required")
	}
	if cfg.MonitoringUC == nil {
		return nil, fmt.Errorf("monitoring usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:            cfg.Logger,
		kafkaConfig:  cfg.KafkaConfig,
		normalizerUC: cfg.NormalizerUC,
		analysisUC:   cfg.AnalysisUC,
		monitoringUC: cfg.MonitoringUC,
		producer:     cfg.Producer,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.engagementSamplesGroup != nil {
		if err := c.engagementSamplesGroup.Close(); err != nil {
			return fmt.Errorf("failed to close engagement samples group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
