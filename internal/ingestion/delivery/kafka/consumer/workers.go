package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"botguard-srv/internal/analysis"
	kafkaDelivery "botguard-srv/internal/ingestion/delivery/kafka"
	"botguard-srv/internal/metrics"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/scope"
)

// handleEngagementSamplesMessage receives one sample batch, normalizes and
// scores it, feeds the verdict through monitoring and publishes the result.
func (c *Consumer) handleEngagementSamplesMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "ingestion.delivery.kafka.consumer.handleEngagementSamplesMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.EngagementSamplesMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "ingestion.delivery.kafka.consumer.handleEngagementSamplesMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	// 2. Validate message (format only; business rules stay in usecase)
	if message.PromoterID == "" || message.CampaignID == "" || len(message.Samples) == 0 {
		c.l.Warnf(ctx, "ingestion.delivery.kafka.consumer.handleEngagementSamplesMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	metrics.SamplesConsumed.Add(float64(len(message.Samples)))

	// 3. Create scope (system scope for background processing) and set to context
	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	// 4. Normalize the batch and collect records
	outputs := c.normalizerUC.NormalizeBatch(ctx, message.Samples)
	records := make([]model.ViewRecord, 0, len(outputs))
	for _, o := range outputs {
		record := o.Record
		if record.PromoterID == "" {
			record.PromoterID = message.PromoterID
		}
		if record.CampaignID == "" {
			record.CampaignID = message.CampaignID
		}
		records = append(records, record)
	}

	// 5. Score and route the verdict
	a := c.analysisUC.Analyze(ctx, analysis.AnalyzeInput{
		PromoterID: message.PromoterID,
		CampaignID: message.CampaignID,
		Records:    records,
	})
	c.monitoringUC.ProcessAnalysis(ctx, a)

	// 6. Publish the detection result
	c.publishDetectionResult(ctx, a)

	c.l.Infof(ctx, "ingestion.delivery.kafka.consumer.handleEngagementSamplesMessage: Scored promoter %s campaign %s: score=%d action=%s",
		a.PromoterID, a.CampaignID, a.BotScore, a.Action)
	return nil
}

// publishDetectionResult is best effort: the verdict already went through
// monitoring, so a broker hiccup must not trigger a redelivery loop.
func (c *Consumer) publishDetectionResult(ctx context.Context, a model.BotAnalysis) {
	if c.producer == nil {
		return
	}

	value, err := json.Marshal(toDetectionResultMessage(a))
	if err != nil {
		c.l.Errorf(ctx, "ingestion.delivery.kafka.consumer.publishDetectionResult: Failed to marshal result: %v", err)
		metrics.ProcessingErrors.WithLabelValues("kafka").Inc()
		return
	}

	if err := c.producer.Publish([]byte(a.PromoterID), value); err != nil {
		c.l.Errorf(ctx, "ingestion.delivery.kafka.consumer.publishDetectionResult: Failed to publish result: %v", err)
		metrics.ProcessingErrors.WithLabelValues("kafka").Inc()
	}
}
