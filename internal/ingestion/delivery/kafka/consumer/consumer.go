package consumer

import (
	"context"

	kafkaDelivery "botguard-srv/internal/ingestion/delivery/kafka"
)

// ConsumeEngagementSamples starts consuming engagement sample batches
func (c *Consumer) ConsumeEngagementSamples(ctx context.Context) error {
	groupID := c.kafkaConfig.ConsumerGroup
	if groupID == "" {
		groupID = kafkaDelivery.ConsumerGroupEngagementSamples
	}

	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.engagementSamplesGroup = group

	topic := c.kafkaConfig.SampleTopic
	if topic == "" {
		topic = kafkaDelivery.TopicEngagementSamples
	}

	handler := &engagementSamplesHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
