package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type engagementSamplesHandler struct {
	consumer *Consumer
}

func (h *engagementSamplesHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *engagementSamplesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *engagementSamplesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleEngagementSamplesMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "ingestion.delivery.kafka.consumer.ConsumeEngagementSamples: Failed to process samples message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
