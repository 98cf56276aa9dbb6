package consumer

import (
	kafkaDelivery "botguard-srv/internal/ingestion/delivery/kafka"
	"botguard-srv/internal/model"
)

func toDetectionResultMessage(a model.BotAnalysis) kafkaDelivery.DetectionResultMessage {
	return kafkaDelivery.DetectionResultMessage{
		PromoterID:  a.PromoterID,
		CampaignID:  a.CampaignID,
		WindowStart: a.AnalysisWindow.Start,
		WindowEnd:   a.AnalysisWindow.End,
		BotScore:    a.BotScore,
		Action:      string(a.Action),
		Reason:      a.Reason,
		Confidence:  a.Confidence,
		AnalyzedAt:  a.AnalyzedAt,
	}
}
