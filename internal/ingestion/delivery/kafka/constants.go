package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Consumer Topics
	TopicEngagementSamples = "botguard.engagement.samples"

	// Producer Topics
	TopicDetectionResults = "botguard.detection.results"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupEngagementSamples = "botguard-consumer-engagement-samples"
)
