package model

import "time"

// AlertSeverity is derived from the action tier that produced the alert.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "CRITICAL"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityLow      AlertSeverity = "LOW"
)

// Alert type constants
const (
	AlertTypeBan     = "BAN"
	AlertTypeWarning = "WARNING"
	AlertTypeMonitor = "MONITOR"
)

// SystemAlert is a generated notification instance. Alerts are never deleted,
// only acknowledged and resolved (append-only audit semantics).
type SystemAlert struct {
	ID         string        `json:"id"`
	Severity   AlertSeverity `json:"severity"`
	Type       string        `json:"type"` // BAN | WARNING | MONITOR
	PromoterID string        `json:"promoter_id"`
	CampaignID string        `json:"campaign_id"`
	BotScore   int           `json:"bot_score"`
	Message    string        `json:"message"`

	CreatedAt      time.Time  `json:"created_at"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// IsResolved reports whether the alert reached its terminal state.
func (a SystemAlert) IsResolved() bool {
	return a.ResolvedAt != nil
}

// severityHighScore splits the warning band: warnings at or above it are
// HIGH, below it MEDIUM.
const severityHighScore = 70

// SeverityForAction maps an action tier and its score to an alert severity.
// Bans are CRITICAL, warnings HIGH or MEDIUM depending on score, monitors LOW.
func SeverityForAction(action ActionTier, score int) AlertSeverity {
	switch action {
	case ActionBan:
		return SeverityCritical
	case ActionWarning:
		if score >= severityHighScore {
			return SeverityHigh
		}
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// AlertTypeForAction maps an action tier to an alert type.
func AlertTypeForAction(action ActionTier) string {
	switch action {
	case ActionBan:
		return AlertTypeBan
	case ActionWarning:
		return AlertTypeWarning
	default:
		return AlertTypeMonitor
	}
}
