package usecase

import (
	"time"

	"botguard-srv/internal/alerting"
	"botguard-srv/internal/alerting/repository"
	"botguard-srv/pkg/discord"
	pkgHTTP "botguard-srv/pkg/http"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/rabbitmq"
)

const (
	defaultFrequencyLimit  = 5
	defaultFrequencyWindow = time.Hour
)

// Routing keys on the alert exchange. Consumers bind what they care about.
const (
	routingKeyDashboard = "alerts.dashboard"
	routingKeyEmail     = "alerts.email"
)

// Config holds the alert routing settings.
type Config struct {
	Enabled         bool
	FrequencyLimit  int
	FrequencyWindow time.Duration

	DashboardEnabled bool
	EmailEnabled     bool
	WebhookEnabled   bool
	WebhookURL       string
	Recipients       []string

	Exchange string
}

type implUseCase struct {
	l      log.Logger
	config Config

	repo    repository.PostgresRepository
	counter repository.CounterRepository
	audit   repository.AuditRepository

	amqpChannel rabbitmq.IChannel
	webhook     pkgHTTP.IClient
	discord     discord.IDiscord
}

var _ alerting.UseCase = &implUseCase{}

// New creates a new alerting UseCase implementation.
func New(
	l log.Logger,
	cfg Config,
	repo repository.PostgresRepository,
	counter repository.CounterRepository,
	audit repository.AuditRepository,
	amqpChannel rabbitmq.IChannel,
	webhook pkgHTTP.IClient,
	discordClient discord.IDiscord,
) alerting.UseCase {
	if cfg.FrequencyLimit <= 0 {
		cfg.FrequencyLimit = defaultFrequencyLimit
	}
	if cfg.FrequencyWindow <= 0 {
		cfg.FrequencyWindow = defaultFrequencyWindow
	}

	return &implUseCase{
		l:           l,
		config:      cfg,
		repo:        repo,
		counter:     counter,
		audit:       audit,
		amqpChannel: amqpChannel,
		webhook:     webhook,
		discord:     discordClient,
	}
}
