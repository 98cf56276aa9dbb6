package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"botguard-srv/internal/alerting"
	"botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/paginator"
	"botguard-srv/pkg/rabbitmq"
)

type fakePostgres struct {
	mu       sync.Mutex
	alerts   map[string]model.SystemAlert
	analyses []model.BotAnalysis
}

func newFakePostgres() *fakePostgres {
	return &fakePostgres{alerts: make(map[string]model.SystemAlert)}
}

func (f *fakePostgres) CreateAlert(_ context.Context, opts repository.CreateAlertOptions) (model.SystemAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	alert := model.SystemAlert{
		ID:         opts.ID,
		Severity:   model.AlertSeverity(opts.Severity),
		Type:       opts.Type,
		PromoterID: opts.PromoterID,
		CampaignID: opts.CampaignID,
		BotScore:   opts.BotScore,
		Message:    opts.Message,
		CreatedAt:  opts.CreatedAt,
	}
	f.alerts[alert.ID] = alert
	return alert, nil
}

func (f *fakePostgres) GetAlertByID(_ context.Context, id string) (model.SystemAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	alert, ok := f.alerts[id]
	if !ok {
		return model.SystemAlert{}, repository.ErrAlertNotFound
	}
	return alert, nil
}

func (f *fakePostgres) UpdateAcknowledged(_ context.Context, opts repository.UpdateAcknowledgedOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	alert, ok := f.alerts[opts.AlertID]
	if !ok || alert.ResolvedAt != nil {
		return repository.ErrAlertNotFound
	}
	at := opts.AcknowledgedAt
	alert.Acknowledged = true
	alert.AcknowledgedBy = opts.AcknowledgedBy
	alert.AcknowledgedAt = &at
	f.alerts[opts.AlertID] = alert
	return nil
}

func (f *fakePostgres) UpdateResolved(_ context.Context, opts repository.UpdateResolvedOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	alert, ok := f.alerts[opts.AlertID]
	if !ok || alert.ResolvedAt != nil {
		return repository.ErrAlertNotFound
	}
	at := opts.ResolvedAt
	alert.ResolvedAt = &at
	f.alerts[opts.AlertID] = alert
	return nil
}

func (f *fakePostgres) ListAlerts(_ context.Context, opts repository.ListAlertsOptions) ([]model.SystemAlert, paginator.Paginator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.SystemAlert
	for _, a := range f.alerts {
		if opts.PromoterID != "" && a.PromoterID != opts.PromoterID {
			continue
		}
		if opts.Severity != "" && string(a.Severity) != opts.Severity {
			continue
		}
		if opts.Unacknowledged && a.Acknowledged {
			continue
		}
		out = append(out, a)
	}
	return out, paginator.Paginator{Total: int64(len(out)), Count: int64(len(out))}, nil
}

func (f *fakePostgres) CountAlerts(_ context.Context) (repository.AlertCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var counts repository.AlertCounts
	for _, a := range f.alerts {
		counts.Total++
		if !a.Acknowledged {
			counts.Unacknowledged++
			if a.Severity == model.SeverityCritical {
				counts.UnacknowledgedCritical++
			}
		}
	}
	return counts, nil
}

func (f *fakePostgres) InsertAnalysis(_ context.Context, a model.BotAnalysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyses = append(f.analyses, a)
	return nil
}

type fakeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64)}
}

func (f *fakeCounter) IncrAlertCount(_ context.Context, promoterID, campaignID string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return 0, f.err
	}
	key := promoterID + ":" + campaignID
	f.counts[key]++
	return f.counts[key], nil
}

type fakeAudit struct {
	mu            sync.Mutex
	analyses      []model.BotAnalysis
	notifications []model.SystemAlert
}

func (f *fakeAudit) AppendAnalysis(_ context.Context, a model.BotAnalysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyses = append(f.analyses, a)
	return nil
}

func (f *fakeAudit) AppendNotification(_ context.Context, alert model.SystemAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, alert)
	return nil
}

type fakeChannel struct {
	mu        sync.Mutex
	published []rabbitmq.PublishArgs
}

func (f *fakeChannel) ExchangeDeclare(rabbitmq.ExchangeArgs) error { return nil }
func (f *fakeChannel) QueueDeclare(rabbitmq.QueueArgs) (amqp.Queue, error) {
	return amqp.Queue{}, nil
}
func (f *fakeChannel) QueueBind(rabbitmq.QueueBindArgs) error { return nil }
func (f *fakeChannel) Publish(_ context.Context, args rabbitmq.PublishArgs) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, args)
	return nil
}
func (f *fakeChannel) Consume(rabbitmq.ConsumeArgs) (<-chan amqp.Delivery, error) {
	return nil, nil
}
func (f *fakeChannel) Close() error { return nil }

type fixture struct {
	uc      alerting.UseCase
	repo    *fakePostgres
	counter *fakeCounter
	audit   *fakeAudit
	channel *fakeChannel
}

func newFixture(cfg Config) fixture {
	repo := newFakePostgres()
	counter := newFakeCounter()
	audit := &fakeAudit{}
	channel := &fakeChannel{}

	uc := New(log.NewNoop(), cfg, repo, counter, audit, channel, nil, nil)
	return fixture{uc: uc, repo: repo, counter: counter, audit: audit, channel: channel}
}

func analysisWith(action model.ActionTier, score int) model.BotAnalysis {
	now := time.Now().UTC()
	return model.BotAnalysis{
		PromoterID: "promoter-1",
		CampaignID: "campaign-1",
		AnalysisWindow: model.AnalysisWindow{
			Start: now.Add(-time.Hour),
			End:   now,
		},
		BotScore:   score,
		Action:     action,
		Reason:     "abnormal view:like ratio (100.0:1)",
		Confidence: score,
		AnalyzedAt: now,
	}
}

func TestProcessAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("none tier is audited but never emitted", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5, DashboardEnabled: true})

		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionNone, 5))

		if !o.Audited {
			t.Error("audited mismatch: got false, want true")
		}
		if o.Emitted || o.Suppressed {
			t.Errorf("emission mismatch: got emitted=%v suppressed=%v, want neither", o.Emitted, o.Suppressed)
		}
		if len(f.audit.analyses) != 1 {
			t.Errorf("audit entries mismatch: got %d, want 1", len(f.audit.analyses))
		}
		if len(f.audit.notifications) != 0 {
			t.Errorf("notifications mismatch: got %d, want 0", len(f.audit.notifications))
		}
	})

	t.Run("disabled alerting still audits", func(t *testing.T) {
		f := newFixture(Config{Enabled: false, FrequencyLimit: 5})

		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 60))

		if !o.Audited || o.Emitted {
			t.Errorf("output mismatch: got audited=%v emitted=%v, want audited only", o.Audited, o.Emitted)
		}
		if len(f.repo.analyses) != 1 {
			t.Errorf("persisted analyses mismatch: got %d, want 1", len(f.repo.analyses))
		}
	})

	t.Run("frequency gate caps warning notifications", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5, DashboardEnabled: true})

		var emitted, suppressed int
		for i := 0; i < 7; i++ {
			o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 60))
			if o.Emitted {
				emitted++
			}
			if o.Suppressed {
				suppressed++
			}
		}

		if emitted != 5 {
			t.Errorf("emitted mismatch: got %d, want 5", emitted)
		}
		if suppressed != 2 {
			t.Errorf("suppressed mismatch: got %d, want 2", suppressed)
		}
		if len(f.audit.analyses) != 7 {
			t.Errorf("audit entries mismatch: got %d, want 7", len(f.audit.analyses))
		}
		if len(f.audit.notifications) != 5 {
			t.Errorf("notification entries mismatch: got %d, want 5", len(f.audit.notifications))
		}
	})

	t.Run("ban bypasses the frequency gate", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 1, DashboardEnabled: true})

		for i := 0; i < 3; i++ {
			o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionBan, 95))
			if !o.Emitted {
				t.Errorf("ban %d emitted mismatch: got false, want true", i)
			}
			if o.Alert == nil {
				t.Fatalf("ban %d alert missing", i)
			}
			if o.Alert.Severity != model.SeverityCritical {
				t.Errorf("ban severity mismatch: got %v, want %v", o.Alert.Severity, model.SeverityCritical)
			}
		}

		if len(f.audit.notifications) != 3 {
			t.Errorf("notification entries mismatch: got %d, want 3", len(f.audit.notifications))
		}
	})

	t.Run("counter failure emits anyway", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5, DashboardEnabled: true})
		f.counter.err = errors.New("redis unavailable")

		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 60))

		if !o.Emitted {
			t.Error("emitted mismatch: got false, want true")
		}
		if o.Suppressed {
			t.Error("suppressed mismatch: got true, want false")
		}
	})

	t.Run("enabled channels receive the alert", func(t *testing.T) {
		f := newFixture(Config{
			Enabled:          true,
			FrequencyLimit:   5,
			DashboardEnabled: true,
			EmailEnabled:     true,
			Recipients:       []string{"ops@example.com"},
			Exchange:         "botguard.alerts",
		})

		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionMonitor, 30))
		if !o.Emitted {
			t.Fatal("emitted mismatch: got false, want true")
		}

		if len(f.channel.published) != 2 {
			t.Fatalf("published mismatch: got %d, want 2", len(f.channel.published))
		}
		keys := map[string]bool{}
		for _, p := range f.channel.published {
			keys[p.RoutingKey] = true
			if p.Exchange != "botguard.alerts" {
				t.Errorf("exchange mismatch: got %q, want %q", p.Exchange, "botguard.alerts")
			}
		}
		if !keys["alerts.dashboard"] || !keys["alerts.email"] {
			t.Errorf("routing keys mismatch: got %v", keys)
		}
	})
}

func TestAcknowledgeResolve(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1", Username: "operator"}

	t.Run("acknowledge then resolve", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5})
		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 60))
		if o.Alert == nil {
			t.Fatal("alert missing")
		}

		ok, err := f.uc.Acknowledge(ctx, sc, alerting.AcknowledgeInput{AlertID: o.Alert.ID})
		if err != nil {
			t.Fatalf("acknowledge error: %v", err)
		}
		if !ok {
			t.Error("acknowledge mismatch: got false, want true")
		}

		got, err := f.uc.GetAlert(ctx, sc, o.Alert.ID)
		if err != nil {
			t.Fatalf("get error: %v", err)
		}
		if !got.Acknowledged || got.AcknowledgedBy != "operator" {
			t.Errorf("acknowledged state mismatch: got %+v", got)
		}

		ok, err = f.uc.Resolve(ctx, sc, alerting.ResolveInput{AlertID: o.Alert.ID})
		if err != nil {
			t.Fatalf("resolve error: %v", err)
		}
		if !ok {
			t.Error("resolve mismatch: got false, want true")
		}
	})

	t.Run("resolve is terminal", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5})
		o := f.uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 60))

		if ok, _ := f.uc.Resolve(ctx, sc, alerting.ResolveInput{AlertID: o.Alert.ID}); !ok {
			t.Fatal("first resolve mismatch: got false, want true")
		}
		if ok, _ := f.uc.Resolve(ctx, sc, alerting.ResolveInput{AlertID: o.Alert.ID}); ok {
			t.Error("second resolve mismatch: got true, want false")
		}
		if ok, _ := f.uc.Acknowledge(ctx, sc, alerting.AcknowledgeInput{AlertID: o.Alert.ID}); ok {
			t.Error("acknowledge after resolve mismatch: got true, want false")
		}
	})

	t.Run("unknown alert id", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5})

		if ok, err := f.uc.Acknowledge(ctx, sc, alerting.AcknowledgeInput{AlertID: "missing"}); ok || err != nil {
			t.Errorf("acknowledge mismatch: got ok=%v err=%v, want false nil", ok, err)
		}
		if _, err := f.uc.GetAlert(ctx, sc, "missing"); !errors.Is(err, alerting.ErrAlertNotFound) {
			t.Errorf("get error mismatch: got %v, want %v", err, alerting.ErrAlertNotFound)
		}
	})

	t.Run("list rejects unknown severity", func(t *testing.T) {
		f := newFixture(Config{Enabled: true, FrequencyLimit: 5})

		_, err := f.uc.ListAlerts(ctx, sc, alerting.ListAlertsInput{Severity: "SEVERE"})
		if !errors.Is(err, alerting.ErrInvalidSeverity) {
			t.Errorf("list error mismatch: got %v, want %v", err, alerting.ErrInvalidSeverity)
		}
	})
}
