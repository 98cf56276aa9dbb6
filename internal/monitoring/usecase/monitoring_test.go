package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"botguard-srv/internal/alerting"
	alertRepo "botguard-srv/internal/alerting/repository"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/log"
	"botguard-srv/pkg/paginator"
)

type fakeAlerting struct {
	mu        sync.Mutex
	processed []model.BotAnalysis
	output    alerting.ProcessOutput
}

func (f *fakeAlerting) ProcessAnalysis(_ context.Context, a model.BotAnalysis) alerting.ProcessOutput {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed = append(f.processed, a)
	return f.output
}

func (f *fakeAlerting) Acknowledge(context.Context, model.Scope, alerting.AcknowledgeInput) (bool, error) {
	return false, nil
}

func (f *fakeAlerting) Resolve(context.Context, model.Scope, alerting.ResolveInput) (bool, error) {
	return false, nil
}

func (f *fakeAlerting) GetAlert(context.Context, model.Scope, string) (model.SystemAlert, error) {
	return model.SystemAlert{}, alerting.ErrAlertNotFound
}

func (f *fakeAlerting) ListAlerts(context.Context, model.Scope, alerting.ListAlertsInput) (alerting.ListAlertsOutput, error) {
	return alerting.ListAlertsOutput{}, nil
}

type fakeAlertCounts struct {
	counts alertRepo.AlertCounts
}

func (f *fakeAlertCounts) CreateAlert(context.Context, alertRepo.CreateAlertOptions) (model.SystemAlert, error) {
	return model.SystemAlert{}, nil
}

func (f *fakeAlertCounts) GetAlertByID(context.Context, string) (model.SystemAlert, error) {
	return model.SystemAlert{}, alertRepo.ErrAlertNotFound
}

func (f *fakeAlertCounts) UpdateAcknowledged(context.Context, alertRepo.UpdateAcknowledgedOptions) error {
	return nil
}

func (f *fakeAlertCounts) UpdateResolved(context.Context, alertRepo.UpdateResolvedOptions) error {
	return nil
}

func (f *fakeAlertCounts) ListAlerts(context.Context, alertRepo.ListAlertsOptions) ([]model.SystemAlert, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeAlertCounts) CountAlerts(context.Context) (alertRepo.AlertCounts, error) {
	return f.counts, nil
}

func (f *fakeAlertCounts) InsertAnalysis(context.Context, model.BotAnalysis) error {
	return nil
}

type fakeSummaries struct {
	mu       sync.Mutex
	inserted []model.DailySummary
}

func (f *fakeSummaries) InsertSummary(_ context.Context, s model.DailySummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, s)
	return nil
}

func (f *fakeSummaries) GetLatestSummary(context.Context) (model.DailySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inserted) == 0 {
		return model.DailySummary{}, nil
	}
	return f.inserted[len(f.inserted)-1], nil
}

func analysisWith(action model.ActionTier, score int) model.BotAnalysis {
	now := time.Now().UTC()
	return model.BotAnalysis{
		PromoterID: "promoter-1",
		CampaignID: "campaign-1",
		BotScore:   score,
		Action:     action,
		AnalyzedAt: now,
	}
}

func TestProcessAnalysisCounters(t *testing.T) {
	ctx := context.Background()
	routing := &fakeAlerting{output: alerting.ProcessOutput{Audited: true, Emitted: true}}
	summaries := &fakeSummaries{}

	uc := New(log.NewNoop(), Config{Enabled: true, ResetCountersOnSummary: true},
		routing, &fakeAlertCounts{}, summaries, nil)

	uc.ProcessAnalysis(ctx, analysisWith(model.ActionBan, 95))
	uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 65))

	summary, err := uc.GenerateDailySummary(ctx)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if summary.TotalAnalyses != 2 {
		t.Errorf("total mismatch: got %d, want 2", summary.TotalAnalyses)
	}
	if summary.BannedCount != 1 || summary.WarnedCount != 1 || summary.MonitoredCount != 0 {
		t.Errorf("tier counts mismatch: got banned=%d warned=%d monitored=%d",
			summary.BannedCount, summary.WarnedCount, summary.MonitoredCount)
	}
	if summary.AverageScore != 80 {
		t.Errorf("average score mismatch: got %v, want 80", summary.AverageScore)
	}
	if summary.AlertsEmitted != 2 {
		t.Errorf("alerts emitted mismatch: got %d, want 2", summary.AlertsEmitted)
	}
	if len(routing.processed) != 2 {
		t.Errorf("routed analyses mismatch: got %d, want 2", len(routing.processed))
	}
	if len(summaries.inserted) != 1 {
		t.Errorf("persisted summaries mismatch: got %d, want 1", len(summaries.inserted))
	}
}

func TestGenerateDailySummaryResetsCounters(t *testing.T) {
	ctx := context.Background()
	uc := New(log.NewNoop(), Config{Enabled: true, ResetCountersOnSummary: true},
		&fakeAlerting{output: alerting.ProcessOutput{Audited: true}}, &fakeAlertCounts{}, &fakeSummaries{}, nil)

	uc.ProcessAnalysis(ctx, analysisWith(model.ActionMonitor, 30))

	first, err := uc.GenerateDailySummary(ctx)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if first.TotalAnalyses != 1 {
		t.Fatalf("first total mismatch: got %d, want 1", first.TotalAnalyses)
	}

	second, err := uc.GenerateDailySummary(ctx)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if second.TotalAnalyses != 0 {
		t.Errorf("second total mismatch: got %d, want 0", second.TotalAnalyses)
	}
	if !second.PeriodStart.After(first.PeriodStart) {
		t.Errorf("period start mismatch: %v not after %v", second.PeriodStart, first.PeriodStart)
	}
}

func TestNewCreatesReportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	New(log.NewNoop(), Config{Enabled: true, ReportDir: dir},
		&fakeAlerting{}, &fakeAlertCounts{}, &fakeSummaries{}, nil)

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("report dir missing after construction: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("report dir is not a directory: %v", dir)
	}
}

func TestGenerateDailySummaryArtifacts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	uc := New(log.NewNoop(), Config{Enabled: true, ReportDir: dir},
		&fakeAlerting{output: alerting.ProcessOutput{Audited: true}}, &fakeAlertCounts{}, &fakeSummaries{}, nil)

	uc.ProcessAnalysis(ctx, analysisWith(model.ActionWarning, 55))

	summary, err := uc.GenerateDailySummary(ctx)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if summary.JSONReportPath == "" || summary.HTMLReportPath == "" {
		t.Fatalf("report paths missing: json=%q html=%q", summary.JSONReportPath, summary.HTMLReportPath)
	}
	for _, path := range []string{summary.JSONReportPath, summary.HTMLReportPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("report artifact missing: %v", err)
		}
	}
}

func TestGetSystemStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy baseline", func(t *testing.T) {
		uc := New(log.NewNoop(), Config{Enabled: true},
			&fakeAlerting{output: alerting.ProcessOutput{Audited: true}}, &fakeAlertCounts{}, &fakeSummaries{}, nil)

		uc.ProcessAnalysis(ctx, analysisWith(model.ActionNone, 5))

		status, err := uc.GetSystemStatus(ctx)
		if err != nil {
			t.Fatalf("status error: %v", err)
		}
		if status.Monitoring.SystemHealth != model.HealthHealthy {
			t.Errorf("health mismatch: got %v, want %v", status.Monitoring.SystemHealth, model.HealthHealthy)
		}
		if !status.Monitoring.Enabled {
			t.Error("enabled mismatch: got false, want true")
		}
	})

	t.Run("warning on unacknowledged critical alerts", func(t *testing.T) {
		counts := &fakeAlertCounts{counts: alertRepo.AlertCounts{
			Total: 20, Unacknowledged: 15, UnacknowledgedCritical: 12,
		}}
		uc := New(log.NewNoop(), Config{Enabled: true, UnackedCriticalCeiling: 10},
			&fakeAlerting{output: alerting.ProcessOutput{Audited: true}}, counts, &fakeSummaries{}, nil)

		status, err := uc.GetSystemStatus(ctx)
		if err != nil {
			t.Fatalf("status error: %v", err)
		}
		if status.Monitoring.SystemHealth != model.HealthWarning {
			t.Errorf("health mismatch: got %v, want %v", status.Monitoring.SystemHealth, model.HealthWarning)
		}
		if status.Alerts.UnacknowledgedCritical != 12 {
			t.Errorf("unacknowledged critical mismatch: got %d, want 12", status.Alerts.UnacknowledgedCritical)
		}
	})

	t.Run("critical on high error rate", func(t *testing.T) {
		uc := New(log.NewNoop(), Config{Enabled: true, ErrorRateThreshold: 0.1},
			&fakeAlerting{output: alerting.ProcessOutput{Audited: false}}, &fakeAlertCounts{}, &fakeSummaries{}, nil)

		for i := 0; i < 5; i++ {
			uc.ProcessAnalysis(ctx, analysisWith(model.ActionNone, 5))
		}

		status, err := uc.GetSystemStatus(ctx)
		if err != nil {
			t.Fatalf("status error: %v", err)
		}
		if status.Monitoring.SystemHealth != model.HealthCritical {
			t.Errorf("health mismatch: got %v, want %v", status.Monitoring.SystemHealth, model.HealthCritical)
		}
		if status.Performance.ErrorRate != 1 {
			t.Errorf("error rate mismatch: got %v, want 1", status.Performance.ErrorRate)
		}
	})
}
