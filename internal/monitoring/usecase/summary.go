package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"botguard-srv/internal/metrics"
	"botguard-srv/internal/model"
	"botguard-srv/pkg/minio"
	"botguard-srv/pkg/util"
)

// GenerateDailySummary snapshots the counters for the current period, writes
// the JSON and HTML report artifacts, archives them to object storage and
// persists the summary row. Artifact and archival failures degrade the
// summary but do not fail it; only a counter snapshot failure would, and
// that cannot happen.
func (uc *implUseCase) GenerateDailySummary(ctx context.Context) (model.DailySummary, error) {
	now := time.Now().UTC()

	uc.mu.Lock()
	snap := uc.counters
	if uc.config.ResetCountersOnSummary {
		uc.counters = counters{periodStart: now}
	}
	uc.mu.Unlock()

	summary := model.DailySummary{
		ID:               uuid.New().String(),
		PeriodStart:      snap.periodStart,
		PeriodEnd:        now,
		TotalAnalyses:    snap.total,
		BannedCount:      snap.banned,
		WarnedCount:      snap.warned,
		MonitoredCount:   snap.monitored,
		AlertsEmitted:    snap.emitted,
		AlertsSuppressed: snap.suppressed,
		GeneratedAt:      now,
	}
	if snap.total > 0 {
		summary.AverageScore = float64(snap.scoreSum) / float64(snap.total)
	}

	uc.writeArtifacts(ctx, &summary)
	uc.archiveArtifacts(ctx, &summary)

	if err := uc.summaries.InsertSummary(ctx, summary); err != nil {
		uc.l.Errorf(ctx, "monitoring.usecase.GenerateDailySummary: Failed to persist summary: %v", err)
		metrics.ProcessingErrors.WithLabelValues("persistence").Inc()
	}

	uc.l.Infof(ctx, "monitoring.usecase.GenerateDailySummary: Generated summary %s covering %d analyses", summary.ID, summary.TotalAnalyses)
	return summary, nil
}

// writeArtifacts renders the JSON and HTML reports into the report directory.
func (uc *implUseCase) writeArtifacts(ctx context.Context, summary *model.DailySummary) {
	if uc.config.ReportDir == "" {
		return
	}

	date := util.DateToStr(summary.GeneratedAt)

	jsonPath := filepath.Join(uc.config.ReportDir, fmt.Sprintf("summary-%s.json", date))
	data, err := json.MarshalIndent(summary, "", "  ")
	if err == nil {
		err = os.WriteFile(jsonPath, data, 0o644)
	}
	if err != nil {
		uc.l.Errorf(ctx, "monitoring.usecase.writeArtifacts: Failed to write JSON report: %v", err)
		metrics.ProcessingErrors.WithLabelValues("report").Inc()
	} else {
		summary.JSONReportPath = jsonPath
	}

	htmlPath := filepath.Join(uc.config.ReportDir, fmt.Sprintf("summary-%s.html", date))
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, summary); err != nil {
		uc.l.Errorf(ctx, "monitoring.usecase.writeArtifacts: Failed to render HTML report: %v", err)
		metrics.ProcessingErrors.WithLabelValues("report").Inc()
		return
	}
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		uc.l.Errorf(ctx, "monitoring.usecase.writeArtifacts: Failed to write HTML report: %v", err)
		metrics.ProcessingErrors.WithLabelValues("report").Inc()
		return
	}
	summary.HTMLReportPath = htmlPath
}

// archiveArtifacts uploads the rendered reports to object storage.
func (uc *implUseCase) archiveArtifacts(ctx context.Context, summary *model.DailySummary) {
	if uc.storage == nil || uc.config.Bucket == "" {
		return
	}

	uploads := []struct {
		path        string
		contentType string
	}{
		{summary.JSONReportPath, "application/json"},
		{summary.HTMLReportPath, "text/html"},
	}

	archived := false
	for _, u := range uploads {
		if u.path == "" {
			continue
		}

		f, err := os.Open(u.path)
		if err != nil {
			uc.l.Errorf(ctx, "monitoring.usecase.archiveArtifacts: Failed to open %s: %v", u.path, err)
			metrics.ProcessingErrors.WithLabelValues("archive").Inc()
			continue
		}

		stat, err := f.Stat()
		if err != nil {
			f.Close()
			uc.l.Errorf(ctx, "monitoring.usecase.archiveArtifacts: Failed to stat %s: %v", u.path, err)
			metrics.ProcessingErrors.WithLabelValues("archive").Inc()
			continue
		}

		_, err = uc.storage.UploadFile(ctx, &minio.UploadRequest{
			BucketName:  uc.config.Bucket,
			ObjectName:  filepath.Base(u.path),
			Reader:      f,
			Size:        stat.Size(),
			ContentType: u.contentType,
		})
		f.Close()
		if err != nil {
			uc.l.Errorf(ctx, "monitoring.usecase.archiveArtifacts: Failed to upload %s: %v", u.path, err)
			metrics.ProcessingErrors.WithLabelValues("archive").Inc()
			continue
		}
		archived = true
	}

	if archived {
		summary.BucketName = uc.config.Bucket
	}
}
