package usecase

import "html/template"

var summaryTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Bot Detection Summary {{.GeneratedAt.Format "2006-01-02"}}</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; color: #222; }
    table { border-collapse: collapse; margin-top: 1rem; }
    th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
    th { background: #f4f4f4; }
    .banner { color: #b00020; font-weight: bold; }
  </style>
</head>
<body>
  <h1>Bot Detection Summary</h1>
  <p>Period: {{.PeriodStart.Format "2006-01-02 15:04"}} &ndash; {{.PeriodEnd.Format "2006-01-02 15:04"}} UTC</p>
  <table>
    <tr><th>Total analyses</th><td>{{.TotalAnalyses}}</td></tr>
    <tr><th>Banned</th><td class="banner">{{.BannedCount}}</td></tr>
    <tr><th>Warned</th><td>{{.WarnedCount}}</td></tr>
    <tr><th>Monitored</th><td>{{.MonitoredCount}}</td></tr>
    <tr><th>Average bot score</th><td>{{printf "%.1f" .AverageScore}}</td></tr>
    <tr><th>Alerts emitted</th><td>{{.AlertsEmitted}}</td></tr>
    <tr><th>Alerts suppressed</th><td>{{.AlertsSuppressed}}</td></tr>
  </table>
  <p><small>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}} UTC &middot; summary {{.ID}}</small></p>
</body>
</html>
`))
