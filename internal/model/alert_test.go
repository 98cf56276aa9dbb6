package model

import "testing"

func TestSeverityForAction(t *testing.T) {
	cases := []struct {
		name   string
		action ActionTier
		score  int
		want   AlertSeverity
	}{
		{"ban is critical", ActionBan, 95, SeverityCritical},
		{"high-score warning is high", ActionWarning, 75, SeverityHigh},
		{"low-score warning is medium", ActionWarning, 55, SeverityMedium},
		{"monitor is low", ActionMonitor, 30, SeverityLow},
		{"none is low", ActionNone, 5, SeverityLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SeverityForAction(tc.action, tc.score)
			if got != tc.want {
				t.Errorf("severity mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}
