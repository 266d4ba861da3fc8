package check

import (
	"fmt"
	"strings"
	"time"
)

// Report aggregates findings for rendering and the exit decision.
type Report struct {
	Findings    []Finding `json:"findings"`
	Failures    int       `json:"failures"`
	Warnings    int       `json:"warnings"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Summarize builds a report from findings. Input order is preserved;
// nothing is dropped.
func Summarize(findings []Finding) *Report {
	r := &Report{Findings: findings, GeneratedAt: time.Now()}
	for _, f := range findings {
		switch f.Status {
		case StatusFail:
			r.Failures++
		case StatusWarn:
			r.Warnings++
		}
	}
	return r
}

// Render formats the report as a fixed-width table: label and status
// columns padded to their longest entries, then free-text detail, under a
// timestamped header and above a summary line.
func (r *Report) Render() string {
	labelWidth, statusWidth := 0, 0
	for _, f := range r.Findings {
		labelWidth = max(labelWidth, len(f.Label))
		statusWidth = max(statusWidth, len(f.Status.String()))
	}

	header := "QA Report - " + r.GeneratedAt.Format("2006-01-02 15:04:05")

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteByte('\n')
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "%-*s  %-*s  %s\n", labelWidth, f.Label, statusWidth, f.Status, f.Detail)
	}
	fmt.Fprintf(&b, "\nSummary: %d FAIL, %d WARN\n", r.Failures, r.Warnings)
	return b.String()
}
