package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PASS", StatusPass.String())
	assert.Equal(t, "WARN", StatusWarn.String())
	assert.Equal(t, "FAIL", StatusFail.String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   Status
		wantOK bool
	}{
		{"PASS", StatusPass, true},
		{"pass", StatusPass, true},
		{"Warn", StatusWarn, true},
		{"FAIL", StatusFail, true},
		{"bogus", StatusWarn, false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestSummarize(t *testing.T) {
	findings := []Finding{
		Pass("T01", "first"),
		Warnf("T01", "second", "gap"),
		Failf("T02", "third", "broken"),
		Warnf("T02", "fourth", "gap"),
	}

	report := Summarize(findings)
	assert.Equal(t, 1, report.Failures)
	assert.Equal(t, 2, report.Warnings)
	assert.Equal(t, findings, report.Findings)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestReportRender(t *testing.T) {
	report := Summarize([]Finding{
		Pass("T01", "Exists: README.md"),
		Failf("T01", "Exists: data/winequality-white.csv", "Missing data/winequality-white.csv"),
		Warnf("T02", "short", "add things"),
	})

	text := report.Render()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	// timestamped header with a dashed rule of the same length
	require.True(t, strings.HasPrefix(lines[0], "QA Report - "))
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[1])

	// one row per finding, input order preserved
	require.Len(t, lines, 2+3+1+1)
	assert.Contains(t, lines[2], "Exists: README.md")
	assert.Contains(t, lines[3], "Missing data/winequality-white.csv")
	assert.Contains(t, lines[4], "add things")

	// label column padded to the longest label, so every status token
	// starts at the same offset
	longest := len("Exists: data/winequality-white.csv")
	assert.Equal(t, "PASS", strings.TrimSpace(lines[2][longest:longest+6]))
	assert.Equal(t, "FAIL", strings.TrimSpace(lines[3][longest:longest+6]))
	assert.Equal(t, "WARN", strings.TrimSpace(lines[4][longest:longest+6]))

	assert.Equal(t, "Summary: 1 FAIL, 1 WARN", lines[len(lines)-1])
}

func TestReportRenderEmpty(t *testing.T) {
	report := Summarize(nil)
	text := report.Render()
	assert.Contains(t, text, "Summary: 0 FAIL, 0 WARN")
}
