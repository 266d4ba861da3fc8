package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

// writeWineCSV writes a semicolon-separated CSV with a header row plus
// the given number of data rows and columns.
func writeWineCSV(t *testing.T, root, rel string, rows, cols int) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	var b strings.Builder
	fields := make([]string, cols)
	for i := range fields {
		fields[i] = "h"
	}
	b.WriteString(strings.Join(fields, ";"))
	b.WriteByte('\n')
	for i := range fields {
		fields[i] = "1.0"
	}
	row := strings.Join(fields, ";") + "\n"
	for i := 0; i < rows; i++ {
		b.WriteString(row)
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}

func TestCheckShapesInBand(t *testing.T) {
	root := t.TempDir()
	writeWineCSV(t, root, check.RedWinePath, 1599, 12)
	writeWineCSV(t, root, check.WhiteWinePath, 4898, 12)

	findings := checkShapes(check.NewContext(root))
	require.Len(t, findings, 1)
	assert.Equal(t, check.StatusPass, findings[0].Status)
	assert.Equal(t, "red=(1599, 12), white=(4898, 12)", findings[0].Detail)
}

func TestCheckShapesOutOfBand(t *testing.T) {
	root := t.TempDir()
	writeWineCSV(t, root, check.RedWinePath, 10, 12)
	writeWineCSV(t, root, check.WhiteWinePath, 4898, 12)

	findings := checkShapes(check.NewContext(root))
	require.Len(t, findings, 1)
	assert.Equal(t, check.StatusWarn, findings[0].Status)
	assert.Contains(t, findings[0].Detail, "red=(10, 12)")
}

func TestCheckShapesReadError(t *testing.T) {
	root := t.TempDir()
	// red missing entirely
	writeWineCSV(t, root, check.WhiteWinePath, 4898, 12)

	findings := checkShapes(check.NewContext(root))
	require.Len(t, findings, 1)
	assert.Equal(t, check.StatusFail, findings[0].Status)
	assert.Contains(t, findings[0].Detail, "Error reading CSVs")
}

func TestCheckShapesNoReader(t *testing.T) {
	ctx := check.NewContext(t.TempDir())
	ctx.Shapes = nil

	findings := checkShapes(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, check.StatusWarn, findings[0].Status)
	assert.Contains(t, findings[0].Detail, "cannot verify shapes")
}
