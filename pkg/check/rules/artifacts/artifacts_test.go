package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCheckExistsAllPresent(t *testing.T) {
	root := t.TempDir()
	ctx := check.NewContext(root)
	for _, rel := range ctx.Catalog.RequiredFiles {
		touch(t, root, rel)
	}

	findings := checkExists(ctx)
	require.Len(t, findings, len(ctx.Catalog.RequiredFiles))
	for i, f := range findings {
		assert.Equal(t, check.StatusPass, f.Status, f.Label)
		assert.Equal(t, "Exists: "+ctx.Catalog.RequiredFiles[i], f.Label)
	}
}

func TestCheckExistsMissingFile(t *testing.T) {
	root := t.TempDir()
	ctx := check.NewContext(root)
	for _, rel := range ctx.Catalog.RequiredFiles {
		if rel == check.WhiteWinePath {
			continue
		}
		touch(t, root, rel)
	}

	findings := checkExists(ctx)
	require.Len(t, findings, len(ctx.Catalog.RequiredFiles))

	var failed []check.Finding
	for _, f := range findings {
		if f.Status == check.StatusFail {
			failed = append(failed, f)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, "Exists: "+check.WhiteWinePath, failed[0].Label)
	assert.Contains(t, failed[0].Detail, check.WhiteWinePath)
}
