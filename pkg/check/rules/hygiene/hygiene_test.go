package hygiene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nbcheck/pkg/check"
)

const fullGitignore = `.ipynb_checkpoints/
venv/
__pycache__/
results/
notebooks/03_*
notebooks/04_*
notebooks/05_*
`

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644))
}

func TestCheckGitignore(t *testing.T) {
	t.Run("all rules present", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".gitignore", fullGitignore)

		findings := checkGitignore(check.NewContext(root))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusPass, findings[0].Status)
	})

	t.Run("missing rules warn", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".gitignore", ".ipynb_checkpoints/\nvenv/\n")

		findings := checkGitignore(check.NewContext(root))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusWarn, findings[0].Status)
		assert.Contains(t, findings[0].Detail, "__pycache__/")
		assert.Contains(t, findings[0].Detail, `notebooks/03_.*`)
		assert.NotContains(t, findings[0].Detail, "venv/")
	})

	t.Run("file missing fails", func(t *testing.T) {
		findings := checkGitignore(check.NewContext(t.TempDir()))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusFail, findings[0].Status)
	})
}

func TestCheckRequirements(t *testing.T) {
	t.Run("pins and case ignored", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "requirements.txt", `# analysis stack
Pandas==2.2.0
numpy>=1.26
Scikit-Learn~=1.4
matplotlib
seaborn!=0.12.0
`)

		findings := checkRequirements(check.NewContext(root))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusPass, findings[0].Status)
	})

	t.Run("missing deps warn sorted", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "requirements.txt", "pandas\nnumpy\n")

		findings := checkRequirements(check.NewContext(root))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusWarn, findings[0].Status)
		assert.Equal(t, "Missing: matplotlib, scikit-learn, seaborn", findings[0].Detail)
	})

	t.Run("file missing fails", func(t *testing.T) {
		findings := checkRequirements(check.NewContext(t.TempDir()))
		require.Len(t, findings, 1)
		assert.Equal(t, check.StatusFail, findings[0].Status)
	})
}
