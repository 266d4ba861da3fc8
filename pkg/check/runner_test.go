package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerFixtures(t *testing.T) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)

	// Registered out of ID order on purpose; All() must sort.
	Register(CheckDef{ID: "Z91", Name: "z.last", Group: "misc", Run: func(_ *Context) []Finding {
		return []Finding{Pass("Z91", "z ran")}
	}})
	Register(CheckDef{ID: "A10", Name: "a.first", Group: "misc", Run: func(_ *Context) []Finding {
		return []Finding{
			Pass("A10", "a ran"),
			Warnf("A10", "a warned", "soft gap"),
		}
	}})
	Register(CheckDef{ID: "M50", Name: "m.middle", Group: "other", Run: func(_ *Context) []Finding {
		return []Finding{Failf("M50", "m failed", "hard gap")}
	}})
}

func TestRegistryOrder(t *testing.T) {
	registerFixtures(t)

	defs := All()
	require.Len(t, defs, 3)
	assert.Equal(t, "A10", defs[0].ID)
	assert.Equal(t, "M50", defs[1].ID)
	assert.Equal(t, "Z91", defs[2].ID)

	def, ok := ByID("M50")
	require.True(t, ok)
	assert.Equal(t, "m.middle", def.Name)

	_, ok = ByID("nope")
	assert.False(t, ok)

	misc := ByGroup("misc")
	require.Len(t, misc, 2)
	assert.Equal(t, "A10", misc[0].ID)

	assert.Equal(t, 3, Count())
}

func TestRunnerOrderAndAggregation(t *testing.T) {
	registerFixtures(t)
	ctx := NewContext(t.TempDir())

	for _, sequential := range []bool{false, true} {
		cfg := NewRunnerConfig()
		cfg.Sequential = sequential
		findings := NewRunner(cfg).Run(ctx)

		// declaration order regardless of scheduling
		require.Len(t, findings, 4)
		assert.Equal(t, "a ran", findings[0].Label)
		assert.Equal(t, "a warned", findings[1].Label)
		assert.Equal(t, "m failed", findings[2].Label)
		assert.Equal(t, "z ran", findings[3].Label)
	}
}

func TestRunnerDisable(t *testing.T) {
	registerFixtures(t)
	ctx := NewContext(t.TempDir())

	runner := NewRunner(nil)
	runner.Disable("M50")
	findings := runner.Run(ctx)

	require.Len(t, findings, 3)
	for _, f := range findings {
		assert.NotEqual(t, "M50", f.CheckID)
	}
}

func TestRunnerPanicBecomesFinding(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	Register(CheckDef{ID: "P01", Name: "p.panics", Group: "misc", Run: func(_ *Context) []Finding {
		panic("boom")
	}})

	findings := NewRunner(nil).Run(NewContext(t.TempDir()))
	require.Len(t, findings, 1)
	assert.Equal(t, StatusFail, findings[0].Status)
	assert.Contains(t, findings[0].Detail, "boom")
}
