package notebook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotebook = `{
  "nbformat": 4,
  "nbformat_minor": 5,
  "cells": [
    {"cell_type": "markdown", "source": "# Wine Classification\nProblem Framing", "metadata": {}},
    {"cell_type": "code", "source": ["import pandas as pd\n", "print(pd.__version__)"], "metadata": {},
     "outputs": [{"output_type": "stream", "text": "2.1.0"}]},
    {"cell_type": "code", "source": "df.hist()", "metadata": {},
     "outputs": [{"output_type": "display_data", "data": {"image/png": "aGk=", "text/plain": "\"<Figure>\""}}]},
    {"cell_type": "raw", "source": "not rendered", "metadata": {}}
  ]
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)
	require.Len(t, doc.Cells, 4)

	// string-form source
	assert.Equal(t, Markdown, doc.Cells[0].Type)
	assert.Contains(t, doc.Cells[0].Source, "Problem Framing")

	// list-form source joins verbatim
	assert.Equal(t, Code, doc.Cells[1].Type)
	assert.Equal(t, "import pandas as pd\nprint(pd.__version__)", doc.Cells[1].Source)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)
}

func TestReaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nb.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotebook), 0o644))

	r := NewReader()
	doc, err := r.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Cells, 4)
}

func TestReaderLoadUnreadable(t *testing.T) {
	r := NewReader()

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(_ *testing.T) string { return filepath.Join(t.TempDir(), "absent.ipynb") },
		},
		{
			name: "malformed JSON",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "bad.ipynb")
				require.NoError(t, os.WriteFile(p, []byte("{{"), 0o644))
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Load(tt.path(t))
			require.Error(t, err)
			var unreadable *UnreadableError
			assert.ErrorAs(t, err, &unreadable)
		})
	}
}

func TestCellsByType(t *testing.T) {
	doc, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	var sources []string
	for c := range doc.CellsByType(Code) {
		sources = append(sources, c.Source)
	}
	require.Len(t, sources, 2)
	assert.Contains(t, sources[0], "pandas")
	assert.Contains(t, sources[1], "hist")

	// restartable: a second pass yields the same cells
	n := 0
	for range doc.CellsByType(Code) {
		n++
	}
	assert.Equal(t, 2, n)

	// raw cells never match a filter
	for range doc.CellsByType("raw-ish") {
		t.Fatal("unexpected cell")
	}
}

func TestHasAnyOutput(t *testing.T) {
	doc, err := Parse([]byte(sampleNotebook))
	require.NoError(t, err)
	assert.True(t, doc.HasAnyOutput())

	empty := &Document{Cells: []Cell{
		{Type: Code, Source: "x = 1"},
		{Type: Markdown, Source: "notes"},
	}}
	assert.False(t, empty.HasAnyOutput())
}

func TestCountImageOutputs(t *testing.T) {
	mk := func(mediaTypes ...string) Output {
		out := Output{Data: map[string]json.RawMessage{}}
		for _, mt := range mediaTypes {
			out.Data[mt] = json.RawMessage(`"x"`)
		}
		return out
	}

	doc := &Document{Cells: []Cell{
		{Type: Code, Outputs: []Output{mk("image/png", "text/plain")}},
		{Type: Code, Outputs: []Output{mk("text/plain")}},
		{Type: Code, Outputs: []Output{mk("image/svg+xml"), mk("image/jpeg")}},
	}}
	assert.Equal(t, 3, doc.CountImageOutputs())
}

func TestFindPatterns(t *testing.T) {
	doc := &Document{Cells: []Cell{
		{Type: Markdown, Source: "# WINE classification project"},
		{Type: Code, Source: "seed = 42  # wine classification again"},
	}}

	patterns := []Pattern{
		MustPattern("title", `wine classification`),
		MustPattern("absent", `neural network`),
	}

	// case-insensitive, and repeats collapse to one membership flag
	found := doc.FindPatterns(patterns, Markdown, Code)
	assert.True(t, found["title"])
	assert.False(t, found["absent"])

	// cell-type filter excludes markdown-only matches
	codeOnly := doc.FindPatterns([]Pattern{MustPattern("hash", `project`)}, Code)
	assert.False(t, codeOnly["hash"])
}

func TestSourceByType(t *testing.T) {
	doc := &Document{Cells: []Cell{
		{Type: Code, Source: "a = 1"},
		{Type: Markdown, Source: "notes"},
		{Type: Code, Source: "b = 2"},
	}}
	assert.Equal(t, "a = 1\nb = 2", doc.SourceByType(Code))
}
