// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journalcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dexter626358/issuekit/pkg/types"
)

func TestParseFolderName(t *testing.T) {
	tests := []struct {
		in   string
		want types.IssueRef
		ok   bool
	}{
		{"2619-1601_2024_6", types.IssueRef{ISSN: "2619-1601", Year: "2024", Number: "6"}, true},
		{"2619-1601_2024_10_6", types.IssueRef{ISSN: "2619-1601", Year: "2024", Volume: "10", Number: "6"}, true},
		{"0869-544X_2025_6", types.IssueRef{ISSN: "0869-544X", Year: "2025", Number: "6"}, true},
		// En dash inside the ISSN, as pasted from a PDF.
		{"2619–1601_2024_6", types.IssueRef{ISSN: "2619-1601", Year: "2024", Number: "6"}, true},
		{"notafolder", types.IssueRef{}, false},
		{"2619-1601_24_6", types.IssueRef{}, false},
		{"2619-1601_2024", types.IssueRef{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseFolderName(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRegistryLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- issn: "2619-1601"
  title: "Вестник архивиста"
  title_en: "Herald of an Archivist"
  titleid: 9125
- issn: "0869-544X"
  title: "Славяноведение"
`), 0o644))

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	j, ok := reg.Lookup("2619-1601")
	require.True(t, ok)
	assert.Equal(t, "Вестник архивиста", j.Title)
	assert.Equal(t, 9125, j.TitleID)

	// Lookup ignores the case of the check digit.
	_, ok = reg.Lookup("0869-544x")
	assert.True(t, ok)

	_, ok = reg.Lookup("0000-0000")
	assert.False(t, ok)
}

func TestOverrideTitleIDs(t *testing.T) {
	reg := &Registry{journals: []types.Journal{
		{ISSN: "2619-1601", Title: "Вестник архивиста", TitleID: 9125},
		{ISSN: "0869-544X", Title: "Славяноведение"},
	}}

	reg.OverrideTitleIDs(map[string]int{"0869-544x": 7790, "0000-0000": 1})

	j, ok := reg.Lookup("0869-544X")
	require.True(t, ok)
	assert.Equal(t, 7790, j.TitleID)

	j, _ = reg.Lookup("2619-1601")
	assert.Equal(t, 9125, j.TitleID)
}

func TestLoadRegistryMissing(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParsePagesRange(t *testing.T) {
	tests := []struct {
		in          string
		first, last int
		ok          bool
	}{
		{"4-16", 4, 16, true},
		{"4–16", 4, 16, true},
		{"4—16", 4, 16, true},
		{"4", 4, 4, true},
		{"4-16, 20-25", 4, 16, true},
		{"16-4", 4, 16, true},
		{" 4 - 16 ", 4, 16, true},
		{"", 0, 0, false},
		{"iv-xii", 0, 0, false},
	}
	for _, tt := range tests {
		first, last, ok := ParsePagesRange(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.first, first, "input %q", tt.in)
		assert.Equal(t, tt.last, last, "input %q", tt.in)
	}
}

func TestAnalyzeIssuePages(t *testing.T) {
	docs := []*types.Document{
		{Pages: "17-30"},
		{Pages: "4-16"},
		{Pages: ""},
		{Pages: "31-45"},
	}
	assert.Equal(t, "4-45", AnalyzeIssuePages(docs))
	assert.Equal(t, "", AnalyzeIssuePages([]*types.Document{{Pages: "n/a"}}))
	assert.Equal(t, "7", AnalyzeIssuePages([]*types.Document{{Pages: "7"}}))
}

func TestDetectCover(t *testing.T) {
	dir := t.TempDir()
	_, ok := DetectCover(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("jpg"), 0o644))
	name, ok := DetectCover(dir)
	require.True(t, ok)
	assert.Equal(t, "cover.jpg", name)

	// jpeg wins over jpg when both exist.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpeg"), []byte("jpeg"), 0o644))
	name, ok = DetectCover(dir)
	require.True(t, ok)
	assert.Equal(t, "cover.jpeg", name)
}

func TestBuildConfig(t *testing.T) {
	ref := types.IssueRef{ISSN: "2619-1601", Year: "2024", Number: "6"}
	journal := types.Journal{ISSN: "2619-1601", Title: "Вестник архивиста", TitleID: 9125}

	cfg, err := BuildConfig(ref, journal, "4-160")
	require.NoError(t, err)
	assert.Equal(t, 9125, cfg.TitleID)
	assert.Equal(t, "2619-1601", cfg.ISSN)
	assert.Equal(t, "Вестник архивиста", cfg.Titles.RU)
	assert.Equal(t, "Вестник архивиста", cfg.Titles.EN, "russian title doubles as english when none is set")
	assert.Equal(t, "6", cfg.Issue.Number)
	assert.Equal(t, "4-160", cfg.Issue.Pages)
}

func TestBuildConfigRejectsIncomplete(t *testing.T) {
	journal := types.Journal{ISSN: "2619-1601", Title: "Вестник архивиста"}

	// Neither volume nor number.
	_, err := BuildConfig(types.IssueRef{ISSN: "2619-1601", Year: "2024"}, journal, "4-160")
	assert.Error(t, err)

	// No pages.
	_, err = BuildConfig(types.IssueRef{ISSN: "2619-1601", Year: "2024", Number: "6"}, journal, "")
	assert.Error(t, err)

	// No title at all.
	_, err = BuildConfig(types.IssueRef{ISSN: "2619-1601", Year: "2024", Number: "6"}, types.Journal{}, "4-160")
	assert.Error(t, err)
}