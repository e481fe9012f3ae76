// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dexter626358/issuekit/internal/journalcfg"
	"github.com/Dexter626358/issuekit/internal/metadoc"
	"github.com/Dexter626358/issuekit/pkg/types"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRegistry(t *testing.T) *journalcfg.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- issn: "2619-1601"
  title: "Вестник архивиста"
  titleid: 9125
`), 0o644))
	reg, err := journalcfg.LoadRegistry(path)
	require.NoError(t, err)
	return reg
}

func writeArticle(t *testing.T, issueDir, name, pages string) {
	t.Helper()
	doc := types.NewDocument()
	doc.ArtTitles.RUS = "Статья " + name
	doc.Pages = pages
	doc.Authors = []types.Author{{
		Num:         "1",
		IndividInfo: types.IndividByLang{RUS: types.IndividInfo{Surname: "Иванов", Initials: "И.И."}},
	}}
	doc.ProcessedViaWeb = true
	store := metadoc.NewStore(filepath.Join(issueDir, "json"))
	require.NoError(t, store.Save(name, doc))
}

func TestBuildIssue(t *testing.T) {
	root := t.TempDir()
	issueDir := filepath.Join(root, "2619-1601_2024_6")
	writeArticle(t, issueDir, "article_001", "4-16")
	writeArticle(t, issueDir, "article_002", "17-30")
	require.NoError(t, os.WriteFile(filepath.Join(issueDir, "cover.jpeg"), []byte("img"), 0o644))

	res, err := BuildIssue(issueDir, testRegistry(t), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Articles)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, "4-30", res.Pages)
	assert.True(t, res.Valid)

	data, err := os.ReadFile(filepath.Join(issueDir, "xml", "2619-1601_2024_6.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<titleid>9125</titleid>")
	assert.Contains(t, string(data), "<file desc=\"cover\">cover.jpeg</file>")
	assert.Contains(t, string(data), "Статья article_001")
}

func TestBuildIssueSkipsBrokenArticle(t *testing.T) {
	root := t.TempDir()
	issueDir := filepath.Join(root, "2619-1601_2024_6")
	writeArticle(t, issueDir, "article_001", "4-16")
	require.NoError(t, os.WriteFile(filepath.Join(issueDir, "json", "broken.json"), []byte("{not json"), 0o644))

	res, err := BuildIssue(issueDir, testRegistry(t), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Articles)
	assert.Equal(t, 1, res.Failed)
}

func TestBuildIssueBadFolderName(t *testing.T) {
	issueDir := filepath.Join(t.TempDir(), "random_folder")
	writeArticle(t, issueDir, "article_001", "4-16")

	_, err := BuildIssue(issueDir, testRegistry(t), quietLogger())
	assert.Error(t, err)
}

func TestBuildIssueUnknownISSN(t *testing.T) {
	issueDir := filepath.Join(t.TempDir(), "0000-0001_2024_6")
	writeArticle(t, issueDir, "article_001", "4-16")

	_, err := BuildIssue(issueDir, testRegistry(t), quietLogger())
	assert.Error(t, err)
}

func TestBuildIssueEmpty(t *testing.T) {
	issueDir := filepath.Join(t.TempDir(), "2619-1601_2024_6")
	require.NoError(t, os.MkdirAll(filepath.Join(issueDir, "json"), 0o755))

	_, err := BuildIssue(issueDir, testRegistry(t), quietLogger())
	assert.Error(t, err)
}

func TestBuildAll(t *testing.T) {
	root := t.TempDir()
	writeArticle(t, filepath.Join(root, "2619-1601_2024_5"), "article_001", "4-16")
	writeArticle(t, filepath.Join(root, "2619-1601_2024_6"), "article_001", "4-20")
	// A folder that cannot be parsed must fail in isolation.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scratch"), 0o755))
	// Hidden folders are ignored entirely.
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".archive"), 0o755))

	results, batch, err := BuildAll(root, testRegistry(t), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Built)
	assert.Equal(t, 1, batch.Failed)
	assert.Len(t, results, 2)
}