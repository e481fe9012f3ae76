// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dexter626358/issuekit/pkg/types"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	doc := types.NewDocument()
	doc.ArtTitles.RUS = "Архивное дело в регионе"
	doc.ArtTitles.ENG = "Archival Work in the Region"
	doc.Keywords.RUS = []string{"архив", "регион"}
	doc.Codes.DOI = "10.1234/test.2024.1"
	doc.Pages = "4-16"
	require.NoError(t, s.Save("article_001", doc))

	got, err := s.Load("article_001")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestStoreList(t *testing.T) {
	s := NewStore(t.TempDir())
	for _, name := range []string{"b_article", "a_article", "c_article"} {
		require.NoError(t, s.Save(name, types.NewDocument()))
	}
	// A stray non-JSON file must not be listed.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0o644))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a_article", "b_article", "c_article"}, names)
}

func TestStoreListMissingDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"))
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStoreLoadRejectsUnknownKeys(t *testing.T) {
	s := NewStore(t.TempDir())
	path := s.Path("bad")
	require.NoError(t, os.WriteFile(path, []byte(`{"artTitles": {"RUS": "", "ENG": ""}, "typo_field": 1}`), 0o644))

	_, err := s.Load("bad")
	assert.Error(t, err)
}

func TestStoreLoadRepairsShape(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(s.Path("minimal"), []byte(`{}`), 0o644))

	doc, err := s.Load("minimal")
	require.NoError(t, err)
	assert.NotNil(t, doc.Keywords.RUS)
	assert.NotNil(t, doc.References.ENG)
	assert.NotNil(t, doc.Authors)
	assert.Equal(t, types.ArtTypeRAR, doc.ArtType)
}

func TestApplyFormPartialUpdate(t *testing.T) {
	doc := types.NewDocument()
	doc.ArtTitles.RUS = "Старое название"
	doc.Abstracts.RUS = "Аннотация"
	doc.Codes.UDK = "930.25"

	require.NoError(t, ApplyForm(doc, Form{TitleRUS: "Новое название"}))

	assert.Equal(t, "Новое название", doc.ArtTitles.RUS)
	assert.Equal(t, "Аннотация", doc.Abstracts.RUS)
	assert.Equal(t, "930.25", doc.Codes.UDK)
}

func TestApplyFormAuthorsReplaceWholesale(t *testing.T) {
	doc := types.NewDocument()
	doc.Authors = []types.Author{
		{Num: "1", IndividInfo: types.IndividByLang{RUS: types.IndividInfo{Surname: "Иванов"}}},
		{Num: "2", IndividInfo: types.IndividByLang{RUS: types.IndividInfo{Surname: "Петров"}}},
	}

	require.NoError(t, ApplyForm(doc, Form{
		Authors: []types.Author{
			{Num: "1", IndividInfo: types.IndividByLang{RUS: types.IndividInfo{Surname: "Сидоров"}}},
		},
	}))

	require.Len(t, doc.Authors, 1)
	assert.Equal(t, "Сидоров", doc.Authors[0].IndividInfo.RUS.Surname)
}

func TestApplyFormDates(t *testing.T) {
	doc := types.NewDocument()
	require.NoError(t, ApplyForm(doc, Form{
		DateReceived:    "15.03.2022",
		DateAccepted:    "2022.4.1",
		DatePublication: "20/05/2022",
	}))

	assert.Equal(t, "2022-03-15", doc.Dates.Received)
	assert.Equal(t, "2022-04-01", doc.Dates.Accepted)
	assert.Equal(t, "2022-05-20", doc.Dates.Publication)
}

func TestApplyFormUnparseableDatePassesThrough(t *testing.T) {
	doc := types.NewDocument()
	require.NoError(t, ApplyForm(doc, Form{DateReceived: "вчера"}))
	assert.Equal(t, "вчера", doc.Dates.Received)
}

func TestApplyFormBadArtType(t *testing.T) {
	doc := types.NewDocument()
	assert.Error(t, ApplyForm(doc, Form{ArtType: "XYZ"}))
}

func TestApplyFormReferencesMergeLocators(t *testing.T) {
	doc := types.NewDocument()
	require.NoError(t, ApplyForm(doc, Form{
		ReferencesRUS: "Иванов И.И. Работа. М., 2020.\nhttps://doi.org/10.1234/x\nПетров П.П. Статья. 2021.",
	}))

	assert.Equal(t, []string{
		"Иванов И.И. Работа. М., 2020. https://doi.org/10.1234/x",
		"Петров П.П. Статья. 2021.",
	}, doc.References.RUS)
}

func TestApplyFormKeepsReferencesAsTyped(t *testing.T) {
	doc := types.NewDocument()
	doc.References.RUS = []string{
		"2005. Иванов И.И. Статья. М.",
		"Петров П.П. Книга. 2022.",
	}

	// An edit cycle that touches nothing else must leave the stored
	// references byte for byte as they were.
	for i := 0; i < 3; i++ {
		require.NoError(t, ApplyForm(doc, ToForm(doc)))
	}
	assert.Equal(t, []string{
		"2005. Иванов И.И. Статья. М.",
		"Петров П.П. Книга. 2022.",
	}, doc.References.RUS)
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"архив; регион; история", []string{"архив", "регион", "история"}},
		{"archive, region", []string{"archive", "region"}},
		{"single keyword phrase", []string{"single keyword phrase"}},
		{"a; b,c; d", []string{"a", "b,c", "d"}},
		{"  ", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitKeywords(tt.in), "input %q", tt.in)
	}
}

func TestToFormRoundTrip(t *testing.T) {
	doc := types.NewDocument()
	doc.ArtTitles.RUS = "Название"
	doc.Keywords.RUS = []string{"а", "б"}
	doc.References.ENG = []string{"Smith J. Paper. 2020.", "Jones M. Book. 2021."}
	doc.Dates.Received = "2022-03-15"

	f := ToForm(doc)
	assert.Equal(t, "а; б", f.KeywordsRUS)
	assert.Equal(t, "Smith J. Paper. 2020.\nJones M. Book. 2021.", f.ReferencesENG)

	doc2 := types.NewDocument()
	require.NoError(t, ApplyForm(doc2, f))
	assert.Equal(t, doc.ArtTitles, doc2.ArtTitles)
	assert.Equal(t, doc.Keywords, doc2.Keywords)
	assert.Equal(t, doc.References.ENG, doc2.References.ENG)
	assert.Equal(t, doc.Dates.Received, doc2.Dates.Received)
}

func TestMarkProcessed(t *testing.T) {
	doc := types.NewDocument()
	assert.False(t, doc.Reviewed())
	MarkProcessed(doc)
	assert.True(t, doc.Reviewed())
}

func TestEnsureAuthorsEditorial(t *testing.T) {
	doc := types.NewDocument()
	doc.ArtType = types.ArtTypeEDI
	EnsureAuthors(doc)
	require.Len(t, doc.Authors, 1)
	assert.Equal(t, "Редакция", doc.Authors[0].IndividInfo.RUS.Surname)
	assert.Equal(t, "Editorial", doc.Authors[0].IndividInfo.ENG.Surname)

	// non-editorial documents are left alone
	doc2 := types.NewDocument()
	EnsureAuthors(doc2)
	assert.Empty(t, doc2.Authors)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"15.03.2022", "2022-03-15"},
		{"15/03/2022", "2022-03-15"},
		{"2022.03.15", "2022-03-15"},
		{"2022-03-15", "2022-03-15"},
		{"1.2.2022", "2022-02-01"},
		{"March 15, 2022", "2022-03-15"},
	}
	for _, tt := range tests {
		got, err := NormalizeDate(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}