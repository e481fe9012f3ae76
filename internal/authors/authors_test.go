// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dexter626358/issuekit/pkg/types"
)

func makeAuthor(surname, email string) types.Author {
	return types.Author{
		IndividInfo: types.IndividByLang{
			RUS: types.IndividInfo{Surname: surname, Email: email},
		},
	}
}

func corresponds(t *testing.T, a types.Author) bool {
	t.Helper()
	require.NotNil(t, a.Correspondence, "correspondence must be decided for %q", a.IndividInfo.RUS.Surname)
	return *a.Correspondence
}

func TestDetermineCorrespondenceTextualMarker(t *testing.T) {
	authors := []types.Author{
		makeAuthor("Иванов", "ivanov@example.org"),
		makeAuthor("Петров", "petrov@example.org"),
	}
	text := "Иванов И.И., Петров П.П. Автор для переписки: Петров П.П., petrov@example.org"

	DetermineCorrespondence(authors, text)

	assert.False(t, corresponds(t, authors[0]))
	assert.True(t, corresponds(t, authors[1]))
}

func TestDetermineCorrespondenceSymbolMarker(t *testing.T) {
	authors := []types.Author{
		makeAuthor("Smith", "smith@uni.edu"),
		makeAuthor("Jones", "jones@uni.edu"),
	}
	text := "John Smith, Mary Jones*\nDepartment of History"

	DetermineCorrespondence(authors, text)

	assert.False(t, corresponds(t, authors[0]))
	assert.True(t, corresponds(t, authors[1]))
}

func TestDetermineCorrespondenceSingleEmail(t *testing.T) {
	authors := []types.Author{
		makeAuthor("A", ""),
		makeAuthor("B", "x@y.com"),
		makeAuthor("C", ""),
	}

	DetermineCorrespondence(authors, "A, B, C. Contact: x@y.com")

	assert.True(t, corresponds(t, authors[0]))
	assert.False(t, corresponds(t, authors[1]))
	assert.False(t, corresponds(t, authors[2]))
	for _, a := range authors {
		assert.Equal(t, "x@y.com", a.IndividInfo.RUS.Email)
		assert.Equal(t, "x@y.com", a.IndividInfo.ENG.Email)
	}
}

func TestDetermineCorrespondenceUniqueEmail(t *testing.T) {
	authors := []types.Author{
		makeAuthor("Иванов", "ivanov@mail.ru"),
		makeAuthor("Петров", ""),
	}
	// Two emails in the text, so the single-email rule must not fire.
	text := "Иванов, Петров. ivanov@mail.ru, editor@journal.ru"

	DetermineCorrespondence(authors, text)

	assert.True(t, corresponds(t, authors[0]))
	assert.False(t, corresponds(t, authors[1]))
}

func TestDetermineCorrespondenceDefault(t *testing.T) {
	authors := []types.Author{
		makeAuthor("Иванов", "a@mail.ru"),
		makeAuthor("Петров", "b@mail.ru"),
	}

	DetermineCorrespondence(authors, "Иванов, Петров. a@mail.ru b@mail.ru нет маркеров")

	assert.False(t, corresponds(t, authors[0]))
	assert.False(t, corresponds(t, authors[1]))
}

func TestDetermineCorrespondenceEmpty(t *testing.T) {
	assert.Empty(t, DetermineCorrespondence(nil, "text"))
}

func TestMirrorEmail(t *testing.T) {
	authors := []types.Author{
		{IndividInfo: types.IndividByLang{
			RUS: types.IndividInfo{Email: "rus@example.org"},
		}},
		{IndividInfo: types.IndividByLang{
			ENG: types.IndividInfo{Email: "eng@example.org"},
		}},
	}

	MirrorEmail(authors)

	assert.Equal(t, "rus@example.org", authors[0].IndividInfo.ENG.Email)
	assert.Equal(t, "eng@example.org", authors[1].IndividInfo.RUS.Email)
}

func TestMirrorCodes(t *testing.T) {
	authors := []types.Author{
		{IndividInfo: types.IndividByLang{
			RUS: types.IndividInfo{Codes: types.AuthorCodes{SPIN: "1234-5678"}},
			ENG: types.IndividInfo{Codes: types.AuthorCodes{ORCID: "https://orcid.org/0000-0001-6816-0260"}},
		}},
	}

	MirrorCodes(authors)

	for _, info := range []types.IndividInfo{authors[0].IndividInfo.RUS, authors[0].IndividInfo.ENG} {
		assert.Equal(t, "1234-5678", info.Codes.SPIN)
		assert.Equal(t, "0000-0001-6816-0260", info.Codes.ORCID)
	}
}

func TestRenumber(t *testing.T) {
	authors := []types.Author{
		makeAuthor("A", ""), makeAuthor("B", ""), makeAuthor("C", ""),
	}
	Renumber(authors)
	assert.Equal(t, "1", authors[0].Num)
	assert.Equal(t, "2", authors[1].Num)
	assert.Equal(t, "3", authors[2].Num)
}

func TestShareAffiliations(t *testing.T) {
	authors := []types.Author{
		{IndividInfo: types.IndividByLang{
			RUS: types.IndividInfo{OrgName: "МГУ", Address: "Москва"},
		}},
		{},
		{IndividInfo: types.IndividByLang{
			RUS: types.IndividInfo{OrgName: "СПбГУ"},
		}},
	}

	ShareAffiliations(authors, map[string][]int{"1": {1, 2}, "2": {3}})

	assert.Equal(t, "МГУ", authors[1].IndividInfo.RUS.OrgName)
	assert.Equal(t, "Москва", authors[1].IndividInfo.RUS.Address)
	assert.Equal(t, "СПбГУ", authors[2].IndividInfo.RUS.OrgName)
}