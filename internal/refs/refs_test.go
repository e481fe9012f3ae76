// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"doi merged into previous",
			[]string{"Author A. Title. 2020.", "https://doi.org/10.1/xyz"},
			[]string{"Author A. Title. 2020. https://doi.org/10.1/xyz"},
		},
		{
			"numbering stripped",
			[]string{"1. Иванов И.И. Статья. 2021.", "2. Петров П.П. Книга. 2022."},
			[]string{"Иванов И.И. Статья. 2021.", "Петров П.П. Книга. 2022."},
		},
		{
			"doi prefix merged",
			[]string{"Krechetnikov R. Hidden invariances. 2001.", "doi: 10.1137/S0036139900378906"},
			[]string{"Krechetnikov R. Hidden invariances. 2001. doi: 10.1137/S0036139900378906"},
		},
		{
			"dx.doi.org merged",
			[]string{"Smith J. Paper. 2019.", "http://dx.doi.org/10.1000/182"},
			[]string{"Smith J. Paper. 2019. http://dx.doi.org/10.1000/182"},
		},
		{
			"first fragment is a locator",
			[]string{"https://doi.org/10.1/abc", "Author B. Title. 2021."},
			[]string{"https://doi.org/10.1/abc", "Author B. Title. 2021."},
		},
		{
			"empties dropped",
			[]string{"", "Author C. Title. 2018.", "   "},
			[]string{"Author C. Title. 2018."},
		},
		{
			"tabs collapsed",
			[]string{"Author\tD.\tTitle.   2017."},
			[]string{"Author D. Title. 2017."},
		},
		{
			"numbering only at start",
			[]string{"Иванов И.И. Работа т. 2. С. 15."},
			[]string{"Иванов И.И. Работа т. 2. С. 15."},
		},
		{
			"empty input",
			nil,
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(tt.in))
		})
	}
}

func TestProcessIdempotent(t *testing.T) {
	in := []string{
		"1. Author A. Title. 2020.",
		"https://doi.org/10.1/xyz",
		"2. Author B. Title. 2021.",
		"doi.org/10.2/abc",
	}
	once := Process(in)
	twice := Process(once)
	assert.Equal(t, once, twice)
}

func TestMergeTrailingNoOpOnMerged(t *testing.T) {
	merged := []string{
		"Author A. Title. 2020. https://doi.org/10.1/xyz",
		"Author B. Title. 2021.",
	}
	assert.Equal(t, merged, MergeTrailing(merged))
}

func TestMergeTrailingKeepsYearNumbering(t *testing.T) {
	// Citations that open with a year token must survive repeated
	// application untouched; only Process strips numbering.
	refs := []string{"2005. Иванов И.И. Статья. М.", "1. Петров П.П. Книга."}
	assert.Equal(t, refs, MergeTrailing(MergeTrailing(refs)))
}

func TestNoOrphanLocators(t *testing.T) {
	in := []string{
		"Author A. Title.",
		"https://example.org/paper",
		"doi: 10.5/qqq",
		"Author B. Title.",
		"http://dx.doi.org/10.6/www",
	}
	out := Process(in)
	for i, ref := range out {
		if i == 0 {
			continue
		}
		assert.False(t, IsLocator(ref), "output entry %d is a bare locator: %q", i, ref)
	}
	assert.Len(t, out, 2)
}
