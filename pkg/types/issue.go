// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Journal is one entry of the static journal registry, looked up by ISSN.
type Journal struct {
	ISSN    string `json:"ISSN" yaml:"issn"`
	Title   string `json:"Title" yaml:"title"`
	TitleEN string `json:"TitleEN,omitempty" yaml:"title_en,omitempty"`
	TitleID int    `json:"TitleID,omitempty" yaml:"titleid,omitempty"`
}

// IssueRef identifies one issue, as parsed from an issue folder name of
// the form ISSN_YEAR_NUMBER or ISSN_YEAR_VOLUME_NUMBER.
type IssueRef struct {
	ISSN   string
	Year   string
	Volume string // empty when the folder name carries no volume
	Number string
}

// IssueInfo holds the issue-level values projected into the XML header.
type IssueInfo struct {
	Year   string `yaml:"year"`
	Volume string `yaml:"volume"`
	Number string `yaml:"number"`
	Pages  string `yaml:"pages"`
}

// JournalTitles holds the journal name per language.
type JournalTitles struct {
	RU string `yaml:"ru"`
	EN string `yaml:"en"`
}

// IssueConfig is the complete configuration for projecting one issue.
type IssueConfig struct {
	TitleID int           `yaml:"titleid"`
	ISSN    string        `yaml:"issn"`
	EISSN   string        `yaml:"eissn"`
	Titles  JournalTitles `yaml:"journal_titles"`
	Issue   IssueInfo     `yaml:"issue"`

	// Cover is the issue cover image file name, when present in the
	// issue directory. Projected as files/file[@desc="cover"].
	Cover string `yaml:"-"`
}

// Line is one text fragment handed over by the external extractor.
type Line struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	LineNumber int    `json:"line_number"`
}
