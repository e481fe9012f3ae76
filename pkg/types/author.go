// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AuthorCodes holds the author-identifier schemes extracted from free
// text. Codes are language-independent: the RUS and ENG sub-records of
// one author always carry identical codes.
type AuthorCodes struct {
	SPIN         string `json:"spin"`
	ORCID        string `json:"orcid"`
	ScopusID     string `json:"scopusid"`
	ResearcherID string `json:"researcherid"`
}

// Empty reports whether no identifier is set.
func (c AuthorCodes) Empty() bool {
	return c.SPIN == "" && c.ORCID == "" && c.ScopusID == "" && c.ResearcherID == ""
}

// IndividInfo is one author's identity and affiliation data in a single
// language.
type IndividInfo struct {
	Surname   string      `json:"surname"`
	Initials  string      `json:"initials"`
	OrgName   string      `json:"orgName"`
	Address   string      `json:"address"`
	Email     string      `json:"email"`
	OtherInfo string      `json:"otherInfo"`
	Codes     AuthorCodes `json:"authorCodes"`
}

// IndividByLang pairs the RUS and ENG variants of one author's data.
type IndividByLang struct {
	RUS IndividInfo `json:"RUS"`
	ENG IndividInfo `json:"ENG"`
}

// Get returns the variant for lang.
func (i IndividByLang) Get(lang Lang) IndividInfo {
	if lang == LangENG {
		return i.ENG
	}
	return i.RUS
}

// Author is one author of an article. Correspondence is tri-state:
// nil means undetermined, and the correspondent element is then omitted
// from the XML.
type Author struct {
	Num            string        `json:"num"`
	Correspondence *bool         `json:"correspondence,omitempty"`
	IndividInfo    IndividByLang `json:"individInfo"`
}

// Corresponds reports whether the author is explicitly marked as the
// corresponding author.
func (a Author) Corresponds() bool {
	return a.Correspondence != nil && *a.Correspondence
}

// Email returns the author's email, preferring the RUS sub-record.
func (a Author) Email() string {
	if a.IndividInfo.RUS.Email != "" {
		return a.IndividInfo.RUS.Email
	}
	return a.IndividInfo.ENG.Email
}

// Surname returns the author's surname, preferring the RUS sub-record.
func (a Author) Surname() string {
	if a.IndividInfo.RUS.Surname != "" {
		return a.IndividInfo.RUS.Surname
	}
	return a.IndividInfo.ENG.Surname
}

// EditorialAuthor returns the placeholder author used for editorial
// articles that carry no individual byline.
func EditorialAuthor() Author {
	return Author{
		Num: "1",
		IndividInfo: IndividByLang{
			RUS: IndividInfo{Surname: "Редакция", Initials: "Журнала"},
			ENG: IndividInfo{Surname: "Editorial", Initials: "Team"},
		},
	}
}
