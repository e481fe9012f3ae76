// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records passed between the pipeline
// stages: the per-article metadata document, its authors, and the
// issue-level configuration projected into the output XML.
package types

// Lang is a three-letter publication language code (RINC convention).
type Lang string

const (
	LangRUS Lang = "RUS"
	LangENG Lang = "ENG"
)

// ArtType classifies an article for the bibliographic index.
type ArtType string

const (
	ArtTypeRAR ArtType = "RAR" // research article (default)
	ArtTypeREV ArtType = "REV" // review
	ArtTypeBRV ArtType = "BRV" // book review
	ArtTypeSCO ArtType = "SCO" // short communication
	ArtTypeREP ArtType = "REP" // report
	ArtTypeCNF ArtType = "CNF" // conference material
	ArtTypeEDI ArtType = "EDI" // editorial
	ArtTypeCOR ArtType = "COR" // correspondence
	ArtTypeABS ArtType = "ABS" // abstract
	ArtTypeRPR ArtType = "RPR" // reprint
	ArtTypeMIS ArtType = "MIS" // miscellanea
	ArtTypePER ArtType = "PER" // personalia
	ArtTypeUNK ArtType = "UNK" // unknown
)

// artTypes is the closed set of accepted article type codes.
var artTypes = map[ArtType]bool{
	ArtTypeRAR: true, ArtTypeREV: true, ArtTypeBRV: true, ArtTypeSCO: true,
	ArtTypeREP: true, ArtTypeCNF: true, ArtTypeEDI: true, ArtTypeCOR: true,
	ArtTypeABS: true, ArtTypeRPR: true, ArtTypeMIS: true, ArtTypePER: true,
	ArtTypeUNK: true,
}

// Valid reports whether t is one of the accepted article type codes.
func (t ArtType) Valid() bool {
	return artTypes[t]
}

// BiText holds one free-text field in both publication languages.
// Either side may be empty.
type BiText struct {
	RUS string `json:"RUS"`
	ENG string `json:"ENG"`
}

// Get returns the value for lang.
func (b BiText) Get(lang Lang) string {
	if lang == LangENG {
		return b.ENG
	}
	return b.RUS
}

// BiList holds one ordered list field (keywords, references) in both
// publication languages.
type BiList struct {
	RUS []string `json:"RUS"`
	ENG []string `json:"ENG"`
}

// Get returns the list for lang.
func (b BiList) Get(lang Lang) []string {
	if lang == LangENG {
		return b.ENG
	}
	return b.RUS
}

// Codes holds the classification and identifier codes of one article.
type Codes struct {
	UDK string `json:"udk"`
	BBK string `json:"bbk"`
	DOI string `json:"doi"`
	EDN string `json:"edn"`
}

// Empty reports whether no code is set.
func (c Codes) Empty() bool {
	return c.UDK == "" && c.BBK == "" && c.DOI == "" && c.EDN == ""
}

// Dates holds the editorial milestone dates of one article as
// YYYY-MM-DD strings, or empty when unknown.
type Dates struct {
	Received    string `json:"dateReceived"`
	Accepted    string `json:"dateAccepted"`
	Publication string `json:"datePublication"`
}

// Document is the canonical per-article metadata record. It is persisted
// as one pretty-printed UTF-8 JSON file per article and consumed
// unchanged by the XML projector.
type Document struct {
	ArtTitles    BiText   `json:"artTitles"`
	Abstracts    BiText   `json:"abstracts"`
	Keywords     BiList   `json:"keywords"`
	References   BiList   `json:"references"`
	Codes        Codes    `json:"codes"`
	Dates        Dates    `json:"dates"`
	Fundings     BiText   `json:"fundings"`
	ShortMessage BiText   `json:"shortMessage"`
	Authors      []Author `json:"authors"`
	ArtType      ArtType  `json:"artType"`
	PublLang     Lang     `json:"PublLang"`
	Pages        string   `json:"pages"`

	// File is the name of the full-text source file for this article,
	// when known. Projected as files/file[@desc="fullText"].
	File string `json:"file,omitempty"`

	// ProcessedViaWeb is set only by the save action of the review form.
	// Its presence is the sole criterion for "human-reviewed": absence of
	// other data does not imply unprocessed, and presence of data does
	// not imply processed.
	ProcessedViaWeb bool `json:"_processed_via_web,omitempty"`
}

// NewDocument returns an empty document skeleton with the default
// article type and non-nil list fields.
func NewDocument() *Document {
	return &Document{
		Keywords:   BiList{RUS: []string{}, ENG: []string{}},
		References: BiList{RUS: []string{}, ENG: []string{}},
		Authors:    []Author{},
		ArtType:    ArtTypeRAR,
	}
}

// Reviewed reports whether the document went through the human review
// step.
func (d *Document) Reviewed() bool {
	return d.ProcessedViaWeb
}
