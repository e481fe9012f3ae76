// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

// language tags the rule tables. New languages plug in here without
// touching the control flow in Normalize.
type language int

const (
	langRU language = iota
	langEN
)

type repairRules struct {
	stopwords map[string]bool
	prefixes  map[string]bool
	suffixes  map[string]bool
}

var repairTables = map[language]repairRules{
	langRU: {
		stopwords: stringSet(
			"и", "в", "во", "на", "к", "с", "со", "у", "о", "об", "от", "до",
			"по", "за", "из", "не", "ни", "но", "ли", "же", "бы", "мы", "вы",
			"я", "он", "она", "они", "это", "то", "как", "при", "для", "без",
			"над", "под", "про", "так", "или", "а",
		),
		suffixes: stringSet(
			"го", "ому", "ыми", "ый", "ая", "ое", "ые", "ого", "овой", "овке",
			"овки", "овка", "ении", "ение", "ения", "ению", "ением", "ность",
			"ности", "ностью", "ский", "ского", "ская", "ские", "ских",
			"ческим", "ческой", "ческих", "ческого", "тельный", "тельного",
			"тельная", "тельные", "тельным", "тельными", "дательный",
			"дательного", "дательной", "дательным", "дательными",
			"дования", "дование", "дователь", "дователей",
		),
	},
	langEN: {
		stopwords: stringSet(
			"a", "an", "the", "and", "or", "but", "if", "then", "of", "to",
			"in", "on", "at", "by", "for", "with", "as", "is", "are", "was",
			"were", "be", "been", "being", "this", "that", "these", "those",
			"it", "its", "from", "into", "not", "no", "so",
		),
		prefixes: stringSet(
			"inter", "multi", "micro", "macro", "post", "pre", "sub", "super",
			"trans", "poly", "mono", "neo", "auto", "meta", "socio", "eco",
		),
		suffixes: stringSet(
			"tion", "tions", "ing", "ed", "ly", "al", "ment", "ence", "ance",
			"ous", "able", "ible", "ity", "ize", "izes", "ized", "ization",
			"ative", "ness", "less", "ful", "ical", "ically", "sion", "sions",
			"ious", "ably", "ist", "ists", "ism", "isms",
		),
	},
}

func stringSet(items ...string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
