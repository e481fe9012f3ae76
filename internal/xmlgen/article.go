// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmlgen

import (
	"path/filepath"
	"strings"

	"github.com/Dexter626358/issuekit/pkg/types"
)

// projectArticle builds the article element. Element order is fixed by
// the delivery schema: pages, artType, langPubl, authors, artTitles,
// abstracts, codes, keywords, references, files, dates, artFunding.
func projectArticle(doc *types.Document) *element {
	article := newElement("article")

	article.textChild("pages", doc.Pages)
	article.textChild("artType", string(doc.ArtType))
	if doc.PublLang != "" {
		article.textChild("langPubl", string(doc.PublLang))
	}

	authors := article.child("authors")
	for i := range doc.Authors {
		projectAuthor(authors, &doc.Authors[i])
	}

	artTitles := article.child("artTitles")
	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		if title := doc.ArtTitles.Get(lang); title != "" {
			artTitles.textChild("artTitle", title).attr("lang", string(lang))
		}
	}

	abstracts := article.child("abstracts")
	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		if abstract := doc.Abstracts.Get(lang); abstract != "" {
			abstracts.textChild("abstract", abstract).attr("lang", string(lang))
		}
	}

	codes := article.child("codes")
	for _, c := range []struct{ tag, value string }{
		{"udk", doc.Codes.UDK},
		{"bbk", doc.Codes.BBK},
		{"doi", doc.Codes.DOI},
		{"edn", doc.Codes.EDN},
	} {
		if c.value != "" {
			codes.textChild(c.tag, c.value)
		}
	}

	keywords := article.child("keywords")
	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		group := doc.Keywords.Get(lang)
		if len(group) == 0 {
			continue
		}
		groupElem := keywords.child("kwdGroup")
		groupElem.attr("lang", string(lang))
		for _, kw := range group {
			groupElem.textChild("keyword", kw)
		}
	}

	references := article.child("references")
	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		for _, ref := range doc.References.Get(lang) {
			refInfo := references.child("reference").child("refInfo")
			refInfo.attr("lang", string(lang))
			refInfo.textChild("text", ref)
		}
	}

	if name := strings.TrimSpace(filepath.Base(doc.File)); name != "" && name != "." {
		files := article.child("files")
		files.textChild("file", name).attr("desc", "fullText")
	}

	dates := article.child("dates")
	for _, d := range []struct{ tag, value string }{
		{"dateReceived", doc.Dates.Received},
		{"dateAccepted", doc.Dates.Accepted},
		{"datePublication", doc.Dates.Publication},
	} {
		if d.value != "" {
			dates.textChild(d.tag, d.value)
		}
	}

	artFunding := article.child("artFunding")
	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		if funding := doc.Fundings.Get(lang); funding != "" {
			artFunding.textChild("funding", funding).attr("lang", string(lang))
		}
	}

	return article
}

// projectAuthor appends one author element: correspondent when
// decided, the identifier codes when any is set, then the per-language
// individInfo blocks.
func projectAuthor(authors *element, a *types.Author) {
	author := authors.child("author")
	author.attr("num", a.Num)

	if a.Correspondence != nil {
		if *a.Correspondence {
			author.textChild("correspondent", "1")
		} else {
			author.textChild("correspondent", "0")
		}
	}

	// The RUS codes win wholesale; ENG codes are a fallback, not a merge.
	codes := a.IndividInfo.RUS.Codes
	if codes.Empty() {
		codes = a.IndividInfo.ENG.Codes
	}
	if !codes.Empty() {
		codesElem := author.child("authorCodes")
		for _, c := range []struct{ tag, value string }{
			{"spin", codes.SPIN},
			{"orcid", codes.ORCID},
			{"scopusid", codes.ScopusID},
			{"researcherid", codes.ResearcherID},
		} {
			if v := strings.TrimSpace(c.value); v != "" {
				codesElem.textChild(c.tag, v)
			}
		}
	}

	for _, lang := range []types.Lang{types.LangRUS, types.LangENG} {
		info := a.IndividInfo.Get(lang)
		if infoEmpty(info) {
			continue
		}
		infoElem := author.child("individInfo")
		infoElem.attr("lang", string(lang))
		for _, f := range []struct{ tag, value string }{
			{"surname", info.Surname},
			{"initials", info.Initials},
			{"orgName", info.OrgName},
			{"address", info.Address},
			{"email", info.Email},
			{"otherInfo", info.OtherInfo},
		} {
			if f.value != "" {
				infoElem.textChild(f.tag, f.value)
			}
		}
	}
}

func infoEmpty(info types.IndividInfo) bool {
	return info.Surname == "" && info.Initials == "" && info.OrgName == "" &&
		info.Address == "" && info.Email == "" && info.OtherInfo == ""
}
