// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmlgen

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/Dexter626358/issuekit/pkg/types"
)

// Result is the outcome of checking one delivery file.
type Result struct {
	Valid  bool
	Errors []string

	// Structural is set because the check covers element structure, not
	// the full schema; callers report it as informational.
	Structural bool
}

// node is a generic parsed XML element.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

func (n *node) find(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

func (n *node) findAll(name string) []*node {
	var out []*node
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Validate checks a produced delivery file: well-formedness, the
// journal/issue skeleton, and every article. A missing or unreadable
// file is a finding like any other, so callers checking several files
// keep going.
func Validate(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{
			Structural: true,
			Errors:     []string{fmt.Sprintf("reading delivery file: %v", err)},
		}
	}
	return validateBytes(data)
}

func validateBytes(data []byte) Result {
	res := Result{Structural: true}

	var root node
	if err := xml.Unmarshal(data, &root); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("malformed XML: %v", err))
		return res
	}

	if root.XMLName.Local != "journal" {
		res.Errors = append(res.Errors, "root element must be journal")
		return res
	}

	for _, name := range []string{"titleid", "journalInfo", "issue"} {
		if root.find(name) == nil {
			res.Errors = append(res.Errors, "missing required element: "+name)
		}
	}

	if journalInfo := root.find("journalInfo"); journalInfo != nil {
		if journalInfo.attr("lang") == "" {
			res.Errors = append(res.Errors, "journalInfo must carry a lang attribute")
		}
		if journalInfo.find("title") == nil {
			res.Errors = append(res.Errors, "journalInfo must contain a title")
		}
	}

	if issue := root.find("issue"); issue != nil {
		for _, name := range []string{"volume", "number", "dateUni", "pages", "articles"} {
			if issue.find(name) == nil {
				res.Errors = append(res.Errors, "issue must contain element: "+name)
			}
		}
		if articles := issue.find("articles"); articles != nil {
			for i, article := range articles.findAll("article") {
				for _, msg := range checkArticleNode(article) {
					res.Errors = append(res.Errors, fmt.Sprintf("article %d: %s", i+1, msg))
				}
			}
		}
	}

	res.Errors = FilterBenign(res.Errors)
	res.Valid = len(res.Errors) == 0
	return res
}

// checkArticleNode mirrors the per-article structural rules of the
// delivery schema.
func checkArticleNode(article *node) []string {
	var errs []string

	for _, name := range []string{"pages", "artType", "authors", "artTitles"} {
		if article.find(name) == nil {
			errs = append(errs, "missing required element: "+name)
		}
	}

	if langPubl := article.find("langPubl"); langPubl != nil {
		if v := strings.TrimSpace(langPubl.Text); v != "" && v != "RUS" && v != "ENG" {
			errs = append(errs, "langPubl has unsupported value: "+v)
		}
	}

	if authors := article.find("authors"); authors != nil {
		authorList := authors.findAll("author")
		if len(authorList) == 0 {
			errs = append(errs, "at least one author required")
		}
		for _, author := range authorList {
			infos := author.findAll("individInfo")
			if len(infos) == 0 {
				errs = append(errs, "author must carry at least one individInfo")
			}
			for _, info := range infos {
				if info.attr("lang") == "" {
					errs = append(errs, "individInfo must carry a lang attribute")
				}
			}
		}
	}

	if artTitles := article.find("artTitles"); artTitles != nil {
		titles := artTitles.findAll("artTitle")
		if len(titles) == 0 {
			errs = append(errs, "artTitles must contain at least one artTitle")
		}
		for _, title := range titles {
			if title.attr("lang") == "" {
				errs = append(errs, "artTitle must carry a lang attribute")
			}
		}
	}

	return errs
}

// CheckDocument reports the weaknesses of a document worth surfacing
// before projection. These are warnings, not failures: the delivery
// file is still produced.
func CheckDocument(doc *types.Document) []string {
	var warnings []string
	if doc.ArtTitles.RUS == "" && doc.ArtTitles.ENG == "" {
		warnings = append(warnings, "no article title in either language")
	}
	if len(doc.Authors) == 0 {
		warnings = append(warnings, "no authors")
	}
	if strings.TrimSpace(doc.Pages) == "" {
		warnings = append(warnings, "no page range")
	}
	if !doc.ArtType.Valid() {
		warnings = append(warnings, fmt.Sprintf("unknown article type %q", doc.ArtType))
	}
	if doc.PublLang != "" && doc.PublLang != types.LangRUS && doc.PublLang != types.LangENG {
		warnings = append(warnings, fmt.Sprintf("unsupported publication language %q", doc.PublLang))
	}
	if !doc.Reviewed() {
		warnings = append(warnings, "not marked as reviewed")
	}
	return warnings
}

// benignFilters match findings the delivery target accepts: an empty
// volume, an article without references, and an empty authorCodes
// block.
var benignFilters = []struct {
	subject string
	any     []string
}{
	{"volume", []string{"not a valid value", "unsignedInt"}},
	{"references", []string{"Missing child element", "Expected is ( reference )"}},
	{"authorCodes", []string{"Missing child element"}},
}

// FilterBenign drops findings known to be accepted on ingest, e.g.
// from an external schema validator's report.
func FilterBenign(errors []string) []string {
	var out []string
	for _, msg := range errors {
		if !benign(msg) {
			out = append(out, msg)
		}
	}
	return out
}

func benign(msg string) bool {
	for _, f := range benignFilters {
		if !strings.Contains(msg, f.subject) {
			continue
		}
		for _, frag := range f.any {
			if strings.Contains(msg, frag) {
				return true
			}
		}
	}
	return false
}
