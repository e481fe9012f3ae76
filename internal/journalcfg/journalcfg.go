// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journalcfg derives the issue-level configuration for the XML
// projection: parsing issue folder names, resolving the journal in the
// registry, and computing the issue page range from its articles.
package journalcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/Dexter626358/issuekit/pkg/types"
)

// Folder names carry the issue identity: ISSN_YEAR_NUMBER, or
// ISSN_YEAR_VOLUME_NUMBER when the journal numbers volumes. The ISSN
// check digit may be X.
var (
	folderRe       = regexp.MustCompile(`^([0-9]{4}-[0-9]{3}[X]|[0-9]{4}-[0-9]{4}[X]?)_(\d{4})_(\d+)$`)
	folderVolumeRe = regexp.MustCompile(`^([0-9]{4}-[0-9]{3}[X]|[0-9]{4}-[0-9]{4}[X]?)_(\d{4})_(\d+)_(\d+)$`)

	dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-")
)

// ParseFolderName parses an issue folder name into its issue
// reference. Unicode dashes inside the ISSN are accepted.
func ParseFolderName(name string) (types.IssueRef, bool) {
	name = dashReplacer.Replace(name)
	if m := folderRe.FindStringSubmatch(name); m != nil {
		return types.IssueRef{ISSN: m[1], Year: m[2], Number: m[3]}, true
	}
	if m := folderVolumeRe.FindStringSubmatch(name); m != nil {
		return types.IssueRef{ISSN: m[1], Year: m[2], Volume: m[3], Number: m[4]}, true
	}
	return types.IssueRef{}, false
}

// Registry is the list of known journals, keyed by ISSN.
type Registry struct {
	journals []types.Journal
}

// LoadRegistry reads a YAML journal list.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal registry: %w", err)
	}
	var journals []types.Journal
	if err := yaml.Unmarshal(data, &journals); err != nil {
		return nil, fmt.Errorf("parsing journal registry %s: %w", path, err)
	}
	return &Registry{journals: journals}, nil
}

// OverrideTitleIDs replaces the eLibrary title id of registered
// journals, keyed by ISSN. Unknown ISSNs are ignored.
func (r *Registry) OverrideTitleIDs(overrides map[string]int) {
	for issn, id := range overrides {
		for i := range r.journals {
			if strings.EqualFold(r.journals[i].ISSN, issn) {
				r.journals[i].TitleID = id
			}
		}
	}
}

// Lookup returns the journal with the given ISSN, case-insensitively
// (the check digit may be typed as x).
func (r *Registry) Lookup(issn string) (types.Journal, bool) {
	for _, j := range r.journals {
		if strings.EqualFold(j.ISSN, issn) {
			return j, true
		}
	}
	return types.Journal{}, false
}

// Len returns the number of registered journals.
func (r *Registry) Len() int {
	return len(r.journals)
}

// pageSeparators in priority order; page ranges show up with every
// kind of dash.
var pageSeparators = []string{"-", "–", "—", ","}

var leadingIntRe = regexp.MustCompile(`^\d+`)

// ParsePagesRange parses an article page range such as "4-16" (any
// dash) or a single page "4". Of a multi-range string only the first
// range counts.
func ParsePagesRange(pages string) (first, last int, ok bool) {
	pages = strings.ReplaceAll(strings.TrimSpace(pages), " ", "")
	if pages == "" {
		return 0, 0, false
	}
	for _, sep := range pageSeparators {
		before, after, found := strings.Cut(pages, sep)
		if !found {
			continue
		}
		start, err := strconv.Atoi(before)
		if err != nil {
			continue
		}
		endStr := leadingIntRe.FindString(after)
		end, err := strconv.Atoi(endStr)
		if err != nil {
			continue
		}
		if start > end {
			start, end = end, start
		}
		return start, end, true
	}
	if n := leadingIntRe.FindString(pages); n == pages {
		v, err := strconv.Atoi(n)
		if err == nil {
			return v, v, true
		}
	}
	return 0, 0, false
}

// AnalyzeIssuePages computes the page range of a whole issue from its
// article documents: the minimum first page to the maximum last page.
// Articles without parseable pages are skipped; it returns "" when
// none parse.
func AnalyzeIssuePages(docs []*types.Document) string {
	minPage, maxPage := 0, 0
	found := false
	for _, doc := range docs {
		first, last, ok := ParsePagesRange(doc.Pages)
		if !ok {
			continue
		}
		if !found || first < minPage {
			minPage = first
		}
		if !found || last > maxPage {
			maxPage = last
		}
		found = true
	}
	if !found {
		return ""
	}
	if minPage == maxPage {
		return strconv.Itoa(minPage)
	}
	return fmt.Sprintf("%d-%d", minPage, maxPage)
}

// coverNames are checked in order inside the issue directory.
var coverNames = []string{"cover.jpeg", "cover.jpg"}

// DetectCover returns the cover image file name in dir, if present.
func DetectCover(dir string) (string, bool) {
	for _, name := range coverNames {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}

// BuildConfig assembles the issue configuration from the parsed folder
// name, the registry entry and the computed page range, then validates
// it.
func BuildConfig(ref types.IssueRef, journal types.Journal, pages string) (types.IssueConfig, error) {
	cfg := types.IssueConfig{
		TitleID: journal.TitleID,
		ISSN:    ref.ISSN,
		Titles: types.JournalTitles{
			RU: journal.Title,
			EN: journal.TitleEN,
		},
		Issue: types.IssueInfo{
			Year:   ref.Year,
			Volume: ref.Volume,
			Number: ref.Number,
			Pages:  pages,
		},
	}
	if cfg.Titles.EN == "" {
		cfg.Titles.EN = journal.Title
	}
	if err := Validate(cfg); err != nil {
		return types.IssueConfig{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the output schema relies on: a title
// in at least one language, a year, pages, and volume or number.
func Validate(cfg types.IssueConfig) error {
	if cfg.Titles.RU == "" && cfg.Titles.EN == "" {
		return fmt.Errorf("issue config: journal title missing")
	}
	if strings.TrimSpace(cfg.Issue.Year) == "" {
		return fmt.Errorf("issue config: year missing")
	}
	if strings.TrimSpace(cfg.Issue.Pages) == "" {
		return fmt.Errorf("issue config: pages missing")
	}
	if strings.TrimSpace(cfg.Issue.Volume) == "" && strings.TrimSpace(cfg.Issue.Number) == "" {
		return fmt.Errorf("issue config: volume or number required")
	}
	return nil
}
