// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xmlgen

import (
	"fmt"
	"strconv"

	"github.com/Dexter626358/issuekit/internal/journalcfg"
	"github.com/Dexter626358/issuekit/pkg/types"
)

// projectIssue builds the journal/issue skeleton with an empty
// articles container.
func projectIssue(cfg types.IssueConfig) (*element, error) {
	if err := journalcfg.Validate(cfg); err != nil {
		return nil, err
	}

	journal := newElement("journal")
	journal.textChild("titleid", strconv.Itoa(cfg.TitleID))
	if cfg.ISSN != "" {
		journal.textChild("issn", cfg.ISSN)
	}
	if cfg.EISSN != "" {
		journal.textChild("eissn", cfg.EISSN)
	}

	journalInfo := journal.child("journalInfo")
	if cfg.Titles.RU != "" {
		journalInfo.attr("lang", "RUS")
		journalInfo.textChild("title", cfg.Titles.RU)
	} else {
		journalInfo.attr("lang", "ENG")
		journalInfo.textChild("title", cfg.Titles.EN)
	}

	issue := journal.child("issue")
	issue.textChild("volume", cfg.Issue.Volume)
	issue.textChild("number", cfg.Issue.Number)
	issue.textChild("dateUni", cfg.Issue.Year)
	issue.textChild("pages", cfg.Issue.Pages)
	issue.child("articles")

	return journal, nil
}

// BuildIssue projects the issue configuration and its article
// documents, in the given order, into the delivery XML. The output is
// deterministic: the same input renders byte-identically.
func BuildIssue(cfg types.IssueConfig, docs []*types.Document) ([]byte, error) {
	journal, err := projectIssue(cfg)
	if err != nil {
		return nil, err
	}

	issue := journal.find("issue")
	articles := issue.find("articles")
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("article %d: nil document", i+1)
		}
		articles.children = append(articles.children, projectArticle(doc))
	}

	// The cover reference sits next to the articles, not inside them.
	if cfg.Cover != "" {
		files := issue.child("files")
		files.textChild("file", cfg.Cover).attr("desc", "cover")
	}

	return render(journal), nil
}

// BuildArticle projects a single document, for previewing one article
// outside an issue.
func BuildArticle(doc *types.Document) []byte {
	return render(projectArticle(doc))
}
