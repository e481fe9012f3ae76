// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the per-issue build: load the article
// documents of an issue folder, derive the issue configuration, project
// everything into the delivery XML, and check the result.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Dexter626358/issuekit/internal/journalcfg"
	"github.com/Dexter626358/issuekit/internal/metadoc"
	"github.com/Dexter626358/issuekit/internal/xmlgen"
	"github.com/Dexter626358/issuekit/pkg/types"
)

const (
	// jsonDir holds the per-article metadata documents of an issue.
	jsonDir = "json"
	// xmlDir receives the produced delivery file.
	xmlDir = "xml"
)

// IssueResult is the outcome of building one issue.
type IssueResult struct {
	Folder   string
	XMLPath  string
	Articles int
	Failed   int
	Pages    string
	Warnings []string
	Valid    bool
}

// BatchResult summarizes a run over several issue folders.
type BatchResult struct {
	Built  int
	Failed int
}

// Total returns the number of issues processed.
func (r BatchResult) Total() int {
	return r.Built + r.Failed
}

// HasFailures reports whether any issue failed to build.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BuildIssue builds the delivery XML for one issue directory. The
// directory name carries the issue identity; json/ holds the article
// documents and xml/ receives <folder>.xml. A document that fails to
// load is skipped with a warning so one broken article does not sink
// the issue.
func BuildIssue(issueDir string, reg *journalcfg.Registry, log *logrus.Logger) (IssueResult, error) {
	folder := filepath.Base(filepath.Clean(issueDir))
	res := IssueResult{Folder: folder}

	ref, ok := journalcfg.ParseFolderName(folder)
	if !ok {
		return res, fmt.Errorf("issue folder %q: want ISSN_YEAR_NUMBER or ISSN_YEAR_VOLUME_NUMBER", folder)
	}
	journal, ok := reg.Lookup(ref.ISSN)
	if !ok {
		return res, fmt.Errorf("ISSN %s not found in the journal registry", ref.ISSN)
	}

	store := metadoc.NewStore(filepath.Join(issueDir, jsonDir))
	names, err := store.List()
	if err != nil {
		return res, err
	}
	if len(names) == 0 {
		return res, fmt.Errorf("no article documents in %s", store.Dir())
	}

	var docs []*types.Document
	for _, name := range names {
		doc, err := store.Load(name)
		if err != nil {
			log.WithField("article", name).WithError(err).Warn("skipping article")
			res.Failed++
			continue
		}
		for _, msg := range xmlgen.CheckDocument(doc) {
			warning := fmt.Sprintf("%s: %s", name, msg)
			res.Warnings = append(res.Warnings, warning)
			log.WithField("article", name).Warn(msg)
		}
		docs = append(docs, doc)
		res.Articles++
	}
	if len(docs) == 0 {
		return res, fmt.Errorf("no loadable article documents in %s", store.Dir())
	}

	res.Pages = journalcfg.AnalyzeIssuePages(docs)
	if res.Pages == "" {
		log.WithField("issue", folder).Warn("could not determine the issue page range")
	}

	cfg, err := journalcfg.BuildConfig(ref, journal, res.Pages)
	if err != nil {
		return res, err
	}
	if cover, ok := journalcfg.DetectCover(issueDir); ok {
		cfg.Cover = cover
		log.WithField("cover", cover).Info("issue cover attached")
	}

	out, err := xmlgen.BuildIssue(cfg, docs)
	if err != nil {
		return res, err
	}

	outDir := filepath.Join(issueDir, xmlDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("creating xml directory: %w", err)
	}
	res.XMLPath = filepath.Join(outDir, folder+".xml")
	if err := os.WriteFile(res.XMLPath, out, 0o644); err != nil {
		return res, fmt.Errorf("writing delivery file: %w", err)
	}

	check := xmlgen.Validate(res.XMLPath)
	res.Valid = check.Valid
	if check.Structural {
		log.Info("schema libraries not configured, structural check only")
	}
	for _, msg := range check.Errors {
		log.WithField("issue", folder).Error(msg)
	}

	log.WithFields(logrus.Fields{
		"issue":    folder,
		"articles": res.Articles,
		"pages":    res.Pages,
		"valid":    res.Valid,
	}).Info("issue built")
	return res, nil
}

// BuildAll builds every issue folder under rootDir, isolating failures
// per issue. Hidden directories are skipped.
func BuildAll(rootDir string, reg *journalcfg.Registry, log *logrus.Logger) ([]IssueResult, BatchResult, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, BatchResult{}, fmt.Errorf("reading issues directory: %w", err)
	}

	var results []IssueResult
	var batch BatchResult
	for _, e := range entries {
		if !e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		res, err := BuildIssue(filepath.Join(rootDir, e.Name()), reg, log)
		if err != nil {
			log.WithField("issue", e.Name()).WithError(err).Error("issue failed")
			batch.Failed++
			continue
		}
		results = append(results, res)
		batch.Built++
	}
	log.WithFields(logrus.Fields{
		"built":  batch.Built,
		"failed": batch.Failed,
	}).Info("batch finished")
	return results, batch, nil
}
