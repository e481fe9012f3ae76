// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadoc persists per-article metadata documents as one
// pretty-printed JSON file each, and maps documents to and from the
// flat edit form used by the review step.
package metadoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Dexter626358/issuekit/pkg/types"
)

// Store manages the metadata JSON files of one issue directory.
type Store struct {
	dir string
}

// NewStore returns a store over dir. The directory is created on the
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for the document named name. The .json
// extension is appended when missing.
func (s *Store) Path(name string) string {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(s.dir, name)
}

// List returns the document names in the directory, without the .json
// extension, in lexicographic order. A missing directory lists empty.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading metadata directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and decodes one document. Unknown JSON keys are rejected
// so that a mistyped field in a hand-edited file fails loudly instead
// of being dropped on the next save.
func (s *Store) Load(name string) (*types.Document, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	doc := types.NewDocument()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path(name), err)
	}
	normalizeShape(doc)
	return doc, nil
}

// Save encodes doc as indented UTF-8 JSON and writes it atomically:
// temp file in the same directory, then rename.
func (s *Store) Save(name string, doc *types.Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}
	normalizeShape(doc)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	path := s.Path(name)
	tmp, err := os.CreateTemp(s.dir, ".metadoc-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming document: %w", err)
	}
	return nil
}

// normalizeShape repairs nil list fields and author skeletons so the
// persisted JSON always carries the full shape.
func normalizeShape(doc *types.Document) {
	if doc.Keywords.RUS == nil {
		doc.Keywords.RUS = []string{}
	}
	if doc.Keywords.ENG == nil {
		doc.Keywords.ENG = []string{}
	}
	if doc.References.RUS == nil {
		doc.References.RUS = []string{}
	}
	if doc.References.ENG == nil {
		doc.References.ENG = []string{}
	}
	if doc.Authors == nil {
		doc.Authors = []types.Author{}
	}
	if doc.ArtType == "" {
		doc.ArtType = types.ArtTypeRAR
	}
}
