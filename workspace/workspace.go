// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workspace keeps the latest analysis of every open document.
//
// A [Store] is the state an editor integration holds between requests: as
// documents are opened and edited, each revision is analyzed once, and its
// diagnostics and highlighting stream are kept until the next revision or
// until the document is closed.
package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/tidwall/btree"

	"github.com/craftblock/cbls"
	"github.com/craftblock/cbls/config"
	"github.com/craftblock/cbls/semantic"
)

// ErrNotOpen is returned for requests about a document that is not open.
var ErrNotOpen = errors.New("document is not open")

// Store is a set of open documents, ordered by URI.
//
// A Store may be used from several goroutines. Each document has its own
// [cbls.Analyzer], which is reused for every revision of it.
type Store struct {
	cfg config.Config
	log *slog.Logger

	mu   sync.Mutex
	docs btree.Map[string, *document]
}

type document struct {
	version  int32
	analyzer *cbls.Analyzer
	analysis *cbls.Analysis

	// The encoded highlight stream, in packed form.
	packed []byte
}

// NewStore returns an empty store whose documents are analyzed with cfg.
func NewStore(cfg config.Config) *Store {
	return &Store{cfg: cfg, log: slog.Default()}
}

// Open opens a document and analyzes its first revision. Opening a document
// that is already open replaces it.
func (s *Store) Open(uri string, version int32, text string) (*cbls.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &document{version: version, analyzer: cbls.NewAnalyzer(s.cfg)}
	if err := doc.update(uri, text); err != nil {
		return nil, err
	}
	s.docs.Set(uri, doc)

	s.log.Debug("opened document", "uri", uri, "version", version)
	return doc.analysis, nil
}

// Change replaces the full text of an open document.
//
// Versions must increase. A change whose version is not newer than the
// current one is stale and is ignored, in which case Change returns false.
func (s *Store) Change(uri string, version int32, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs.Get(uri)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}
	if version <= doc.version {
		s.log.Debug("ignoring stale change", "uri", uri, "version", version, "current", doc.version)
		return false, nil
	}

	if err := doc.update(uri, text); err != nil {
		return false, err
	}
	doc.version = version
	return true, nil
}

// Close forgets a document. Returns whether it was open.
func (s *Store) Close(uri string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.docs.Delete(uri)
	return ok
}

// Version returns the version of the latest revision of a document.
func (s *Store) Version(uri string) (int32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs.Get(uri)
	if !ok {
		return 0, false
	}
	return doc.version, true
}

// Analysis returns the analysis of the latest revision of a document.
func (s *Store) Analysis(uri string) (*cbls.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}
	return doc.analysis, nil
}

// Diagnostics returns the diagnostics for the latest revision of a document.
func (s *Store) Diagnostics(uri string) ([]cbls.Diagnostic, error) {
	analysis, err := s.Analysis(uri)
	if err != nil {
		return nil, err
	}
	return analysis.Diagnostics, nil
}

// SemanticTokens returns the encoded highlight stream for the latest
// revision of a document.
func (s *Store) SemanticTokens(uri string) ([]uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, uri)
	}

	data, _, err := semantic.ConsumePacked(doc.packed)
	return data, err
}

// URIs returns the URIs of all open documents, in order.
func (s *Store) URIs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.docs.Keys()
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.docs.Len()
}

func (d *document) update(uri, text string) error {
	analysis, err := d.analyzer.Analyze(Path(uri), text)
	if err != nil {
		return fmt.Errorf("%s: %w", uri, err)
	}
	d.analysis = analysis
	d.packed = semantic.AppendPacked(d.packed[:0], analysis.Encoded)
	return nil
}

// Path returns the file path a URI refers to. Strings that are not file
// URIs are returned as-is.
func Path(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	return u.Path
}
