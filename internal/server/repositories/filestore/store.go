// Package filestore implements the flat-file backend: the entire dataset is
// one JSON document on disk with three top-level collections. Every operation
// loads the whole document, mutates an in-memory copy, and rewrites the file.
// Operations are serialized behind a mutex and the rewrite goes through an
// atomic rename, so concurrent requests cannot drop each other's changes.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/GURUTIKI/presently/internal/filex"
	"github.com/GURUTIKI/presently/internal/server/models"
)

// Document is the on-disk shape of the file store.
type Document struct {
	Users []*models.User     `json:"users"`
	Lists []*models.GiftList `json:"lists"`
	Items []*models.GiftItem `json:"items"`
}

// Store owns a single JSON document at a fixed path.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init creates the backing file with an empty document if it does not exist.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}
	return s.save(&Document{
		Users: []*models.User{},
		Lists: []*models.GiftList{},
		Items: []*models.GiftItem{},
	})
}

// View loads the document and runs fn against it without persisting changes.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update loads the document, runs fn, and rewrites the file when fn succeeds.
// fn errors abort the rewrite, leaving the store unchanged.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return filex.WriteAtomic(s.path, data)
}
