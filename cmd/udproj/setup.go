package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/revelaction/udproj/file"
	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/storage"
	"github.com/revelaction/udproj/storage/filesystem"
	"github.com/revelaction/udproj/storage/sqlite/zombiezen"
)

// NewTreebankRepository returns a filesystem store when path is a directory
// and a SQLite store otherwise.
func NewTreebankRepository(p *Pool, path string) (storage.TreebankRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewTreebankStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewTreebankStore(pool), nil
}

// loadTreebank reads source as a CoNLL-U file, or as a treebank ID of the
// repository at treebankPath.
func loadTreebank(p *Pool, source, treebankPath string) (sent.Treebank, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		return file.ReadTreebank(source)
	}

	id, err := strconv.Atoi(source)
	if err != nil {
		return sent.Treebank{}, fmt.Errorf("invalid treebank ID: %s", source)
	}

	repo, err := NewTreebankRepository(p, treebankPath)
	if err != nil {
		return sent.Treebank{}, err
	}

	return repo.Read(id)
}
