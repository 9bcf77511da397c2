package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/udproj/file"
	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/storage"
)

// TreebankStore is a directory of CoNLL-U files. The id of a treebank is its
// 1-based position in the name ordered directory listing, like the ids of the
// SQLite store.
type TreebankStore struct {
	dir string

	// metadata only
	treebanks []sent.Treebank
}

var _ storage.TreebankRepository = (*TreebankStore)(nil)

// NewTreebankStore lists the .conllu files of dir.
func NewTreebankStore(dir string) (*TreebankStore, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	treebanks := make([]sent.Treebank, 0, len(files))

	idx := 1
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != file.Ext {
			continue
		}
		treebanks = append(treebanks, sent.Treebank{
			Id:     idx,
			Title:  strings.TrimSuffix(f.Name(), file.Ext),
			Source: filepath.Join(dir, f.Name()),
		})
		idx++
	}

	return &TreebankStore{
		dir:       dir,
		treebanks: treebanks,
	}, nil
}

func (s *TreebankStore) List() ([]sent.Treebank, error) {
	return s.treebanks, nil
}

func (s *TreebankStore) Read(id int) (sent.Treebank, error) {
	if id < 1 || id > len(s.treebanks) {
		return sent.Treebank{}, fmt.Errorf("treebank id out of range: %d", id)
	}

	meta := s.treebanks[id-1]
	tb, err := file.ReadTreebank(meta.Source)
	if err != nil {
		return sent.Treebank{}, err
	}

	tb.Id = meta.Id
	return tb, nil
}

// Write stores tb as <title>.conllu, replacing an existing file with the
// same title.
func (s *TreebankStore) Write(tb sent.Treebank) error {
	if tb.Title == "" {
		return fmt.Errorf("treebank without title")
	}

	name := filepath.Base(tb.Title) + file.Ext
	path := filepath.Join(s.dir, name)
	if err := file.WriteTreebank(path, tb); err != nil {
		return err
	}

	for _, meta := range s.treebanks {
		if meta.Source == path {
			return nil
		}
	}

	s.treebanks = append(s.treebanks, sent.Treebank{
		Id:     len(s.treebanks) + 1,
		Title:  strings.TrimSuffix(name, file.Ext),
		Source: path,
	})
	return nil
}
