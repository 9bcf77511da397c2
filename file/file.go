package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/udproj/align"
	"github.com/revelaction/udproj/conllu"
	"github.com/revelaction/udproj/project"
	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/surface"
)

const Ext = ".conllu"

// BatchPaths names the three input files of a projection batch.
type BatchPaths struct {
	Source    string
	Target    string
	Alignment string
}

// ReadTreebank reads a CoNLL-U file. The title is the file name without
// extension.
func ReadTreebank(path string) (sent.Treebank, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Treebank{}, err
	}
	defer f.Close()

	sentences, err := conllu.Read(f)
	if err != nil {
		return sent.Treebank{}, fmt.Errorf("%s: %w", path, err)
	}

	return sent.Treebank{
		Title:     strings.TrimSuffix(filepath.Base(path), Ext),
		Source:    path,
		Sentences: sentences,
	}, nil
}

// ReadBatch loads the three inputs of a batch. Malformed alignment lines are
// passed to onAlignErr, see align.ReadAll. A nil onAlignErr fails on the
// first malformed line. The shape of the batch is not checked.
func ReadBatch(paths BatchPaths, onAlignErr func(error) error) (project.Batch, error) {
	src, err := ReadTreebank(paths.Source)
	if err != nil {
		return project.Batch{}, err
	}

	tf, err := os.Open(paths.Target)
	if err != nil {
		return project.Batch{}, err
	}
	defer tf.Close()

	targets, err := surface.Read(tf)
	if err != nil {
		return project.Batch{}, fmt.Errorf("%s: %w", paths.Target, err)
	}

	af, err := os.Open(paths.Alignment)
	if err != nil {
		return project.Batch{}, err
	}
	defer af.Close()

	var alignments []align.Alignment
	if onAlignErr == nil {
		alignments, err = align.Read(af)
	} else {
		alignments, err = align.ReadAll(af, onAlignErr)
	}
	if err != nil {
		return project.Batch{}, fmt.Errorf("%s: %w", paths.Alignment, err)
	}

	return project.Batch{
		Sources:    src.Sentences,
		Targets:    targets,
		Alignments: alignments,
	}, nil
}

// WriteTreebank writes the sentences of tb to a CoNLL-U file at path.
func WriteTreebank(path string, tb sent.Treebank) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := conllu.Write(f, tb.Sentences); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}
