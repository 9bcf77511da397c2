package storage

import (
	sent "github.com/revelaction/udproj/sentence"
)

// TreebankReader defines read operations for treebank storage
type TreebankReader interface {
	// List returns the metadata (Id, Title, Source) of all treebanks.
	// Sentences are not loaded.
	List() ([]sent.Treebank, error)

	// Read returns a treebank with its sentences by ID
	Read(id int) (sent.Treebank, error)
}

// TreebankWriter defines write operations for treebank storage
type TreebankWriter interface {
	// Write persists a treebank and its sentences
	Write(tb sent.Treebank) error
}

// TreebankRepository combines read and write operations
type TreebankRepository interface {
	TreebankReader
	TreebankWriter
}
