package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	sent "github.com/revelaction/udproj/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "1\tघर\t_\tNOUN\t_\t_\t0\troot\t_\t_\n\n"

func TestTreebankStoreList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.conllu"), []byte(sample), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.conllu"), []byte(sample), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.conllu"), 0755))

	store, err := NewTreebankStore(dir)
	require.NoError(t, err)

	treebanks, err := store.List()
	require.NoError(t, err)
	require.Len(t, treebanks, 2)
	assert.Equal(t, 1, treebanks[0].Id)
	assert.Equal(t, "a", treebanks[0].Title)
	assert.Equal(t, 2, treebanks[1].Id)
	assert.Equal(t, "b", treebanks[1].Title)
}

func TestTreebankStoreRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hi.conllu"), []byte(sample), 0644))

	store, err := NewTreebankStore(dir)
	require.NoError(t, err)

	tb, err := store.Read(1)
	require.NoError(t, err)
	assert.Equal(t, 1, tb.Id)
	assert.Equal(t, "hi", tb.Title)
	require.Len(t, tb.Sentences, 1)
	assert.Equal(t, "घर", tb.Sentences[0].Tokens[0].Form)

	_, err = store.Read(2)
	assert.Error(t, err)
	_, err = store.Read(0)
	assert.Error(t, err)
}

func TestTreebankStoreWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTreebankStore(dir)
	require.NoError(t, err)

	tok := sent.NewToken(1, "घर")
	tok.UPos = "NOUN"
	tb := sent.Treebank{
		Title:     "hi-projected",
		Sentences: []sent.Sentence{{Tokens: []sent.Token{tok}}},
	}

	require.NoError(t, store.Write(tb))
	// same title replaces the file, no new entry
	require.NoError(t, store.Write(tb))

	treebanks, err := store.List()
	require.NoError(t, err)
	require.Len(t, treebanks, 1)
	assert.Equal(t, "hi-projected", treebanks[0].Title)
	assert.Equal(t, 1, treebanks[0].Id)

	got, err := store.Read(1)
	require.NoError(t, err)
	require.Len(t, got.Sentences, 1)
	assert.Equal(t, "NOUN", got.Sentences[0].Tokens[0].UPos)

	data, err := os.ReadFile(filepath.Join(dir, "hi-projected.conllu"))
	require.NoError(t, err)
	assert.Equal(t, "1\tघर\t_\tNOUN\t_\t_\t0\tdep\t_\t_\n\n", string(data))
}

func TestTreebankStoreWriteNoTitle(t *testing.T) {
	store, err := NewTreebankStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Write(sent.Treebank{}))
}

func TestNewTreebankStoreMissingDir(t *testing.T) {
	_, err := NewTreebankStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
