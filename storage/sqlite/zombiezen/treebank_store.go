package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type TreebankStore struct {
	pool *sqlitex.Pool
}

var _ storage.TreebankRepository = (*TreebankStore)(nil)

// NewTreebankStore returns a store on pool. The schema must exist, see
// CreateSchemas.
func NewTreebankStore(pool *sqlitex.Pool) *TreebankStore {
	return &TreebankStore{pool: pool}
}

func (s *TreebankStore) List() ([]sent.Treebank, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var treebanks []sent.Treebank
	err = sqlitex.Execute(conn, "SELECT id, title, source FROM treebanks ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			treebanks = append(treebanks, sent.Treebank{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Source: stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return treebanks, nil
}

func (s *TreebankStore) Read(id int) (sent.Treebank, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return sent.Treebank{}, err
	}
	defer s.pool.Put(conn)

	tb := sent.Treebank{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, source FROM treebanks WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			tb.Title = stmt.ColumnText(0)
			tb.Source = stmt.ColumnText(1)
			return nil
		},
	})
	if err != nil {
		return sent.Treebank{}, err
	}
	if !found {
		return sent.Treebank{}, fmt.Errorf("treebank not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE treebank_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return fmt.Errorf("JSON decoding error: %w", err)
			}
			tb.Sentences = append(tb.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Treebank{}, err
	}

	return tb, nil
}

// Write inserts tb as a new treebank in a single transaction.
func (s *TreebankStore) Write(tb sent.Treebank) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO treebanks (title, source) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{tb.Title, tb.Source},
	})
	if err != nil {
		return fmt.Errorf("failed to insert treebank: %w", err)
	}
	tbID := conn.LastInsertRowID()

	for i, sentence := range tb.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (treebank_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{tbID, i, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence %d: %w", i, err)
		}
	}

	return nil
}
