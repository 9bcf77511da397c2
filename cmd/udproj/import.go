package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/udproj/storage/filesystem"
	"github.com/revelaction/udproj/storage/sqlite/zombiezen"
)

func importCommand(opts ImportOptions, ui UI) error {
	src, err := filesystem.NewTreebankStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(pool, zombiezen.TreebankSchema); err != nil {
		return fmt.Errorf("failed to create treebank tables: %w", err)
	}

	dst := zombiezen.NewTreebankStore(pool)

	fmt.Fprintf(ui.Out, "Reading treebanks from %s...\n", opts.From)
	treebanks, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(treebanks))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, meta := range treebanks {
		tb, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read treebank %s: %w", meta.Title, err)
		}

		if err := dst.Write(tb); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write treebank %s: %w", meta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d treebanks from %s to %s\n", count, opts.From, opts.To)
	return nil
}
