package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/storage/filesystem"
	"github.com/revelaction/udproj/storage/sqlite/zombiezen"
)

func exportCommand(opts ExportOptions, ui UI) error {
	if _, err := os.Stat(opts.From); err != nil {
		return fmt.Errorf("database not found: %s", opts.From)
	}

	pool, err := zombiezen.NewPool(opts.From)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewTreebankStore(pool)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewTreebankStore(opts.To)
	if err != nil {
		return err
	}

	treebanks, err := src.List()
	if err != nil {
		return err
	}

	names := exportNames(treebanks)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(treebanks))
	bar.AppendCompleted()
	bar.PrependElapsed()

	written := map[string]bool{}
	count := 0
	for _, meta := range treebanks {
		tb, err := src.Read(meta.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read treebank %s (id %d): %w", meta.Title, meta.Id, err)
		}

		tb.Title = names[meta.Id]
		if written[tb.Title] {
			uiprogress.Stop()
			return fmt.Errorf("treebank %s (id %d) would overwrite an exported file", tb.Title, meta.Id)
		}
		written[tb.Title] = true

		if err := dst.Write(tb); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write treebank %s: %w", meta.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d treebanks from %s to %s\n", count, opts.From, opts.To)
	return nil
}

// exportNames maps treebank ids to file titles. A title shared by several
// treebanks gets the id appended ("de-2").
func exportNames(treebanks []sent.Treebank) map[int]string {
	counts := map[string]int{}
	for _, tb := range treebanks {
		counts[tb.Title]++
	}

	names := make(map[int]string, len(treebanks))
	for _, tb := range treebanks {
		if counts[tb.Title] > 1 {
			names[tb.Id] = fmt.Sprintf("%s-%d", tb.Title, tb.Id)
			continue
		}
		names[tb.Id] = tb.Title
	}
	return names
}
