package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/udproj/config"
	"github.com/revelaction/udproj/conllu"
	"github.com/revelaction/udproj/file"
	"github.com/revelaction/udproj/project"
	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/storage/filesystem"
	"github.com/revelaction/udproj/storage/sqlite/zombiezen"
)

const (
	stdoutOut = "-"
	sqliteExt = ".db"
)

func projectCommand(ctx context.Context, opts ProjectOptions, ui UI) error {
	cfg, err := config.Load(opts.Config, opts.Overrides)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger(ui.Err)
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	var onAlignErr func(error) error
	if cfg.SkipMalformed {
		onAlignErr = func(err error) error {
			logger.Warn("projecting malformed alignment as unaligned", "error", err)
			return nil
		}
	}

	batch, err := file.ReadBatch(file.BatchPaths{
		Source:    opts.Source,
		Target:    opts.Target,
		Alignment: opts.Alignment,
	}, onAlignErr)
	if err != nil {
		return err
	}

	runner := project.NewRunner(cfg.Workers, logger)

	showProgress := cfg.Progress && opts.Out != stdoutOut && batch.Len() > 0
	if showProgress {
		uiprogress.Start()
		bar := uiprogress.AddBar(batch.Len())
		bar.AppendCompleted()
		bar.PrependElapsed()
		runner.OnSentence = func(int) { bar.Incr() }
	}

	sentences, err := runner.Run(ctx, batch)
	if showProgress {
		uiprogress.Stop()
	}
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(opts.Target), filepath.Ext(opts.Target))
	}

	tb := sent.Treebank{
		Title:     title,
		Source:    opts.Source,
		Sentences: sentences,
	}

	return writeProjected(opts.Out, tb, ui, logger)
}

// writeProjected writes tb to stdout ("-"), a SQLite database (.db), a
// treebank directory, or a CoNLL-U file.
func writeProjected(out string, tb sent.Treebank, ui UI, logger *slog.Logger) error {
	if out == stdoutOut {
		return conllu.Write(ui.Out, tb.Sentences)
	}

	if filepath.Ext(out) == sqliteExt {
		pool, err := zombiezen.NewPool(out)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := zombiezen.CreateSchemas(pool, zombiezen.TreebankSchema); err != nil {
			return fmt.Errorf("failed to create treebank tables: %w", err)
		}

		if err := zombiezen.NewTreebankStore(pool).Write(tb); err != nil {
			return err
		}
		logger.Info("wrote treebank", "db", out, "title", tb.Title, "sentences", len(tb.Sentences))
		return nil
	}

	if info, err := os.Stat(out); err == nil && info.IsDir() {
		store, err := filesystem.NewTreebankStore(out)
		if err != nil {
			return err
		}
		if err := store.Write(tb); err != nil {
			return err
		}
		logger.Info("wrote treebank", "dir", out, "title", tb.Title, "sentences", len(tb.Sentences))
		return nil
	}

	if err := file.WriteTreebank(out, tb); err != nil {
		return err
	}
	logger.Info("wrote treebank", "file", out, "sentences", len(tb.Sentences))
	return nil
}
