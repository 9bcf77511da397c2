package project

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/revelaction/udproj/align"
	sent "github.com/revelaction/udproj/sentence"
	"golang.org/x/sync/errgroup"
)

// Batch holds the parallel inputs of a projection run. Position i of each
// slice belongs to the same sentence pair.
type Batch struct {
	Sources    []sent.Sentence
	Targets    [][]string
	Alignments []align.Alignment
}

// BatchShapeError is returned when the three sequences of a Batch differ in
// length.
type BatchShapeError struct {
	Sources    int
	Targets    int
	Alignments int
}

func (e *BatchShapeError) Error() string {
	return fmt.Sprintf("batch shape mismatch: %d source sentences, %d target sentences, %d alignments", e.Sources, e.Targets, e.Alignments)
}

// Validate checks that the batch sequences have equal length.
func (b Batch) Validate() error {
	if len(b.Sources) != len(b.Targets) || len(b.Sources) != len(b.Alignments) {
		return &BatchShapeError{
			Sources:    len(b.Sources),
			Targets:    len(b.Targets),
			Alignments: len(b.Alignments),
		}
	}
	return nil
}

// Len returns the number of sentence pairs of a valid batch.
func (b Batch) Len() int {
	return len(b.Sources)
}

// Runner projects whole batches.
type Runner struct {
	// Max number of sentence pairs projected at the same time. Values < 1 use
	// runtime.NumCPU().
	Workers int

	Logger *slog.Logger

	// OnSentence is called after sentence i is projected. It may be called
	// from several goroutines.
	OnSentence func(i int)
}

// NewRunner returns a Runner with the given number of workers.
func NewRunner(workers int, logger *slog.Logger) *Runner {
	return &Runner{Workers: workers, Logger: logger}
}

// Run validates b and projects every sentence pair. The result has the order
// of the input.
func (r *Runner) Run(ctx context.Context, b Batch) ([]sent.Sentence, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	logger.Info("projecting batch", "sentences", b.Len(), "workers", workers)

	out := make([]sent.Sentence, b.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range b.Sources {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			idx := align.NewIndex(b.Alignments[i])
			s := ProjectIndex(b.Sources[i], b.Targets[i], idx)
			s.Id = i
			out[i] = s

			logger.Debug("projected sentence", "sentence", i, "source_tokens", b.Sources[i].Len(), "target_tokens", s.Len(), "aligned_source", idx.Len())

			if r.OnSentence != nil {
				r.OnSentence(i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("projected batch", "sentences", len(out))
	return out, nil
}
