package main

import (
	"fmt"

	"github.com/revelaction/udproj/render"
)

func sentenceCommand(opts SentenceOptions, source string, sentId int, ui UI) error {
	p := &Pool{}
	defer p.Close()

	tb, err := loadTreebank(p, source, opts.TreebankPath)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(tb.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(tb.Sentences)-1)
	}

	r, err := render.New(opts.Format, ui.Out, !opts.NoColor)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("✍  %d ", sentId)
	return r.Sentence(tb.Sentences[sentId], prefix)
}
