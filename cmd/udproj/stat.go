package main

import (
	"fmt"

	sent "github.com/revelaction/udproj/sentence"
	"github.com/revelaction/udproj/stat"
)

func statCommand(opts StatOptions, source string, sentId *int, ui UI) error {
	p := &Pool{}
	defer p.Close()

	tb, err := loadTreebank(p, source, opts.TreebankPath)
	if err != nil {
		return err
	}

	sentences := tb.Sentences
	if sentId != nil {
		if *sentId < 0 || *sentId >= len(sentences) {
			return fmt.Errorf("sentence index %d out of bounds (treebank has %d sentences)", *sentId, len(sentences))
		}
		sentences = []sent.Sentence{sentences[*sentId]}
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(sentences)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, num tokens per sentence %d\n", stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Tagged %d (%.1f%%), attached %d (%.1f%%), self loops %d\n",
		stats.NumTagged, stats.TaggedRatio()*100,
		stats.NumAttached, stats.AttachedRatio()*100,
		stats.NumSelfLoops)

	return nil
}
