// Package project transfers UD annotation from a source sentence to an
// aligned target sentence.
package project

import (
	"github.com/revelaction/udproj/align"
	sent "github.com/revelaction/udproj/sentence"
)

// Project builds the annotation of the target tokens from the source
// sentence through the alignment a.
func Project(src sent.Sentence, target []string, a align.Alignment) sent.Sentence {
	return ProjectIndex(src, target, align.NewIndex(a))
}

// ProjectIndex is Project with a prebuilt alignment index.
//
// Every target token starts with default annotation. A token aligned to an
// in-range source token copies its UPOS, XPOS and DEPREL. Its head is the
// target position aligned to the source governor, or 0 when the source token
// is the root, the governor is unaligned or the aligned position falls
// outside the target sentence. Heads are not checked for cycles.
func ProjectIndex(src sent.Sentence, target []string, idx *align.Index) sent.Sentence {
	n := len(target)
	out := sent.Sentence{Tokens: make([]sent.Token, n)}

	for b, form := range target {
		tok := sent.NewToken(b+1, form)

		if hIdx, ok := idx.Reverse(b); ok && hIdx < len(src.Tokens) {
			h := src.Tokens[hIdx]
			tok.UPos = orDefault(h.UPos, sent.Placeholder)
			tok.XPos = orDefault(h.XPos, sent.Placeholder)
			tok.Deprel = orDefault(h.Deprel, sent.DefaultDeprel)
			tok.Head = remapHead(h.Head, idx, n)
		}

		out.Tokens[b] = tok
	}

	return out
}

// remapHead converts a 1-based source head into a 1-based target head.
func remapHead(head int, idx *align.Index, n int) int {
	if head == sent.Root {
		return sent.Root
	}

	tgt, ok := idx.Forward(head - 1)
	if !ok || tgt >= n {
		return sent.Root
	}

	return tgt + 1
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
