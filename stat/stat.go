package stat

import (
	sent "github.com/revelaction/udproj/sentence"
)

type Handler struct {
	stats Stats
}

// Stats describes how much of a treebank carries annotation.
type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// Tokens with a UPOS tag other than "_"
	NumTagged int

	// Tokens with a head other than the root
	NumAttached int

	// Tokens whose head is the token itself
	NumSelfLoops int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences to the running statistics.
func (h *Handler) Aggregate(sentences []sent.Sentence) {
	h.stats.NumSentences += len(sentences)

	for _, s := range sentences {
		h.stats.NumTokens += len(s.Tokens)
		h.stats.TokensPerSentenceDis[len(s.Tokens)]++

		for _, tok := range s.Tokens {
			if tok.UPos != "" && tok.UPos != sent.Placeholder {
				h.stats.NumTagged++
			}
			if !tok.IsRoot() {
				h.stats.NumAttached++
			}
			if tok.Head == tok.Index {
				h.stats.NumSelfLoops++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// TaggedRatio returns the share of tagged tokens, 0 for an empty treebank.
func (s Stats) TaggedRatio() float64 {
	if s.NumTokens == 0 {
		return 0
	}
	return float64(s.NumTagged) / float64(s.NumTokens)
}

// AttachedRatio returns the share of tokens with a non root head.
func (s Stats) AttachedRatio() float64 {
	if s.NumTokens == 0 {
		return 0
	}
	return float64(s.NumAttached) / float64(s.NumTokens)
}
