package stat

import (
	"testing"

	sent "github.com/revelaction/udproj/sentence"
)

func TestAggregate(t *testing.T) {
	tagged := sent.NewToken(1, "राम")
	tagged.UPos = "PROPN"
	tagged.Head = 2

	loop := sent.NewToken(2, "गइल")
	loop.UPos = "VERB"
	loop.Head = 2

	sentences := []sent.Sentence{
		{Tokens: []sent.Token{tagged, loop, sent.NewToken(3, "ह")}},
		{Tokens: []sent.Token{sent.NewToken(1, "x")}},
	}

	hdl := NewHandler()
	hdl.Aggregate(sentences)
	stats := hdl.Get()

	if stats.NumSentences != 2 || stats.NumTokens != 4 {
		t.Fatalf("unexpected counts %+v", stats)
	}

	if stats.TokensPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", stats.TokensPerSentenceMean)
	}

	if stats.TokensPerSentenceDis[3] != 1 || stats.TokensPerSentenceDis[1] != 1 {
		t.Errorf("unexpected distribution %v", stats.TokensPerSentenceDis)
	}

	if stats.NumTagged != 2 || stats.NumAttached != 2 || stats.NumSelfLoops != 1 {
		t.Errorf("unexpected coverage %+v", stats)
	}

	if stats.TaggedRatio() != 0.5 {
		t.Errorf("expected tagged ratio 0.5, got %v", stats.TaggedRatio())
	}
}

func TestAggregateEmpty(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(nil)
	stats := hdl.Get()

	if stats.TokensPerSentenceMean != 0 || stats.AttachedRatio() != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
