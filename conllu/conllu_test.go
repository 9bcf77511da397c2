package conllu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sent "github.com/revelaction/udproj/sentence"
)

const hindi = `# sent_id = 1
# text = राम गया
1	राम	राम	PROPN	NNP	_	2	nsubj	_	_
2	गया	जा	VERB	VM	_	0	root	_	_

1-2	वहाँ	_	_	_	_	_	_	_	_
1	वह	वह	PRON	PRP	_	2	nsubj	_	_
2	आँ	आँ	PART	RP	_	0	root	_	_
2.1	x	_	_	_	_	_	_	_	_
`

func TestRead(t *testing.T) {
	sentences, err := Read(strings.NewReader(hindi))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}

	first := sentences[0]
	if len(first.Comments) != 2 || first.Comments[0] != "sent_id = 1" {
		t.Errorf("unexpected comments %q", first.Comments)
	}

	if first.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", first.Len())
	}

	tok := first.Tokens[0]
	if tok.Index != 1 || tok.Form != "राम" || tok.UPos != "PROPN" || tok.XPos != "NNP" || tok.Head != 2 || tok.Deprel != "nsubj" {
		t.Errorf("unexpected token %+v", tok)
	}

	if tok.Feats != "_" {
		t.Errorf("expected feats placeholder, got %q", tok.Feats)
	}

	second := sentences[1]
	if second.Id != 1 {
		t.Errorf("expected sentence id 1, got %d", second.Id)
	}

	if second.Len() != 2 {
		t.Errorf("expected ranges and empty nodes to be skipped, got %d tokens", second.Len())
	}
}

func TestReadUnderscoreHead(t *testing.T) {
	input := "1\tx\t_\t_\t_\t_\t_\t_\t_\t_\n"
	sentences, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sentences[0].Tokens[0].Head != 0 {
		t.Errorf("expected head 0, got %d", sentences[0].Tokens[0].Head)
	}
}

func TestReadCommentOnlyBlock(t *testing.T) {
	in := "# newdoc id = d1\n\n# sent_id = 1\n1\tराम\t_\tPROPN\t_\t_\t0\troot\t_\t_\n\n# trailing\n"

	sentences, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}

	s := sentences[0]
	if s.Id != 0 || len(s.Tokens) != 1 {
		t.Fatalf("unexpected sentence: id %d, %d tokens", s.Id, len(s.Tokens))
	}

	want := []string{"newdoc id = d1", "sent_id = 1"}
	if strings.Join(s.Comments, "|") != strings.Join(want, "|") {
		t.Errorf("comments: got %q, want %q", s.Comments, want)
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"few fields", "1\tx\t_\t_\n", 1},
		{"bad id", "a\tx\t_\t_\t_\t_\t0\t_\t_\t_\n", 1},
		{"bad head", "1\tx\t_\t_\t_\t_\tz\t_\t_\t_\n", 1},
		{"negative head", "1\tx\t_\t_\t_\t_\t-1\t_\t_\t_\n", 1},
		{"gap", "1\tx\t_\t_\t_\t_\t0\t_\t_\t_\n3\ty\t_\t_\t_\t_\t1\t_\t_\t_\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			var mErr *sent.MalformedInputError
			if !errors.As(err, &mErr) {
				t.Fatalf("expected MalformedInputError, got %v", err)
			}
			if mErr.Kind != sent.KindAnnotation {
				t.Errorf("expected annotation kind, got %s", mErr.Kind)
			}
			if mErr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, mErr.Line)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	s := sent.Sentence{Tokens: []sent.Token{
		{Index: 1, Form: "राम", Lemma: "_", UPos: "PROPN", XPos: "_", Feats: "_", Head: 2, Deprel: "nsubj", Deps: "_", Misc: "_"},
		sent.NewToken(2, "गइल"),
	}}

	want := "1\tराम\t_\tPROPN\t_\t_\t2\tnsubj\t_\t_\n" +
		"2\tगइल\t_\t_\t_\t_\t0\tdep\t_\t_\n"

	if got := Format(s); got != want {
		t.Fatalf("expected\n%q\ngot\n%q", want, got)
	}
}

func TestWriteSeparatesSentences(t *testing.T) {
	sentences := []sent.Sentence{
		{Tokens: []sent.Token{sent.NewToken(1, "a")}},
		{Comments: []string{"sent_id = 2"}, Tokens: []sent.Token{sent.NewToken(1, "b")}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, sentences); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\ta\t_\t_\t_\t_\t0\tdep\t_\t_\n\n" +
		"# sent_id = 2\n1\tb\t_\t_\t_\t_\t0\tdep\t_\t_\n\n"
	if buf.String() != want {
		t.Fatalf("expected\n%q\ngot\n%q", want, buf.String())
	}
}

func TestRoundTrip(t *testing.T) {
	sentences, err := Read(strings.NewReader(hindi))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, sentences); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("unexpected error on re-read: %v", err)
	}

	if len(again) != len(sentences) {
		t.Fatalf("expected %d sentences, got %d", len(sentences), len(again))
	}

	for i := range sentences {
		if len(again[i].Tokens) != len(sentences[i].Tokens) {
			t.Fatalf("sentence %d: token count mismatch", i)
		}
		for j := range sentences[i].Tokens {
			if again[i].Tokens[j] != sentences[i].Tokens[j] {
				t.Errorf("sentence %d token %d: expected %+v, got %+v", i, j, sentences[i].Tokens[j], again[i].Tokens[j])
			}
		}
	}
}
