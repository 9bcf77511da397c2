package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	sent "github.com/revelaction/udproj/sentence"
)

func testSentence() sent.Sentence {
	tok := sent.NewToken(1, "राम")
	tok.UPos = "PROPN"
	tok.Head = 2
	tok.Deprel = "nsubj"
	return sent.Sentence{Id: 5, Tokens: []sent.Token{tok, sent.NewToken(2, "ह")}}
}

func TestJSONRendererSentence(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Sentence(testSentence(), "ignored"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got sent.Sentence
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Id != 5 {
		t.Errorf("expected id 5, got %d", got.Id)
	}

	if len(got.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(got.Tokens))
	}

	if got.Tokens[0].Deprel != "nsubj" {
		t.Errorf("expected deprel nsubj, got %q", got.Tokens[0].Deprel)
	}
}

func TestTextRendererSentence(t *testing.T) {
	var buf bytes.Buffer
	r, err := New(FormatText, &buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Sentence(testSentence(), "✍  0-5 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}

	if lines[0] != "✍  0-5 राम ह" {
		t.Errorf("unexpected header %q", lines[0])
	}

	if !strings.Contains(lines[2], "PROPN") || !strings.Contains(lines[2], "nsubj") {
		t.Errorf("unexpected token row %q", lines[2])
	}
}

func TestTextRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{W: &buf, HasColor: true}
	if err := r.Sentence(testSentence(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != Green256+"राम"+Off+" "+Grey256+"ह"+Off {
		t.Errorf("unexpected colored header %q", header)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("xml", &bytes.Buffer{}, false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
