package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/udproj/sentence"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	DefaultFormat = FormatText
)

var (
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

// Renderer writes a human readable view of a sentence.
type Renderer interface {
	Sentence(s sent.Sentence, prefix string) error
}

// New returns the renderer for format writing to w.
func New(format string, w io.Writer, hasColor bool) (Renderer, error) {
	switch format {
	case FormatText:
		return &TextRenderer{W: w, HasColor: hasColor}, nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (allowed: %s)", format, strings.Join(SupportedFormats(), ", "))
}

// TextRenderer prints the surface text of a sentence followed by one
// aligned row per token.
type TextRenderer struct {
	W io.Writer

	// Untagged tokens in grey, root attached tokens in yellow
	HasColor bool
}

func (r *TextRenderer) Sentence(s sent.Sentence, prefix string) error {
	if _, err := fmt.Fprintf(r.W, "%s%s\n\n", prefix, strings.Join(r.forms(s.Tokens), " ")); err != nil {
		return err
	}

	for _, tok := range s.Tokens {
		_, err := fmt.Fprintf(r.W, "%20q %15q %8s %8s %6d %6d %10s %s\n", tok.Form, tok.Lemma, tok.UPos, tok.XPos, tok.Index, tok.Head, tok.Deprel, tok.Feats)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *TextRenderer) forms(tokens []sent.Token) []string {
	forms := make([]string, len(tokens))
	for i, tok := range tokens {
		forms[i] = r.colorToken(tok)
	}
	return forms
}

func (r *TextRenderer) colorToken(tok sent.Token) string {
	if !r.HasColor {
		return tok.Form
	}

	switch {
	case tok.UPos == sent.Placeholder:
		return Grey256 + tok.Form + Off
	case tok.IsRoot():
		return Yellow256 + tok.Form + Off
	}

	return Green256 + tok.Form + Off
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
