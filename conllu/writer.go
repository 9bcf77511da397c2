package conllu

import (
	"bufio"
	"io"
	"strings"

	sent "github.com/revelaction/udproj/sentence"
)

// Format renders the comment and token lines of s, each terminated by a
// newline. The separating blank line is not included.
func Format(s sent.Sentence) string {
	var b strings.Builder
	for _, c := range s.Comments {
		b.WriteString(commentPrefix)
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	for _, tok := range s.Tokens {
		b.WriteString(strings.Join(tok.Fields(), FieldSeparator))
		b.WriteString("\n")
	}
	return b.String()
}

// Writer writes sentences to a CoNLL-U stream, each one followed by a blank
// line.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one sentence and its terminating blank line.
func (w *Writer) Write(s sent.Sentence) error {
	if _, err := w.w.WriteString(Format(s)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Write writes all sentences to w.
func Write(w io.Writer, sentences []sent.Sentence) error {
	cw := NewWriter(w)
	for _, s := range sentences {
		if err := cw.Write(s); err != nil {
			return err
		}
	}
	return cw.Flush()
}
