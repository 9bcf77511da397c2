package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/udproj/sentence"
)

// JSONRenderer writes sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Sentence serializes s as a JSON object. The prefix is ignored.
func (r *JSONRenderer) Sentence(s sent.Sentence, prefix string) error {
	return json.NewEncoder(r.W).Encode(s)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
