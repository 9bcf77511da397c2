// Package surface reads raw target sentences, one per line, tokens separated
// by whitespace.
package surface

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Read returns the tokens of every line of r. A blank line is a sentence
// without tokens.
func Read(r io.Reader) ([][]string, error) {
	var sentences [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if tokens == nil {
			tokens = []string{}
		}
		sentences = append(sentences, tokens)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading surface sentences: %w", err)
	}

	return sentences, nil
}
