// Package conllu reads and writes the CoNLL-U treebank format.
//
// A token line has ten tab separated columns
//
//	ID FORM LEMMA UPOS XPOS FEATS HEAD DEPREL DEPS MISC
//
// and sentences are separated by a blank line. See
// https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/udproj/sentence"
)

const (
	FieldSeparator = "\t"
	NumFields      = 10
	commentPrefix  = "#"
)

// Read parses all sentences of r. Multiword token ranges ("1-2") and empty
// nodes ("1.1") are skipped. Any other malformed line is returned as a
// *sentence.MalformedInputError.
//
// The comments of a block without tokens (e.g. "# newdoc") belong to the next
// sentence. Trailing comments without a sentence are dropped.
func Read(r io.Reader) ([]sent.Sentence, error) {
	var (
		sentences []sent.Sentence
		current   sent.Sentence
		line      int
	)

	flush := func() {
		if len(current.Tokens) == 0 {
			return
		}
		current.Id = len(sentences)
		sentences = append(sentences, current)
		current = sent.Sentence{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(text) == "" {
			flush()
			continue
		}

		if strings.HasPrefix(text, commentPrefix) {
			current.Comments = append(current.Comments, strings.TrimSpace(text[len(commentPrefix):]))
			continue
		}

		record := strings.Split(text, FieldSeparator)
		if isRange(record[0]) {
			continue
		}

		tok, err := ParseRow(record)
		if err == nil && tok.Index != len(current.Tokens)+1 {
			err = fmt.Errorf("token id %d out of sequence, expected %d", tok.Index, len(current.Tokens)+1)
		}
		if err != nil {
			return nil, &sent.MalformedInputError{
				Kind:     sent.KindAnnotation,
				Sentence: len(sentences),
				Line:     line,
				Err:      err,
			}
		}

		current.Tokens = append(current.Tokens, tok)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading conllu: %w", err)
	}

	flush()
	return sentences, nil
}

// ParseRow parses the ten columns of a token line.
func ParseRow(record []string) (sent.Token, error) {
	if len(record) != NumFields {
		return sent.Token{}, fmt.Errorf("expected %d fields, got %d", NumFields, len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		return sent.Token{}, fmt.Errorf("parsing ID field (%s): %w", record[0], err)
	}
	if id < 1 {
		return sent.Token{}, fmt.Errorf("ID field must be positive: %d", id)
	}

	head, err := parseHead(record[6])
	if err != nil {
		return sent.Token{}, fmt.Errorf("parsing HEAD field (%s): %w", record[6], err)
	}

	return sent.Token{
		Index:  id,
		Form:   record[1],
		Lemma:  record[2],
		UPos:   record[3],
		XPos:   record[4],
		Feats:  record[5],
		Head:   head,
		Deprel: record[7],
		Deps:   record[8],
		Misc:   record[9],
	}, nil
}

func parseHead(s string) (int, error) {
	if s == sent.Placeholder {
		return sent.Root, nil
	}
	head, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if head < 0 {
		return 0, errors.New("negative head")
	}
	return head, nil
}

// isRange reports ids of multiword tokens and empty nodes.
func isRange(id string) bool {
	return strings.Contains(id, "-") || strings.Contains(id, ".")
}
