// Package align parses word alignments and indexes them in both directions.
//
// An alignment line is a whitespace separated list of "<source>-<target>"
// pairs of 0-based token positions, e.g. "0-0 1-2 2-1".
package align

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/udproj/sentence"
)

const pairSeparator = "-"

// Pair links a source position to a target position, both 0-based.
type Pair struct {
	Source int
	Target int
}

// Alignment is the list of pairs of one sentence pair, in input order.
type Alignment []Pair

func (a Alignment) String() string {
	parts := make([]string, len(a))
	for i, p := range a {
		parts[i] = strconv.Itoa(p.Source) + pairSeparator + strconv.Itoa(p.Target)
	}
	return strings.Join(parts, " ")
}

// ParsePair parses a single "<source>-<target>" item.
func ParsePair(s string) (Pair, error) {
	fields := strings.Split(s, pairSeparator)
	if len(fields) != 2 {
		return Pair{}, fmt.Errorf("pair %q: expected <source>%s<target>", s, pairSeparator)
	}

	src, err := parseIndex(fields[0])
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q: source: %w", s, err)
	}

	tgt, err := parseIndex(fields[1])
	if err != nil {
		return Pair{}, fmt.Errorf("pair %q: target: %w", s, err)
	}

	return Pair{Source: src, Target: tgt}, nil
}

// ParseLine parses all pairs of an alignment line. A blank line is an empty
// alignment.
func ParseLine(line string) (Alignment, error) {
	items := strings.Fields(line)
	a := make(Alignment, 0, len(items))
	for _, item := range items {
		p, err := ParsePair(item)
		if err != nil {
			return nil, err
		}
		a = append(a, p)
	}
	return a, nil
}

// Read reads one alignment per line and fails on the first malformed line.
func Read(r io.Reader) ([]Alignment, error) {
	return ReadAll(r, func(err error) error { return err })
}

// ReadAll reads one alignment per line. Every malformed line is reported to
// onErr as a *sentence.MalformedInputError. If onErr returns nil the line is
// kept as an empty alignment and reading continues, otherwise reading stops
// and the returned error is passed on.
func ReadAll(r io.Reader, onErr func(error) error) ([]Alignment, error) {
	var alignments []Alignment

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		a, err := ParseLine(scanner.Text())
		if err != nil {
			mErr := &sent.MalformedInputError{
				Kind:     sent.KindAlignment,
				Sentence: len(alignments),
				Line:     line,
				Err:      err,
			}
			if cbErr := onErr(mErr); cbErr != nil {
				return nil, cbErr
			}
			a = Alignment{}
		}
		alignments = append(alignments, a)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading alignments: %w", err)
	}

	return alignments, nil
}

// parseIndex accepts unsigned decimal integers only.
func parseIndex(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
