package align

import (
	"errors"
	"strings"
	"testing"

	sent "github.com/revelaction/udproj/sentence"
)

func TestParseLine(t *testing.T) {
	a, err := ParseLine("0-0 1-2\t2-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Alignment{{0, 0}, {1, 2}, {2, 1}}
	if len(a) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(a))
	}
	for i := range want {
		if a[i] != want[i] {
			t.Errorf("pair %d: expected %v, got %v", i, want[i], a[i])
		}
	}

	if a.String() != "0-0 1-2 2-1" {
		t.Errorf("unexpected string form %q", a.String())
	}
}

func TestParseLineEmpty(t *testing.T) {
	a, err := ParseLine("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 0 {
		t.Fatalf("expected empty alignment, got %v", a)
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"0-0 1",
		"0:1",
		"0-1-2",
		"a-1",
		"1-b",
		"-1-2",
		"1-",
		"-",
		"+1-2",
	} {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestReadStrict(t *testing.T) {
	input := "0-0 1-1\n\n2-x\n"

	_, err := Read(strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected error")
	}

	var mErr *sent.MalformedInputError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedInputError, got %T", err)
	}

	if mErr.Kind != sent.KindAlignment {
		t.Errorf("expected alignment kind, got %s", mErr.Kind)
	}

	if mErr.Line != 3 || mErr.Sentence != 2 {
		t.Errorf("expected line 3 sentence 2, got line %d sentence %d", mErr.Line, mErr.Sentence)
	}
}

func TestReadAllLenient(t *testing.T) {
	input := "0-0 1-1\nbroken\r\n1-0\r\n"

	var reported []error
	alignments, err := ReadAll(strings.NewReader(input), func(err error) error {
		reported = append(reported, err)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(alignments) != 3 {
		t.Fatalf("expected 3 alignments, got %d", len(alignments))
	}

	if len(alignments[1]) != 0 {
		t.Errorf("expected malformed line to become empty alignment, got %v", alignments[1])
	}

	if alignments[2].String() != "1-0" {
		t.Errorf("expected trailing carriage return to be ignored, got %q", alignments[2].String())
	}

	if len(reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(reported))
	}
}

func TestIndexLastWriteWins(t *testing.T) {
	a, err := ParseLine("0-0 0-2 1-2 3-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx := NewIndex(a)

	if tgt, ok := idx.Forward(0); !ok || tgt != 2 {
		t.Errorf("expected forward 0 -> 2, got %d %v", tgt, ok)
	}

	if src, ok := idx.Reverse(2); !ok || src != 1 {
		t.Errorf("expected reverse 2 -> 1, got %d %v", src, ok)
	}

	if src, ok := idx.Reverse(1); !ok || src != 3 {
		t.Errorf("expected reverse 1 -> 3, got %d %v", src, ok)
	}

	if _, ok := idx.Forward(2); ok {
		t.Errorf("expected no forward entry for 2")
	}

	if _, ok := idx.Reverse(3); ok {
		t.Errorf("expected no reverse entry for 3")
	}

	if idx.Len() != 3 {
		t.Errorf("expected 3 source entries, got %d", idx.Len())
	}
}
