package sentence

import "fmt"

// InputKind names the input stream a malformed record came from.
type InputKind string

const (
	KindAlignment  InputKind = "alignment"
	KindAnnotation InputKind = "annotation"
)

// MalformedInputError is returned when a record of an input file cannot be
// parsed. Sentence is the 0-based sentence position, Line the 1-based line
// number in the input.
type MalformedInputError struct {
	Kind     InputKind
	Sentence int
	Line     int
	Err      error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s input at line %d (sentence %d): %v", e.Kind, e.Line, e.Sentence, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
