package sentence

import "strconv"

const (
	// Placeholder marks an unknown field value.
	Placeholder = "_"

	// DefaultDeprel is the relation of a token without a known governor.
	DefaultDeprel = "dep"

	// Root is the head index of the notional root.
	Root = 0
)

// Treebank is a named collection of annotated sentences
type Treebank struct {
	Id int

	Title string

	// Source names the input the treebank was built from (file path, etc)
	Source string

	Sentences []Sentence `json:"sentences"`
}

// Sentence is an ordered sequence of tokens. Token i has Index i+1.
type Sentence struct {
	Id int `json:"id"`

	// Comment lines without the leading "#"
	Comments []string `json:"comments,omitempty"`

	Tokens []Token `json:"tokens"`
}

// Token is a word of the sentence with its UD morphosyntax.
type Token struct {
	// 1-based position in the sentence
	Index int    `json:"index"`
	Form  string `json:"form"`
	Lemma string `json:"lemma"`

	// Coarse part of speech
	UPos string `json:"upos"`

	// Language specific part of speech
	XPos  string `json:"xpos"`
	Feats string `json:"feats"`

	// Index of the governor, 0 for the root
	Head   int    `json:"head"`
	Deprel string `json:"deprel"`
	Deps   string `json:"deps"`
	Misc   string `json:"misc"`
}

// NewToken returns a token at index with the given form and every annotation
// field at its default.
func NewToken(index int, form string) Token {
	return Token{
		Index:  index,
		Form:   form,
		Lemma:  Placeholder,
		UPos:   Placeholder,
		XPos:   Placeholder,
		Feats:  Placeholder,
		Head:   Root,
		Deprel: DefaultDeprel,
		Deps:   Placeholder,
		Misc:   Placeholder,
	}
}

// IsRoot reports whether the token hangs from the notional root.
func (t Token) IsRoot() bool {
	return t.Head == Root
}

// Fields returns the ten CoNLL-U columns of the token in order.
func (t Token) Fields() []string {
	return []string{
		strconv.Itoa(t.Index),
		orPlaceholder(t.Form),
		orPlaceholder(t.Lemma),
		orPlaceholder(t.UPos),
		orPlaceholder(t.XPos),
		orPlaceholder(t.Feats),
		strconv.Itoa(t.Head),
		orPlaceholder(t.Deprel),
		orPlaceholder(t.Deps),
		orPlaceholder(t.Misc),
	}
}

// Forms returns the surface forms of the sentence.
func (s Sentence) Forms() []string {
	forms := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		forms[i] = t.Form
	}
	return forms
}

// Len returns the number of tokens.
func (s Sentence) Len() int {
	return len(s.Tokens)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
