// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convention parses the export filename convention
// {Engine}_{keyword}({Operator}_{keyword})*.csv into a structured key.
// The engine is the bibliographic source that produced the export
// (e.g. "GoogleScholar", "Scopus"); the keywords and operators record
// the boolean query the export answers.
package convention

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Operator is a boolean operator joining two search keywords.
type Operator string

const (
	// OpNone marks the first term of a query, which has no preceding
	// operator.
	OpNone Operator = ""

	OpAnd    Operator = "AND"
	OpOr     Operator = "OR"
	OpAndNot Operator = "ANDNOT"
)

// Term is one keyword of a query together with the operator that joins
// it to the preceding term. The first term carries OpNone.
type Term struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Op      Operator `json:"op,omitempty" yaml:"op,omitempty"`
}

// Key identifies the search that produced an export file: the engine
// queried and the ordered keyword terms. A Key is immutable once
// parsed.
type Key struct {
	Engine string `json:"engine" yaml:"engine"`
	Terms  []Term `json:"terms" yaml:"terms"`
}

// FormatError reports a filename that does not follow the export
// naming convention.
type FormatError struct {
	Filename string
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("filename %q does not match the export convention: %s", e.Filename, e.Reason)
}

// Parse extracts the search engine and keyword terms encoded in an
// export filename. The extension is ignored; the engine is the text
// before the first underscore, unmodified. Tokens after the engine
// alternate keyword, operator, keyword; a non-operator token at an
// operator position extends the preceding keyword, so multi-word
// keywords written with underscores parse as a single keyword with
// spaces.
//
// Operator recognition is positional only. A keyword that is itself
// the literal string "AND", "OR", or "ANDNOT" is ambiguous under the
// convention and may mis-parse; the convention does not define a
// disambiguation and neither does Parse.
func Parse(filename string) (Key, error) {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	engine, rest, found := strings.Cut(name, "_")
	if !found {
		return Key{}, &FormatError{Filename: base, Reason: "no underscore-separated keyword"}
	}
	if engine == "" {
		return Key{}, &FormatError{Filename: base, Reason: "empty search engine"}
	}

	tokens := strings.Split(rest, "_")
	if tokens[0] == "" {
		return Key{}, &FormatError{Filename: base, Reason: "empty keyword"}
	}

	terms := []Term{{Keyword: tokens[0]}}
	awaitingKeyword := false
	for _, tok := range tokens[1:] {
		if tok == "" {
			return Key{}, &FormatError{Filename: base, Reason: "empty token between underscores"}
		}
		cur := &terms[len(terms)-1]
		switch {
		case !awaitingKeyword && isOperator(tok):
			terms = append(terms, Term{Op: Operator(tok)})
			awaitingKeyword = true
		case awaitingKeyword:
			// Keyword-start position: always keyword text, even when
			// the token coincides with an operator literal.
			cur.Keyword = tok
			awaitingKeyword = false
		default:
			cur.Keyword += " " + tok
		}
	}
	if awaitingKeyword {
		return Key{}, &FormatError{Filename: base, Reason: "operator without a following keyword"}
	}

	return Key{Engine: engine, Terms: terms}, nil
}

func isOperator(tok string) bool {
	switch Operator(tok) {
	case OpAnd, OpOr, OpAndNot:
		return true
	}
	return false
}

// String reconstructs the canonical filename stem for the key, with
// spaces inside multi-word keywords written back as underscores.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Engine)
	for _, t := range k.Terms {
		if t.Op != OpNone {
			b.WriteString("_")
			b.WriteString(string(t.Op))
		}
		b.WriteString("_")
		b.WriteString(strings.ReplaceAll(t.Keyword, " ", "_"))
	}
	return b.String()
}

// FirstKeyword returns the keyword of the first term.
func (k Key) FirstKeyword() string {
	return k.Terms[0].Keyword
}

// Keywords returns the keywords the query includes, in order. Terms
// joined by ANDNOT are exclusions and are not returned.
func (k Key) Keywords() []string {
	var out []string
	for _, t := range k.Terms {
		if t.Op != OpAndNot {
			out = append(out, t.Keyword)
		}
	}
	return out
}

// Excluded returns the keywords the query excludes via ANDNOT, in order.
func (k Key) Excluded() []string {
	var out []string
	for _, t := range k.Terms {
		if t.Op == OpAndNot {
			out = append(out, t.Keyword)
		}
	}
	return out
}
