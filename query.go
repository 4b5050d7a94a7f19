package ferret

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY GRAMMAR
// ═══════════════════════════════════════════════════════════════════════════════
//   query   := atom ( WS+ atom )*
//   atom    := phrase | word
//   phrase  := '"' phrase_body '"'
//   word    := one or more non-whitespace, non-quote characters
//
// The lexer does the heavy lifting: a quoted run is one Phrase
// token, anything else non-whitespace is a Word token, and
// whitespace is elided. An unterminated or stray quote fails to
// match either rule and surfaces as a lexer error, which ParseQuery
// turns into BadQuery.
// ═══════════════════════════════════════════════════════════════════════════════

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Phrase", Pattern: `"[^"]*"`},
	{Name: "Word", Pattern: `[^"\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type queryAST struct {
	Atoms []*atomAST `parser:"@@*"`
}

type atomAST struct {
	Phrase *string `parser:"  @Phrase"`
	Word   *string `parser:"| @Word"`
}

var queryParser = participle.MustBuild[queryAST](
	participle.Lexer(queryLexer),
	participle.Elide("Whitespace"),
)

// Query is the parsed form of a query string: a set of single-term
// atoms (order irrelevant, duplicates collapsed) and a list of
// phrase atoms, each a sequence of two or more terms that must
// appear contiguously, in order, in a matching document.
type Query struct {
	Terms   map[string]struct{}
	Phrases [][]string
}

// ParseQuery parses raw per the grammar above, tokenizing each atom
// with the same Tokenize function used for ingestion. Any violation
// of the grammar -- empty input, unbalanced quotes, an atom that
// tokenizes to zero terms -- is reported as BadQuery.
func ParseQuery(raw string) (*Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, BadQuery{Reason: "query is empty or whitespace-only"}
	}

	ast, err := queryParser.ParseString("", trimmed)
	if err != nil {
		return nil, BadQuery{Reason: err.Error()}
	}
	if len(ast.Atoms) == 0 {
		return nil, BadQuery{Reason: "query is empty or whitespace-only"}
	}

	q := &Query{Terms: make(map[string]struct{})}
	for _, atom := range ast.Atoms {
		switch {
		case atom.Phrase != nil:
			body := strings.TrimSuffix(strings.TrimPrefix(*atom.Phrase, `"`), `"`)
			terms := Terms(body)
			if len(terms) == 0 {
				return nil, BadQuery{Reason: fmt.Sprintf("phrase %q yields no terms", *atom.Phrase)}
			}
			if len(terms) == 1 {
				q.Terms[terms[0]] = struct{}{}
			} else {
				q.Phrases = append(q.Phrases, terms)
			}
		case atom.Word != nil:
			terms := Terms(*atom.Word)
			if len(terms) == 0 {
				return nil, BadQuery{Reason: fmt.Sprintf("%q yields no terms", *atom.Word)}
			}
			for _, t := range terms {
				q.Terms[t] = struct{}{}
			}
		}
	}

	return q, nil
}
