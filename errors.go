package ferret

import "fmt"

// BadQuery is the sole error kind surfaced by Search: the query
// string fails the grammar of the query language (empty or
// whitespace-only, unbalanced quotes, or an atom that tokenizes to
// zero terms).
type BadQuery struct {
	Reason string
}

func (e BadQuery) Error() string {
	return fmt.Sprintf("bad query: %s", e.Reason)
}
