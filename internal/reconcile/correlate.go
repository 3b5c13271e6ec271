package reconcile

import "strconv"

// Correlator matches desired list entries to remote entries and derives the
// remote id each entry owns. Positional correlation is the only strategy in
// use; keeping it behind the interface lets a key-based scheme replace it
// without touching stage sequencing.
type Correlator[R any] interface {
	// Match returns the remote entry correlated with the desired entry at
	// 1-based position pos, or false when the remote collection has no
	// entry there.
	Match(pos int, remote []R) (R, bool)

	// ID derives the remote id owned by position pos.
	ID(pos int) string
}

// positional correlates strictly by index: the i-th desired entry maps to
// the i-th remote entry. Reordering the description therefore reassigns
// which remote entity receives each update.
type positional[R any] struct {
	prefix string
}

// newPositional returns a positional correlator whose ids follow
// prefix+"{pos}"; with an empty prefix the id is the plain decimal position.
func newPositional[R any](prefix string) Correlator[R] {
	return positional[R]{prefix: prefix}
}

func (p positional[R]) Match(pos int, remote []R) (R, bool) {
	if pos < 1 || pos > len(remote) {
		var zero R
		return zero, false
	}
	return remote[pos-1], true
}

func (p positional[R]) ID(pos int) string {
	return p.prefix + strconv.Itoa(pos)
}
