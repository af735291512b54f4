package solver

import (
	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// propagateClause handles watch-list notification: a literal p that cr was
// watching (on p.Not()) has just become true. It restores a watch invariant
// (find a replacement to watch, or discover cr is now unit/satisfied/
// conflicting) and returns false only on conflict.
func (s *Solver) propagateClause(cr arena.CRef, p lit.Lit) bool {
	c := s.ca.Get(cr)

	// Make sure the false literal is lits[1].
	if c.Lits[0] == p.Not() {
		c.Lits[0], c.Lits[1] = c.Lits[1], p.Not()
	}
	// If 0th watch is true, then the clause is already satisfied. We just need
	// to reinsert it into the watch list.
	if s.litValue(c.Lits[0]).True() {
		s.addToWatcher(p, cr)

		return true
	}
	// Look for a new literal to watch and insert this clause into its watch list.
	for i := 2; i < c.Len(); i++ {
		if !s.litValue(c.Lits[i]).False() {
			c.Lits[1], c.Lits[i] = c.Lits[i], c.Lits[1]
			s.addToWatcher(c.Lits[1].Not(), cr)

			return true
		}
	}
	// Clause is unit under assignment.
	s.addToWatcher(p, cr)

	return s.enqueue(c.Lits[0], cr)
}

// calcReason returns the reason p was propagated by cr. p == lit.Undef asks
// for the reason cr is currently conflicting rather than the reason for one
// of its literals.
func (s *Solver) calcReason(cr arena.CRef, p lit.Lit) []lit.Lit {
	c := s.ca.Get(cr)

	outReason := []lit.Lit{}
	offset := 1
	if p == lit.Undef {
		offset = 0
	}
	for i := offset; i < c.Len(); i++ {
		outReason = append(outReason, c.Lits[i].Not())
	}
	if c.Learnt {
		s.claBumpActivity(cr)
	}
	return outReason
}
