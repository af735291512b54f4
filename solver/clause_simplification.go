package solver

import "github.com/ericr/saturday/arena"

// simplify attempts to simplify cr against the current assignment, dropping
// any literal that's become false. Returns true if cr is already satisfied
// (and so can be discarded outright).
func (s *Solver) simplify(cr arena.CRef) bool {
	c := s.ca.Get(cr)

	j := 0
	for i := 0; i < c.Len(); i++ {
		// Constraint is already satisfied.
		if s.litValue(c.Lits[i]).True() {
			return true
		}
		// Don't copy false literals.
		if !s.litValue(c.Lits[i]).False() {
			c.Lits[j] = c.Lits[i]
			j++
		}
	}
	c.Lits = c.Lits[:j]

	return false
}
