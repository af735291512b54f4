package solver

import "github.com/ericr/saturday/arena"

// simplifyDB can be called before solve() and simplifies the constraint
// database. If a top-level conflict is found, returns false.
func (s *Solver) simplifyDB() bool {
	if s.propagate() != arena.Undef {
		return false
	}

	j := 0
	for i := 0; i < s.NLearnts(); i++ {
		cr := s.learnts[i]

		if s.simplify(cr) {
			s.RemoveClause(cr)
		} else {
			s.learnts[j] = cr
			j++
		}
	}
	s.learnts = s.learnts[:j]

	if s.removeSatisfied {
		j = 0
		for i := 0; i < s.NConstrs(); i++ {
			cr := s.clauses[i]

			if s.simplify(cr) {
				s.RemoveClause(cr)
			} else {
				s.clauses[j] = cr
				j++
			}
		}
		s.clauses = s.clauses[:j]
	}

	return true
}

// reduceDB removes half of the learnt clauses minus some locked clauses.
func (s *Solver) reduceDB() {
	lim := s.claInc / float64(s.NLearnts())

	s.sortLearnts()

	j := 0
	for i := 0; i < s.NLearnts(); i++ {
		cr := s.learnts[i]
		c := s.ca.Get(cr)

		if c.Len() > 2 && !s.locked(cr) && (i < s.NLearnts()/2 || float64(c.Activity) < lim) {
			s.RemoveClause(cr)
		} else {
			s.learnts[j] = cr
			j++
		}
	}
	s.learnts = s.learnts[:j]
}
