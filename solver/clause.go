package solver

import (
	"sort"
	"strings"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// AddClauseLits constructs a new clause from lits, simplifying it against
// the current (decision-level-0) assignment: literals already false are
// dropped, a literal already true or a tautology short-circuits the clause
// away entirely, and an empty result is a top-level conflict. This is the
// consumed base-solver "addClause_". It returns whether the addition
// succeeded (false means the solver is now unsatisfiable) and, when a
// clause was actually allocated, its handle — arena.Undef if the clause was
// satisfied/tautological/unit (units are enqueued instead of stored).
func (s *Solver) AddClauseLits(lits []lit.Lit, learnt bool) (bool, arena.CRef) {
	if !s.ok {
		return false, arena.Undef
	}

	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	if !learnt {
		idx := 0
		last := lit.Undef

		for _, p := range lits {
			switch {
			case s.litValue(p).True():
				return true, arena.Undef
			case p == last.Not():
				return true, arena.Undef
			case s.litValue(p).False():
				continue
			}
			lits[idx] = p
			last = p
			idx++
		}
		lits = lits[:idx]
	}

	switch len(lits) {
	case 0:
		s.ok = false
		return false, arena.Undef
	case 1:
		if !s.enqueue(lits[0], arena.Undef) {
			s.ok = false
			return false, arena.Undef
		}
		return true, arena.Undef
	}

	cr := s.ca.Alloc(lits, learnt)
	c := s.ca.Get(cr)

	if learnt {
		idx := s.highestDecisionLevelIdx(cr)
		c.Lits[1], c.Lits[idx] = c.Lits[idx], c.Lits[1]

		s.claBumpActivity(cr)
		for i := 0; i < c.Len(); i++ {
			s.varBumpActivity(c.Lits[i])
		}
	}

	s.attachClause(cr)

	return true, cr
}

// attachClause registers cr on its two watched literals' lists.
func (s *Solver) attachClause(cr arena.CRef) {
	c := s.ca.Get(cr)
	s.addToWatcher(c.Lits[0].Not(), cr)
	s.addToWatcher(c.Lits[1].Not(), cr)
}

// AttachClause is the exported form of attachClause, part of the consumed
// base-solver interface.
func (s *Solver) AttachClause(cr arena.CRef) {
	s.attachClause(cr)
}

// detachClause removes cr from both of its watched literals' lists.
func (s *Solver) detachClause(cr arena.CRef) {
	c := s.ca.Get(cr)
	s.removeFromWatcher(c.Lits[0].Not(), cr)
	s.removeFromWatcher(c.Lits[1].Not(), cr)
}

// DetachClause is the exported form of detachClause.
func (s *Solver) DetachClause(cr arena.CRef) {
	s.detachClause(cr)
}

// RemoveClause logically deletes cr: it is detached from the watcher lists
// and marked deleted in the arena; physical reclamation happens later, at
// garbage collection.
func (s *Solver) RemoveClause(cr arena.CRef) {
	s.detachClause(cr)
	s.ca.Free(cr)
}

// locked returns true if cr is the reason some variable is currently
// assigned, and so cannot be removed.
func (s *Solver) locked(cr arena.CRef) bool {
	c := s.ca.Get(cr)
	v := c.Lits[0].Index()
	return s.reason[v] == cr
}

// highestDecisionLevelIdx returns the index of cr's literal with the
// highest decision level, used to pick the learnt clause's second watch.
func (s *Solver) highestDecisionLevelIdx(cr arena.CRef) int {
	c := s.ca.Get(cr)
	max := 0
	maxIdx := 0

	for idx, p := range c.Lits {
		dl := s.level[p.Index()]

		if dl > max {
			maxIdx = idx
			max = dl
		}
	}
	return maxIdx
}

// addToWatcher adds cr to p's watch list.
func (s *Solver) addToWatcher(p lit.Lit, cr arena.CRef) {
	s.watches[p] = append(s.watches[p], cr)
}

// removeFromWatcher removes cr from p's watch list.
func (s *Solver) removeFromWatcher(p lit.Lit, cr arena.CRef) {
	ws := s.watches[p]
	for idx, c := range ws {
		if c == cr {
			n := len(ws)
			ws[idx] = ws[n-1]
			s.watches[p] = ws[:n-1]
			return
		}
	}
}

// clauseAsStrings renders cr's literals for logging/debugging.
func (s *Solver) clauseAsStrings(cr arena.CRef) []string {
	c := s.ca.Get(cr)
	out := make([]string, 0, c.Len())
	for _, l := range c.Lits {
		out = append(out, l.String())
	}
	return out
}

// clauseString renders cr as a comma-separated literal list.
func (s *Solver) clauseString(cr arena.CRef) string {
	return strings.Join(s.clauseAsStrings(cr), ",")
}

// litsAsInts converts lits back to DIMACS-style user-facing integers.
func (s *Solver) litsAsInts(lits []lit.Lit) []int {
	out := make([]int, 0, len(lits))
	for _, l := range lits {
		v, ok := s.internalVars[l.Index()]
		if !ok {
			v = l.Var()
		}
		if l.Sign() {
			out = append(out, -v)
		} else {
			out = append(out, v)
		}
	}
	return out
}
