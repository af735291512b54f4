package simp

import (
	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/resolve"
)

// logWitness appends a lone witness literal to the model-extension log: a
// satisfiable assignment always has at least one way to set this variable,
// regardless of any clause it used to appear in.
func (s *Solver) logWitness(x lit.Lit) {
	s.elimclauses = append(s.elimclauses, uint32(x), 1)
}

// logClause appends lits (a clause that mentioned v) to the model-extension
// log, pivot first, followed by the clause's length.
func (s *Solver) logClause(v int, lits []lit.Lit) {
	first := len(s.elimclauses)
	vPos := -1
	for _, l := range lits {
		s.elimclauses = append(s.elimclauses, uint32(l))
		if l.Index() == v {
			vPos = len(s.elimclauses) - 1
		}
	}
	s.elimclauses[first], s.elimclauses[vPos] = s.elimclauses[vPos], s.elimclauses[first]
	s.elimclauses = append(s.elimclauses, uint32(len(lits)))
}

// eliminateVar resolves v out of the formula entirely: every pair of
// clauses where v occurs with opposite signs is cross-resolved into their
// resolvent (dropped if tautological), the originals are removed, and the
// smaller of the two occurrence sides is logged so extendModel can
// reconstruct v's value afterward. Declines (returning true without
// touching anything) if doing so would grow the clause count past the
// configured allowance or produce an over-long resolvent.
func (s *Solver) eliminateVar(v int) bool {
	cls := append([]arena.CRef(nil), s.occ.Lookup(v)...)

	var pos, neg []arena.CRef
	for _, cr := range cls {
		c := s.Solver.CA().Get(cr)
		hasPos := false
		for _, l := range c.Lits {
			if l.Index() == v && !l.Sign() {
				hasPos = true
				break
			}
		}
		if hasPos {
			pos = append(pos, cr)
		} else {
			neg = append(neg, cr)
		}
	}

	cnt := 0
	for _, p := range pos {
		for _, n := range neg {
			s.merges++
			size, ok := resolve.MergeSize(s.Solver.CA().Get(p).Lits, s.Solver.CA().Get(n).Lits, v)
			if !ok {
				continue
			}
			cnt++
			if cnt > len(cls)+s.conf.Simp.Grow ||
				(s.conf.Simp.ClauseLim != -1 && size > s.conf.Simp.ClauseLim) {
				return true
			}
		}
	}

	s.eliminated[v] = true
	s.Solver.SetDecisionVar(v, false)

	if len(pos) > len(neg) {
		for _, n := range neg {
			s.logClause(v, s.Solver.CA().Get(n).Lits)
		}
		s.logWitness(lit.New(v, false))
	} else {
		for _, p := range pos {
			s.logClause(v, s.Solver.CA().Get(p).Lits)
		}
		s.logWitness(lit.New(v, true))
	}

	for _, p := range pos {
		for _, n := range neg {
			s.merges++
			resolvent, ok := resolve.Merge(s.Solver.CA().Get(p).Lits, s.Solver.CA().Get(n).Lits, v)
			if !ok {
				continue
			}
			if !s.addClauseLits(resolvent) {
				return false
			}
		}
	}

	for _, cr := range cls {
		s.removeClauseFull(cr)
	}
	s.occ.Clear(v)

	return s.backwardSubsumptionCheck()
}

// Substitute replaces every occurrence of v with x (v := x, or its negation
// where v appeared negated), rebuilding each of v's clauses under the
// substitution and discarding the originals. Unlike eliminateVar this
// performs no model-extension logging: v's value is always exactly x's, so
// there is nothing for extendModel to reconstruct.
func (s *Solver) Substitute(v int, x lit.Lit) bool {
	if !s.Solver.OK() {
		return false
	}
	s.eliminated[v] = true
	s.Solver.SetDecisionVar(v, false)

	cls := append([]arena.CRef(nil), s.occ.Lookup(v)...)
	for _, cr := range cls {
		c := s.Solver.CA().Get(cr)
		lits := make([]lit.Lit, c.Len())
		for i, p := range c.Lits {
			if p.Index() == v {
				lits[i] = lit.New(x.Index(), x.Sign() != p.Sign())
			} else {
				lits[i] = p
			}
		}
		if !s.addClauseLits(lits) {
			s.Solver.SetOK(false)
			return false
		}
		s.removeClauseFull(cr)
	}
	return true
}
