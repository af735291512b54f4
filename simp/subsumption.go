package simp

import (
	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// gatherTouchedClauses re-enqueues every clause touching a variable that has
// gained or lost an occurrence since the last call, for another pass of
// backward subsumption. Clauses already in the queue are tagged Queued so
// they are not duplicated, then the tag is lifted back to Live — Queued is
// purely a transient "don't insert twice" marker for this pass, never a
// real deletion state.
func (s *Solver) gatherTouchedClauses() {
	if s.nTouched == 0 {
		return
	}
	ca := s.Solver.CA()

	for _, cr := range s.subsumptionQueue.items {
		if ca.Get(cr).Mark == arena.Live {
			ca.Get(cr).Mark = arena.Queued
		}
	}

	for v := range s.touched {
		if !s.touched[v] {
			continue
		}
		for _, cr := range s.occ.Lookup(v) {
			if ca.Get(cr).Mark == arena.Live {
				s.subsumptionQueue.push(cr)
				ca.Get(cr).Mark = arena.Queued
			}
		}
		s.touched[v] = false
	}

	for _, cr := range s.subsumptionQueue.items {
		if ca.Get(cr).Mark == arena.Queued {
			ca.Get(cr).Mark = arena.Live
		}
	}
	s.nTouched = 0
}

// subsumes reports whether c subsumes other: either fully (ok true, pivot
// lit.Undef — other can be removed outright) or by self-subsuming
// resolution on exactly one literal (ok true, pivot the literal of c whose
// negation is other's only mismatch — other can be strengthened by removing
// ~pivot). ok false means c and other share no such relationship.
func subsumes(c, other *arena.Clause) (lit.Lit, bool) {
	if c.Len() > other.Len() || c.Abstraction&^other.Abstraction != 0 {
		return lit.Undef, false
	}

	pivot := lit.Undef
outer:
	for _, l := range c.Lits {
		for _, o := range other.Lits {
			if l == o {
				continue outer
			}
			if pivot == lit.Undef && l == o.Not() {
				pivot = l
				continue outer
			}
		}
		return lit.Undef, false
	}
	return pivot, true
}

// strengthenClause removes l from cr (cr must contain l), re-enqueues cr for
// a further subsumption pass, and — if the result is a unit — enqueues and
// propagates its surviving literal. Returns false only on a propagation
// conflict.
func (s *Solver) strengthenClause(cr arena.CRef, l lit.Lit) bool {
	s.subsumptionQueue.push(cr)

	c := s.Solver.CA().Get(cr)
	if c.Len() == 2 {
		var unit lit.Lit
		if c.Lits[0] == l {
			unit = c.Lits[1]
		} else {
			unit = c.Lits[0]
		}
		s.removeClauseFull(cr)
		return s.Solver.Enqueue(unit, arena.Undef) && s.Solver.Propagate() == arena.Undef
	}

	s.Solver.DetachClause(cr)
	c.Strengthen(l)
	s.Solver.AttachClause(cr)

	s.occ.Smudge(l.Index())
	s.occ.DecCount(l)
	s.updateElimHeap(l.Index())

	if c.Len() == 1 {
		return s.Solver.Enqueue(c.Lits[0], arena.Undef) && s.Solver.Propagate() == arena.Undef
	}
	return true
}

// backwardSubsumptionCheck drains the subsumption queue (plus, as a cheap
// stand-in for full forward subsumption, every literal newly pushed onto the
// trail since the last call, each treated as a one-literal clause via the
// shared bwdsubTmpUnit scratch slot): for each candidate it finds the
// sparsest-occurring variable among its literals and tests every clause
// still mentioning that variable for a subsumption or self-subsumption
// relationship.
func (s *Solver) backwardSubsumptionCheck() bool {
	ca := s.Solver.CA()

	for s.subsumptionQueue.len() > 0 || s.bwdsubAssigns < len(s.Solver.Trail()) {
		if s.asynchInterrupt {
			s.subsumptionQueue.clear()
			s.bwdsubAssigns = len(s.Solver.Trail())
			break
		}

		if s.subsumptionQueue.len() == 0 && s.bwdsubAssigns < len(s.Solver.Trail()) {
			l := s.Solver.Trail()[s.bwdsubAssigns]
			s.bwdsubAssigns++
			ca.Get(s.bwdsubTmpUnit).Lits[0] = l
			ca.Get(s.bwdsubTmpUnit).CalcAbstraction()
			s.subsumptionQueue.push(s.bwdsubTmpUnit)
		}

		cr := s.subsumptionQueue.pop()

		c := ca.Get(cr)
		if c.Mark != arena.Live {
			continue
		}

		best := c.Lits[0].Index()
		for i := 1; i < c.Len(); i++ {
			v := c.Lits[i].Index()
			if len(s.occ.Lookup(v)) < len(s.occ.Lookup(best)) {
				best = v
			}
		}

		candidates := append([]arena.CRef(nil), s.occ.Lookup(best)...)
		for _, other := range candidates {
			if c.Mark != arena.Live {
				break
			}
			oc := ca.Get(other)
			if oc.Mark != arena.Live || other == cr {
				continue
			}
			if s.conf.Simp.SubsumptionLim != -1 && oc.Len() >= s.conf.Simp.SubsumptionLim {
				continue
			}

			p, ok := subsumes(c, oc)
			if !ok {
				continue
			}
			if p == lit.Undef {
				s.removeClauseFull(other)
				continue
			}
			if !s.strengthenClause(other, p.Not()) {
				return false
			}
		}
	}
	return true
}
