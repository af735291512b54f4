// Package simp is the simplification preprocessor: it sits in front of the
// base CDCL search engine (package solver) and, before a Solve runs,
// rewrites the formula by bounded variable elimination, backward
// subsumption and self-subsuming resolution. Every variable it eliminates is
// logged, so a model the reduced formula produces can be extended back to a
// model of the original one; Substitute does not log.
//
// simp.Solver embeds *solver.Solver rather than overriding its methods —
// Go has no virtual dispatch, so where the C original's SimpSolver
// overrides addClause_/removeClause/newVar, this package instead drives the
// base solver through its consumed interface (AddClauseLits, RemoveClause,
// ...) and a construction-time callback (SetOnNewVar) that keeps the
// preprocessor's own per-variable tables in lockstep with variable
// creation.
package simp

import (
	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/elimheap"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/occur"
	"github.com/ericr/saturday/solver"
	"github.com/ericr/saturday/tribool"
)

// Solver is the search engine fronted by the simplification preprocessor.
type Solver struct {
	*solver.Solver

	conf *config.Config

	occ      *occur.Index
	elimHeap *elimheap.Heap

	frozen     []bool
	eliminated []bool
	touched    []bool
	nTouched   int

	subsumptionQueue crefQueue
	bwdsubAssigns    int
	bwdsubTmpUnit    arena.CRef

	// elimclauses is the model-extension log: for each variable eliminated,
	// the clauses of its smaller occurrence side (pivot literal first), each
	// followed by a trailing length field, then finally a lone witness
	// literal and a length of 1. extendModel replays this backward.
	elimclauses []uint32

	merges int

	// useSimplification is true for as long as the preprocessor's tables
	// (occurrence lists, elimination heap, touched set) are being
	// maintained at all. eliminate(turnOffElim=true) flips it off for good
	// once preprocessing is known to never run again.
	useSimplification bool

	asynchInterrupt bool
}

// New returns a Solver wrapping a freshly constructed base solver.
func New(conf *config.Config) *Solver {
	base := solver.New(conf)
	s := &Solver{
		Solver:            base,
		conf:              conf,
		useSimplification: true,
	}
	s.occ = occur.New(base.CA())
	s.elimHeap = elimheap.New(s.occ)

	// The abstraction word must be enabled before the scratch clause below
	// is allocated, and satisfied-clause removal is left to the
	// preprocessor's own finer-grained bookkeeping until it is turned off.
	base.CA().SetExtraClauseField(true)
	base.SetRemoveSatisfied(false)

	s.bwdsubTmpUnit = base.CA().Alloc([]lit.Lit{lit.Undef}, false)

	base.SetOnNewVar(s.onNewVar)

	return s
}

// onNewVar is the construction-time stand-in for the C original's
// SimpSolver::newVar override: it grows the preprocessor's per-variable
// tables to match the base solver's, but only while preprocessing is still
// a live possibility.
func (s *Solver) onNewVar(v int) {
	s.frozen = append(s.frozen, false)
	s.eliminated = append(s.eliminated, false)

	if s.useSimplification {
		s.occ.Init(v)
		s.touched = append(s.touched, false)
		s.elimHeap.Insert(v)
	}
}

// AddClause adds a clause given as DIMACS-style integer literals, creating
// any new variables it mentions. Corresponds to the addClause_ override:
// when the base solver actually allocates a new clause (rather than finding
// it satisfied, tautological, or reducing it to a unit), the preprocessor
// starts tracking it for subsumption and elimination.
func (s *Solver) AddClause(ps []int) bool {
	lits := make([]lit.Lit, 0, len(ps))
	for _, p := range ps {
		lits = append(lits, s.Solver.MapUserVar(lit.NewFromInt(p)))
	}
	return s.addClauseLits(lits)
}

func (s *Solver) addClauseLits(lits []lit.Lit) bool {
	before := len(s.Solver.Clauses())

	ok, cr := s.Solver.AddClauseLits(lits, false)
	if !ok {
		return false
	}
	if cr != arena.Undef {
		s.Solver.SetClauses(append(s.Solver.Clauses(), cr))
	}

	if s.useSimplification && cr != arena.Undef && len(s.Solver.Clauses()) == before+1 {
		s.subsumptionQueue.push(cr)
		c := s.Solver.CA().Get(cr)
		for i := 0; i < c.Len(); i++ {
			v := c.Lits[i].Index()
			s.occ.Push(v, cr)
			s.occ.IncCount(c.Lits[i])
			s.touch(v)
			if s.elimHeap.Contains(v) {
				s.elimHeap.Increase(v)
			}
		}
	}
	return true
}

// touch marks v as having gained or lost an occurrence since the last
// gatherTouchedClauses, so its clauses get re-examined for subsumption.
func (s *Solver) touch(v int) {
	if !s.touched[v] {
		s.touched[v] = true
		s.nTouched++
	}
}

// removeClauseFull removes cr, first walking off its contribution to every
// literal's occurrence count and re-pricing the elimination heap — the
// bookkeeping the base solver's own RemoveClause knows nothing about.
func (s *Solver) removeClauseFull(cr arena.CRef) {
	c := s.Solver.CA().Get(cr)
	for i := 0; i < c.Len(); i++ {
		l := c.Lits[i]
		s.occ.DecCount(l)
		s.updateElimHeap(l.Index())
		s.occ.Smudge(l.Index())
	}
	s.Solver.RemoveClause(cr)
}

// updateElimHeap re-prices v in the elimination heap if it is already
// queued there, or inserts it if it has newly become a plausible
// elimination candidate (not frozen, not already eliminated, still
// unassigned).
func (s *Solver) updateElimHeap(v int) {
	eligible := !s.frozen[v] && !s.eliminated[v] && s.Solver.Value(lit.New(v, false)) == tribool.Undef
	if s.elimHeap.Contains(v) || eligible {
		s.elimHeap.Update(v)
	}
}

// SetFrozen marks v exempt from elimination. Solve freezes every assumption
// variable for the duration of a call.
func (s *Solver) SetFrozen(v int, frozen bool) {
	s.frozen[v] = frozen
	if !frozen {
		s.updateElimHeap(v)
	}
}

// IsEliminated reports whether v has been eliminated or substituted away.
func (s *Solver) IsEliminated(v int) bool {
	return s.eliminated[v]
}

// SetAsynchInterrupt requests that any in-progress preprocessing pass wind
// down as soon as it next checks.
func (s *Solver) SetAsynchInterrupt(on bool) {
	s.asynchInterrupt = on
}

// Merges returns how many pairwise clause resolutions variable elimination
// has attempted, materializing or not.
func (s *Solver) Merges() int {
	return s.merges
}
