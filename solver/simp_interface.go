package solver

import (
	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// This file is the consumed base-solver interface: everything the
// simplification preprocessor (package simp) drives directly, exported so it
// can live in its own package while still reaching into search-engine
// internals no other caller needs.

// Propagate is the exported form of propagate: propagate all enqueued facts,
// returning the first conflicting clause found, or arena.Undef.
func (s *Solver) Propagate() arena.CRef {
	return s.propagate()
}

// Simplify runs unit propagation to fixpoint and sweeps satisfied/simplified
// clauses out of the learnt and (if RemoveSatisfied) problem clause lists.
// Returns false if a top-level conflict was found.
func (s *Solver) Simplify() bool {
	return s.simplifyDB()
}

// Enqueue is the exported form of enqueue: records a new fact on the trail,
// attributing it to clause from (arena.Undef for a decision or an externally
// injected unit). Returns false on an immediate conflict.
func (s *Solver) Enqueue(p lit.Lit, from arena.CRef) bool {
	return s.enqueue(p, from)
}

// CancelUntil is the exported form of cancelUntil.
func (s *Solver) CancelUntil(level int) {
	s.cancelUntil(level)
}

// DecisionLevel is the exported form of decisionLevel.
func (s *Solver) DecisionLevel() int {
	return s.decisionLevel()
}

// Locked is the exported form of locked: reports whether cr is the reason
// some variable is currently assigned.
func (s *Solver) Locked(cr arena.CRef) bool {
	return s.locked(cr)
}
