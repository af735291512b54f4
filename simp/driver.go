package simp

import (
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/tribool"
)

// Solve freezes every assumption variable for the duration of the call (an
// eliminated assumption variable would make the assumption meaningless),
// runs the preprocessor to convergence, hands the reduced formula to the
// base search, and — on success — extends the search's model back over
// every variable the preprocessor removed.
func (s *Solver) Solve(ps []int) bool {
	var extraFrozen []int

	for _, p := range ps {
		il := s.Solver.MapUserVar(lit.NewFromInt(p))
		v := il.Index()
		if !s.frozen[v] {
			s.SetFrozen(v, true)
			extraFrozen = append(extraFrozen, v)
		}
	}

	ok := s.eliminate(false)
	if ok {
		ok = s.Solver.Solve(ps)
	}
	if ok {
		s.extendModel()
	}

	for _, v := range extraFrozen {
		s.SetFrozen(v, false)
	}

	return ok
}

// eliminate runs the preprocessor to a fixpoint: gather newly touched
// clauses, run backward subsumption over the queue and any freshly
// propagated top-level literals, then drain the elimination heap,
// eliminating whichever variables are still eligible. turnOffElim, once
// the caller knows no further preprocessing will ever run, permanently
// tears down the preprocessor's tables and hands removeSatisfied back to
// the base solver's own simplifyDB.
func (s *Solver) eliminate(turnOffElim bool) bool {
	if !s.Solver.Simplify() {
		s.Solver.SetOK(false)
		return false
	}

	toPerform := len(s.Solver.Clauses()) <= s.conf.Simp.MaxClausesForPreprocessing
	if !toPerform {
		s.Solver.Logger().Info("too many problem clauses, skipping simplification")
	}

	ok := true
	for ok && toPerform && (s.nTouched > 0 || s.bwdsubAssigns < len(s.Solver.Trail()) || !s.elimHeap.Empty()) {
		s.gatherTouchedClauses()

		if s.subsumptionQueue.len() > 0 || s.bwdsubAssigns < len(s.Solver.Trail()) {
			if !s.backwardSubsumptionCheck() {
				ok = false
				break
			}
		}
		if s.asynchInterrupt {
			s.elimHeap.Clear()
			break
		}

		for !s.elimHeap.Empty() {
			elim := s.elimHeap.RemoveMin()
			if s.asynchInterrupt {
				break
			}
			if s.eliminated[elim] || s.Solver.Value(lit.New(elim, false)) != tribool.Undef {
				continue
			}
			if s.conf.Simp.Elim && !s.frozen[elim] && !s.eliminateVar(elim) {
				ok = false
				break
			}
			s.checkGarbage(false)
		}
	}
	if !ok {
		s.Solver.SetOK(false)
	}

	if turnOffElim {
		s.touched = nil
		s.elimHeap.Clear()
		s.subsumptionQueue.clear()
		s.occ.ClearAll()
		s.useSimplification = false
		s.Solver.SetRemoveSatisfied(true)
		s.Solver.CA().SetExtraClauseField(false)
		s.Solver.RebuildOrderHeap()
		s.garbageCollect()
	} else {
		s.cleanUpClauses()
		s.checkGarbage(false)
	}

	return s.Solver.OK()
}

// TurnOffSimplification permanently disables the preprocessor: call this
// once no further Solve is expected, to free its bookkeeping tables and
// hand satisfied-clause removal back to the base solver's own simplifyDB.
func (s *Solver) TurnOffSimplification() bool {
	return s.eliminate(true)
}
