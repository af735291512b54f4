package simp

import "github.com/ericr/saturday/arena"

// garbageFrac is the wasted-to-total ratio that triggers an unforced
// collection.
const garbageFrac = 0.20

// cleanUpClauses compacts the occurrence index and drops dead handles from
// the problem-clause list — cheaper than a full garbage collection since it
// doesn't touch the arena itself, only the lists of handles into it.
func (s *Solver) cleanUpClauses() {
	s.occ.CleanAll()

	ca := s.Solver.CA()
	crs := s.Solver.Clauses()
	j := 0
	for i := 0; i < len(crs); i++ {
		if ca.Get(crs[i]).Mark == arena.Live {
			crs[j] = crs[i]
			j++
		}
	}
	s.Solver.SetClauses(crs[:j])
}

// checkGarbage runs a full garbage collection if force is set, or if the
// arena's wasted fraction has crossed garbageFrac.
func (s *Solver) checkGarbage(force bool) {
	ca := s.Solver.CA()
	if force || float64(ca.Wasted()) > float64(ca.Size())*garbageFrac {
		s.garbageCollect()
	}
}

// garbageCollect compacts the clause arena: every live clause, reachable
// from the base solver's watches/trail/clause lists or the preprocessor's
// own occurrence index/subsumption queue/scratch unit, is relocated into a
// freshly sized allocator, deduplicated via a shared cache so a
// doubly-referenced clause is only copied once.
func (s *Solver) garbageCollect() {
	ca := s.Solver.CA()
	to := arena.NewAllocator()
	to.SetExtraClauseField(ca.ExtraClauseField())

	s.cleanUpClauses()

	cache := arena.NewRelocCache()
	s.relocAll(to, cache)
	s.Solver.RelocAll(to, cache)
	s.Solver.SetCA(to)
}

// relocAll relocates the preprocessor's own clause handles — the
// occurrence index, the subsumption queue, and the scratch unit clause used
// while checking top-level literals — sharing cache with the base solver's
// own relocation pass.
func (s *Solver) relocAll(to *arena.Allocator, cache *arena.RelocCache) {
	s.occ.RelocAll(to, cache)

	ca := s.Solver.CA()
	for i := range s.subsumptionQueue.items {
		ca.RelocCache(&s.subsumptionQueue.items[i], to, cache)
	}
	ca.RelocCache(&s.bwdsubTmpUnit, to, cache)
}
