package solver

import "github.com/ericr/saturday/arena"

// RelocAll relocates every CRef the base solver holds — watcher lists,
// locked reasons, learnt clauses and problem clauses — into to, sharing
// cache with any other party relocating into the same destination arena
// (the preprocessor's occurrence lists and subsumption queue) so a clause
// reachable from more than one list is only copied once.
func (s *Solver) RelocAll(to *arena.Allocator, cache *arena.RelocCache) {
	for p, ws := range s.watches {
		for i := range ws {
			s.ca.RelocCache(&ws[i], to, cache)
		}
		s.watches[p] = ws
	}

	for _, p := range s.trail {
		v := p.Index()
		cr := s.reason[v]
		if cr != arena.Undef && (cache.Contains(cr) || s.locked(cr)) {
			s.ca.RelocCache(&s.reason[v], to, cache)
		}
	}

	for i := range s.learnts {
		s.ca.RelocCache(&s.learnts[i], to, cache)
	}
	for i := range s.clauses {
		s.ca.RelocCache(&s.clauses[i], to, cache)
	}
}

// SetCA installs to as the solver's clause arena. Called once a full
// garbage-collection pass has relocated every live clause (base and
// preprocessor alike) into it.
func (s *Solver) SetCA(to *arena.Allocator) {
	s.ca = to
}
