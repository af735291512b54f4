package solver

import (
	"sort"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// varBumpActivity bumps a variable's activity.
func (s *Solver) varBumpActivity(p lit.Lit) {
	s.activity[p.Index()] += s.varInc

	if s.activity[p.Index()] > 1e100 {
		s.varRescaleActivity()
	}
	s.order.Fix(p.Index())
}

// varDecayActivity applies decay to varInc.
func (s *Solver) varDecayActivity() {
	s.varInc *= s.varDecay
}

// varRescaleActivity rescales var activity.
func (s *Solver) varRescaleActivity() {
	for i := 0; i < s.NVars(); i++ {
		s.activity[i] *= 1e-100
	}
	s.varInc *= 1e-100
}

// claBumpActivity bumps a clause's activity.
func (s *Solver) claBumpActivity(cr arena.CRef) {
	c := s.ca.Get(cr)
	c.Activity += float32(s.claInc)

	if float64(c.Activity)+s.claInc > 1e20 {
		s.claRescaleActivity()
	}
}

// claDecayActivity applies decay to claInc.
func (s *Solver) claDecayActivity() {
	s.claInc *= s.claDecay
}

// claRescaleActivity rescales clause activity.
func (s *Solver) claRescaleActivity() {
	for i := 0; i < s.NLearnts(); i++ {
		c := s.ca.Get(s.learnts[i])
		c.Activity *= 1e-20
	}
	s.claInc *= 1e-20
}

// decayActivities calls both activity decay functions.
func (s *Solver) decayActivities() {
	s.varDecayActivity()
	s.claDecayActivity()
}

// sortLearnts sorts learnts by activity.
func (s *Solver) sortLearnts() {
	sort.Slice(s.learnts, func(i, j int) bool {
		return s.ca.Get(s.learnts[i]).Activity < s.ca.Get(s.learnts[j]).Activity
	})
}
