package simp

import (
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/tribool"
)

// extendModel replays the model-extension log backward, reconstructing a
// value for every eliminated variable (Substitute logs nothing, so
// substituted variables are not reconstructed here): for each logged
// clause, if none of its non-pivot literals are satisfied under the model
// built so far, the pivot must be set true to satisfy it; otherwise the
// clause is already satisfied and the pivot is left for a later (earlier
// in elimination order) entry to decide, or to its own lone-witness fallback.
func (s *Solver) extendModel() {
	ec := s.elimclauses

	i := len(ec) - 1
	for i > 0 {
		length := int(ec[i])
		i--

		satisfied := false
		for ; length > 1; i-- {
			l := lit.Lit(ec[i])
			if s.Solver.ModelValue(l) != tribool.False {
				satisfied = true
				break
			}
			length--
		}

		if !satisfied {
			x := lit.Lit(ec[i])
			s.Solver.SetModelValue(x.Index(), !x.Sign())
		}
		i -= length
	}
}
