package simp

import (
	"testing"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/tribool"
)

func newTestSolver() *Solver {
	conf := config.New()
	return New(conf)
}

func clauseLits(s *Solver) [][]lit.Lit {
	var out [][]lit.Lit
	for _, cr := range s.Solver.Clauses() {
		c := s.Solver.CA().Get(cr)
		if c.Mark != arena.Live {
			continue
		}
		out = append(out, append([]lit.Lit(nil), c.Lits...))
	}
	return out
}

func hasLits(got [][]lit.Lit, want ...lit.Lit) bool {
	for _, c := range got {
		if len(c) != len(want) {
			continue
		}
		seen := make(map[lit.Lit]bool, len(c))
		for _, l := range c {
			seen[l] = true
		}
		ok := true
		for _, w := range want {
			if !seen[w] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestNewVarTablesStayInLockstepWithBaseSolver(t *testing.T) {
	s := newTestSolver()

	s.AddClause([]int{1, -2, 3})

	if s.Solver.NVars() != 3 {
		t.Fatalf("NVars() = %d, want 3", s.Solver.NVars())
	}
	if len(s.frozen) != 3 || len(s.eliminated) != 3 || len(s.touched) != 3 {
		t.Fatalf("per-variable tables did not grow to 3: frozen=%d eliminated=%d touched=%d",
			len(s.frozen), len(s.eliminated), len(s.touched))
	}
}

// S1 — Pure literal via subsumption: (a∨b) ∧ (a∨b∨c) reduces to (a∨b). Every
// variable here is pure (single polarity), so with elimination left on a
// full eliminate() pass would remove them outright as a degenerate
// zero-growth case; elim is turned off to isolate the subsumption engine
// the scenario is actually about.
func TestS1PureLiteralViaSubsumption(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Elim = false
	s.AddClause([]int{1, 2})
	s.AddClause([]int{1, 2, 3})

	if !s.eliminate(false) {
		t.Fatalf("eliminate returned false")
	}

	got := clauseLits(s)
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving clause, got %d: %v", len(got), got)
	}
	if !hasLits(got, lit.New(0, false), lit.New(1, false)) {
		t.Fatalf("surviving clause is not (a∨b): %v", got)
	}
}

// S2 — Elimination of a singleton: (x∨a) ∧ (¬x∨b), grow=0, eliminates x.
// a and b are themselves pure (cost 0) and so would be popped off the
// elimination heap before x if driven through the full eliminate() fixpoint;
// eliminateVar is called directly on x to isolate the cross-resolution and
// logging this scenario is actually about.
func TestS2EliminationOfSingleton(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Grow = 0
	s.AddClause([]int{1, 2})  // x ∨ a
	s.AddClause([]int{-1, 3}) // ¬x ∨ b

	x := 0
	if !s.eliminateVar(x) {
		t.Fatalf("eliminateVar returned false")
	}
	if !s.eliminated[x] {
		t.Fatalf("x was not eliminated")
	}

	got := clauseLits(s)
	if len(got) != 1 || !hasLits(got, lit.New(1, false), lit.New(2, false)) {
		t.Fatalf("expected surviving clause (a∨b), got %v", got)
	}

	// len(pos) == len(neg) == 1: the tie falls to the else branch, which
	// logs the pos side (x∨a) pivot-first, then the negative witness ¬x.
	ec := s.elimclauses
	if len(ec) != 5 {
		t.Fatalf("elimclauses length = %d, want 5: %v", len(ec), ec)
	}
	if lit.Lit(ec[0]) != lit.New(x, false) {
		t.Fatalf("elimclauses[0] = %v, want pivot x", lit.Lit(ec[0]))
	}
	if lit.Lit(ec[1]) != lit.New(1, false) {
		t.Fatalf("elimclauses[1] = %v, want a", lit.Lit(ec[1]))
	}
	if ec[2] != 2 {
		t.Fatalf("elimclauses[2] = %d, want 2", ec[2])
	}
	if lit.Lit(ec[3]) != lit.New(x, true) {
		t.Fatalf("elimclauses[3] = %v, want ¬x (the negative witness)", lit.Lit(ec[3]))
	}
	if ec[4] != 1 {
		t.Fatalf("elimclauses[4] = %d, want 1", ec[4])
	}
}

// S3 — Tautological resolvent: (x∨a) ∧ (¬x∨¬a) has no real resolvent; F'
// becomes empty and remains satisfiable.
func TestS3TautologicalResolvent(t *testing.T) {
	s := newTestSolver()
	s.AddClause([]int{1, 2})  // x ∨ a
	s.AddClause([]int{-1, -2}) // ¬x ∨ ¬a

	if !s.eliminate(false) {
		t.Fatalf("eliminate returned false")
	}
	if !s.Solver.OK() {
		t.Fatalf("solver latched unsat on a satisfiable formula")
	}
	if got := clauseLits(s); len(got) != 0 {
		t.Fatalf("expected no surviving clauses, got %v", got)
	}
	if !s.eliminated[0] {
		t.Fatalf("x was not eliminated")
	}
}

// S4 — Growth limit blocks elimination: with grow=0, a variable whose
// cross-product would exceed its occurrence count is left alone.
func TestS4GrowthLimitBlocksElimination(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Grow = 0
	s.AddClause([]int{1, 2})
	s.AddClause([]int{1, 3})
	s.AddClause([]int{1, 4})
	s.AddClause([]int{-1, 5})
	s.AddClause([]int{-1, 6})
	s.AddClause([]int{-1, 7})

	x := 0
	if ok := s.eliminateVar(x); !ok {
		t.Fatalf("eliminateVar returned false (failure), want true (skipped)")
	}
	if s.eliminated[x] {
		t.Fatalf("x was eliminated despite exceeding the growth bound")
	}
}

// Boundary property 8: grow=0 and clauseLim=1 means no elimination ever
// occurs, since even a minimal resolvent exceeds the length bound.
func TestGrowZeroClauseLimOneBlocksAllElimination(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Grow = 0
	s.conf.Simp.ClauseLim = 1
	s.AddClause([]int{1, 2})
	s.AddClause([]int{-1, 3})

	if ok := s.eliminateVar(0); !ok {
		t.Fatalf("eliminateVar returned false (failure), want true (skipped)")
	}
	if s.eliminated[0] {
		t.Fatalf("elimination proceeded despite clauseLim=1")
	}
}

// Boundary property 9: elim=false runs only subsumption/strengthening;
// elimclauses stays empty even though self-subsuming resolution still
// narrows a clause.
//
// S5 — Self-subsuming resolution: (a∨b∨c) ∧ (¬a∨b) strengthens the first
// clause to (b∨c).
func TestS5SelfSubsumingResolutionWithEliminationOff(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Elim = false
	s.AddClause([]int{1, 2, 3})  // a ∨ b ∨ c
	s.AddClause([]int{-1, 2})    // ¬a ∨ b

	if !s.eliminate(false) {
		t.Fatalf("eliminate returned false")
	}
	if len(s.elimclauses) != 0 {
		t.Fatalf("elimclauses should stay empty with elim=false, got %v", s.elimclauses)
	}

	got := clauseLits(s)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving clauses, got %d: %v", len(got), got)
	}
	if !hasLits(got, lit.New(1, false), lit.New(2, false)) {
		t.Fatalf("expected a strengthened clause (b∨c), got %v", got)
	}
	if !hasLits(got, lit.New(0, true), lit.New(1, false)) {
		t.Fatalf("expected (¬a∨b) to survive unchanged, got %v", got)
	}
}

// S6 — Unit propagation during strengthening: (a∨b) ∧ (¬a∨b) ∧ (¬b) derives
// ¬b, then ¬a, leaving the formula satisfiable with a=false, b=false.
func TestS6UnitPropagationDuringStrengthening(t *testing.T) {
	s := newTestSolver()
	s.conf.Simp.Elim = false
	s.AddClause([]int{1, 2})  // a ∨ b
	s.AddClause([]int{-1, 2}) // ¬a ∨ b
	s.AddClause([]int{-2})    // ¬b

	if !s.eliminate(false) {
		t.Fatalf("eliminate returned false")
	}
	if !s.Solver.OK() {
		t.Fatalf("solver latched unsat on a satisfiable formula")
	}
	if s.Solver.Value(lit.New(1, false)) != tribool.False {
		t.Fatalf("expected b=false on the trail")
	}
	if s.Solver.Value(lit.New(0, false)) != tribool.False {
		t.Fatalf("expected a=false on the trail")
	}
}

// Property 3 / SetFrozen: a frozen variable is never eliminated even when
// it would otherwise qualify. eliminateVar itself trusts its precondition
// (the caller checked !frozen); it's the driver, eliminate, that enforces
// it before ever calling eliminateVar.
func TestFrozenVariableIsNeverEliminated(t *testing.T) {
	s := newTestSolver()
	s.AddClause([]int{1, 2})
	s.AddClause([]int{-1, 3})
	s.SetFrozen(0, true)

	if !s.eliminate(false) {
		t.Fatalf("eliminate returned false")
	}
	if s.eliminated[0] {
		t.Fatalf("a frozen variable was eliminated")
	}
}

// Property 7: running eliminate to a fixpoint and then running it again
// changes nothing further.
func TestEliminateIsIdempotentAtFixpoint(t *testing.T) {
	s := newTestSolver()
	s.AddClause([]int{1, 2})
	s.AddClause([]int{1, 2, 3})
	s.AddClause([]int{-1, 4})

	if !s.eliminate(false) {
		t.Fatalf("first eliminate returned false")
	}
	first := len(s.Solver.Clauses())

	if !s.eliminate(false) {
		t.Fatalf("second eliminate returned false")
	}
	second := len(s.Solver.Clauses())

	if first != second {
		t.Fatalf("eliminate was not idempotent: %d clauses then %d", first, second)
	}
}

// Round-trip law 5/6 via the public Solve/Answer/extendModel path: a model
// found on the reduced formula, once extended, satisfies every original
// clause including the eliminated variable's.
func TestSolveExtendsModelOverEliminatedVariable(t *testing.T) {
	s := newTestSolver()
	s.AddClause([]int{1, 2})  // x ∨ a
	s.AddClause([]int{-1, 3}) // ¬x ∨ b

	if !s.Solve([]int{}) {
		t.Fatalf("expected SAT")
	}

	vals := map[int]bool{}
	for _, p := range s.Answer() {
		if p > 0 {
			vals[p] = true
		} else {
			vals[-p] = false
		}
	}
	xVal, ok := vals[1]
	if !ok {
		t.Fatalf("extendModel did not assign a value to eliminated variable x: %v", vals)
	}
	aVal, aOK := vals[2]
	bVal, bOK := vals[3]
	if !aOK || !bOK {
		t.Fatalf("missing a/b in model: %v", vals)
	}
	if !(xVal || aVal) {
		t.Fatalf("extended model does not satisfy (x∨a): x=%v a=%v", xVal, aVal)
	}
	if !(!xVal || bVal) {
		t.Fatalf("extended model does not satisfy (¬x∨b): x=%v b=%v", xVal, bVal)
	}
}
