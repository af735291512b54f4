package solver

import (
	"testing"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/tribool"
)

func TestAddClauseLitsDetectsAlreadyTrue(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(0, false)}
	addLits(s, lits)
	s.assigns[0] = tribool.True

	if ok, _ := s.AddClauseLits(lits, false); !ok {
		t.Fatal("Did not accept already-true clause")
	}
}

func TestAddClauseLitsDetectsTautology(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(0, true)}
	addLits(s, lits)

	ok, cr := s.AddClauseLits(lits, false)
	if !ok {
		t.Fatal("Did not accept tautological clause")
	}
	if cr != arena.Undef {
		t.Fatal("Tautology should not allocate a clause")
	}
}

func TestAddClauseLitsDetectsEmpty(t *testing.T) {
	conf := config.New()
	s := New(conf)

	if ok, _ := s.AddClauseLits([]lit.Lit{}, false); ok {
		t.Fatal("Did not detect empty clause as a conflict")
	}
	if s.OK() {
		t.Fatal("Solver should be latched unsatisfiable after an empty clause")
	}
}

func TestAddClauseLitsRemovesFalseLits(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, true)}
	addLits(s, lits)
	s.assigns[1] = tribool.False

	_, cr := s.AddClauseLits(lits, false)
	if cr == arena.Undef {
		t.Fatal("Expected a stored clause")
	}
	if got := s.ca.Get(cr).Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 after dropping a false literal", got)
	}
}

func TestAttachClauseRegistersBothWatches(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, false)}
	addLits(s, lits)

	_, cr := s.AddClauseLits(lits, false)
	c := s.ca.Get(cr)

	found0, found1 := false, false
	for _, w := range s.watches[c.Lits[0].Not()] {
		if w == cr {
			found0 = true
		}
	}
	for _, w := range s.watches[c.Lits[1].Not()] {
		if w == cr {
			found1 = true
		}
	}
	if !found0 || !found1 {
		t.Fatal("AddClauseLits did not attach the clause on both its watched literals")
	}
}

func TestRemoveClauseDetachesAndFrees(t *testing.T) {
	conf := config.New()
	s := New(conf)

	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, false)}
	addLits(s, lits)

	_, cr := s.AddClauseLits(lits, false)
	c := s.ca.Get(cr)
	w0 := c.Lits[0].Not()

	s.RemoveClause(cr)

	for _, w := range s.watches[w0] {
		if w == cr {
			t.Fatal("RemoveClause left the clause on a watch list")
		}
	}
	if s.ca.Get(cr).Mark != arena.Deleted {
		t.Fatal("RemoveClause did not mark the clause deleted")
	}
}

func addLits(s *Solver, lits []lit.Lit) {
	for _, l := range lits {
		for l.Index() >= s.NVars() {
			s.NewVar()
		}
	}
}
