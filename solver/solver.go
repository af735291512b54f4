// Package solver is the base CDCL SAT solver: decision heuristic, unit
// propagation, conflict analysis and restarts. It is treated by the
// simplification preprocessor (package simp) as an external collaborator —
// simp drives it through a small consumed interface (NewVar, AddClauseLits,
// RemoveClause, Propagate, the trail, ...) and hands it a reduced formula
// once preprocessing converges.
package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/config"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/order"
	"github.com/ericr/saturday/tribool"
	"github.com/sirupsen/logrus"
)

const (
	VersionMajor = 2
	VersionMinor = 0
)

// Solver is the SAT solver.
type Solver struct {
	// config is the solver's configuration
	config *config.Config
	// logger is the solver's logger
	logger *logrus.Logger

	// Model Database Fields

	// userVars keeps a map of user-defined variables to internal variables.
	userVars map[int]int
	// internalVars keeps a map of internal variables to user-defined variables.
	internalVars map[int]int
	// model stores the most recently discovered model.
	model map[int]bool

	// Constraint Database Fields

	// ca is the clause arena. Every live CRef held anywhere in the solver
	// (or by simp) is relocatable through ca.
	ca *arena.Allocator
	// clauses is a list of problem constraints.
	clauses []arena.CRef
	// learnts is a list of learnt clauses.
	learnts []arena.CRef
	// claInc is the clause activity increment.
	claInc float64
	// claDecay is the decay factor for clause activity.
	claDecay float64
	// removeSatisfied controls whether simplifyDB removes satisfied problem
	// clauses outright. The preprocessor turns this off while it owns the
	// arena (it does its own, finer-grained removal) and back on once
	// preprocessing is permanently disabled.
	removeSatisfied bool

	// Variable Order Fields
	//
	// activity is a heuristic measurement of the activity of a variable.
	activity []float64
	// varInc is the variable activity increment.
	varInc float64
	// varDecay is the decay factor for variable activity.
	varDecay float64
	// order keeps track of dynamic variable ordering.
	order *order.Order
	// decisionVar marks which variables the order heap is allowed to pick.
	decisionVar []bool
	// numDecisionVars counts the trues in decisionVar. Eliminated and
	// substituted variables are marked ineligible and excluded from this
	// count, so the search's model-complete check only waits on variables
	// that actually need a value from the trail.
	numDecisionVars int

	// Propagation Fields

	// watches contains each literal and a list of constraints watching it.
	watches map[lit.Lit][]arena.CRef
	// propQ is the propagation queue.
	propQ *lit.Queue

	// Assignment Fields

	// assigns contains the solver's current assignments indexed on variables.
	assigns []tribool.Tribool
	// trail is a list of assignments in chronological order.
	trail []lit.Lit
	// trailLim is a list of separator indices for different decision levels in
	// the trail.
	trailLim []int
	// reason is a list of each variable's constraint that implied its value.
	reason []arena.CRef
	// level is a list of each variable's decision level at which it was assigned.
	level []int
	// rootLevel separates incremental and search assumptions.
	rootLevel int
	// assumptions holds the literals assumed by the most recent Solve call.
	assumptions []lit.Lit

	// Algorithmic Restarts Fields

	// maxLearnts is the maximum number of learnt clauses before reduceDB() gets
	// called.
	maxLearnts float64
	// maxLearntsGrowth is the growth factor for maxLearnts.
	maxLearntsGrowth float64
	// maxLearntsCtr is a counter that controls how often maxLearnts gets
	// increased.
	maxLearntsCtr int
	// maxLearntsCtrInc is the amount to increase maxLearntsCtr once it reaches
	// zero.
	maxLearntsCtrInc float64
	// maxLearntsCtrIncGrowth is the growth factor for maxLearntsCtrInc.
	maxLearntsCtrIncGrowth float64
	// maxConflicts is the maximum number of conflicts before a restart occurs.
	maxConflicts float64
	// maxConflictsGrowthStart is the starting constant for maxConflicts's
	// growth.
	maxConflictsGrowthStart float64
	// maxConflictsGrowth is the base of the growth factor for maxConflicts.
	maxConflictsGrowthBase float64

	// Stats Fields

	// propagations keeps track of how many propagations have occurred.
	propagations int
	// conflicts keeps track of how many conflicts have occurred.
	conflicts int
	// restarts keeps track of how many restarts have occurred.
	restarts int
	// decisions keeps track of how many new variables are decided on.
	decisions int

	// ok latches false on a detected top-level conflict. Once false, every
	// operation short-circuits to false.
	ok bool

	// onNewVar, when set, is called at the end of NewVar with the freshly
	// allocated variable's index. The preprocessor uses this to keep its own
	// per-variable tables (occurrence lists, elimination heap, frozen/
	// eliminated flags) in lockstep with variable creation that happens
	// indirectly, e.g. through AddClause's user-variable mapping.
	onNewVar func(v int)
}

// New returns a new initialized solver.
func New(c *config.Config) *Solver {
	s := &Solver{
		config:          c,
		logger:          c.Logger,
		userVars:        map[int]int{},
		internalVars:    map[int]int{},
		model:           map[int]bool{},
		ca:              arena.NewAllocator(),
		learnts:         []arena.CRef{},
		activity:        []float64{},
		watches:         map[lit.Lit][]arena.CRef{},
		propQ:           lit.NewQueue(),
		assigns:         []tribool.Tribool{},
		trail:           []lit.Lit{},
		trailLim:        []int{},
		reason:          []arena.CRef{},
		level:           []int{},
		removeSatisfied: true,
		ok:              true,
	}
	s.order = order.New(&s.assigns, &s.activity, &s.decisionVar)

	return s
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Solve accepts a list of assumptions and solves the SAT problem, returning
// true when satisfactory and false when unsatisfactory.
func (s *Solver) Solve(ps []int) bool {
	assumps := []lit.Lit{}
	params := searchParams{s.config.VarDecay, s.config.ClaDecay}
	status := tribool.Undef

	if !s.ok {
		return false
	}

	s.varInc = 1.0
	s.claInc = 1.0

	s.maxLearnts = float64(s.NConstrs()) / 3.0
	s.maxLearntsGrowth = 1.1
	s.maxLearntsCtrInc = 100.0
	s.maxLearntsCtr = int(s.maxLearntsCtrInc)
	s.maxLearntsCtrIncGrowth = 1.5

	s.maxConflictsGrowthStart = 100.0
	s.maxConflictsGrowthBase = 2.0

	if !s.simplifyDB() {
		return false
	}
	s.order.Init()

	for _, p := range ps {
		assump := lit.NewFromInt(p)

		if _, ok := s.userVars[assump.Var()]; !ok {
			return false
		}
		assumps = append(assumps, s.mapUserVar(assump))
	}
	s.assumptions = assumps

	for i := 0; i < len(assumps); i++ {
		if !s.assume(assumps[i]) || s.propagate() != arena.Undef {
			s.cancelUntil(0)

			return false
		}
	}
	s.rootLevel = s.decisionLevel()

	for status.Undef() {
		s.maxConflicts = s.maxConflictsGrowthStart *
			math.Pow(s.maxConflictsGrowthBase, float64(s.restarts))
		status = s.search(params)
		s.restarts++
	}
	s.cancelUntil(0)

	return status.True()
}

// SolveMany finds up to mCount distinct models by blocking each found model
// and re-solving.
func (s *Solver) SolveMany(ps []int, mCount uint) [][]int {
	models := [][]int{}

	for i := 0; i < int(mCount); i++ {
		if s.Solve(ps) {
			s.logger.Infof("Found %d/%d models", i+1, mCount)

			models = append(models, s.Answer())
			constrs := s.clauses
			old := s

			s = New(s.config)

			for _, cr := range constrs {
				s.AddClause(old.litsAsInts(old.ca.Get(cr).Lits))
			}
			for _, model := range models {
				newConstr := []int{}

				for _, l := range model {
					newConstr = append(newConstr, -l)
				}
				s.AddClause(newConstr)
			}
		} else {
			s.logger.Info("No more models exist")
			break
		}
	}
	return models
}

// AddClause adds a new clause to the solver, given as DIMACS-style integer
// literals, creating any new variables it mentions.
func (s *Solver) AddClause(ps []int) bool {
	lits := []lit.Lit{}

	for _, p := range ps {
		lits = append(lits, s.mapUserVar(lit.NewFromInt(p)))
	}
	ok, cr := s.AddClauseLits(lits, false)
	if ok && cr != arena.Undef {
		s.clauses = append(s.clauses, cr)
	}
	return ok
}

// Answer returns the model as CNF.
func (s *Solver) Answer() []int {
	ps := []int{}

	for p, val := range s.model {
		if val {
			ps = append(ps, p)
		} else {
			ps = append(ps, -p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		i, j = ps[i], ps[j]

		if i < 0 {
			i = -i
		}
		if j < 0 {
			j = -j
		}
		return i < j
	})
	return ps
}

// NVars returns the number of variables.
func (s *Solver) NVars() int {
	return len(s.assigns)
}

// NAssigns returns the number of assignments made.
func (s *Solver) NAssigns() int {
	return len(s.trail)
}

// NLearnts returns the number of learnt clauses.
func (s *Solver) NLearnts() int {
	return len(s.learnts)
}

// NConstrs returns the number of constraints.
func (s *Solver) NConstrs() int {
	return len(s.clauses)
}

// NPropagations returns the number of propagations that have occurred.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NConflicts returns the number of conflicts that have occurred.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// NRestarts returns the number of restarts that have occurred.
func (s *Solver) NRestarts() int {
	return s.restarts
}

// NDecisions returns the number of variable choosing decisions made.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// mapUserVar maps a user-facing literal to the solver's internal numbering,
// registering a fresh internal variable the first time a user variable is
// seen.
func (s *Solver) mapUserVar(p lit.Lit) lit.Lit {
	if _, ok := s.userVars[p.Var()]; !ok {
		v := s.NewVar()
		s.userVars[p.Var()] = v
		s.internalVars[v] = p.Var()
	}
	return lit.New(s.userVars[p.Var()], p.Sign())
}

// NewVar allocates a new internal variable and returns its 0-based index.
// This is the "newVar" of the consumed base-solver interface: it only grows
// the bookkeeping arrays, leaving any preprocessor-specific bookkeeping
// (occurrence lists, the elimination heap, frozen/eliminated flags) to simp.
func (s *Solver) NewVar() int {
	v := s.NVars()
	s.watches[lit.New(v, false)] = []arena.CRef{}
	s.watches[lit.New(v, true)] = []arena.CRef{}
	s.reason = append(s.reason, arena.Undef)
	s.assigns = append(s.assigns, tribool.Undef)
	s.level = append(s.level, -1)
	s.activity = append(s.activity, float64(0))
	s.decisionVar = append(s.decisionVar, true)
	s.numDecisionVars++
	s.order.NewVar()

	if s.onNewVar != nil {
		s.onNewVar(v)
	}

	return v
}

// SetOnNewVar installs a hook called with each freshly allocated variable's
// index, right after NewVar finishes growing the base bookkeeping arrays.
func (s *Solver) SetOnNewVar(f func(v int)) {
	s.onNewVar = f
}

// MapUserVar maps a user-facing literal to the solver's internal numbering,
// registering a fresh internal variable (and firing the onNewVar hook) the
// first time a user variable is seen.
func (s *Solver) MapUserVar(p lit.Lit) lit.Lit {
	return s.mapUserVar(p)
}

// UserVar returns the internal variable for a user-facing one, if known.
func (s *Solver) UserVar(userVar int) (int, bool) {
	v, ok := s.userVars[userVar]
	return v, ok
}

// ExternalVar returns the user-facing variable number for an internal one,
// if known.
func (s *Solver) ExternalVar(v int) (int, bool) {
	uv, ok := s.internalVars[v]
	return uv, ok
}

// SetModelValue records val as internal variable v's value in the most
// recent model, keyed by its user-facing variable number. The preprocessor
// calls this from extendModel to fill in variables the search itself never
// assigned because they were eliminated before search began.
func (s *Solver) SetModelValue(v int, val bool) {
	uv, ok := s.internalVars[v]
	if !ok {
		return
	}
	s.model[uv] = val
}

// Value returns p's current truth value.
func (s *Solver) Value(p lit.Lit) tribool.Tribool {
	return s.litValue(p)
}

// litValue returns p's value.
func (s *Solver) litValue(p lit.Lit) tribool.Tribool {
	if p == lit.Undef {
		return tribool.Undef
	}
	if p.Sign() {
		return s.assigns[p.Index()].Not()
	}
	return s.assigns[p.Index()]
}

// ModelValue returns p's value in the most recently completed model, read
// from the frozen s.model snapshot rather than the live trail. By the time
// Solve returns — and certainly by the time extendModel runs — search has
// already unwound every non-root assignment back to Undef via cancelUntil,
// so Value would misreport almost every variable whose value only ever
// lived on the trail. This draws the same value()/modelValue() distinction
// the original solver does.
func (s *Solver) ModelValue(p lit.Lit) tribool.Tribool {
	uv, ok := s.internalVars[p.Index()]
	if !ok {
		return tribool.Undef
	}
	val, ok := s.model[uv]
	if !ok {
		return tribool.Undef
	}
	return tribool.NewFromBool(val != p.Sign())
}

// OK reports whether the solver has not yet latched an unsatisfiability.
func (s *Solver) OK() bool {
	return s.ok
}

// SetOK forcibly latches (or, for testing, un-latches) the ok flag.
func (s *Solver) SetOK(ok bool) {
	s.ok = ok
}

// CA returns the clause arena, for callers (the preprocessor) that need
// direct clause access or must participate in relocation.
func (s *Solver) CA() *arena.Allocator {
	return s.ca
}

// Clauses returns the live problem-clause list.
func (s *Solver) Clauses() []arena.CRef {
	return s.clauses
}

// SetClauses replaces the problem-clause list, e.g. after the preprocessor
// compacts it by mark.
func (s *Solver) SetClauses(crs []arena.CRef) {
	s.clauses = crs
}

// Watches returns the watcher-list map, keyed by the literal whose
// falsification should re-trigger the watching clauses.
func (s *Solver) Watches() map[lit.Lit][]arena.CRef {
	return s.watches
}

// Trail returns the chronological assignment trail.
func (s *Solver) Trail() []lit.Lit {
	return s.trail
}

// TrailLim returns the decision-level separators into Trail().
func (s *Solver) TrailLim() []int {
	return s.trailLim
}

// Assumptions returns the literals assumed by the most recent Solve call.
func (s *Solver) Assumptions() []lit.Lit {
	return s.assumptions
}

// RemoveSatisfied reports whether simplifyDB removes satisfied problem
// clauses outright.
func (s *Solver) RemoveSatisfied() bool {
	return s.removeSatisfied
}

// SetRemoveSatisfied toggles satisfied-clause removal during simplifyDB.
func (s *Solver) SetRemoveSatisfied(on bool) {
	s.removeSatisfied = on
}

// SetDecisionVar marks whether v is eligible to be chosen by the decision
// heuristic. eliminateVar and substitute call this with false once a
// variable leaves the active formula.
func (s *Solver) SetDecisionVar(v int, on bool) {
	if s.decisionVar[v] == on {
		return
	}
	s.decisionVar[v] = on
	if on {
		s.numDecisionVars++
	} else {
		s.numDecisionVars--
	}
}

// NumDecisionVars returns how many variables are currently eligible to be
// chosen by the decision heuristic — i.e. how many the search must assign
// before it can report a model.
func (s *Solver) NumDecisionVars() int {
	return s.numDecisionVars
}

// RebuildOrderHeap rebuilds the decision-order heap from scratch, keeping
// only variables that are still undecided and still eligible.
func (s *Solver) RebuildOrderHeap() {
	vs := make([]int, 0, s.NVars())
	for v := 0; v < s.NVars(); v++ {
		if s.decisionVar[v] && s.assigns[v].Undef() {
			vs = append(vs, v)
		}
	}
	s.order.Rebuild(vs)
}

// Logger returns the solver's logger.
func (s *Solver) Logger() *logrus.Logger {
	return s.logger
}

// Config returns the solver's configuration.
func (s *Solver) Config() *config.Config {
	return s.config
}
