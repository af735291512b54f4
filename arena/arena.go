// Package arena implements the clause arena and stable clause handles shared
// by the search engine and the simplification preprocessor: a compacting
// region of Clause values addressed by a 32-bit CRef instead of a pointer, so
// bulk relocation (garbage collection) never has to chase a deep pointer
// graph — only the external holders of a CRef need to be told where their
// clause moved to.
package arena

import "github.com/ericr/saturday/lit"

// CRef is a stable, opaque reference into an Allocator. Undef is the
// sentinel "no clause" value.
type CRef uint32

// Undef is the sentinel CRef denoting the absence of a clause.
const Undef CRef = 1<<32 - 1

// Clause mark values. Zero means live; any non-zero value means "skip me"
// to every consumer of an occurrence list or the subsumption queue. Queued
// doubles as a transient "already enqueued" tag during gatherTouchedClauses
// and must be reset to Live before that pass returns.
const (
	Live    uint8 = 0
	Deleted uint8 = 1
	Queued  uint8 = 2
)

// Clause is a CNF clause (or, once preprocessing removes a variable, a
// temporary resolvent on its way to becoming one) living in an Allocator.
type Clause struct {
	Lits        []lit.Lit
	Learnt      bool
	Mark        uint8
	Abstraction uint32
	Activity    float32
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.Lits)
}

// CalcAbstraction recomputes the clause's Bloom-style abstraction word, a
// 32-bit signature over variable indices modulo 32 used to reject most
// non-subsumption pairs in constant time.
func (c *Clause) CalcAbstraction() {
	var abs uint32
	for _, l := range c.Lits {
		abs |= 1 << uint(l.Index()%32)
	}
	c.Abstraction = abs
}

// Strengthen removes literal l from the clause in place and recomputes its
// abstraction.
func (c *Clause) Strengthen(l lit.Lit) {
	for i, p := range c.Lits {
		if p == l {
			last := len(c.Lits) - 1
			c.Lits[i] = c.Lits[last]
			c.Lits = c.Lits[:last]
			break
		}
	}
	c.CalcAbstraction()
}

// Allocator is a compacting region of clauses addressed by CRef.
type Allocator struct {
	clauses          []Clause
	wasted           int
	extraClauseField bool
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// SetExtraClauseField enables or disables the abstraction word. Per the
// base-solver contract this must be enabled before any scratch clause (such
// as the subsumption engine's bwdsub_tmpunit) is allocated, and is disabled
// once preprocessing is permanently turned off.
func (a *Allocator) SetExtraClauseField(on bool) {
	a.extraClauseField = on
}

// ExtraClauseField reports whether the abstraction word is currently
// maintained.
func (a *Allocator) ExtraClauseField() bool {
	return a.extraClauseField
}

// Alloc allocates a new clause with the given literals, returning its
// stable handle. The caller owns the backing slice; Alloc does not copy it.
func (a *Allocator) Alloc(lits []lit.Lit, learnt bool) CRef {
	c := Clause{Lits: lits, Learnt: learnt}
	if a.extraClauseField {
		c.CalcAbstraction()
	}
	a.clauses = append(a.clauses, c)
	return CRef(len(a.clauses) - 1)
}

// Get returns a pointer to the clause referenced by cr. The pointer is only
// valid until the next Alloc (which may move the backing slice) or
// compaction.
func (a *Allocator) Get(cr CRef) *Clause {
	return &a.clauses[cr]
}

// Free marks cr's clause deleted and accounts its literals toward wasted
// space. Physical reclamation happens later, during compaction.
func (a *Allocator) Free(cr CRef) {
	c := &a.clauses[cr]
	a.wasted += c.Len()
	c.Mark = Deleted
}

// Size returns the number of clause slots (live and deleted) in the arena.
func (a *Allocator) Size() int {
	return len(a.clauses)
}

// Wasted returns the accumulated literal count of freed clauses.
func (a *Allocator) Wasted() int {
	return a.wasted
}

// Reloc moves *cr's clause into "to" and rewrites *cr to point at its new
// home. Calling it twice for the same source CRef copies the clause twice;
// callers that share a CRef across several lists (watcher lists, occurrence
// lists, the clause/learnt lists, reasons, the subsumption queue) want
// RelocCache instead.
func (a *Allocator) Reloc(cr *CRef, to *Allocator) {
	c := a.Get(*cr)
	*cr = to.Alloc(append([]lit.Lit(nil), c.Lits...), c.Learnt)
	moved := to.Get(*cr)
	moved.Mark = c.Mark
	moved.Abstraction = c.Abstraction
	moved.Activity = c.Activity
}

// RelocCache deduplicates Reloc across a whole garbage-collection pass. The
// C original's Clause carries an intrusive forwarding pointer so a second
// Solver::relocAll-style visit of an already-moved CRef is a cheap pointer
// chase; our Clause carries no such field, so the forwarding table lives
// here instead, shared by every relocating party (the base solver's
// watches/trail/clause lists and the preprocessor's occurrence/subsumption
// structures) during one collection.
type RelocCache struct {
	moved map[CRef]CRef
}

// NewRelocCache returns an empty forwarding table for one garbage-collection
// pass.
func NewRelocCache() *RelocCache {
	return &RelocCache{moved: map[CRef]CRef{}}
}

// Contains reports whether cr has already been relocated during this pass.
func (c *RelocCache) Contains(cr CRef) bool {
	_, ok := c.moved[cr]
	return ok
}

// RelocCache moves *cr into to via cr's Allocator.Reloc, unless *cr was already
// relocated earlier in this pass (through any CRef slot), in which case *cr
// is simply rewritten to the cached destination.
func (a *Allocator) RelocCache(cr *CRef, to *Allocator, cache *RelocCache) {
	if moved, ok := cache.moved[*cr]; ok {
		*cr = moved
		return
	}
	orig := *cr
	a.Reloc(cr, to)
	cache.moved[orig] = *cr
}
