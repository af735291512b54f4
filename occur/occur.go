// Package occur implements the per-variable occurrence index: for each
// variable, the live clauses that mention it, plus the pos/neg occurrence
// counts used by the elimination heap's cost function. Deletions are lazy
// ("smudged") and compacted opportunistically on the next Lookup or
// CleanAll, rather than eagerly scanning a list on every clause removal.
package occur

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

// Index is the occurrence index over all variables.
type Index struct {
	ca      *arena.Allocator
	lists   [][]arena.CRef
	dirty   []bool
	nOccPos []int
	nOccNeg []int
}

// New returns an Index backed by ca.
func New(ca *arena.Allocator) *Index {
	return &Index{ca: ca}
}

func (idx *Index) grow(v int) {
	for len(idx.lists) <= v {
		idx.lists = append(idx.lists, nil)
		idx.dirty = append(idx.dirty, false)
		idx.nOccPos = append(idx.nOccPos, 0)
		idx.nOccNeg = append(idx.nOccNeg, 0)
	}
}

// Init registers a new variable with an empty occurrence list.
func (idx *Index) Init(v int) {
	idx.grow(v)
}

// Push records that clause cr mentions variable v. Duplicate insertions of
// the same cr are tolerated; compaction deduplicates opportunistically.
func (idx *Index) Push(v int, cr arena.CRef) {
	idx.grow(v)
	idx.lists[v] = append(idx.lists[v], cr)
}

// Smudge marks v's list dirty, so the next Lookup/CleanAll compacts it.
func (idx *Index) Smudge(v int) {
	idx.grow(v)
	idx.dirty[v] = true
}

// Lookup returns the (now-compacted) live clauses touching v.
func (idx *Index) Lookup(v int) []arena.CRef {
	idx.grow(v)
	if idx.dirty[v] {
		idx.compact(v)
	}
	return idx.lists[v]
}

// compact drops handles whose clause is marked deleted or no longer mentions
// v (it was strengthened), and deduplicates the rest, preserving first-seen
// order.
func (idx *Index) compact(v int) {
	seen := mapset.NewThreadUnsafeSet[arena.CRef]()
	j := 0
	for _, cr := range idx.lists[v] {
		c := idx.ca.Get(cr)
		if c.Mark != arena.Live || seen.Contains(cr) {
			continue
		}
		mentions := false
		for _, l := range c.Lits {
			if l.Index() == v {
				mentions = true
				break
			}
		}
		if !mentions {
			continue
		}
		seen.Add(cr)
		idx.lists[v][j] = cr
		j++
	}
	idx.lists[v] = idx.lists[v][:j]
	idx.dirty[v] = false
}

// CleanAll compacts every dirty variable's list.
func (idx *Index) CleanAll() {
	for v, dirty := range idx.dirty {
		if dirty {
			idx.compact(v)
		}
	}
}

// RelocAll relocates every clause handle this index holds into to, sharing
// cache with the base solver's own relocation pass so a clause reachable
// from both a watcher list and an occurrence list is only copied once. The
// index's source arena pointer is updated to to once done, so subsequent
// Lookup/Count calls read liveness from the right place.
func (idx *Index) RelocAll(to *arena.Allocator, cache *arena.RelocCache) {
	for v := range idx.lists {
		for i := range idx.lists[v] {
			idx.ca.RelocCache(&idx.lists[v][i], to, cache)
		}
	}
	idx.ca = to
}

// Clear drops v's occurrence list entirely, releasing its backing array.
func (idx *Index) Clear(v int) {
	idx.grow(v)
	idx.lists[v] = nil
	idx.dirty[v] = false
}

// ClearAll releases every per-variable table the index holds outright, for
// when preprocessing is permanently disabled and the index itself is never
// consulted again.
func (idx *Index) ClearAll() {
	idx.lists = nil
	idx.dirty = nil
	idx.nOccPos = nil
	idx.nOccNeg = nil
}

// Count returns the live occurrence count of literal l.
func (idx *Index) Count(l lit.Lit) int {
	idx.grow(l.Index())
	if l.Sign() {
		return idx.nOccNeg[l.Index()]
	}
	return idx.nOccPos[l.Index()]
}

// IncCount increments the occurrence count of literal l.
func (idx *Index) IncCount(l lit.Lit) {
	idx.grow(l.Index())
	if l.Sign() {
		idx.nOccNeg[l.Index()]++
	} else {
		idx.nOccPos[l.Index()]++
	}
}

// DecCount decrements the occurrence count of literal l.
func (idx *Index) DecCount(l lit.Lit) {
	idx.grow(l.Index())
	if l.Sign() {
		idx.nOccNeg[l.Index()]--
	} else {
		idx.nOccPos[l.Index()]--
	}
}

// Cost is the elimination heap's priority for v: the product of its two
// polarity occurrence counts.
func (idx *Index) Cost(v int) int {
	idx.grow(v)
	return idx.nOccPos[v] * idx.nOccNeg[v]
}
