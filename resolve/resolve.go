// Package resolve computes resolvents on a pivot variable: given P containing
// v and Q containing ~v, either their resolvent (P\{v,~v}) ∪ (Q\{v,~v}) with
// duplicates removed, or a report that the resolvent is tautological. Two
// entry points exist, materializing and size-only, so the variable
// eliminator's growth test (which only needs sizes) doesn't have to build
// and discard clauses it will throw away.
package resolve

import "github.com/ericr/saturday/lit"

// Merge returns the resolvent of ps and qs on pivot v, and true — or
// (nil, false) if the resolvent is tautological (some variable other than v
// appears with opposite signs in both clauses).
func Merge(ps, qs []lit.Lit, v int) ([]lit.Lit, bool) {
	longer, shorter := ps, qs
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}

	out := make([]lit.Lit, 0, len(ps)+len(qs)-2)
nextShort:
	for _, q := range shorter {
		if q.Index() == v {
			continue
		}
		for _, p := range longer {
			if p.Index() == q.Index() {
				if p == q.Not() {
					return nil, false
				}
				continue nextShort
			}
		}
		out = append(out, q)
	}
	for _, p := range longer {
		if p.Index() != v {
			out = append(out, p)
		}
	}
	return out, true
}

// MergeSize is Merge without materializing the resolvent: it returns the
// resolvent's size and true, or (_, false) for a tautology.
func MergeSize(ps, qs []lit.Lit, v int) (int, bool) {
	longer, shorter := ps, qs
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}

	size := len(longer) - 1
nextShort:
	for _, q := range shorter {
		if q.Index() == v {
			continue
		}
		for _, p := range longer {
			if p.Index() == q.Index() {
				if p == q.Not() {
					return 0, false
				}
				continue nextShort
			}
		}
		size++
	}
	return size, true
}
