package mcs

import (
	"sort"
	"strconv"
	"strings"
)

// Minimize removes every cut set that is a strict superset of another,
// indexing by size so only strictly smaller candidates are tested as
// potential subsets (spec.md's O(|C|^2 * max|c|) bound); identical sets,
// in any literal order, are first collapsed to one sorted copy. The result is
// sorted by size, then lexicographically by content, for a stable
// report order.
func Minimize(cutSets []CutSet) []CutSet {
	dedup := dedupe(cutSets)

	bySize := make(map[int][]CutSet)
	sizes := make([]int, 0)
	for _, cs := range dedup {
		if _, ok := bySize[len(cs)]; !ok {
			sizes = append(sizes, len(cs))
		}
		bySize[len(cs)] = append(bySize[len(cs)], cs)
	}
	sort.Ints(sizes)

	var minimal []CutSet
	for _, cs := range dedup {
		if isMinimal(cs, sizes, bySize) {
			minimal = append(minimal, cs)
		}
	}

	sort.Slice(minimal, func(i, j int) bool { return less(minimal[i], minimal[j]) })
	return minimal
}

func dedupe(cutSets []CutSet) []CutSet {
	seen := make(map[string]bool, len(cutSets))
	out := make([]CutSet, 0, len(cutSets))
	for _, cs := range cutSets {
		sorted := append(CutSet(nil), cs...)
		sort.Ints(sorted)
		key := key(sorted)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sorted)
	}
	return out
}

func key(cs CutSet) string {
	var b strings.Builder
	for _, v := range cs {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}

// isMinimal reports whether cs has no strict subset among the candidate
// pool of cut sets whose size is < len(cs).
func isMinimal(cs CutSet, sizes []int, bySize map[int][]CutSet) bool {
	for _, size := range sizes {
		if size >= len(cs) {
			break
		}
		for _, other := range bySize[size] {
			if isSubset(other, cs) {
				return false
			}
		}
	}
	return true
}

// isSubset reports whether every literal of a appears in b. Both are
// sorted ascending.
func isSubset(a, b CutSet) bool {
	if len(a) > len(b) {
		return false
	}
	bi := 0
	for _, v := range a {
		for bi < len(b) && b[bi] < v {
			bi++
		}
		if bi >= len(b) || b[bi] != v {
			return false
		}
		bi++
	}
	return true
}

func less(a, b CutSet) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
