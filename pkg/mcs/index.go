// Package mcs implements the minimal-cut-set generator (spec.md C4): a
// top-down superset expansion over gate kinds, order-limited pruning,
// and post-hoc minimality reduction.
package mcs

import "faulttree/pkg/model"

// Index assigns every basic event in a sealed fault tree a dense integer
// in [1, B], in sorted-identifier order, so cut sets can be represented
// as small integer sets instead of string sets.
type Index struct {
	byIdx []*model.PrimaryEvent // 1-based; byIdx[0] is unused
	byID  map[string]int
}

// BuildIndex assigns indices to tree's basic events in sorted order.
func BuildIndex(tree *model.FaultTree) *Index {
	ids := tree.SortedBasicEventIDs()
	idx := &Index{
		byIdx: make([]*model.PrimaryEvent, len(ids)+1),
		byID:  make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		n := i + 1
		idx.byIdx[n] = tree.BasicEvents[id]
		idx.byID[id] = n
	}
	return idx
}

func (x *Index) Len() int { return len(x.byIdx) - 1 }

func (x *Index) IndexOf(basicEventID string) (int, bool) {
	n, ok := x.byID[model.Normalize(basicEventID)]
	return n, ok
}

func (x *Index) Event(n int) *model.PrimaryEvent {
	if n < 0 {
		n = -n
	}
	return x.byIdx[n]
}
