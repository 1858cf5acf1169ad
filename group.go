package protoenum

import (
	"cmp"
	"slices"

	"github.com/vedadiyan/protoenum/errors"
)

// Group is a maximal run of entries with consecutive wire values. Member i
// carries wire value Anchor+i.
type Group struct {
	Anchor  int32
	Members []Entry
}

func (g Group) Len() int {
	return len(g.Members)
}

// Last is the wire value of the final member.
func (g Group) Last() int64 {
	return int64(g.Anchor) + int64(len(g.Members)) - 1
}

// Partition sorts entries by wire value and splits them into contiguous
// groups. The input order does not matter; exact duplicates are collapsed and
// two entries sharing a wire value with different declared values are
// rejected.
func Partition(entries []Entry) ([]Group, error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Wire, b.Wire)
	})

	groups := make([]Group, 0)
	for i, entry := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			if entry.Wire == prev.Wire {
				if entry.Declared != prev.Declared {
					return nil, errors.DuplicateWireValue("", entry.Wire)
				}
				continue
			}
			if int64(entry.Wire) == int64(prev.Wire)+1 {
				last := &groups[len(groups)-1]
				last.Members = append(last.Members, entry)
				continue
			}
		}
		groups = append(groups, Group{Anchor: entry.Wire, Members: []Entry{entry}})
	}
	return groups, nil
}
