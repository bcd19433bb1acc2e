// Package heckel implements Paul Heckel's table diff over ordered element
// collections. It runs in linear time for collections of mostly-unique
// elements and classifies edits as inserts, deletes, replaces and moves.
package heckel

import (
	"github.com/arran4/diffbench/algo"
)

func init() {
	algo.Register("heckel", func(old, new []string) (int, error) {
		return len(Diff(old, new)), nil
	})
}

// Kind discriminates the change types produced by Diff.
type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
	Move
)

// Change is a single edit transforming old into new.
//
// Index is the position in new for Insert, Replace and Move, and the
// position in old for Delete. From is the origin position in old and is set
// for Move only. OldItem is set for Replace only.
type Change struct {
	Kind    Kind
	Item    string
	OldItem string
	Index   int
	From    int
}

// counter tracks symbol occurrences, saturating at many.
type counter int

const (
	zero counter = iota
	one
	many
)

func (c counter) increment() counter {
	if c >= many {
		return many
	}
	return c + 1
}

// tableEntry is the per-symbol record shared by both occurrence arrays.
type tableEntry struct {
	oldCounter   counter
	newCounter   counter
	indexesInOld []int
}

// arrayEntry is one slot of an occurrence array: either a reference into the
// symbol table, or (once the slot is matched) the index of its counterpart
// in the other collection.
type arrayEntry struct {
	entry        *tableEntry
	indexInOther int
}

// Diff computes the changes transforming old into new. Elements that occur
// exactly once in both collections anchor the matching; unmatched old
// elements become deletes, unmatched new elements become inserts, and
// matched elements whose adjusted positions differ become moves.
func Diff(old, new []string) []Change {
	table := make(map[string]*tableEntry)
	oldArr := make([]arrayEntry, 0, len(old))
	newArr := make([]arrayEntry, 0, len(new))

	for _, item := range new {
		e, ok := table[item]
		if !ok {
			e = &tableEntry{}
			table[item] = e
		}
		e.newCounter = e.newCounter.increment()
		newArr = append(newArr, arrayEntry{entry: e})
	}

	for idx, item := range old {
		e, ok := table[item]
		if !ok {
			e = &tableEntry{}
			table[item] = e
		}
		e.oldCounter = e.oldCounter.increment()
		e.indexesInOld = append(e.indexesInOld, idx)
		oldArr = append(oldArr, arrayEntry{entry: e})
	}

	for newIdx := range newArr {
		e := newArr[newIdx].entry
		if e == nil || len(e.indexesInOld) == 0 {
			continue
		}
		oldIdx := e.indexesInOld[0]
		e.indexesInOld = e.indexesInOld[1:]

		unique := e.newCounter == one && e.oldCounter == one
		anchored := e.newCounter != zero && e.oldCounter != zero && oldArr[oldIdx].entry == e
		if unique || anchored {
			newArr[newIdx] = arrayEntry{indexInOther: oldIdx}
			oldArr[oldIdx] = arrayEntry{indexInOther: newIdx}
		}
	}

	var changes []Change

	deleteOffsets := make([]int, len(old))
	runningOffset := 0
	for oldIdx, entry := range oldArr {
		deleteOffsets[oldIdx] = runningOffset
		if entry.entry != nil {
			changes = append(changes, Change{Kind: Delete, Item: old[oldIdx], Index: oldIdx})
			runningOffset++
		}
	}

	runningOffset = 0
	for newIdx, entry := range newArr {
		if entry.entry != nil {
			runningOffset++
			changes = append(changes, Change{Kind: Insert, Item: new[newIdx], Index: newIdx})
			continue
		}

		oldIdx := entry.indexInOther
		if old[oldIdx] != new[newIdx] {
			changes = append(changes, Change{
				Kind:    Replace,
				Item:    new[newIdx],
				OldItem: old[oldIdx],
				Index:   newIdx,
			})
		}
		if oldIdx-deleteOffsets[oldIdx]+runningOffset != newIdx {
			changes = append(changes, Change{Kind: Move, Item: new[newIdx], From: oldIdx, Index: newIdx})
		}
	}

	return changes
}
