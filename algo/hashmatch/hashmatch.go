// Package hashmatch implements a hash-and-run diff: elements are hashed,
// maximal runs of consecutive matches are collected, and a greedy selection
// of non-conflicting runs determines the edits. Registered with the harness
// as "hashmatch".
package hashmatch

import (
	"hash/fnv"
	"runtime"
	"sort"
	"sync"

	"github.com/arran4/diffbench/algo"
)

func init() {
	algo.Register("hashmatch", Diff)
}

func hashElement(s string) uint64 {
	h := fnv.New64a()
	if _, err := h.Write([]byte(s)); err != nil {
		panic(err)
	}
	return h.Sum64()
}

// parallelHash hashes the elements across the available CPUs. Small inputs
// are hashed inline to avoid goroutine overhead.
func parallelHash(elements []string) []uint64 {
	n := len(elements)
	hashes := make([]uint64, n)
	numCPU := runtime.NumCPU()
	if n < 1000 || numCPU == 1 {
		for i, e := range elements {
			hashes[i] = hashElement(e)
		}
		return hashes
	}

	var wg sync.WaitGroup
	chunkSize := (n + numCPU - 1) / numCPU
	for i := 0; i < numCPU; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for k := s; k < e; k++ {
				hashes[k] = hashElement(elements[k])
			}
		}(start, end)
	}
	wg.Wait()
	return hashes
}

type run struct {
	oldStart int
	newStart int
	length   int
}

// Diff counts the edits between old and new: every element not covered by a
// selected matching run is one delete (in old) or one insert (in new).
func Diff(old, new []string) (int, error) {
	oldHashes := parallelHash(old)

	occurrences := make(map[uint64][]int, len(old))
	for pos, h := range oldHashes {
		occurrences[h] = append(occurrences[h], pos)
	}

	newHashes := parallelHash(new)

	var runs []run

	// Track active runs ending at the current new index. Two maps are
	// swapped each iteration to avoid per-iteration allocation.
	current := make(map[int]int)
	nextBuf := make(map[int]int)

	for j, h := range newHashes {
		next := nextBuf
		clear(next)

		if indices, ok := occurrences[h]; ok {
			for _, i := range indices {
				// Hash collisions are resolved by element equality.
				if old[i] == new[j] {
					length := 1
					if prev, ok := current[i-1]; ok {
						length = prev + 1
					}
					next[i] = length
				}
			}
		}

		// Any run not extended into next has terminated.
		for i, length := range current {
			if _, extended := next[i+1]; !extended {
				runs = append(runs, run{
					oldStart: i - length + 1,
					newStart: j - length,
					length:   length,
				})
			}
		}

		nextBuf = current
		current = next
	}
	for i, length := range current {
		runs = append(runs, run{
			oldStart: i - length + 1,
			newStart: len(new) - length,
			length:   length,
		})
	}

	// Longest runs first; ties broken by distance from the origin.
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].length != runs[j].length {
			return runs[i].length > runs[j].length
		}
		return runs[i].oldStart+runs[i].newStart < runs[j].oldStart+runs[j].newStart
	})

	var selected []run
	for _, r := range runs {
		conflict := false
		for _, s := range selected {
			before := r.oldStart+r.length <= s.oldStart && r.newStart+r.length <= s.newStart
			after := r.oldStart >= s.oldStart+s.length && r.newStart >= s.newStart+s.length
			if !before && !after {
				conflict = true
				break
			}
		}
		if !conflict {
			selected = append(selected, r)
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].oldStart < selected[j].oldStart
	})

	changes := 0
	currOld := 0
	currNew := 0
	for _, r := range selected {
		changes += r.oldStart - currOld
		changes += r.newStart - currNew
		currOld = r.oldStart + r.length
		currNew = r.newStart + r.length
	}
	changes += len(old) - currOld
	changes += len(new) - currNew

	return changes, nil
}
