package heckel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arran4/diffbench/algo"
)

func kinds(changes []Change) []Kind {
	out := make([]Kind, len(changes))
	for i, c := range changes {
		out[i] = c.Kind
	}
	return out
}

func TestDiffEmpty(t *testing.T) {
	if changes := Diff(nil, nil); len(changes) != 0 {
		t.Errorf("Diff(empty, empty) = %v, want none", changes)
	}
}

func TestDiffAllInsert(t *testing.T) {
	changes := Diff(nil, []string{"a", "b", "c"})
	want := []Change{
		{Kind: Insert, Item: "a", Index: 0},
		{Kind: Insert, Item: "b", Index: 1},
		{Kind: Insert, Item: "c", Index: 2},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAllDelete(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, nil)
	want := []Change{
		{Kind: Delete, Item: "a", Index: 0},
		{Kind: Delete, Item: "b", Index: 1},
		{Kind: Delete, Item: "c", Index: 2},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAllChanged(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"A", "B", "C"})
	want := []Kind{Delete, Delete, Delete, Insert, Insert, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffInsertBefore(t *testing.T) {
	changes := Diff([]string{"a"}, []string{"b", "a"})
	want := []Kind{Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSingleChange(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"a", "B", "c"})
	want := []Kind{Delete, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSamePrefix(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"a", "B"})
	want := []Kind{Delete, Delete, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffReversed(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"c", "b", "a"})
	want := []Kind{Move, Move}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffEditsAtBothEdges(t *testing.T) {
	old := strings.Split("sitting", "")
	new := strings.Split("kitten", "")
	changes := Diff(old, new)
	want := []Kind{Delete, Delete, Delete, Insert, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSameSuffix(t *testing.T) {
	changes := Diff([]string{"a", "b", "c", "d", "e", "f"}, []string{"d", "e", "f"})
	want := []Change{
		{Kind: Delete, Item: "a", Index: 0},
		{Kind: Delete, Item: "b", Index: 1},
		{Kind: Delete, Item: "c", Index: 2},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffShiftedWindow(t *testing.T) {
	changes := Diff([]string{"a", "b", "c", "d"}, []string{"c", "d", "e", "f"})
	want := []Change{
		{Kind: Delete, Item: "a", Index: 0},
		{Kind: Delete, Item: "b", Index: 1},
		{Kind: Insert, Item: "e", Index: 2},
		{Kind: Insert, Item: "f", Index: 3},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffReplaceAll(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"d"})
	want := []Kind{Delete, Delete, Delete, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSingleElement(t *testing.T) {
	changes := Diff([]string{"a"}, []string{"b"})
	want := []Kind{Delete, Insert}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffMoveToFront(t *testing.T) {
	changes := Diff([]string{"1", "2", "3", "4", "5"}, []string{"1", "5", "2", "3", "4"})
	want := []Kind{Move, Move, Move, Move}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffMoveWithDeleteAndInsert(t *testing.T) {
	changes := Diff([]string{"3", "2", "1"}, []string{"1", "4", "3"})
	want := []Kind{Delete, Move, Insert, Move}
	if diff := cmp.Diff(want, kinds(changes)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffRotations(t *testing.T) {
	tests := []struct {
		name string
		old  []string
		new  []string
	}{
		{"swap pairs", []string{"1", "3", "0", "2"}, []string{"0", "2", "3", "1"}},
		{"swap halves", []string{"2", "0", "1", "3"}, []string{"1", "3", "0", "2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			changes := Diff(tc.old, tc.new)
			want := []Kind{Move, Move, Move, Move}
			if diff := cmp.Diff(want, kinds(changes)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffDeleteTail(t *testing.T) {
	changes := Diff([]string{"a", "b", "c"}, []string{"a"})
	want := []Change{
		{Kind: Delete, Item: "b", Index: 1},
		{Kind: Delete, Item: "c", Index: 2},
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestHeckelRegistered(t *testing.T) {
	fn, err := algo.Get("heckel")
	if err != nil {
		t.Fatalf("heckel algorithm should be registered: %v", err)
	}
	n, err := fn([]string{"a", "b"}, []string{"b", "c"})
	if err != nil {
		t.Fatalf("heckel: %v", err)
	}
	if n == 0 {
		t.Errorf("heckel reported no changes for differing inputs")
	}
}
