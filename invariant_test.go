package pqueue

import (
	"math/rand"
	"testing"
)

// valid reports whether the heap invariant holds for the whole store:
// no element is ordered after its parent.
func valid[T any](q *Queue[T]) bool {
	for i := 1; i < len(q.items); i++ {
		if q.less(q.items[parent(i)], q.items[i]) {
			return false
		}
	}

	return true
}

func TestInvariantAfterEveryOperation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := New[int]()

	for op := 1; op <= 10000; op++ {
		if q.Empty() || rng.Intn(3) > 0 {
			q.Push(rng.Intn(1000))
		} else if _, err := q.Pop(); err != nil {
			t.Fatalf("Pop() on a non-empty queue = _, %v; want no errors", err)
		}

		if !valid(q) {
			t.Fatalf("heap invariant broken after operation %d: %v", op, q.items)
		}
	}
}

func TestInvariantWithDuplicates(t *testing.T) {
	// A tiny value domain forces masses of equal elements.
	rng := rand.New(rand.NewSource(7))
	q := NewMin[int]()

	for op := 1; op <= 3000; op++ {
		if q.Empty() || rng.Intn(2) == 0 {
			q.Push(rng.Intn(4))
		} else if _, err := q.Pop(); err != nil {
			t.Fatalf("Pop() on a non-empty queue = _, %v; want no errors", err)
		}

		if !valid(q) {
			t.Fatalf("heap invariant broken after operation %d: %v", op, q.items)
		}
	}
}

func TestIndexArithmetic(t *testing.T) {
	testCases := []struct {
		index               int
		parent, left, right int
	}{
		{index: 1, parent: 0, left: 3, right: 4},
		{index: 2, parent: 0, left: 5, right: 6},
		{index: 3, parent: 1, left: 7, right: 8},
		{index: 4, parent: 1, left: 9, right: 10},
		{index: 5, parent: 2, left: 11, right: 12},
		{index: 6, parent: 2, left: 13, right: 14},
		{index: 12, parent: 5, left: 25, right: 26},
	}

	for _, tc := range testCases {
		if got := parent(tc.index); got != tc.parent {
			t.Errorf("parent(%d) = %d; want %d", tc.index, got, tc.parent)
		}
		if got := left(tc.index); got != tc.left {
			t.Errorf("left(%d) = %d; want %d", tc.index, got, tc.left)
		}
		if got := right(tc.index); got != tc.right {
			t.Errorf("right(%d) = %d; want %d", tc.index, got, tc.right)
		}
	}
}

func intLess(a, b int) bool { return a < b }

func TestSiftDownPicksTheExtremeChild(t *testing.T) {
	// Swapping with the left child just because it beats the parent would
	// put 5 above 9 here.
	q := &Queue[int]{items: []int{1, 5, 9}, less: intLess}

	q.siftDown(0)

	if q.items[0] != 9 {
		t.Errorf("root after siftDown(0) = %d; want 9", q.items[0])
	}
	if !valid(q) {
		t.Errorf("heap invariant broken after siftDown(0): %v", q.items)
	}
}

func TestSiftDownDescendsToTheLeaves(t *testing.T) {
	q := &Queue[int]{items: []int{0, 7, 9, 1, 2, 3, 8}, less: intLess}

	q.siftDown(0)

	if q.items[0] != 9 {
		t.Errorf("root after siftDown(0) = %d; want 9", q.items[0])
	}
	if !valid(q) {
		t.Errorf("heap invariant broken after siftDown(0): %v", q.items)
	}
}

func TestSiftDownSingleChild(t *testing.T) {
	q := &Queue[int]{items: []int{1, 5}, less: intLess}

	q.siftDown(0)

	if want := []int{5, 1}; q.items[0] != want[0] || q.items[1] != want[1] {
		t.Errorf("items after siftDown(0) = %v; want %v", q.items, want)
	}
}

func TestSiftDownStopsWhenInvariantHolds(t *testing.T) {
	q := &Queue[int]{items: []int{9, 5, 5, 1}, less: intLess}

	q.siftDown(0)

	if q.items[0] != 9 {
		t.Errorf("root after siftDown(0) on a valid heap = %d; want 9", q.items[0])
	}
	if !valid(q) {
		t.Errorf("heap invariant broken after siftDown(0): %v", q.items)
	}
}

func TestSiftUpStopsAtTheRoot(t *testing.T) {
	q := New[int]()

	// Each push is a new maximum and must travel all the way up.
	for i := 0; i < 64; i++ {
		q.Push(i)

		if got, err := q.Peek(); err != nil || got != i {
			t.Fatalf("Peek() after pushing a new maximum = %v, %v; want %v, nil", got, err, i)
		}
		if !valid(q) {
			t.Fatalf("heap invariant broken after pushing %d: %v", i, q.items)
		}
	}
}
