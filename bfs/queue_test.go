package bfs

import "testing"

// TestCoordQueue_FIFO verifies first-in-first-out order.
func TestCoordQueue_FIFO(t *testing.T) {
	q := newCoordQueue(4)
	for _, v := range []int32{3, 1, 2} {
		q.push(v)
	}
	for _, want := range []int32{3, 1, 2} {
		if got := q.pop(); got != want {
			t.Errorf("pop = %d; want %d", got, want)
		}
	}
	if !q.empty() {
		t.Error("queue should be empty after draining")
	}
}

// TestCoordQueue_Wraparound drives head and tail past the end of the
// backing array to exercise the circular indexing.
func TestCoordQueue_Wraparound(t *testing.T) {
	q := newCoordQueue(3)
	q.push(10)
	q.push(11)
	if got := q.pop(); got != 10 {
		t.Fatalf("pop = %d; want 10", got)
	}
	// tail wraps to slot 0 here; no live entry may be overwritten
	q.push(12)
	q.push(13)
	for _, want := range []int32{11, 12, 13} {
		if got := q.pop(); got != want {
			t.Errorf("pop = %d; want %d", got, want)
		}
	}
	if !q.empty() {
		t.Error("queue should be empty after draining")
	}
}

// TestCoordQueue_FullCycle fills the queue to capacity exactly once,
// the usage pattern BFS guarantees.
func TestCoordQueue_FullCycle(t *testing.T) {
	const capacity = 16
	q := newCoordQueue(capacity)
	for i := int32(0); i < capacity; i++ {
		q.push(i)
	}
	for i := int32(0); i < capacity; i++ {
		if got := q.pop(); got != i {
			t.Errorf("pop = %d; want %d", got, i)
		}
	}
	if !q.empty() {
		t.Error("queue should be empty")
	}
}
