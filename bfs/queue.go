package bfs

// coordQueue is a fixed-capacity FIFO of row-major cell indices with
// circular head/tail indexing. Capacity is the grid's total cell count:
// visited-on-enqueue guarantees each cell enters at most once, so the
// buffer never grows and push never overwrites live entries.
type coordQueue struct {
	buf  []int32
	head int // next index to pop
	tail int // next free slot
	size int
}

// newCoordQueue allocates a queue able to hold capacity indices.
// This is the only allocation the frontier performs for a whole search.
func newCoordQueue(capacity int) *coordQueue {
	return &coordQueue{buf: make([]int32, capacity)}
}

// push appends idx at the tail. Complexity: O(1), no allocation.
func (q *coordQueue) push(idx int32) {
	q.buf[q.tail] = idx
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
}

// pop removes and returns the head index. The caller must ensure the
// queue is non-empty. Complexity: O(1).
func (q *coordQueue) pop() int32 {
	idx := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--

	return idx
}

// empty reports whether the queue holds no indices.
func (q *coordQueue) empty() bool { return q.size == 0 }
