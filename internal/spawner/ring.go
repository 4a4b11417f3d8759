package spawner

// indexRing is a growable FIFO of arena indices.
// Push and Pop never shift elements, so a steady window does not allocate.
type indexRing struct {
	buf  []int
	head int
	size int
}

func newIndexRing(capacity int) indexRing {
	if capacity < 1 {
		capacity = 1
	}
	return indexRing{buf: make([]int, capacity)}
}

func (r *indexRing) Len() int {
	return r.size
}

func (r *indexRing) Push(v int) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

// Pop removes and returns the oldest element. The ring must not be empty.
func (r *indexRing) Pop() int {
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return v
}

// Peek returns the oldest element. The ring must not be empty.
func (r *indexRing) Peek() int {
	return r.buf[r.head]
}

// Each visits elements from oldest to newest.
func (r *indexRing) Each(fn func(int)) {
	for i := 0; i < r.size; i++ {
		fn(r.buf[(r.head+i)%len(r.buf)])
	}
}

func (r *indexRing) grow() {
	next := make([]int, len(r.buf)*2)
	for i := 0; i < r.size; i++ {
		next[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = next
	r.head = 0
}
