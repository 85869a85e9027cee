package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Body is a growable ring buffer of segment positions.
// The front holds the tail end of the chain, the back holds the segment
// right behind the head. All operations are O(1) amortized.
type Body struct {
	buf   []core.Point
	front int // index of the front element in buf
	n     int
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// PushFront inserts p before the current front.
func (b *Body) PushFront(p core.Point) {
	b.reserve()
	b.front = (b.front - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.front] = p
	b.n++
}

// PushBack appends p after the current back.
func (b *Body) PushBack(p core.Point) {
	b.reserve()
	b.buf[(b.front+b.n)%len(b.buf)] = p
	b.n++
}

// PopFront removes and returns the front element.
func (b *Body) PopFront() (core.Point, bool) {
	if b.n == 0 {
		return core.Point{}, false
	}
	p := b.buf[b.front]
	b.front = (b.front + 1) % len(b.buf)
	b.n--
	return p, true
}

// Recycle moves the front slot to the back and stores p in it.
func (b *Body) Recycle(p core.Point) {
	if b.n == 0 {
		return
	}
	b.PopFront()
	b.PushBack(p)
}

// At returns the i-th element counted from the front.
func (b *Body) At(i int) core.Point {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.buf[(b.front+i)%len(b.buf)]
}

// Contains reports whether any segment sits on p.
func (b *Body) Contains(p core.Point) bool {
	for i, n := 0, b.n; i < n; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// NearestFirst returns the segments from the back of the store to the front.
// A point pushed with PushFront therefore comes last.
func (b *Body) NearestFirst() []core.Point {
	out := make([]core.Point, b.n)
	for i, n := 0, b.n; i < n; i++ {
		out[i] = b.At(b.n - 1 - i)
	}
	return out
}

// Clear drops all segments and keeps the allocation.
func (b *Body) Clear() {
	b.front = 0
	b.n = 0
}

// reserve makes room for one more element.
func (b *Body) reserve() {
	if b.n < len(b.buf) {
		return
	}
	size := max(8, 2*len(b.buf))
	buf := make([]core.Point, size)
	for i, n := 0, b.n; i < n; i++ {
		buf[i] = b.At(i)
	}
	b.buf = buf
	b.front = 0
}
