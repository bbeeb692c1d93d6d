package Queues

// circArrQ is a FIFO backed by a circular slice. It grows by half when full.
type circArrQ[T any] struct {
	sz, head, tail int
	content        []T
}

func MakeArrayQueue[T any](initCap int) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize copies the live items to the front of a new slice of length newLen. newLen must be
// at least sz.
func (this *circArrQ[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			copy(nc, this.content[this.head:])
			copy(nc[len(this.content)-this.head:], this.content[:this.tail])
		}
	}
	this.head, this.tail = 0, this.sz
	if this.tail == newLen {
		this.tail = 0
	}
	this.content = nc
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Len() int {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == len(this.content) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % len(this.content)
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, ok bool) {
	if this.Empty() {
		return
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % len(this.content)
	this.sz--
	return item, true
}

func (this *circArrQ[T]) Peek() (item T, ok bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}
