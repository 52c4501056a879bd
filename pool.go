package gfx

// pool is a fixed-capacity slab allocator with an intrusive free list.
// alloc and dealloc are O(1); initialization is O(capacity). The pool never
// grows.
//
// Each slot carries a generation counter, bumped on dealloc, so a handle
// issued for an earlier life of the slot can be told apart from the current
// one. The original backend this design follows trusted callers not to hold
// stale handles; the generation check turns that undefined behavior into
// ErrStaleHandle.
//
// The pool itself is not synchronized. The Context serializes structural
// changes (alloc/dealloc) under its pool mutex; record content is written
// only from the graphics goroutine.
type pool[T any] struct {
	slots     []slot[T]
	firstFree int32
}

type slot[T any] struct {
	value T
	next  int32 // next free slot index, -1 terminates the list
	gen   uint16
	live  bool
}

func newPool[T any](capacity int) *pool[T] {
	p := &pool[T]{slots: make([]slot[T], capacity)}
	for i := range p.slots {
		p.slots[i].next = int32(i + 1)
		p.slots[i].gen = 1
	}
	p.slots[capacity-1].next = -1
	return p
}

// isFull reports whether the free list is empty.
func (p *pool[T]) isFull() bool { return p.firstFree == -1 }

// alloc pops the first free slot and returns its index and generation.
// ok is false iff the pool is exhausted.
func (p *pool[T]) alloc() (index int, gen uint16, ok bool) {
	if p.firstFree == -1 {
		return 0, 0, false
	}
	index = int(p.firstFree)
	s := &p.slots[index]
	p.firstFree = s.next
	s.live = true
	var zero T
	s.value = zero
	return index, s.gen, true
}

// dealloc pushes a slot back onto the free list and bumps its generation.
// Releasing a slot that is not live (double dealloc, bad index) is refused
// instead of corrupting the free list.
func (p *pool[T]) dealloc(index int) bool {
	if index < 0 || index >= len(p.slots) {
		return false
	}
	s := &p.slots[index]
	if !s.live {
		return false
	}
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.next = p.firstFree
	p.firstFree = int32(index)
	return true
}

// get resolves an (index, generation) pair to the live record.
func (p *pool[T]) get(index int, gen uint16) (*T, error) {
	if index < 0 || index >= len(p.slots) {
		return nil, ErrInvalidHandle
	}
	s := &p.slots[index]
	if !s.live || s.gen != gen {
		return nil, ErrStaleHandle
	}
	return &s.value, nil
}
