package divisible

// SliceRange is the canonical indexed divisible: a view over a slice that
// splits at any index and drains front-to-back. It is the reference
// implementation generated records recurse into, and the workhorse of the
// package tests.
type SliceRange[E any] struct {
	items  []E
	policy Policy
	blocks []int
}

// NewSliceRange wraps items in an indexed divisible view.
func NewSliceRange[E any](items []E) SliceRange[E] {
	return SliceRange[E]{items: items}
}

// WithPolicy returns a copy carrying the given scheduling hint.
func (r SliceRange[E]) WithPolicy(p Policy) SliceRange[E] {
	r.policy = p
	return r
}

// WithBlocksSizes returns a copy advertising the given block sizes.
func (r SliceRange[E]) WithBlocksSizes(sizes []int) SliceRange[E] {
	r.blocks = sizes
	return r
}

// Items exposes the remaining underlying slice.
func (r SliceRange[E]) Items() []E {
	return r.items
}

// BaseLength reports the number of remaining items.
func (r SliceRange[E]) BaseLength() int {
	return len(r.items)
}

// Power reports that the range divides at arbitrary indices.
func (r SliceRange[E]) Power() Power {
	return Indexed
}

// DivideAt splits the view in two disjoint halves at index. Indices past the
// end clamp to the full length, so boundary splits stay total.
func (r SliceRange[E]) DivideAt(index int) (SliceRange[E], SliceRange[E]) {
	if index > len(r.items) {
		index = len(r.items)
	}

	left := r
	right := r
	left.items = r.items[:index]
	right.items = r.items[index:]

	return left, right
}

// Clone returns an independent deep copy of the view.
func (r SliceRange[E]) Clone() SliceRange[E] {
	out := r
	out.items = make([]E, len(r.items))
	copy(out.items, r.items)

	return out
}

// ExtractIter consumes the next size items and returns a sequential iterator
// over them. The receiver retains the remainder for subsequent calls.
func (r *SliceRange[E]) ExtractIter(size int) *SliceIter[E] {
	if size > len(r.items) {
		size = len(r.items)
	}

	head := r.items[:size]
	r.items = r.items[size:]

	return &SliceIter[E]{items: head}
}

// ToSequential consumes the whole view into a sequential iterator.
func (r SliceRange[E]) ToSequential() *SliceIter[E] {
	return &SliceIter[E]{items: r.items}
}

// BlocksSizes reports the advertised block sizes, if any.
func (r *SliceRange[E]) BlocksSizes() []int {
	return r.blocks
}

// Policy reports the scheduling hint.
func (r SliceRange[E]) Policy() Policy {
	return r.policy
}

// SliceIter is the sequential iterator produced by SliceRange.
type SliceIter[E any] struct {
	items []E
	pos   int
}

// NewSliceIter returns a sequential iterator over items.
func NewSliceIter[E any](items []E) *SliceIter[E] {
	return &SliceIter[E]{items: items}
}

// Next returns the next item, or false when exhausted.
func (it *SliceIter[E]) Next() (E, bool) {
	if it.pos >= len(it.items) {
		var zero E
		return zero, false
	}

	e := it.items[it.pos]
	it.pos++

	return e, true
}

// MapIter adapts an iterator by applying fn to every item. Generated
// iterator-extraction expressions use it to reshape the inner field's output.
type MapIter[E, F any, I Iterator[E]] struct {
	inner I
	fn    func(E) F
}

// NewMapIter wraps inner, applying fn lazily.
func NewMapIter[E, F any, I Iterator[E]](inner I, fn func(E) F) *MapIter[E, F, I] {
	return &MapIter[E, F, I]{inner: inner, fn: fn}
}

// Next returns the next transformed item, or false when exhausted.
func (it *MapIter[E, F, I]) Next() (F, bool) {
	e, ok := it.inner.Next()
	if !ok {
		var zero F
		return zero, false
	}

	return it.fn(e), true
}
