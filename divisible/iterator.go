package divisible

import "errors"

// ErrUnboundedFlatten is returned when a flatten is attempted on a value
// reporting an unbounded length.
var ErrUnboundedFlatten = errors.New("cannot flatten a divisible of unbounded length")

// Iterator is the minimal sequential iteration contract produced by
// ExtractIter and ToSequential.
type Iterator[E any] interface {
	Next() (E, bool)
}

// ParallelIterator is the full generated capability, expressed as a
// constraint over *S so that the mutating accessors (ExtractIter,
// BlocksSizes) and the consuming ones (DivideAt, ToSequential) live in one
// method set.
type ParallelIterator[S, E any, I Iterator[E]] interface {
	*S
	// BaseLength reports the value's length, or Unbounded.
	BaseLength() int
	// DivideAt splits the value in two disjoint halves at index.
	DivideAt(index int) (S, S)
	// Power reports the kind of division the value supports.
	Power() Power
	// ExtractIter consumes the next size items into a sequential iterator,
	// keeping the remainder for subsequent calls.
	ExtractIter(size int) I
	// ToSequential consumes the whole value into a sequential iterator.
	ToSequential() I
	// BlocksSizes advertises preferred block sizes for block-wise draining.
	BlocksSizes() []int
	// Policy reports the scheduling hint.
	Policy() Policy
}

// Drain collects every remaining item of it, in order.
func Drain[E any, I Iterator[E]](it I) []E {
	var out []E
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}

	return out
}

// Flatten is the external-iteration adapter: it repeatedly asks the value for
// its preferred block sizes, splits off each block with DivideAt, drains the
// block's sequential iterator, and concatenates the buffers in block order.
// Item k of the result always equals item k of the value's canonical
// enumeration order, regardless of block boundaries.
func Flatten[S, E any, I Iterator[E], PS ParallelIterator[S, E, I]](s S) ([]E, error) {
	var out []E

	for {
		remaining := PS(&s).BaseLength()
		if remaining == Unbounded {
			return out, ErrUnboundedFlatten
		}

		if remaining == 0 {
			return out, nil
		}

		sizes := PS(&s).BlocksSizes()
		if len(sizes) == 0 {
			sizes = []int{remaining}
		}

		progressed := false

		for _, size := range sizes {
			remaining = PS(&s).BaseLength()
			if remaining == 0 {
				break
			}

			if size > remaining {
				size = remaining
			}

			if size == 0 {
				continue
			}

			var block S
			block, s = PS(&s).DivideAt(size)
			out = append(out, Drain[E](PS(&block).ToSequential())...)
			progressed = true
		}

		// A size list of zeros would never advance; drain the rest directly.
		if !progressed {
			out = append(out, Drain[E](PS(&s).ToSequential())...)
			return out, nil
		}
	}
}
