// Package divisible defines the runtime capability surface targeted by
// divigen-generated code: the Divisible and ParallelIterator contracts, the
// unbounded-length sentinel, power and policy tags, and a slice-backed
// reference implementation.
package divisible

import "math"

// Unbounded is the sentinel length reported by values whose extent is
// infinite or unknown. It doubles as the seed of min-based length
// aggregation: seeding with Unbounded makes unbounded components drop out
// of the minimum naturally.
const Unbounded = math.MaxInt

// Power tags the kind of divisible capability a record exposes.
type Power int

const (
	// Indexed means the value can be split at any index within its length.
	Indexed Power = iota
	// Blocked means the value divides along block boundaries of its own choosing.
	Blocked
)

// String returns a human-readable power name.
func (p Power) String() string {
	switch p {
	case Indexed:
		return "indexed"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Policy is the scheduling hint propagated to the consuming scheduler.
type Policy int

const (
	// DefaultPolicy lets the scheduler decide.
	DefaultPolicy Policy = iota
	// Sequential forbids parallel division.
	Sequential
	// Join divides eagerly down to a minimal block size.
	Join
	// Adaptive divides lazily, on steal requests.
	Adaptive
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case DefaultPolicy:
		return "default"
	case Sequential:
		return "sequential"
	case Join:
		return "join"
	case Adaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// Divisible is the binary-split capability. DivideAt consumes the receiver:
// the two results own disjoint partitions of its data and the original value
// must not be used afterwards.
type Divisible[S any] interface {
	// BaseLength reports the value's length, or Unbounded.
	BaseLength() int
	// DivideAt splits the value in two at index. Splitting at 0 or at the
	// full length is valid and yields one empty partition.
	DivideAt(index int) (S, S)
	// Power reports the kind of division the value supports.
	Power() Power
}

// Cloner is the contract required of fields divided with the clone strategy:
// both halves receive an independent deep copy.
type Cloner[T any] interface {
	Clone() T
}

// Zero returns the zero value of T. Generated splits use it to reset the
// right half of default-divided fields.
func Zero[T any]() (zero T) {
	return zero
}

// Pair carries the two halves produced for a single field during a split.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// MakePair builds a Pair from its halves.
func MakePair[L, R any](left L, right R) Pair[L, R] {
	return Pair[L, R]{Left: left, Right: right}
}

// Unpack returns both halves.
func (p Pair[L, R]) Unpack() (L, R) {
	return p.Left, p.Right
}
