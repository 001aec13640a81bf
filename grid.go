package aoc

import (
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Span is an inclusive range of columns within one row.
type Span struct {
	Start, End int
}

// Len returns the number of columns covered by s.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Slice returns the part of line covered by s.
func (s Span) Slice(line string) string {
	return line[s.Start : s.End+1]
}

// ForNeighbors calls f for every cell 8-connected to s when s lies in row y:
// the row above and the row below from Start-1 to End+1, then the cells just
// before and just after s in row y. Cells with a negative X or Y are skipped
// rather than wrapped. Cells past the far edges are not known to s and are
// left for the caller to reject.
func (s Span) ForNeighbors(y int, f func(Pt) (keepGoing bool)) {
	emit := func(p Pt) bool {
		if p.X < 0 || p.Y < 0 {
			return true
		}
		return f(p)
	}
	for _, ny := range []int{y - 1, y + 1} {
		for x := s.Start - 1; x <= s.End+1; x++ {
			if !emit(Pt{x, ny}) {
				return
			}
		}
	}
	if !emit(Pt{s.Start - 1, y}) {
		return
	}
	emit(Pt{s.End + 1, y})
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*T) deephash.Sum
)

// Fingerprint returns a structural hash of *v. Two values with the same
// contents have the same fingerprint.
func Fingerprint[T any](v *T) deephash.Sum {
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(v)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[T]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*T) deephash.Sum)(v)
}
