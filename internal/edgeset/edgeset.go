package edgeset

import "math/rand"

// Pair is an unordered edge endpoint pair, always stored as (min, max).
type Pair [2]int32

// NewPair normalizes (a, b) into sorted order. Panics on a==b: callers
// are expected to reject self-loops before constructing a Pair, since a
// self-loop is never a legal member of an edge set.
func NewPair(a, b int32) Pair {
	if a == b {
		panic("edgeset: NewPair called with a == b")
	}
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Set is a mutable collection of Pairs supporting O(1) membership,
// insertion, swap-pop removal, and uniform random sampling.
//
// Not safe for concurrent use; callers needing concurrent access must
// provide their own synchronization (see internal/workerpool, which
// keeps one Set per goroutine and aggregates under a single lock).
type Set struct {
	index map[Pair]int // pair -> position in members
	members []Pair
}

// New returns an empty Set, optionally pre-sized via capacity hint.
func New(capacityHint int) *Set {
	return &Set{
		index:   make(map[Pair]int, capacityHint),
		members: make([]Pair, 0, capacityHint),
	}
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.members) }

// Has reports whether p is a member.
func (s *Set) Has(p Pair) bool {
	_, ok := s.index[p]
	return ok
}

// Add inserts p if absent. Returns true if p was newly inserted, false
// if it was already a member.
func (s *Set) Add(p Pair) bool {
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = len(s.members)
	s.members = append(s.members, p)
	return true
}

// Remove deletes p if present via swap-pop, in O(1). Returns true if p
// was present.
func (s *Set) Remove(p Pair) bool {
	i, ok := s.index[p]
	if !ok {
		return false
	}
	last := len(s.members) - 1
	moved := s.members[last]
	s.members[i] = moved
	s.members = s.members[:last]
	s.index[moved] = i
	delete(s.index, p)
	return true
}

// RandomMember draws a uniformly random member by index. Panics if the
// set is empty; callers must check Len() first.
func (s *Set) RandomMember(rng *rand.Rand) Pair {
	if len(s.members) == 0 {
		panic("edgeset: RandomMember called on empty set")
	}
	return s.members[rng.Intn(len(s.members))]
}

// RemoveAt removes and returns the member at position i (swap-pop).
func (s *Set) RemoveAt(i int) Pair {
	p := s.members[i]
	last := len(s.members) - 1
	moved := s.members[last]
	s.members[i] = moved
	s.members = s.members[:last]
	s.index[moved] = i
	delete(s.index, p)
	return p
}

// Members returns the backing slice of current members. Callers must
// treat it as read-only; mutating it corrupts the index.
func (s *Set) Members() []Pair { return s.members }

// Union extends s with every member of other, skipping duplicates.
func (s *Set) Union(other *Set) {
	for _, p := range other.members {
		s.Add(p)
	}
}
