// Package edgeset implements the edge-identity primitive used throughout
// the ABCD generator: a set of unordered vertex pairs, stored as sorted
// [2]int32 pairs, that additionally supports O(1) uniform sampling of a
// member and O(1) swap-pop removal.
//
// This is the data structure spec.md's Design Notes (§9) call for: a
// portable replacement for "iterate a hash set's internal slot array to
// obtain a random element" — here realized as a map (membership, O(1)
// lookup) paired with a backing slice (uniform sampling by index, O(1)
// removal via swap-with-last).
package edgeset
