// Package lut provides a generic bracketing binary search and fixed-point
// linear interpolation over monotonic lookup tables. The search works on any
// slice of entries via a caller-supplied key projection, so the same algorithm
// serves any monotonic table type without duplicating the search logic
package lut

import "cmp"

// Order denotes the key ordering of a lookup table
type Order uint8

const (

	// OrderAuto detects the ordering from the first two entries
	OrderAuto Order = iota

	// OrderIncreasing denotes strictly increasing keys
	OrderIncreasing

	// OrderDecreasing denotes strictly decreasing keys
	OrderDecreasing
)

// Bracket denotes the result of a table search: either an exact match or the
// pair of adjacent indices whose keys straddle the target
type Bracket struct {
	Lower   int  // index of the lower bracketing entry (table order)
	Upper   int  // index of the upper bracketing entry (table order)
	Exact   int  // index of the exact match, -1 if none
	Found   bool // true if an exact match was found
	Clamped bool // true if the target fell outside the table range and the nearest edge pair was returned
}

// Search performs a bracketing binary search for target over a monotonic
// table, extracting keys via the projection key. If an exact match exists,
// Lower, Upper and Exact all point at it. Otherwise Lower and Upper are the
// adjacent indices straddling the target; for targets beyond either table
// extreme the nearest edge pair ({0, 1} or {N-2, N-1}) is returned with
// Clamped set.
//
// The table must hold at least two entries with strictly monotonic, unique
// keys; this is a caller precondition (shorter tables cause an index panic
// rather than a silent default). Complexity is O(log N), no allocation
func Search[E any, K cmp.Ordered](table []E, target K, key func(E) K, order Order) Bracket {

	n := len(table)
	result := Bracket{Exact: -1}

	if order == OrderAuto {
		if key(table[0]) <= key(table[1]) {
			order = OrderIncreasing
		} else {
			order = OrderDecreasing
		}
	}

	left, right := 0, n-1
	for left <= right {
		mid := left + (right-left)/2
		midKey := key(table[mid])

		if midKey == target {
			return Bracket{Lower: mid, Upper: mid, Exact: mid, Found: true}
		}

		// Branch choice is inverted for decreasing tables
		goLeft := target < midKey
		if order == OrderDecreasing {
			goLeft = !goLeft
		}

		if goLeft {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}

	// No exact match: left and right have crossed, the last straddled indices
	// determine the bracket
	switch {
	case left == 0:
		// Target beyond the first entry
		result.Lower, result.Upper = 0, 1
		result.Clamped = true
	case right >= n-1:
		// Target beyond the last entry
		result.Lower, result.Upper = n-2, n-1
		result.Clamped = true
	default:
		result.Lower, result.Upper = right, left
	}

	return result
}

// Integer denotes the integer types usable as fixed-point keys and values
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Interpolate computes the linear interpolation
//
//	lowVal + (highVal - lowVal) * (target - lowKey) / (highKey - lowKey)
//
// in 64-bit intermediates so that the delta product cannot overflow the
// fixed-point working domain. All deltas are taken signed from the actual key
// and value magnitudes, so the result is correct regardless of whether the
// table the bracket came from is increasing or decreasing by key.
//
// If both keys are equal (ruled out by the table invariants, but guarded
// anyway) the lower value is returned without dividing
func Interpolate[K Integer, V Integer](target, lowKey, highKey K, lowVal, highVal V) V {

	if lowKey == highKey {
		return lowVal
	}

	keyDelta := int64(highKey) - int64(lowKey)
	targetDelta := int64(target) - int64(lowKey)
	valDelta := int64(highVal) - int64(lowVal)

	return V(int64(lowVal) + valDelta*targetDelta/keyDelta)
}

// Clamp restricts v to the closed interval [lo, hi]. Used as the final safety
// net restricting interpolated values to the range spanned by the full table
func Clamp[V Integer](v, lo, hi V) V {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
