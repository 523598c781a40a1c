// Package pager computes how many items of an already-fetched list are visible when the list grows in fixed
// increments as the visitor scrolls.
package pager

const (
	// Initial is the number of items shown before any "load more".
	Initial = 50
	// Step is the number of items added by each "load more".
	Step = 50
)

// Clamp normalises a requested visible count to [min(Initial, total), total].
//
// Anything below one is treated as a fresh page load.
func Clamp(requested, total int) int {
	if total <= 0 {
		return 0
	}
	if requested < 1 {
		requested = Initial
	}
	return min(requested, total)
}

// Next is the visible count after one more "load more". It never exceeds total.
func Next(current, total int) int {
	return Clamp(Clamp(current, total)+Step, total)
}

// HasMore reports whether a "load more" would reveal further items.
func HasMore(visible, total int) bool {
	return Clamp(visible, total) < total
}
