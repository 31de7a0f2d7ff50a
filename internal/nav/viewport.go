package nav

import "math"

// ActiveSection derives the active section from the horizontal scroll
// offset. While a lock is held the recorded target wins unconditionally:
// mid-transition the offset is a transient interpolated value and rounding
// it would misreport the section. Pure and O(1); safe to call on every
// input tick.
func ActiveSection(offset, size float64, sections int, lock Lock) int {
	if lock.Held {
		return clampIndex(lock.Target, sections)
	}
	if size <= 0 {
		return 0
	}
	return clampIndex(int(math.Round(offset/size)), sections)
}
