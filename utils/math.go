package utils

// AddWithOverflow adds a and b, reporting overflow against the numeric
// parameter range control sequences carry (uint16 plus its negative mirror).
// A zero addend still overflows when the other side is already past the
// range, so accumulators cannot slip back in by adding zero.
func AddWithOverflow(a int, b int) (int, bool) {
	if (a >= 0 && b >= 0 && a > (1<<16)-1-b) ||
		(a <= 0 && b <= 0 && a < -(1<<16)-b) {
		return 0, true
	}

	return a + b, false
}
