package utils

// CeilDiv returns a divided by b, rounded up. Returns 0 when a is 0 or b is
// not positive. Used for page counts over result totals.
func CeilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
