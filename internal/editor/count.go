package editor

import "math"

// countState tracks repeat-count accumulation in normal mode.
type countState struct {
	value  int
	active bool
}

// Active indicates a count is being accumulated.
func (c *countState) Active() bool {
	return c.active
}

// Reset clears the count state.
func (c *countState) Reset() {
	c.value = 0
	c.active = false
}

// Accumulate folds a digit into the count. Returns false for a leading
// '0', which is a motion rather than a count; a '0' while the count is
// active multiplies it by ten like any other digit.
func (c *countState) Accumulate(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.active && digit == 0 {
		return false
	}
	c.active = true

	// Cap rather than overflow on absurd prefixes.
	if c.value > (math.MaxInt-digit)/10 {
		c.value = math.MaxInt / 10
		return true
	}
	c.value = c.value*10 + digit
	return true
}

// Take returns the effective count (1 if none was accumulated) and
// resets the state; a count is consumed by exactly one motion.
func (c *countState) Take() int {
	v := c.value
	c.Reset()
	if v <= 0 {
		return 1
	}
	return v
}
