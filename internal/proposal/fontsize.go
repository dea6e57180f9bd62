package proposal

import (
	"math"
	"strconv"
)

const (
	// InitialFontSize is the Yes-button size, in em, before any No click.
	InitialFontSize = 1.5
	// GrowthFactor multiplies the Yes-button size on every No click.
	GrowthFactor = 1.5
)

// SizeFor returns the Yes-button font size in em after clicks No presses.
// Growth is unbounded; large counts overflow to +Inf.
func SizeFor(clicks int) float64 {
	size := InitialFontSize
	for i := 0; i < clicks; i++ {
		size *= GrowthFactor
	}
	return size
}

// exponentThreshold is where number-to-string conversion in browsers
// switches to exponent notation.
const exponentThreshold = 1e21

// FormatEm renders size as a CSS length the way a browser stringifies the
// number: shortest decimal form below 1e21 (2.25 -> "2.25em"), exponent form
// above it (1.3519202917880824e+21em), and "Infinity" once growth overflows.
func FormatEm(size float64) string {
	switch {
	case math.IsInf(size, 1):
		return "Infinityem"
	case size >= exponentThreshold:
		return strconv.FormatFloat(size, 'g', -1, 64) + "em"
	}
	return strconv.FormatFloat(size, 'f', -1, 64) + "em"
}
