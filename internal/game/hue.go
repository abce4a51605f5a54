// Package game implements the popchain gameplay core: balloons of random
// hues rise from the bottom of the play area and must be popped in the
// order dictated by a target color sequence, against a round countdown.
// The package contains pure logic with no terminal dependencies.
package game

import "math/rand"

// Hue identifies a balloon color. It is a closed set of seven values,
// compared by equality and copied freely.
type Hue int

const (
	HueRed Hue = iota
	HueOrange
	HueYellow
	HueGreen
	HueBlue
	HuePurple
	HuePink
)

// HueCount is the size of the closed hue set.
const HueCount = 7

// AllHues lists every hue in declaration order.
var AllHues = [HueCount]Hue{
	HueRed, HueOrange, HueYellow, HueGreen, HueBlue, HuePurple, HuePink,
}

// String returns a human-readable name for the hue.
func (h Hue) String() string {
	switch h {
	case HueRed:
		return "red"
	case HueOrange:
		return "orange"
	case HueYellow:
		return "yellow"
	case HueGreen:
		return "green"
	case HueBlue:
		return "blue"
	case HuePurple:
		return "purple"
	case HuePink:
		return "pink"
	default:
		return "unknown"
	}
}

// RGB returns the display color for the hue. Total over the hue set;
// out-of-range values render as white.
func (h Hue) RGB() (r, g, b uint8) {
	switch h {
	case HueRed:
		return 0xE5, 0x39, 0x35
	case HueOrange:
		return 0xFB, 0x8C, 0x00
	case HueYellow:
		return 0xFD, 0xD8, 0x35
	case HueGreen:
		return 0x43, 0xA0, 0x47
	case HueBlue:
		return 0x1E, 0x88, 0xE5
	case HuePurple:
		return 0x8E, 0x24, 0xAA
	case HuePink:
		return 0xF0, 0x62, 0x92
	default:
		return 0xFF, 0xFF, 0xFF
	}
}

// RandomHue draws a hue uniformly from the closed set.
// Draws are independent; consecutive repeats are allowed.
func RandomHue(rng *rand.Rand) Hue {
	return AllHues[rng.Intn(HueCount)]
}
