package render

import "image/color"

// Icon palette.
var (
	// Background is the launcher green #22C55E.
	Background = color.RGBA{R: 34, G: 197, B: 94, A: 0xFF}
	// Foreground is used for the rim, ticks, hands and centre dot.
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Clock proportions, relative to the canvas side or the rim radius.
const (
	radiusRatio       = 0.35
	tickLengthRatio   = 0.12
	hourLengthRatio   = 0.5
	minuteLengthRatio = 0.7

	// Hand angles in degrees; 0° is 3 o'clock, negative turns toward 12.
	hourHandAngle   = -60.0
	minuteHandAngle = -30.0
)

// Stroke widths are size/divisor with a floor so small icons stay legible.
const (
	rimWidthDivisor    = 30
	rimWidthMin        = 3
	tickWidthDivisor   = 50
	tickWidthMin       = 2
	hourWidthDivisor   = 25
	hourWidthMin       = 3
	minuteWidthDivisor = 35
	minuteWidthMin     = 2
	dotRadiusDivisor   = 40
	dotRadiusMin       = 3
)

// tickAngles are the 12, 3, 6 and 9 o'clock positions.
var tickAngles = [4]float64{-90, 0, 90, 180}
