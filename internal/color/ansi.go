package color

const (
	// brightThreshold: a color with any channel at or above this is bright.
	brightThreshold = 0b1100_0000

	// Muted grays with every channel in [brightBlackMin, brightBlackMax) map to
	// bright black rather than black.
	brightBlackMin = 0b0100_0000
	brightBlackMax = 0b1000_0000
)

// AnsiFromRGB picks the ANSI color closest to an RGB triplet. The top bit of each
// channel selects the hue (red is bit 0, green bit 1, blue bit 2) and the
// brightness test selects the bright half of the palette.
func AnsiFromRGB(r, g, b uint8) Ansi {
	hue := channelBit(r, 0) | channelBit(g, 1) | channelBit(b, 2)
	var bright uint8
	if rgbIsBright(r, g, b) {
		bright = 8
	}
	return Ansi(bright + hue)
}

func channelBit(channel uint8, index uint) uint8 {
	return (channel >> 7) << index
}

func rgbIsBright(r, g, b uint8) bool {
	return r|g|b >= brightThreshold || rgbIsBrightBlack(r, g, b)
}

func rgbIsBrightBlack(r, g, b uint8) bool {
	return inBrightBlackBand(r) && inBrightBlackBand(g) && inBrightBlackBand(b)
}

func inBrightBlackBand(channel uint8) bool {
	return brightBlackMin <= channel && channel < brightBlackMax
}
