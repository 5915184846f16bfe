package lzvar

// widthController tracks the current codeword width. Encoder and decoder
// each run one, and both must apply grow at the same logical points in the
// stream: the encoder immediately before binding a new code, the decoder
// immediately before reading the next codeword. Both calls observe the same
// nextCode counter value, which keeps the two in lockstep.
type widthController struct {
	w    uint8
	minW uint8
	maxW uint8
}

func newWidthController(minW, maxW uint8) widthController {
	return widthController{w: minW, minW: minW, maxW: maxW}
}

// grow widens the codeword by one bit if nextCode no longer fits at the
// current width. Never called twice for the same nextCode value on one
// side, so a single increment suffices.
func (wc *widthController) grow(nextCode int) {
	if nextCode >= 1<<wc.w && wc.w < wc.maxW {
		wc.w++
	}
}

// reset returns the width to its minimum. Only a RESET event does this.
func (wc *widthController) reset() {
	wc.w = wc.minW
}

// bits returns the current codeword width.
func (wc *widthController) bits() uint8 {
	return wc.w
}
