package main

import "image/color"

// fillBinaryRGBA converts cell bytes (0 dead, nonzero alive) into RGBA pixels in buf
func fillBinaryRGBA(buf []byte, cells []byte, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// cellAt maps a cursor position in logical pixels to a cell, clamping to the last row and column
func cellAt(x, y, scale, width, height int) (row, col int, ok bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return 0, 0, false
	}
	return min(y/scale, height-1), min(x/scale, width-1), true
}
