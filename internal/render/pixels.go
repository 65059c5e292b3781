package render

import "image/color"

// fillStateRGBA converts presentation states (0 floor, non-zero wall)
// into RGBA pixels in buf.
func fillStateRGBA(buf []byte, states []uint8, wall, floor color.Color) {
	rW, gW, bW, aW := wall.RGBA()
	rF, gF, bF, aF := floor.RGBA()
	for i, s := range states {
		base := i * 4
		if s != 0 {
			buf[base+0] = uint8(rW >> 8)
			buf[base+1] = uint8(gW >> 8)
			buf[base+2] = uint8(bW >> 8)
			buf[base+3] = uint8(aW >> 8)
			continue
		}
		buf[base+0] = uint8(rF >> 8)
		buf[base+1] = uint8(gF >> 8)
		buf[base+2] = uint8(bF >> 8)
		buf[base+3] = uint8(aF >> 8)
	}
}
