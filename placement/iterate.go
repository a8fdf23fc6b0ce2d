package placement

// FilledPixels returns a range-over-func iterator yielding the (x, y) of
// every pixel placed so far, in raster order. Intended for a caller's
// image encoder (see package canvas), which pairs each coordinate with the
// sRGB value it recorded at the matching Place call.
func (e *Engine) FilledPixels() func(yield func(x, y int) bool) {
	return func(yield func(x, y int) bool) {
		for y := 0; y < e.height; y++ {
			for x := 0; x < e.width; x++ {
				if !e.pixels[e.index(x, y)].filled {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
