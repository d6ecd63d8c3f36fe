package blend

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values with clamping to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// lerp moves d toward r by coverage c (0 keeps d, 255 yields r).
func lerp(d, r, c byte) byte {
	switch c {
	case 0:
		return d
	case 255:
		return r
	}
	if r >= d {
		return d + mulDiv255(r-d, c)
	}
	return d - mulDiv255(d-r, c)
}

// Span composites src onto dst pixel by pixel. Both slices hold premultiplied
// RGBA quadruples; the shorter one bounds the operation.
func Span(mode Mode, dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	switch mode {
	case Source:
		copy(dst[:n], src[:n])
		return
	case Destination:
		return
	}
	fn := GetFunc(mode)
	for i := 0; i < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// FillSpan composites a solid premultiplied color onto dst, one pixel per
// coverage byte. Coverage blends the operator result with the untouched
// destination, so partially covered edge pixels of a Clear fill are only
// partially cleared.
func FillSpan(mode Mode, dst, coverage []byte, r, g, b, a byte) {
	fn := GetFunc(mode)
	for x, c := range coverage {
		if c == 0 {
			continue
		}
		i := x * 4
		if i+3 >= len(dst) {
			return
		}
		dr, dg, db, da := dst[i], dst[i+1], dst[i+2], dst[i+3]
		or, og, ob, oa := fn(r, g, b, a, dr, dg, db, da)
		dst[i] = lerp(dr, or, c)
		dst[i+1] = lerp(dg, og, c)
		dst[i+2] = lerp(db, ob, c)
		dst[i+3] = lerp(da, oa, c)
	}
}
