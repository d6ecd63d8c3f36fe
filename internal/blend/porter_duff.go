// Package blend implements the Porter-Duff compositing operators used by the
// canvas package.
//
// All operations work with premultiplied alpha values in the range 0-255, the
// same layout as image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	Clear           Mode = iota // Result: 0 (clear destination)
	Source                      // Result: S (replace with source)
	Destination                 // Result: D (keep destination)
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	SourceIn                    // Result: S*Da
	DestinationIn               // Result: D*Sa
	SourceOut                   // Result: S*(1-Da)
	DestinationOut              // Result: D*(1-Sa)
	SourceAtop                  // Result: S*Da + D*(1-Sa)
	DestinationAtop             // Result: S*(1-Da) + D*Sa
	Xor                         // Result: S*(1-Da) + D*(1-Sa)
	Plus                        // Result: S + D (clamped to 255)
)

var modeNames = [...]string{
	Clear:           "clear",
	Source:          "src",
	Destination:     "dst",
	SourceOver:      "src-over",
	DestinationOver: "dst-over",
	SourceIn:        "src-in",
	DestinationIn:   "dst-in",
	SourceOut:       "src-out",
	DestinationOut:  "dst-out",
	SourceAtop:      "src-atop",
	DestinationAtop: "dst-atop",
	Xor:             "xor",
	Plus:            "plus",
}

// String returns the short operator name, e.g. "dst-in".
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns the source-over function for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Destination:
		return blendDestination
	case SourceOver:
		return blendSourceOver
	case DestinationOver:
		return blendDestinationOver
	case SourceIn:
		return blendSourceIn
	case DestinationIn:
		return blendDestinationIn
	case SourceOut:
		return blendSourceOut
	case DestinationOut:
		return blendDestinationOut
	case SourceAtop:
		return blendSourceAtop
	case DestinationAtop:
		return blendDestinationAtop
	case Xor:
		return blendXor
	case Plus:
		return blendPlus
	default:
		return blendSourceOver
	}
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDestination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// blendDestinationIn keeps destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// Formula: S * (1 - Da)
func blendSourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// Formula: D * (1 - Sa)
func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// Formula: S * Da + D * (1 - Sa)
func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// Formula: S * (1 - Da) + D * Sa
func blendDestinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

// Formula: S * (1 - Da) + D * (1 - Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
