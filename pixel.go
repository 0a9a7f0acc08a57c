package rastercore

// RGBA8 is a 4-channel, 8-bit-per-channel, non-premultiplied color, the
// pixel type spec.md's to_image() targets. It mirrors the teacher's
// internal/image FormatRGBA8 byte layout (R, G, B, A order).
type RGBA8 struct {
	R, G, B, A uint8
}

// Bytes returns the pixel in packed R, G, B, A order, satisfying Byter.
func (c RGBA8) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}
