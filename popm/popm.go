// Package popm converts between the legacy ID3v2 POPM single-byte rating and
// the normalized 0.0-1.0 scale. The two directions use fixed, intentionally
// asymmetric quantization tables: a round trip lands in the same bucket, not
// necessarily on the same byte.
package popm

// ToRating quantizes a POPM byte into the normalized scale.
func ToRating(b uint8) float64 {
	switch {
	case b < 0x01:
		return 0.0
	case b < 0x40:
		return 0.20 // 1 star
	case b < 0x80:
		return 0.40 // 2 stars
	case b < 0xC0:
		return 0.60 // 3 stars
	case b < 0xFC: // some players store 5 stars as 0xFC
		return 0.80 // 4 stars
	}
	return 1.0 // 5 stars
}

// FromRating quantizes a normalized rating into a POPM byte.
func FromRating(rating float64) uint8 {
	switch {
	case rating < 0.20:
		return 0x00
	case rating < 0.40:
		return 0x01
	case rating < 0.60:
		return 0x40
	case rating < 0.80:
		return 0x80
	case rating < 1.0:
		return 0xC0
	}
	return 0xFF
}
