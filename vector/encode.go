package vector

import (
	"strconv"
)

// Encode renders value as a width bit two's-complement string, most
// significant bit first. Values from -2^(width-1) up to 2^width-1 are
// accepted; negative values wrap modulo 2^width.
func Encode(value int64, width int) (bits string, err error) {
	if !inRange(value, width) {
		err = ErrRange{Value: strconv.FormatInt(value, 10), Width: width}
		return
	}

	word := uint64(value) & ((uint64(1) << width) - 1)

	buf := make([]byte, width)
	for n := range width {
		if word&(1<<(width-1-n)) != 0 {
			buf[n] = '1'
		} else {
			buf[n] = '0'
		}
	}

	bits = string(buf)
	return
}

// inRange returns true if value is representable in width bits, either as
// a signed or as an unsigned integer.
func inRange(value int64, width int) bool {
	if width < 1 || width > MAX_BITS {
		return false
	}

	lo := -(int64(1) << (width - 1))
	hi := (int64(1) << width) - 1
	return value >= lo && value <= hi
}

// Decode parses a most significant bit first string back into its
// unsigned value.
func Decode(bits string) (value uint64, err error) {
	if len(bits) == 0 || len(bits) > 64 {
		err = ErrBitInvalid
		return
	}

	for n := range len(bits) {
		value <<= 1
		switch bits[n] {
		case '0':
		case '1':
			value |= 1
		default:
			err = ErrBitInvalid
			value = 0
			return
		}
	}

	return
}

// IsBits returns true if s is exactly width characters of '0' or '1'.
func IsBits(s string, width int) bool {
	if len(s) != width {
		return false
	}

	for n := range len(s) {
		if s[n] != '0' && s[n] != '1' {
			return false
		}
	}

	return true
}
