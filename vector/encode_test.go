package vector

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value    int64
		width    int
		expected string
	}){
		{0, 1, "0"},
		{1, 1, "1"},
		{-1, 1, "1"},
		{5, 8, "00000101"},
		{-1, 8, "11111111"},
		{-128, 8, "10000000"},
		{255, 8, "11111111"},
		{8, 4, "1000"},
		{-8, 4, "1000"},
		{-2147483648, 32, "1" + strings.Repeat("0", 31)},
		{4294967295, 32, strings.Repeat("1", 32)},
	}

	for _, entry := range table {
		bits, err := Encode(entry.value, entry.width)
		assert.NoError(err, entry.expected)
		assert.Equal(entry.expected, bits)
	}
}

func TestEncodeRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value int64
		width int
	}){
		{2, 1},
		{-2, 1},
		{256, 8},
		{-129, 8},
		{0, 0},
		{0, 64},
		{1 << 32, 32},
	}

	for _, entry := range table {
		bits, err := Encode(entry.value, entry.width)
		var rangeErr ErrRange
		assert.True(errors.As(err, &rangeErr), "%v/%v", entry.value, entry.width)
		assert.Equal(entry.width, rangeErr.Width)
		assert.Empty(bits)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(1, 2))

	for _, width := range []int{1, 2, 3, 4, 7, 8, 16, 31, 32, 33, 62, 63} {
		lo := -(int64(1) << (width - 1))
		hi := (int64(1) << width) - 1
		mask := (uint64(1) << width) - 1

		values := []int64{lo, lo + 1, -1, 0, 1, hi - 1, hi}
		span := uint64(hi) - uint64(lo) + 1
		for range 64 {
			offset := rng.Uint64()
			if span != 0 {
				offset = rng.Uint64N(span)
			}
			values = append(values, lo+int64(offset))
		}

		for _, value := range values {
			if value < lo || value > hi {
				continue
			}
			bits, err := Encode(value, width)
			assert.NoError(err)
			assert.Len(bits, width)
			assert.Empty(strings.Trim(bits, "01"))

			decoded, err := Decode(bits)
			assert.NoError(err)
			assert.Equal(uint64(value)&mask, decoded, "%v/%v", value, width)
		}
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	value, err := Decode("1010")
	assert.NoError(err)
	assert.Equal(uint64(10), value)

	_, err = Decode("10x0")
	assert.ErrorIs(err, ErrBitInvalid)

	_, err = Decode("")
	assert.ErrorIs(err, ErrBitInvalid)

	_, err = Decode(strings.Repeat("1", 65))
	assert.ErrorIs(err, ErrBitInvalid)
}

func TestIsBits(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsBits("0101", 4))
	assert.False(IsBits("0101", 3))
	assert.False(IsBits("01a1", 4))
	assert.True(IsBits("", 0))
}
