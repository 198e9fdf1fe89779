package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []struct {
		value      uint32
		prefixBits int
	}{
		{10, 5},
		{1337, 5},
		{42, 8},
		{0, 5},
		{127, 7},
		{128, 7},
		{1<<20 + 3, 7},
	}

	for _, tc := range cases {
		dst := appendInteger(nil, tc.value, tc.prefixBits, 0)
		got, n, err := readInteger(dst, tc.prefixBits)
		require.NoError(t, err)
		assert.Equal(t, tc.value, got)
		assert.Equal(t, len(dst), n)
	}
}

func TestIntegerRFC7541Examples(t *testing.T) {
	// RFC 7541 C.1.1: 10 encoded with a 5-bit prefix is a single byte.
	dst := appendInteger(nil, 10, 5, 0)
	assert.Equal(t, []byte{0x0a}, dst)

	// RFC 7541 C.1.2: 1337 encoded with a 5-bit prefix is three bytes.
	dst = appendInteger(nil, 1337, 5, 0)
	assert.Equal(t, []byte{0x1f, 0x9a, 0x0a}, dst)

	// RFC 7541 C.1.3: 42 encoded with an 8-bit prefix is a single byte.
	dst = appendInteger(nil, 42, 8, 0)
	assert.Equal(t, []byte{0x2a}, dst)
}

func TestIntegerTruncated(t *testing.T) {
	_, _, err := readInteger(nil, 5)
	assert.ErrorIs(t, err, ErrTruncated)

	// Starts a multi-byte sequence but never terminates.
	_, _, err = readInteger([]byte{0x1f, 0x9a}, 5)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestIntegerOverflow(t *testing.T) {
	// Continuation bytes that would push the value past 2^32-1.
	huge := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, _, err := readInteger(huge, 8)
	assert.ErrorIs(t, err, ErrIntegerOverflow)
}
