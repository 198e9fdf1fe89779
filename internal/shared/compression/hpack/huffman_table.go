package hpack

// huffmanCode is one entry of the canonical RFC 7541 Appendix B Huffman
// code: bits is the number of significant bits in code, left-justified
// would overstate it - code holds the bit pattern right-aligned (as it
// would be read MSB-first), matching the table haproxy's mini-h2
// experiment ships in hpack-huff.h/mini-enc.c.
type huffmanCode struct {
	code uint32
	bits uint8
}

// huffmanTable is the 257-entry canonical Huffman code: symbols 0-255 are
// the encoded octets, symbol 256 is EOS. Transcribed from
// original_source/mini-enc.c's ht[257] literal.
var huffmanTable = [257]huffmanCode{
		{code: 0x00001ff8, bits: 13},
		{code: 0x007fffd8, bits: 23},
		{code: 0x0fffffe2, bits: 28},
		{code: 0x0fffffe3, bits: 28},
		{code: 0x0fffffe4, bits: 28},
		{code: 0x0fffffe5, bits: 28},
		{code: 0x0fffffe6, bits: 28},
		{code: 0x0fffffe7, bits: 28},
		{code: 0x0fffffe8, bits: 28},
		{code: 0x00ffffea, bits: 24},
		{code: 0x3ffffffc, bits: 30},
		{code: 0x0fffffe9, bits: 28},
		{code: 0x0fffffea, bits: 28},
		{code: 0x3ffffffd, bits: 30},
		{code: 0x0fffffeb, bits: 28},
		{code: 0x0fffffec, bits: 28},
		{code: 0x0fffffed, bits: 28},
		{code: 0x0fffffee, bits: 28},
		{code: 0x0fffffef, bits: 28},
		{code: 0x0ffffff0, bits: 28},
		{code: 0x0ffffff1, bits: 28},
		{code: 0x0ffffff2, bits: 28},
		{code: 0x3ffffffe, bits: 30},
		{code: 0x0ffffff3, bits: 28},
		{code: 0x0ffffff4, bits: 28},
		{code: 0x0ffffff5, bits: 28},
		{code: 0x0ffffff6, bits: 28},
		{code: 0x0ffffff7, bits: 28},
		{code: 0x0ffffff8, bits: 28},
		{code: 0x0ffffff9, bits: 28},
		{code: 0x0ffffffa, bits: 28},
		{code: 0x0ffffffb, bits: 28},
		{code: 0x00000014, bits: 6},
		{code: 0x000003f8, bits: 10},
		{code: 0x000003f9, bits: 10},
		{code: 0x00000ffa, bits: 12},
		{code: 0x00001ff9, bits: 13},
		{code: 0x00000015, bits: 6},
		{code: 0x000000f8, bits: 8},
		{code: 0x000007fa, bits: 11},
		{code: 0x000003fa, bits: 10},
		{code: 0x000003fb, bits: 10},
		{code: 0x000000f9, bits: 8},
		{code: 0x000007fb, bits: 11},
		{code: 0x000000fa, bits: 8},
		{code: 0x00000016, bits: 6},
		{code: 0x00000017, bits: 6},
		{code: 0x00000018, bits: 6},
		{code: 0x00000000, bits: 5},
		{code: 0x00000001, bits: 5},
		{code: 0x00000002, bits: 5},
		{code: 0x00000019, bits: 6},
		{code: 0x0000001a, bits: 6},
		{code: 0x0000001b, bits: 6},
		{code: 0x0000001c, bits: 6},
		{code: 0x0000001d, bits: 6},
		{code: 0x0000001e, bits: 6},
		{code: 0x0000001f, bits: 6},
		{code: 0x0000005c, bits: 7},
		{code: 0x000000fb, bits: 8},
		{code: 0x00007ffc, bits: 15},
		{code: 0x00000020, bits: 6},
		{code: 0x00000ffb, bits: 12},
		{code: 0x000003fc, bits: 10},
		{code: 0x00001ffa, bits: 13},
		{code: 0x00000021, bits: 6},
		{code: 0x0000005d, bits: 7},
		{code: 0x0000005e, bits: 7},
		{code: 0x0000005f, bits: 7},
		{code: 0x00000060, bits: 7},
		{code: 0x00000061, bits: 7},
		{code: 0x00000062, bits: 7},
		{code: 0x00000063, bits: 7},
		{code: 0x00000064, bits: 7},
		{code: 0x00000065, bits: 7},
		{code: 0x00000066, bits: 7},
		{code: 0x00000067, bits: 7},
		{code: 0x00000068, bits: 7},
		{code: 0x00000069, bits: 7},
		{code: 0x0000006a, bits: 7},
		{code: 0x0000006b, bits: 7},
		{code: 0x0000006c, bits: 7},
		{code: 0x0000006d, bits: 7},
		{code: 0x0000006e, bits: 7},
		{code: 0x0000006f, bits: 7},
		{code: 0x00000070, bits: 7},
		{code: 0x00000071, bits: 7},
		{code: 0x00000072, bits: 7},
		{code: 0x000000fc, bits: 8},
		{code: 0x00000073, bits: 7},
		{code: 0x000000fd, bits: 8},
		{code: 0x00001ffb, bits: 13},
		{code: 0x0007fff0, bits: 19},
		{code: 0x00001ffc, bits: 13},
		{code: 0x00003ffc, bits: 14},
		{code: 0x00000022, bits: 6},
		{code: 0x00007ffd, bits: 15},
		{code: 0x00000003, bits: 5},
		{code: 0x00000023, bits: 6},
		{code: 0x00000004, bits: 5},
		{code: 0x00000024, bits: 6},
		{code: 0x00000005, bits: 5},
		{code: 0x00000025, bits: 6},
		{code: 0x00000026, bits: 6},
		{code: 0x00000027, bits: 6},
		{code: 0x00000006, bits: 5},
		{code: 0x00000074, bits: 7},
		{code: 0x00000075, bits: 7},
		{code: 0x00000028, bits: 6},
		{code: 0x00000029, bits: 6},
		{code: 0x0000002a, bits: 6},
		{code: 0x00000007, bits: 5},
		{code: 0x0000002b, bits: 6},
		{code: 0x00000076, bits: 7},
		{code: 0x0000002c, bits: 6},
		{code: 0x00000008, bits: 5},
		{code: 0x00000009, bits: 5},
		{code: 0x0000002d, bits: 6},
		{code: 0x00000077, bits: 7},
		{code: 0x00000078, bits: 7},
		{code: 0x00000079, bits: 7},
		{code: 0x0000007a, bits: 7},
		{code: 0x0000007b, bits: 7},
		{code: 0x00007ffe, bits: 15},
		{code: 0x000007fc, bits: 11},
		{code: 0x00003ffd, bits: 14},
		{code: 0x00001ffd, bits: 13},
		{code: 0x0ffffffc, bits: 28},
		{code: 0x000fffe6, bits: 20},
		{code: 0x003fffd2, bits: 22},
		{code: 0x000fffe7, bits: 20},
		{code: 0x000fffe8, bits: 20},
		{code: 0x003fffd3, bits: 22},
		{code: 0x003fffd4, bits: 22},
		{code: 0x003fffd5, bits: 22},
		{code: 0x007fffd9, bits: 23},
		{code: 0x003fffd6, bits: 22},
		{code: 0x007fffda, bits: 23},
		{code: 0x007fffdb, bits: 23},
		{code: 0x007fffdc, bits: 23},
		{code: 0x007fffdd, bits: 23},
		{code: 0x007fffde, bits: 23},
		{code: 0x00ffffeb, bits: 24},
		{code: 0x007fffdf, bits: 23},
		{code: 0x00ffffec, bits: 24},
		{code: 0x00ffffed, bits: 24},
		{code: 0x003fffd7, bits: 22},
		{code: 0x007fffe0, bits: 23},
		{code: 0x00ffffee, bits: 24},
		{code: 0x007fffe1, bits: 23},
		{code: 0x007fffe2, bits: 23},
		{code: 0x007fffe3, bits: 23},
		{code: 0x007fffe4, bits: 23},
		{code: 0x001fffdc, bits: 21},
		{code: 0x003fffd8, bits: 22},
		{code: 0x007fffe5, bits: 23},
		{code: 0x003fffd9, bits: 22},
		{code: 0x007fffe6, bits: 23},
		{code: 0x007fffe7, bits: 23},
		{code: 0x00ffffef, bits: 24},
		{code: 0x003fffda, bits: 22},
		{code: 0x001fffdd, bits: 21},
		{code: 0x000fffe9, bits: 20},
		{code: 0x003fffdb, bits: 22},
		{code: 0x003fffdc, bits: 22},
		{code: 0x007fffe8, bits: 23},
		{code: 0x007fffe9, bits: 23},
		{code: 0x001fffde, bits: 21},
		{code: 0x007fffea, bits: 23},
		{code: 0x003fffdd, bits: 22},
		{code: 0x003fffde, bits: 22},
		{code: 0x00fffff0, bits: 24},
		{code: 0x001fffdf, bits: 21},
		{code: 0x003fffdf, bits: 22},
		{code: 0x007fffeb, bits: 23},
		{code: 0x007fffec, bits: 23},
		{code: 0x001fffe0, bits: 21},
		{code: 0x001fffe1, bits: 21},
		{code: 0x003fffe0, bits: 22},
		{code: 0x001fffe2, bits: 21},
		{code: 0x007fffed, bits: 23},
		{code: 0x003fffe1, bits: 22},
		{code: 0x007fffee, bits: 23},
		{code: 0x007fffef, bits: 23},
		{code: 0x000fffea, bits: 20},
		{code: 0x003fffe2, bits: 22},
		{code: 0x003fffe3, bits: 22},
		{code: 0x003fffe4, bits: 22},
		{code: 0x007ffff0, bits: 23},
		{code: 0x003fffe5, bits: 22},
		{code: 0x003fffe6, bits: 22},
		{code: 0x007ffff1, bits: 23},
		{code: 0x03ffffe0, bits: 26},
		{code: 0x03ffffe1, bits: 26},
		{code: 0x000fffeb, bits: 20},
		{code: 0x0007fff1, bits: 19},
		{code: 0x003fffe7, bits: 22},
		{code: 0x007ffff2, bits: 23},
		{code: 0x003fffe8, bits: 22},
		{code: 0x01ffffec, bits: 25},
		{code: 0x03ffffe2, bits: 26},
		{code: 0x03ffffe3, bits: 26},
		{code: 0x03ffffe4, bits: 26},
		{code: 0x07ffffde, bits: 27},
		{code: 0x07ffffdf, bits: 27},
		{code: 0x03ffffe5, bits: 26},
		{code: 0x00fffff1, bits: 24},
		{code: 0x01ffffed, bits: 25},
		{code: 0x0007fff2, bits: 19},
		{code: 0x001fffe3, bits: 21},
		{code: 0x03ffffe6, bits: 26},
		{code: 0x07ffffe0, bits: 27},
		{code: 0x07ffffe1, bits: 27},
		{code: 0x03ffffe7, bits: 26},
		{code: 0x07ffffe2, bits: 27},
		{code: 0x00fffff2, bits: 24},
		{code: 0x001fffe4, bits: 21},
		{code: 0x001fffe5, bits: 21},
		{code: 0x03ffffe8, bits: 26},
		{code: 0x03ffffe9, bits: 26},
		{code: 0x0ffffffd, bits: 28},
		{code: 0x07ffffe3, bits: 27},
		{code: 0x07ffffe4, bits: 27},
		{code: 0x07ffffe5, bits: 27},
		{code: 0x000fffec, bits: 20},
		{code: 0x00fffff3, bits: 24},
		{code: 0x000fffed, bits: 20},
		{code: 0x001fffe6, bits: 21},
		{code: 0x003fffe9, bits: 22},
		{code: 0x001fffe7, bits: 21},
		{code: 0x001fffe8, bits: 21},
		{code: 0x007ffff3, bits: 23},
		{code: 0x003fffea, bits: 22},
		{code: 0x003fffeb, bits: 22},
		{code: 0x01ffffee, bits: 25},
		{code: 0x01ffffef, bits: 25},
		{code: 0x00fffff4, bits: 24},
		{code: 0x00fffff5, bits: 24},
		{code: 0x03ffffea, bits: 26},
		{code: 0x007ffff4, bits: 23},
		{code: 0x03ffffeb, bits: 26},
		{code: 0x07ffffe6, bits: 27},
		{code: 0x03ffffec, bits: 26},
		{code: 0x03ffffed, bits: 26},
		{code: 0x07ffffe7, bits: 27},
		{code: 0x07ffffe8, bits: 27},
		{code: 0x07ffffe9, bits: 27},
		{code: 0x07ffffea, bits: 27},
		{code: 0x07ffffeb, bits: 27},
		{code: 0x0ffffffe, bits: 28},
		{code: 0x07ffffec, bits: 27},
		{code: 0x07ffffed, bits: 27},
		{code: 0x07ffffee, bits: 27},
		{code: 0x07ffffef, bits: 27},
		{code: 0x07fffff0, bits: 27},
		{code: 0x03ffffee, bits: 26},
		{code: 0x3fffffff, bits: 30},
}

const huffmanEOS = 256
