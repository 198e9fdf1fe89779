package hpack

import "fmt"

// appendString appends the HPACK string-literal wire form of s to dst: a
// single H bit (Huffman flag) sharing its byte with a 7-bit length prefix,
// followed by the (possibly Huffman-encoded) octets. Per spec.md §4.7, the
// Huffman form is chosen only when it is strictly shorter than raw.
func appendString(dst []byte, s string) []byte {
	hlen := huffmanEncodedLen(s)
	if hlen < len(s) {
		dst = appendInteger(dst, uint32(hlen), 7, 0x80)
		return huffmanAppend(dst, s)
	}
	dst = appendInteger(dst, uint32(len(s)), 7, 0x00)
	return append(dst, s...)
}

// readString decodes an HPACK string literal from the start of buf: maxLen
// bounds the decoded (post-Huffman) length, per spec.md §4.3. It returns the
// decoded string and the number of wire bytes consumed.
func readString(buf []byte, maxLen int) (value string, consumed int, err error) {
	if len(buf) == 0 {
		return "", 0, ErrTruncated
	}
	huff := buf[0]&0x80 != 0

	length, n, err := readInteger(buf, 7)
	if err != nil {
		return "", 0, fmt.Errorf("read string length: %w", err)
	}
	consumed = n

	if uint64(consumed)+uint64(length) > uint64(len(buf)) {
		return "", 0, ErrTruncated
	}
	raw := buf[consumed : consumed+int(length)]
	consumed += int(length)

	if !huff {
		if len(raw) > maxLen {
			return "", 0, ErrTooLong
		}
		return string(raw), consumed, nil
	}

	decoded, err := huffmanDecode(make([]byte, 0, len(raw)*2), raw, maxLen)
	if err != nil {
		return "", 0, err
	}
	return string(decoded), consumed, nil
}
