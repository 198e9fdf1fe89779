package hpack

// Representation-type leading bit patterns (RFC 7541 §6).
const (
	reprIndexedMask, reprIndexedPattern                   = 0x80, 0x80 // 1xxxxxxx
	reprIncIndexMask, reprIncIndexPattern                 = 0xC0, 0x40 // 01xxxxxx
	reprSizeUpdateMask, reprSizeUpdatePattern              = 0xE0, 0x20 // 001xxxxx
	reprNeverIndexedMask, reprNeverIndexedPattern          = 0xF0, 0x10 // 0001xxxx
	reprWithoutIndexMask, reprWithoutIndexPattern          = 0xF0, 0x00 // 0000xxxx
)

// decodeResult carries everything one decoded representation can produce:
// either a header field (possibly with an insertion already applied to dt),
// or a dynamic table size update.
type decodeResult struct {
	Field          HeaderField
	IsSizeUpdate   bool
	NewMaxSize     uint32
}

// decodeRepresentation reads a single representation from the start of buf,
// dispatching on its leading bits per RFC 7541 §6, and returns the number of
// bytes consumed. Representations that reference the combined static+
// dynamic index space are resolved against dt; representations that insert
// into the dynamic table (incremental indexing) perform that insertion
// in-line against dt. Decoder.Decode passes a staged clone rather than its
// live table precisely so an in-line insertion here never becomes visible
// unless the whole block goes on to parse successfully.
func decodeRepresentation(buf []byte, dt *dynamicTable, maxStringLen int) (decodeResult, int, error) {
	if len(buf) == 0 {
		return decodeResult{}, 0, ErrTruncated
	}
	b := buf[0]

	switch {
	case b&reprIndexedMask == reprIndexedPattern:
		return decodeIndexed(buf, dt)
	case b&reprIncIndexMask == reprIncIndexPattern:
		return decodeLiteral(buf, dt, maxStringLen, 6, true, false)
	case b&reprSizeUpdateMask == reprSizeUpdatePattern:
		return decodeSizeUpdate(buf)
	case b&reprNeverIndexedMask == reprNeverIndexedPattern:
		return decodeLiteral(buf, dt, maxStringLen, 4, false, true)
	case b&reprWithoutIndexMask == reprWithoutIndexPattern:
		return decodeLiteral(buf, dt, maxStringLen, 4, false, false)
	default:
		return decodeResult{}, 0, ErrProtocol
	}
}

// decodeIndexed decodes an Indexed Header Field representation (RFC 7541
// §6.1): the entire field comes from the combined table, identified by a
// single 7-bit-prefixed index. Index 0 is invalid.
func decodeIndexed(buf []byte, dt *dynamicTable) (decodeResult, int, error) {
	idx, n, err := readInteger(buf, 7)
	if err != nil {
		return decodeResult{}, 0, err
	}
	if idx == 0 {
		return decodeResult{}, 0, ErrInvalidIndex
	}
	field, err := lookupCombined(dt, idx)
	if err != nil {
		return decodeResult{}, 0, err
	}
	return decodeResult{Field: field}, n, nil
}

// decodeLiteral decodes a Literal Header Field representation (RFC 7541
// §6.2): prefixBits selects how many low bits of the first byte carry the
// name index (0 meaning "name follows as a literal string"); incremental
// indexes the result into dt on success; neverIndexed marks the field so
// callers never re-index or re-emit it as indexed.
func decodeLiteral(buf []byte, dt *dynamicTable, maxStringLen int, prefixBits int, incremental, neverIndexed bool) (decodeResult, int, error) {
	nameIdx, n, err := readInteger(buf, prefixBits)
	if err != nil {
		return decodeResult{}, 0, err
	}
	consumed := n

	var name string
	if nameIdx == 0 {
		s, m, err := readString(buf[consumed:], maxStringLen)
		if err != nil {
			return decodeResult{}, 0, err
		}
		name = s
		consumed += m
	} else {
		field, err := lookupCombined(dt, nameIdx)
		if err != nil {
			return decodeResult{}, 0, err
		}
		name = field.Name
	}

	value, m, err := readString(buf[consumed:], maxStringLen)
	if err != nil {
		return decodeResult{}, 0, err
	}
	consumed += m

	field := HeaderField{Name: name, Value: value, NeverIndexed: neverIndexed}
	if incremental {
		dt.insert(name, value)
	}
	return decodeResult{Field: field}, consumed, nil
}

// decodeSizeUpdate decodes a Dynamic Table Size Update representation (RFC
// 7541 §6.3). The caller is responsible for validating the new size against
// the peer-signaled maximum and applying it to the table - this function
// only parses the wire form.
func decodeSizeUpdate(buf []byte) (decodeResult, int, error) {
	newSize, n, err := readInteger(buf, 5)
	if err != nil {
		return decodeResult{}, 0, err
	}
	return decodeResult{IsSizeUpdate: true, NewMaxSize: newSize}, n, nil
}

// lookupCombined resolves an index in the combined static+dynamic index
// space: 1..61 are static, 62+ are dynamic (RFC 7541 §2.3.3).
func lookupCombined(dt *dynamicTable, idx uint32) (HeaderField, error) {
	if idx <= staticTableSize {
		return getStaticTable().get(idx)
	}
	return dt.get(idx - staticTableSize)
}

// appendIndexedHeaderField appends an Indexed Header Field representation
// for the given combined-space index.
func appendIndexedHeaderField(dst []byte, idx uint32) []byte {
	return appendInteger(dst, idx, 7, 0x80)
}

// appendLiteralIncrementalIndexing appends a Literal Header Field with
// Incremental Indexing representation. nameIdx is 0 when the name itself
// must be emitted as a literal string.
func appendLiteralIncrementalIndexing(dst []byte, nameIdx uint32, name, value string) []byte {
	dst = appendInteger(dst, nameIdx, 6, 0x40)
	if nameIdx == 0 {
		dst = appendString(dst, name)
	}
	return appendString(dst, value)
}

// appendLiteralWithoutIndexing appends a Literal Header Field without
// Indexing representation.
func appendLiteralWithoutIndexing(dst []byte, nameIdx uint32, name, value string) []byte {
	dst = appendInteger(dst, nameIdx, 4, 0x00)
	if nameIdx == 0 {
		dst = appendString(dst, name)
	}
	return appendString(dst, value)
}

// appendLiteralNeverIndexed appends a Literal Header Field Never Indexed
// representation (RFC 7541 §6.2.3) - used for sensitive fields, which must
// never be promoted into the dynamic table by any downstream HPACK hop.
func appendLiteralNeverIndexed(dst []byte, nameIdx uint32, name, value string) []byte {
	dst = appendInteger(dst, nameIdx, 4, 0x10)
	if nameIdx == 0 {
		dst = appendString(dst, name)
	}
	return appendString(dst, value)
}

// appendTableSizeUpdate appends a Dynamic Table Size Update representation.
func appendTableSizeUpdate(dst []byte, newSize uint32) []byte {
	return appendInteger(dst, newSize, 5, 0x20)
}
