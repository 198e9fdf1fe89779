// Package hpack implements an RFC 7541 HPACK codec: the integer and string
// wire formats, the Huffman code for literal octets, the static and dynamic
// header tables, and the representation decoder/encoder that sits on top of
// them.
package hpack

// HeaderField is a single (name, value) pair as it appears in a header list.
type HeaderField struct {
	Name  string
	Value string

	// Sensitive marks a field the encoder never inserts into the dynamic
	// table. It is emitted as literal-never-indexed unless it exactly matches
	// an existing table entry, in which case it is emitted as Indexed.
	Sensitive bool

	// NeverIndexed is set by the decoder when the representation it read was
	// literal-never-indexed. Callers forwarding this field onward MUST NOT
	// re-encode it with incremental indexing (RFC 7541 §7.1).
	NeverIndexed bool
}

// Size is the field's HPACK accounting size: the sum of the name and value
// octet lengths plus the 32-byte per-entry overhead RFC 7541 §4.1 specifies.
func (h HeaderField) Size() uint32 {
	return uint32(len(h.Name)+len(h.Value)) + entryOverhead
}

const entryOverhead = 32

// equalASCIIFold reports whether a and b are equal under ASCII case-folding.
// Header names are compared case-insensitively for indexing purposes; values
// are always compared byte-exact.
func equalASCIIFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
