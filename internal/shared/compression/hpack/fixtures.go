package hpack

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/vmihailenco/msgpack/v5"
)

// VectorHeader is one header field in a test vector, distinct from
// HeaderField so vector files can be authored as plain name/value pairs
// without the decoder-only NeverIndexed flag leaking into fixture data.
type VectorHeader struct {
	Name  string `json:"name" msgpack:"name"`
	Value string `json:"value" msgpack:"value"`
}

// Vector is one entry of an encode/decode conformance fixture: the header
// list it represents and the wire bytes HPACK should produce or consume for
// it, plus the table size the codec started the step with.
type Vector struct {
	Description  string         `json:"description" msgpack:"description"`
	TableSize    uint32         `json:"table_size" msgpack:"table_size"`
	Headers      []VectorHeader `json:"headers" msgpack:"headers"`
	WireHex      string         `json:"wire_hex" msgpack:"wire_hex"`
}

// VectorFile is a sequence of Vectors applied in order against one
// connection's encoder or decoder state, mirroring RFC 7541 Appendix C's
// multi-step examples where each step's table carries over from the last.
type VectorFile struct {
	Name    string   `json:"name" msgpack:"name"`
	Vectors []Vector `json:"vectors" msgpack:"vectors"`
}

// LoadVectors decodes a VectorFile, auto-detecting JSON vs msgpack by
// leading byte: '{' means JSON, anything else is msgpack.
func LoadVectors(data []byte) (*VectorFile, error) {
	if len(data) == 0 {
		return nil, errors.New("hpack: empty vector file")
	}

	var vf VectorFile
	if data[0] == '{' {
		if err := json.Unmarshal(data, &vf); err != nil {
			return nil, fmt.Errorf("hpack: decode json vectors: %w", err)
		}
	} else {
		if err := msgpack.Unmarshal(data, &vf); err != nil {
			return nil, fmt.Errorf("hpack: decode msgpack vectors: %w", err)
		}
	}
	return &vf, nil
}
