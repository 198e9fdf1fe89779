package hpack

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Decoder decompresses an HPACK-encoded header block into a header list.
// Each connection direction must use its own Decoder - the dynamic table it
// carries is connection state, not a stateless codec parameter.
type Decoder struct {
	mu sync.Mutex

	dynamicTable *dynamicTable
	maxStringLen int
	peerMaxSize  uint32

	log *zap.Logger
}

// NewDecoder creates a Decoder from cfg. A nil logger defaults to a no-op
// logger so callers that don't care about HPACK-level diagnostics don't
// have to plumb one through.
func NewDecoder(cfg Config, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	maxStringLen := cfg.MaxStringLength
	if maxStringLen == 0 {
		maxStringLen = DefaultMaxStringLength
	}
	return &Decoder{
		dynamicTable: newDynamicTable(cfg.InitialTableSize),
		maxStringLen: maxStringLen,
		peerMaxSize:  cfg.PeerMaxTableSize,
		log:          log,
	}
}

// Decode decompresses one complete header block. Representations are
// applied to a staged clone of the dynamic table, not the live one; only
// once the whole block parses without error does that clone become the
// decoder's table. This gives RFC 7541 §4.3's "decoding error is
// unrecoverable" its correct meaning - the connection must be torn down
// because correct decompression state is unrecoverable, not because this
// decoder is left with a half-applied mutation a caller might inspect.
func (d *Decoder) Decode(block []byte) ([]HeaderField, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	staging := d.dynamicTable.clone()

	var fields []HeaderField
	sawHeaderRepr := false
	offset := 0

	for offset < len(block) {
		res, n, err := decodeRepresentation(block[offset:], staging, d.maxStringLen)
		if err != nil {
			d.log.Error("hpack decode failed",
				zap.Int("offset", offset),
				zap.Int("block_len", len(block)),
				zap.Error(err))
			return nil, fmt.Errorf("hpack: decode at offset %d: %w", offset, err)
		}
		offset += n

		if res.IsSizeUpdate {
			if sawHeaderRepr {
				return nil, fmt.Errorf("hpack: table size update after header representation: %w", ErrProtocol)
			}
			if res.NewMaxSize > d.peerMaxSize {
				return nil, fmt.Errorf("hpack: table size update %d exceeds max %d: %w", res.NewMaxSize, d.peerMaxSize, ErrProtocol)
			}
			staging.setMaxSize(res.NewMaxSize)
			d.log.Debug("dynamic table resized", zap.Uint32("new_size", res.NewMaxSize))
			continue
		}

		sawHeaderRepr = true
		fields = append(fields, res.Field)
	}

	d.dynamicTable = staging
	return fields, nil
}

// SetPeerMaxTableSize updates the ceiling a decoded size update must respect
// (RFC 7541 §4.2's SETTINGS_HEADER_TABLE_SIZE, as advertised by this side).
func (d *Decoder) SetPeerMaxTableSize(size uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.peerMaxSize = size
	if d.dynamicTable.maxTableSize() > size {
		d.dynamicTable.setMaxSize(size)
	}
}

// TableSize reports the dynamic table's current HPACK-accounting size, for
// diagnostics and the inspect CLI subcommand.
func (d *Decoder) TableSize() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dynamicTable.currentSize()
}

// TableEntries returns a snapshot of the dynamic table's entries, newest
// first (logical index 1 first).
func (d *Decoder) TableEntries() []HeaderField {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.dynamicTable.len()
	out := make([]HeaderField, n)
	for i := 0; i < n; i++ {
		out[i], _ = d.dynamicTable.get(uint32(i + 1))
	}
	return out
}
