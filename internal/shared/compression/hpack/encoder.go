package hpack

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Encoder compresses a header list into an HPACK-encoded block. Each
// connection direction must use its own Encoder - the dynamic table it
// carries is connection state, not a stateless codec parameter.
type Encoder struct {
	mu sync.Mutex

	dynamicTable  *dynamicTable
	neverIndex    map[string]struct{}
	peerMaxSize   uint32

	log *zap.Logger
}

// NewEncoder creates an Encoder from cfg. A nil logger defaults to a no-op
// logger.
func NewEncoder(cfg Config, log *zap.Logger) *Encoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Encoder{
		dynamicTable: newDynamicTable(cfg.InitialTableSize),
		neverIndex:   cfg.neverIndexSet(),
		peerMaxSize:  cfg.PeerMaxTableSize,
		log:          log,
	}
}

// Encode compresses fields into one HPACK header block, in order. A field
// that exactly matches a static or dynamic table entry is emitted as
// Indexed. Otherwise, fields marked Sensitive are emitted as
// literal-never-indexed, regardless of NeverIndexNames. Sensitive fields are
// never inserted into the dynamic table.
func (e *Encoder) Encode(fields []HeaderField) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []byte
	for _, f := range fields {
		var err error
		out, err = e.encodeField(out, f)
		if err != nil {
			return nil, fmt.Errorf("hpack: encode header %q: %w", f.Name, err)
		}
	}
	return out, nil
}

func (e *Encoder) encodeField(dst []byte, f HeaderField) ([]byte, error) {
	if idx, ok := e.findExact(f.Name, f.Value); ok {
		return appendIndexedHeaderField(dst, idx), nil
	}

	if f.Sensitive {
		nameIdx, _ := e.findNameIndex(f.Name)
		e.log.Debug("encoding sensitive field as never-indexed", zap.String("name", f.Name))
		return appendLiteralNeverIndexed(dst, nameIdx, f.Name, f.Value), nil
	}

	if _, blocked := e.neverIndex[f.Name]; blocked {
		nameIdx, _ := e.findNameIndex(f.Name)
		return appendLiteralWithoutIndexing(dst, nameIdx, f.Name, f.Value), nil
	}

	nameIdx, _ := e.findNameIndex(f.Name)
	out := appendLiteralIncrementalIndexing(dst, nameIdx, f.Name, f.Value)
	e.dynamicTable.insert(f.Name, f.Value)
	return out, nil
}

// findExact looks up an exact (name, value) match across the combined
// index space, static table first.
func (e *Encoder) findExact(name, value string) (uint32, bool) {
	if idx, ok := getStaticTable().findExact(name, value); ok {
		return idx, true
	}
	if idx, ok := e.dynamicTable.findExact(name, value); ok {
		return staticTableSize + idx, true
	}
	return 0, false
}

// findNameIndex looks up any entry with a matching name, static table
// first, returning 0 if the name never appears so callers emit a literal
// name.
func (e *Encoder) findNameIndex(name string) (uint32, bool) {
	if idx, ok := getStaticTable().findName(name); ok {
		return idx, true
	}
	if idx, ok := e.dynamicTable.findName(name); ok {
		return staticTableSize + idx, true
	}
	return 0, false
}

// SetPeerMaxTableSize updates the ceiling this encoder's own dynamic table
// may grow to when it chooses to emit a size update, and shrinks the table
// immediately if it currently exceeds the new ceiling.
func (e *Encoder) SetPeerMaxTableSize(size uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.peerMaxSize = size
	if e.dynamicTable.maxTableSize() > size {
		e.dynamicTable.setMaxSize(size)
	}
}

// Resize emits a dynamic table size update representation and applies it
// locally. newSize must not exceed the peer-signaled maximum.
func (e *Encoder) Resize(dst []byte, newSize uint32) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if newSize > e.peerMaxSize {
		return nil, fmt.Errorf("hpack: resize %d exceeds peer max %d: %w", newSize, e.peerMaxSize, ErrCapacityExceeded)
	}
	e.dynamicTable.setMaxSize(newSize)
	e.log.Debug("encoder dynamic table resized", zap.Uint32("new_size", newSize))
	return appendTableSizeUpdate(dst, newSize), nil
}

// TableSize reports the encoder's dynamic table's current HPACK-accounting
// size.
func (e *Encoder) TableSize() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dynamicTable.currentSize()
}
