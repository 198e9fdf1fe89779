package hpack

import "encoding/binary"

// descSlotBytes is the on-arena size of one descriptor: addr(u32) + nlen(u16)
// + vlen(u16) - 8 bytes, half the HPACK notional 32-byte per-entry overhead.
const descSlotBytes = 8

// dynamicTable implements the HPACK dynamic table (RFC 7541 §2.3.2) as the
// single fixed-size arena the format mandates: one []byte of exactly
// maxSize bytes, split into a low-end descriptor ring (fixed 8-byte
// records, one per live entry) and a high-end payload ring (the name‖value
// byte blobs the descriptors point into). Both regions are circular -
// newest entry inserted at the head, oldest evicted from the tail - and
// share the one backing slice, `arena`.
//
// The descriptor ring's backing length, `wrap`, is a high-water mark: it
// only grows (by exactly the one slot an insert needs) when every slot it
// currently spans is live, and only shrinks back down to the live count via
// defragmentation. A new entry's payload must land in one contiguous run of
// free bytes - it is never split across the arena's wrap point - so two
// disjoint free regions (headroom below the newest payload, tail-room freed
// by evicting the oldest) can leave a entry that "fits" in total but not in
// either piece alone; defragmentation repacks descriptors and payloads
// tightly and is the single fallback both for that case and for descriptor
// ring growth, since the HPACK size invariant (used*32+total <= maxSize)
// guarantees a tight repack always leaves enough room for one more
// descriptor slot and its payload (see insert below).
type dynamicTable struct {
	arena []byte // len(arena) == maxSize; [0, wrap*descSlotBytes) descriptors, rest payload

	maxSize uint32 // current capacity, HPACK-accounting bytes
	size    uint32 // live HPACK-accounting total: sum of (name+value+32) over live entries
	total   uint32 // live payload bytes in use: sum of (name+value) over live entries

	wrap int // descriptor ring's current backing length, in slots
	used int // live entry count (used <= wrap)
	head int // descriptor slot index of the most recently inserted entry (-1 if empty)

	payStart int // payload-ring-relative offset (from the descriptor region's end) of the oldest live byte
	payUsed  int // live payload bytes currently held, mirrors total but counted in ring-space
}

// dtEntry is a materialized descriptor: where one live entry's name‖value
// payload sits in the arena.
type dtEntry struct {
	addr int // absolute arena offset
	nlen int
	vlen int
}

// rawEntry is a live entry's payload bytes pulled out of the arena, used
// only while repacking (defragment/resize), since the arena they came from
// is about to be replaced.
type rawEntry struct {
	name, value []byte
}

// newDynamicTable creates an empty dynamic table with the given initial
// maximum size.
func newDynamicTable(maxSize uint32) *dynamicTable {
	return &dynamicTable{
		arena:   make([]byte, maxSize),
		maxSize: maxSize,
		head:    -1,
	}
}

// len returns the number of entries currently in the table.
func (dt *dynamicTable) len() int {
	return dt.used
}

// currentSize returns the table's current HPACK-accounting size (RFC 7541
// §4.1): the sum of each entry's name length, value length, and the 32-byte
// overhead.
func (dt *dynamicTable) currentSize() uint32 {
	return dt.size
}

// maxTableSize returns the table's current maximum size.
func (dt *dynamicTable) maxTableSize() uint32 {
	return dt.maxSize
}

func (dt *dynamicTable) descRegionEnd() int {
	return dt.wrap * descSlotBytes
}

func (dt *dynamicTable) writeDesc(slot int, e dtEntry) {
	off := slot * descSlotBytes
	binary.LittleEndian.PutUint32(dt.arena[off:], uint32(e.addr))
	binary.LittleEndian.PutUint16(dt.arena[off+4:], uint16(e.nlen))
	binary.LittleEndian.PutUint16(dt.arena[off+6:], uint16(e.vlen))
}

func (dt *dynamicTable) readDesc(slot int) dtEntry {
	off := slot * descSlotBytes
	return dtEntry{
		addr: int(binary.LittleEndian.Uint32(dt.arena[off:])),
		nlen: int(binary.LittleEndian.Uint16(dt.arena[off+4:])),
		vlen: int(binary.LittleEndian.Uint16(dt.arena[off+6:])),
	}
}

// slotOf returns the physical descriptor slot holding the entry at 0-based
// logical offset i from the head (0 = newest).
func (dt *dynamicTable) slotOf(i int) int {
	return (dt.head - i + dt.wrap) % dt.wrap
}

func (dt *dynamicTable) materialize(e dtEntry) HeaderField {
	return HeaderField{
		Name:  string(dt.arena[e.addr : e.addr+e.nlen]),
		Value: string(dt.arena[e.addr+e.nlen : e.addr+e.nlen+e.vlen]),
	}
}

// arenaEqual reports whether the length bytes at the given absolute arena
// offset equal s, without allocating.
func (dt *dynamicTable) arenaEqual(off, length int, s string) bool {
	if length != len(s) {
		return false
	}
	for i := 0; i < length; i++ {
		if dt.arena[off+i] != s[i] {
			return false
		}
	}
	return true
}

// tryPlacePayload looks for `needed` contiguous free bytes in the payload
// ring without defragmenting: the headroom immediately ahead of the live
// run (case 1 of RFC 7541 §4.4's insert algorithm), or - only when that
// headroom runs exactly to the arena's physical end with no leftover gap -
// the tail-room freed by eviction that the ring wraps into at offset 0
// (case 2). A new entry's bytes are always placed contiguous with the
// existing live run; when the headroom doesn't reach the physical end
// (leaving real freed-but-unreachable bytes on the far side of it), the two
// free pieces are genuinely disjoint from this entry's perspective and the
// caller must defragment (case 3) rather than strand those bytes as an
// untracked gap.
func (dt *dynamicTable) tryPlacePayload(needed int) (int, bool) {
	descEnd := dt.descRegionEnd()
	payCap := len(dt.arena) - descEnd
	if needed > payCap {
		return 0, false
	}
	end := dt.payStart + dt.payUsed
	if end >= payCap {
		// The live run reaches (or has wrapped past) the physical end, so
		// the only free run lies between its wrapped end and payStart.
		if needed <= payCap-dt.payUsed {
			return descEnd + end - payCap, true
		}
		return 0, false
	}
	if needed <= payCap-end {
		return descEnd + end, true
	}
	return 0, false
}

// liveEntries extracts every live entry's payload bytes, oldest first, by
// copying them out of the current arena. Used only by defragment, which is
// about to discard that arena.
func (dt *dynamicTable) liveEntries() []rawEntry {
	out := make([]rawEntry, dt.used)
	for k := 0; k < dt.used; k++ {
		i := dt.used - 1 - k // logical offset from head; k=0 is oldest
		e := dt.readDesc(dt.slotOf(i))
		name := append([]byte(nil), dt.arena[e.addr:e.addr+e.nlen]...)
		value := append([]byte(nil), dt.arena[e.addr+e.nlen:e.addr+e.nlen+e.vlen]...)
		out[k] = rawEntry{name: name, value: value}
	}
	return out
}

// defragment (RFC 7541 §4.4's case 3) repacks every live entry into a fresh
// arena of newCapacity bytes: descriptors tight at the low end (reserving
// extraSlots beyond the live count, for an insert about to follow), payload
// bytes packed contiguously against them with no gaps. This also serves as
// the "allocate a new arena and migrate survivors" step §4.4's Resize asks
// for - setMaxSize calls it with the new capacity and extraSlots=0.
func (dt *dynamicTable) defragment(newCapacity uint32, extraSlots int) {
	live := dt.liveEntries()
	targetWrap := len(live) + extraSlots

	newArena := make([]byte, newCapacity)
	descEnd := targetWrap * descSlotBytes
	offset := descEnd
	for i, e := range live {
		addr := offset
		copy(newArena[addr:], e.name)
		copy(newArena[addr+len(e.name):], e.value)
		dtEntryBytes := dtEntry{addr: addr, nlen: len(e.name), vlen: len(e.value)}
		off := i * descSlotBytes
		binary.LittleEndian.PutUint32(newArena[off:], uint32(dtEntryBytes.addr))
		binary.LittleEndian.PutUint16(newArena[off+4:], uint16(dtEntryBytes.nlen))
		binary.LittleEndian.PutUint16(newArena[off+6:], uint16(dtEntryBytes.vlen))
		offset += len(e.name) + len(e.value)
	}

	dt.arena = newArena
	dt.maxSize = newCapacity
	dt.wrap = targetWrap
	dt.head = len(live) - 1
	dt.used = len(live)
	dt.payStart = 0
	dt.payUsed = offset - descEnd
}

// insert adds a new entry at logical index 1, evicting from the tail as
// needed to stay within maxSize. Per RFC 7541 §4.4, an entry whose own size
// exceeds maxSize empties the table instead of being stored.
func (dt *dynamicTable) insert(name, value string) {
	fieldSize := uint32(len(name) + len(value) + 32)
	if fieldSize > dt.maxSize {
		dt.evictAll()
		return
	}

	for dt.size+fieldSize > dt.maxSize && dt.used > 0 {
		dt.evictOldest()
	}

	needed := len(name) + len(value)
	growing := dt.used == dt.wrap
	addr, ok := 0, false
	if !growing {
		addr, ok = dt.tryPlacePayload(needed)
	}
	if growing || !ok {
		// The HPACK size invariant just enforced above
		// (size+fieldSize <= maxSize, i.e. used*32+total+fieldSize <=
		// maxSize) guarantees a tight repack - descRegionEnd =
		// (used+1)*descSlotBytes - always leaves at least `needed`
		// contiguous free bytes afterward, so this placement cannot fail.
		dt.defragment(dt.maxSize, 1)
		addr, _ = dt.tryPlacePayload(needed)
	}

	slot := (dt.head + 1) % dt.wrap
	copy(dt.arena[addr:], name)
	copy(dt.arena[addr+len(name):], value)
	dt.writeDesc(slot, dtEntry{addr: addr, nlen: len(name), vlen: len(value)})

	dt.head = slot
	dt.used++
	dt.size += fieldSize
	dt.total += uint32(needed)
	dt.payUsed += needed
}

// evictOldest removes the single oldest (tail) entry.
func (dt *dynamicTable) evictOldest() {
	if dt.used == 0 {
		return
	}
	oldestSlot := dt.slotOf(dt.used - 1)
	e := dt.readDesc(oldestSlot)
	freed := e.nlen + e.vlen

	payCap := len(dt.arena) - dt.descRegionEnd()
	if payCap > 0 {
		dt.payStart = (dt.payStart + freed) % payCap
	}
	dt.payUsed -= freed
	dt.used--
	dt.size -= uint32(e.nlen + e.vlen + 32)
	dt.total -= uint32(freed)
}

// evictAll empties the table. The descriptor ring's backing length (wrap)
// is left as-is; its slots simply become free for the next insert to
// recycle, with no need to repack just to empty the table.
func (dt *dynamicTable) evictAll() {
	dt.used = 0
	dt.head = -1
	dt.size = 0
	dt.total = 0
	dt.payStart = 0
	dt.payUsed = 0
}

// get returns the entry at the given 1-based dynamic index (1 = newest).
func (dt *dynamicTable) get(idx uint32) (HeaderField, error) {
	if idx < 1 || int(idx) > dt.used {
		return HeaderField{}, ErrInvalidIndex
	}
	e := dt.readDesc(dt.slotOf(int(idx) - 1))
	return dt.materialize(e), nil
}

// findExact returns the lowest 1-based dynamic index of an entry matching
// both name and value. Newer entries have lower indices, so the scan runs
// from the newest entry outward.
func (dt *dynamicTable) findExact(name, value string) (uint32, bool) {
	for i := 0; i < dt.used; i++ {
		e := dt.readDesc(dt.slotOf(i))
		if dt.arenaEqual(e.addr, e.nlen, name) && dt.arenaEqual(e.addr+e.nlen, e.vlen, value) {
			return uint32(i + 1), true
		}
	}
	return 0, false
}

// findName returns the lowest 1-based dynamic index of an entry with the
// given name, compared case-insensitively per header-name conventions.
func (dt *dynamicTable) findName(name string) (uint32, bool) {
	for i := 0; i < dt.used; i++ {
		e := dt.readDesc(dt.slotOf(i))
		if dt.arenaEqual(e.addr, e.nlen, name) {
			return uint32(i + 1), true
		}
		entryName := string(dt.arena[e.addr : e.addr+e.nlen])
		if equalASCIIFold(entryName, name) {
			return uint32(i + 1), true
		}
	}
	return 0, false
}

// setMaxSize changes the table's maximum size, evicting if the new size is
// smaller than the current content, then reallocating the arena at the new
// capacity and repacking survivors tightly (RFC 7541 §4.4 Resize). Both the
// table-size-update representation (§6.3) and a peer-advertised
// SETTINGS_HEADER_TABLE_SIZE (§4.3) funnel through here.
func (dt *dynamicTable) setMaxSize(maxSize uint32) {
	dt.maxSize = maxSize
	for dt.size > dt.maxSize && dt.used > 0 {
		dt.evictOldest()
	}
	dt.defragment(maxSize, 0)
}

// clone deep-copies the table so a caller (the decoder) can apply a whole
// block's representations to the copy and only adopt it once the entire
// block parses without error (RFC 7541 §4.8: no partial state survives a
// decode failure).
func (dt *dynamicTable) clone() *dynamicTable {
	cp := *dt
	cp.arena = append([]byte(nil), dt.arena...)
	return &cp
}
