package hpack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTableInsertAndGet(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("custom-key", "custom-value")

	assert.Equal(t, 1, dt.len())
	f, err := dt.get(1)
	require.NoError(t, err)
	assert.Equal(t, HeaderField{Name: "custom-key", Value: "custom-value"}, f)

	assert.Equal(t, uint32(len("custom-key")+len("custom-value")+32), dt.currentSize())
}

func TestDynamicTableNewestIsIndexOne(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("a", "1")
	dt.insert("b", "2")
	dt.insert("c", "3")

	f, err := dt.get(1)
	require.NoError(t, err)
	assert.Equal(t, "c", f.Name)

	f, err = dt.get(3)
	require.NoError(t, err)
	assert.Equal(t, "a", f.Name)
}

func TestDynamicTableEvictsOldestOnOverflow(t *testing.T) {
	// Each entry costs len(name)+len(value)+32. Size the table for exactly
	// two such entries.
	entrySize := uint32(1 + 1 + 32)
	dt := newDynamicTable(entrySize * 2)

	dt.insert("a", "1")
	dt.insert("b", "2")
	assert.Equal(t, 2, dt.len())

	dt.insert("c", "3")
	assert.Equal(t, 2, dt.len(), "oldest entry must be evicted to make room")

	f, err := dt.get(2)
	require.NoError(t, err)
	assert.Equal(t, "b", f.Name, "entry a should have been evicted")
}

func TestDynamicTableEntryLargerThanSizeEmptiesTable(t *testing.T) {
	dt := newDynamicTable(64)
	dt.insert("x", "y")
	require.Equal(t, 1, dt.len())

	huge := make([]byte, 128)
	for i := range huge {
		huge[i] = 'z'
	}
	dt.insert("oversize", string(huge))

	assert.Equal(t, 0, dt.len())
	assert.Equal(t, uint32(0), dt.currentSize())
}

func TestDynamicTableFindExactAndFindName(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("x-request-id", "abc")
	dt.insert("x-request-id", "def")

	idx, ok := dt.findExact("x-request-id", "def")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx, "newest exact match should win")

	idx, ok = dt.findName("x-request-id")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	_, ok = dt.findExact("x-request-id", "zzz")
	assert.False(t, ok)
}

func TestDynamicTableFindNameCaseInsensitive(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("x-request-id", "abc")

	idx, ok := dt.findName("X-Request-Id")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)
}

func TestDynamicTableSetMaxSizeEvicts(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("a", "1")
	dt.insert("b", "2")
	dt.insert("c", "3")
	require.Equal(t, 3, dt.len())

	dt.setMaxSize(34) // room for exactly one entry (1+1+32)
	assert.Equal(t, 1, dt.len())

	f, err := dt.get(1)
	require.NoError(t, err)
	assert.Equal(t, "c", f.Name, "newest entry should survive a shrink")
}

func TestDynamicTableSetMaxSizeToZeroEmpties(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("a", "1")
	dt.setMaxSize(0)
	assert.Equal(t, 0, dt.len())
	assert.Equal(t, uint32(0), dt.currentSize())
}

// TestDynamicTableDescriptorAccountingInvariant checks descSlotBytes*used +
// total <= maxSize - the dynamic table's storage-discipline invariant -
// holds after every insert/evict/resize across a long, varied sequence.
func TestDynamicTableDescriptorAccountingInvariant(t *testing.T) {
	dt := newDynamicTable(512)
	check := func(step string) {
		t.Helper()
		got := uint32(descSlotBytes*dt.used) + dt.total
		assert.LessOrEqual(t, got, dt.maxSize, "%s: descSlotBytes*used+total must not exceed maxSize", step)
	}

	for i := 0; i < 200; i++ {
		dt.insert(fmt.Sprintf("h%d", i%7), fmt.Sprintf("value-%d", i))
		check(fmt.Sprintf("insert %d", i))
		if i%11 == 0 {
			dt.setMaxSize(uint32(128 + (i%5)*64))
			check(fmt.Sprintf("resize at %d", i))
		}
	}
}

// TestDynamicTableDefragmentsAcrossWrapBoundary forces a scenario where the
// live payload's free space is split into two physically disjoint pieces
// around the arena's wrap point (neither alone big enough for the next
// entry, though their sum is) and checks the insert that follows still
// succeeds and preserves every still-live entry - exercising RFC 7541
// §4.4's case 3 defragmentation explicitly rather than only through the
// ring-buffer-shaped cases 1 and 2.
func TestDynamicTableDefragmentsAcrossWrapBoundary(t *testing.T) {
	dt := newDynamicTable(200)

	// Fill with several small entries, then evict the oldest few so the
	// freed tail-room sits on the opposite side of the arena's wrap point
	// from the headroom ahead of the newest entry.
	for i := 0; i < 5; i++ {
		dt.insert(fmt.Sprintf("n%d", i), "0123456789") // 2+10+32 = 44 bytes each
	}
	require.Equal(t, 4, dt.len(), "200/44 leaves room for exactly four entries")

	// A large insert that cannot fit in either free piece alone without a
	// defragmenting repack.
	dt.insert("big", "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx")

	f, err := dt.get(1)
	require.NoError(t, err)
	assert.Equal(t, "big", f.Name, "the new entry must be retrievable after defragmentation")

	for i := 0; i < dt.len(); i++ {
		entry, err := dt.get(uint32(i + 1))
		require.NoError(t, err)
		assert.NotEmpty(t, entry.Name)
	}

	got := uint32(descSlotBytes*dt.used) + dt.total
	assert.LessOrEqual(t, got, dt.maxSize)
}

func TestDynamicTableGetOutOfRange(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("a", "1")

	_, err := dt.get(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = dt.get(2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

// TestDynamicTableRingWraparound exercises repeated insert/evict cycles so
// descriptor slots are recycled around the ring and payload placement
// repeatedly runs out of contiguous room, forcing repeated defragmentation,
// to catch any off-by-one in slot/placement arithmetic.
func TestDynamicTableRingWraparound(t *testing.T) {
	dt := newDynamicTable(256)
	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("k%d", i)
		value := fmt.Sprintf("v%d-payload", i)
		dt.insert(name, value)

		f, err := dt.get(1)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name)
		assert.Equal(t, value, f.Value)
	}
}
