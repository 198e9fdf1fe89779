package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIndexedHeaderField(t *testing.T) {
	dt := newDynamicTable(4096)
	// Index 2 is the static ":method: GET" entry.
	wire := appendIndexedHeaderField(nil, 2)

	res, n, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, res.Field)
}

func TestDecodeIndexedHeaderFieldZeroIsInvalidIndex(t *testing.T) {
	dt := newDynamicTable(4096)
	wire := []byte{0x80} // indexed representation, index 0
	_, _, err := decodeRepresentation(wire, dt, 4096)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestDecodeLiteralIncrementalIndexingInsertsIntoTable(t *testing.T) {
	dt := newDynamicTable(4096)
	wire := appendLiteralIncrementalIndexing(nil, 0, "custom-key", "custom-value")

	res, n, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.Equal(t, HeaderField{Name: "custom-key", Value: "custom-value"}, res.Field)
	assert.Equal(t, 1, dt.len())

	f, err := dt.get(1)
	require.NoError(t, err)
	assert.Equal(t, "custom-key", f.Name)
}

func TestDecodeLiteralWithoutIndexingDoesNotInsert(t *testing.T) {
	dt := newDynamicTable(4096)
	wire := appendLiteralWithoutIndexing(nil, 0, "x-temp", "1")

	res, _, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.Equal(t, "x-temp", res.Field.Name)
	assert.Equal(t, 0, dt.len())
}

func TestDecodeLiteralNeverIndexedMarksField(t *testing.T) {
	dt := newDynamicTable(4096)
	wire := appendLiteralNeverIndexed(nil, 0, "authorization", "secret")

	res, _, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.True(t, res.Field.NeverIndexed)
	assert.Equal(t, 0, dt.len())
}

func TestDecodeLiteralWithNameReference(t *testing.T) {
	dt := newDynamicTable(4096)
	// Name index 4 is the static ":path: /" entry; value is literal.
	wire := appendLiteralIncrementalIndexing(nil, 4, "", "/users")

	res, _, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.Equal(t, ":path", res.Field.Name)
	assert.Equal(t, "/users", res.Field.Value)
}

func TestDecodeSizeUpdate(t *testing.T) {
	dt := newDynamicTable(4096)
	wire := appendTableSizeUpdate(nil, 100)

	res, n, err := decodeRepresentation(wire, dt, 4096)
	require.NoError(t, err)
	assert.Equal(t, len(wire), n)
	assert.True(t, res.IsSizeUpdate)
	assert.Equal(t, uint32(100), res.NewMaxSize)
}

func TestLookupCombinedSpansStaticAndDynamic(t *testing.T) {
	dt := newDynamicTable(4096)
	dt.insert("custom-key", "custom-value")

	f, err := lookupCombined(dt, 2) // static
	require.NoError(t, err)
	assert.Equal(t, ":method", f.Name)

	f, err = lookupCombined(dt, staticTableSize+1) // dynamic index 1
	require.NoError(t, err)
	assert.Equal(t, "custom-key", f.Name)

	_, err = lookupCombined(dt, staticTableSize+2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
