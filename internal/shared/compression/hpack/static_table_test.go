package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTableKnownEntries(t *testing.T) {
	st := getStaticTable()

	f, err := st.get(1)
	require.NoError(t, err)
	assert.Equal(t, HeaderField{Name: ":authority", Value: ""}, f)

	f, err = st.get(2)
	require.NoError(t, err)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, f)

	f, err = st.get(61)
	require.NoError(t, err)
	assert.Equal(t, HeaderField{Name: "www-authenticate", Value: ""}, f)
}

func TestStaticTableInvalidIndex(t *testing.T) {
	st := getStaticTable()

	_, err := st.get(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = st.get(62)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestStaticTableFindExact(t *testing.T) {
	st := getStaticTable()

	idx, ok := st.findExact(":method", "POST")
	require.True(t, ok)
	assert.Equal(t, uint32(3), idx)

	_, ok = st.findExact(":method", "PATCH")
	assert.False(t, ok)
}

func TestStaticTableFindName(t *testing.T) {
	st := getStaticTable()

	// ":status" appears at several indices (8-14); findName must return
	// the lowest.
	idx, ok := st.findName(":status")
	require.True(t, ok)
	assert.Equal(t, uint32(8), idx)

	_, ok = st.findName("x-not-a-real-header")
	assert.False(t, ok)
}

func TestStaticTableSingleton(t *testing.T) {
	assert.Same(t, getStaticTable(), getStaticTable())
}
