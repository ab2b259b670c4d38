package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	h, ok := ParseHeader([]byte("10 3 2 2 2"))
	require.True(t, ok)
	assert.Equal(t, MeshHeader{TotalBlockCount: 10, MaxRefinementLevel: 3, BlocksX: 2, BlocksY: 2, BlocksZ: 2}, h)

	// 多余字段忽略
	h, ok = ParseHeader([]byte("1 2 3 4 5 6 7"))
	require.True(t, ok)
	assert.Equal(t, uint32(5), h.BlocksZ)

	_, ok = ParseHeader([]byte("1 2 3 4"))
	assert.False(t, ok)
}

func TestParseHeader_Permissive(t *testing.T) {
	h, ok := ParseHeader([]byte("abc 3 2 2 2"))
	require.True(t, ok)
	assert.Equal(t, uint32(0), h.TotalBlockCount)
	assert.Equal(t, uint32(3), h.MaxRefinementLevel)
}

func TestParseBlock(t *testing.T) {
	b, ok := ParseBlock([]byte("0 1 -1 1 -1 1 -1 1"))
	require.True(t, ok)
	assert.Equal(t, BlockMeshRecord{
		BlockID: 0, RefineLevel: 1,
		XDown: -1, XUp: 1,
		YDown: -1, YUp: 1,
		ZDown: -1, ZUp: 1,
	}, b)

	b, ok = ParseBlock([]byte("7 2 -3 4 -5 6 -7 8"))
	require.True(t, ok)
	assert.Equal(t, int32(-7), b.ZDown)
	assert.Equal(t, int32(8), b.ZUp)

	_, ok = ParseBlock([]byte("1 2 3 4 5 6 7"))
	assert.False(t, ok)
	_, ok = ParseBlock(nil)
	assert.False(t, ok)
}

func TestParseNode(t *testing.T) {
	n, ok := ParseNode([]byte("12"))
	require.True(t, ok)
	assert.Equal(t, uint32(12), n.BlockCount)

	n, ok = ParseNode([]byte("xyz"))
	require.True(t, ok)
	assert.Equal(t, uint32(0), n.BlockCount)

	_, ok = ParseNode([]byte{})
	assert.False(t, ok)
}
