package amr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoNodeMesh = `3 2 1 1 3
2
0 0 0 1 0 1 0 1
1 1 -1 1 -1 1 -1 1
1
2 2 -2 2 -2 2 -2 2
`

func TestOpen(t *testing.T) {
	mesh, err := Open(writeMeshFile(t, twoNodeMesh), nil)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), mesh.Header.TotalBlockCount)
	require.Len(t, mesh.Nodes, 2)
	assert.Equal(t, 3, mesh.BlockCount())

	n0 := mesh.Node(0)
	require.NotNil(t, n0)
	require.Len(t, n0.Blocks, 2)
	assert.Equal(t, uint32(0), n0.Blocks[0].BlockID)
	assert.Equal(t, uint32(1), n0.Blocks[1].BlockID)

	n1 := mesh.Node(1)
	require.NotNil(t, n1)
	assert.Equal(t, 1, n1.Rank)
	require.Len(t, n1.Blocks, 1)
	assert.Equal(t, int32(-2), n1.Blocks[0].YDown)

	assert.Nil(t, mesh.Node(2))
	assert.Nil(t, mesh.Node(-1))
}

func TestLoad_HeaderOnly(t *testing.T) {
	r, err := NewTextReaderFrom(strings.NewReader("0 0 0 0 0\n"), "mem", nil)
	require.NoError(t, err)

	mesh, err := Load(r)
	require.NoError(t, err)
	assert.Empty(t, mesh.Nodes)
	assert.Zero(t, mesh.BlockCount())
}

func TestLoad_TruncatedNode(t *testing.T) {
	r, err := NewTextReaderFrom(strings.NewReader("2 0 1 1 1\n2\n0 0 0 0 0 0 0 0\n"), "mem", nil)
	require.NoError(t, err)

	_, err = Load(r)
	assert.ErrorIs(t, err, ErrBlockLineParse)
	assert.Contains(t, err.Error(), "node 0 block 2/2")
}

func TestLoad_EmptyNodeLine(t *testing.T) {
	r, err := NewTextReaderFrom(strings.NewReader("0 0 1 1 1\n0\n\n0\n"), "mem", nil)
	require.NoError(t, err)

	_, err = Load(r)
	assert.ErrorIs(t, err, ErrNodeLineParse)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open("/nonexistent/mesh.txt", nil)
	assert.ErrorIs(t, err, ErrOpen)
}
