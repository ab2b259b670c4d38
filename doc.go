package amr

import (
	"errors"
	"fmt"
	"io"

	"github.com/zooyer/amr/core"
)

// Node 一个进程(节点)及其分到的块，按文件顺序排列
type Node struct {
	Rank   int
	Blocks []core.BlockMeshRecord
}

type Mesh struct {
	Header core.MeshHeader
	Nodes  []*Node
}

// BlockCount 所有节点块数之和
func (m *Mesh) BlockCount() int {
	var n int
	for _, node := range m.Nodes {
		n += len(node.Blocks)
	}
	return n
}

// Node 返回指定 rank 的节点，不存在时为 nil
func (m *Mesh) Node(rank int) *Node {
	if rank < 0 || rank >= len(m.Nodes) {
		return nil
	}
	return m.Nodes[rank]
}

func (m *Mesh) parseNode(f MeshFile, rank int, count uint32) (*Node, error) {
	node := &Node{
		Rank:   rank,
		Blocks: make([]core.BlockMeshRecord, 0, min(count, 1024)),
	}

	for i := uint32(0); i < count; i++ {
		block, err := f.ReadNextMeshLine()
		if err != nil {
			return nil, fmt.Errorf("node %d block %d/%d: %w", rank, i+1, count, err)
		}
		node.Blocks = append(node.Blocks, block)
	}

	return node, nil
}

func Open(filename string, out Output) (mesh *Mesh, err error) {
	file, err := NewTextReader(filename, out)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 读取剩余内容：每个节点行后紧跟该节点的块行，直到流结束。
// 只有在节点行位置遇到流结束才算正常结束。
func Load(f MeshFile) (*Mesh, error) {
	mesh := &Mesh{
		Header: f.Header(),
		Nodes:  make([]*Node, 0, 16),
	}

	for rank := 0; ; rank++ {
		rec, err := f.ReadNodeMeshLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		node, err := mesh.parseNode(f, rank, rec.BlockCount)
		if err != nil {
			return nil, err
		}
		mesh.Nodes = append(mesh.Nodes, node)
	}

	return mesh, nil
}
