package core

const (
	HeaderFields = 5 // blockCount maxRefineLevel blocksX blocksY blocksZ
	BlockFields  = 8 // blockID refineLevel xDown xUp yDown yUp zDown zUp
)

// MeshHeader 网格文件首行
type MeshHeader struct {
	TotalBlockCount    uint32
	MaxRefinementLevel uint32
	BlocksX            uint32
	BlocksY            uint32
	BlocksZ            uint32
}

// NodeMeshRecord 一个进程(节点)分到的块数
type NodeMeshRecord struct {
	BlockCount uint32
}

// BlockMeshRecord 一个块的编号、细化层级和各轴上下方向的邻居/ghost 范围
type BlockMeshRecord struct {
	BlockID     uint32
	RefineLevel uint32
	XDown, XUp  int32
	YDown, YUp  int32
	ZDown, ZUp  int32
}

// ParseHeader 解析首行，字段不足 5 个时 ok 为 false，多余字段忽略
func ParseHeader(line []byte) (h MeshHeader, ok bool) {
	f := Fields(line)
	if len(f) < HeaderFields {
		return h, false
	}

	return MeshHeader{
		TotalBlockCount:    f[0].AsUint32(),
		MaxRefinementLevel: f[1].AsUint32(),
		BlocksX:            f[2].AsUint32(),
		BlocksY:            f[3].AsUint32(),
		BlocksZ:            f[4].AsUint32(),
	}, true
}

// ParseNode 解析节点行：整行取前导整数。空行 ok 为 false
func ParseNode(line []byte) (n NodeMeshRecord, ok bool) {
	if len(line) == 0 {
		return n, false
	}

	return NodeMeshRecord{BlockCount: uint32(Atoi(string(line)))}, true
}

// ParseBlock 解析块行，字段不足 8 个时 ok 为 false
func ParseBlock(line []byte) (b BlockMeshRecord, ok bool) {
	f := Fields(line)
	if len(f) < BlockFields {
		return b, false
	}

	return BlockMeshRecord{
		BlockID:     f[0].AsUint32(),
		RefineLevel: f[1].AsUint32(),
		XDown:       f[2].AsInt32(),
		XUp:         f[3].AsInt32(),
		YDown:       f[4].AsInt32(),
		YUp:         f[5].AsInt32(),
		ZDown:       f[6].AsInt32(),
		ZUp:         f[7].AsInt32(),
	}, true
}
