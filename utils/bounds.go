package utils

import (
	"math"

	"github.com/zooyer/amr"
	"github.com/zooyer/amr/core"
)

// Range 一个轴上 down/up 范围的最小值和最大值
type Range struct {
	Min, Max int32
}

// Bounds 三个轴上的范围，空网格时 Empty 为 true
type Bounds struct {
	X, Y, Z Range
	Empty   bool
}

func (r *Range) add(v int32) {
	r.Min = min(r.Min, v)
	r.Max = max(r.Max, v)
}

// BlockBounds 统计所有块的邻居/ghost 范围
func BlockBounds(m *amr.Mesh) Bounds {
	var (
		b     = Bounds{Empty: true}
		unset = Range{Min: math.MaxInt32, Max: math.MinInt32}
	)
	b.X, b.Y, b.Z = unset, unset, unset

	for _, node := range m.Nodes {
		for _, blk := range node.Blocks {
			b.Empty = false
			b.X.add(blk.XDown)
			b.X.add(blk.XUp)
			b.Y.add(blk.YDown)
			b.Y.add(blk.YUp)
			b.Z.add(blk.ZDown)
			b.Z.add(blk.ZUp)
		}
	}

	if b.Empty {
		return Bounds{Empty: true}
	}
	return b
}

// InBounds 判断块的所有范围是否落在 b 内
func InBounds(b Bounds, blk core.BlockMeshRecord) bool {
	in := func(r Range, v int32) bool { return v >= r.Min && v <= r.Max }

	return !b.Empty &&
		in(b.X, blk.XDown) && in(b.X, blk.XUp) &&
		in(b.Y, blk.YDown) && in(b.Y, blk.YUp) &&
		in(b.Z, blk.ZDown) && in(b.Z, blk.ZUp)
}
