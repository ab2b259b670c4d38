package utils

import (
	"slices"

	"github.com/zooyer/amr"
	"github.com/zooyer/golib/xmath"
)

type Summary struct {
	Nodes     int
	Blocks    int
	PerLevel  map[uint32]int // 细化层级 -> 块数
	MinBlocks int            // 单个节点最少块数
	MaxBlocks int            // 单个节点最多块数
	Mean      float64        // 每个节点平均块数
}

func Summarize(m *amr.Mesh) Summary {
	s := Summary{
		Nodes:    len(m.Nodes),
		PerLevel: make(map[uint32]int),
	}
	if s.Nodes == 0 {
		return s
	}

	counts := make([]int, 0, len(m.Nodes))
	for _, node := range m.Nodes {
		counts = append(counts, len(node.Blocks))
		for _, blk := range node.Blocks {
			s.PerLevel[blk.RefineLevel]++
		}
	}

	for _, c := range counts {
		s.Blocks += c
	}
	s.MinBlocks = slices.Min(counts)
	s.MaxBlocks = slices.Max(counts)
	s.Mean = float64(s.Blocks) / float64(s.Nodes)

	return s
}

// Levels 按升序返回出现过的细化层级
func (s Summary) Levels() []uint32 {
	levels := make([]uint32, 0, len(s.PerLevel))
	for l := range s.PerLevel {
		levels = append(levels, l)
	}
	slices.Sort(levels)
	return levels
}

// Balanced 最忙节点与平均值相差不超过 tolerance 个块
func (s Summary) Balanced(tolerance float64) bool {
	if s.Nodes == 0 {
		return true
	}
	return xmath.Equal(float64(s.MaxBlocks), s.Mean, tolerance)
}
