package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/amr"
	"github.com/zooyer/amr/utils"
)

const tolerance = 1 // 负载均衡判定：最忙节点与平均值相差不超过 1 个块

func selectFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("选择 AMR 网格文件"),
		zenity.FileFilters{
			{Name: "AMR text mesh", Patterns: []string{"*.txt", "*.amr"}},
		},
	)
}

func writeCSV(filename string, mesh *amr.Mesh) error {
	const header = "rank,blocks,first_block,last_block\n"
	if err := os.WriteFile(filename, []byte(header), 0644); err != nil {
		return err
	}

	for _, node := range mesh.Nodes {
		var first, last string
		if n := len(node.Blocks); n > 0 {
			first = fmt.Sprint(node.Blocks[0].BlockID)
			last = fmt.Sprint(node.Blocks[n-1].BlockID)
		}

		line := fmt.Sprintf("%d,%d,%s,%s\n", node.Rank, len(node.Blocks), first, last)
		if err := xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	var (
		verbosity uint
		csvPath   string
		pause     bool
	)

	flag.UintVar(&verbosity, "v", 0, "Diagnostic verbosity (8: header, 32: every line)")
	flag.StringVar(&csvPath, "csv", "", "Write per-node block counts to this CSV file ('-' derives it from the mesh path)")
	flag.BoolVar(&pause, "pause", false, "Wait for a key press before exiting")
	flag.Parse()

	if pause {
		defer xos.PauseExit()
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	path := flag.Arg(0)
	if path == "" {
		var err error
		if path, err = selectFile(); err != nil {
			fmt.Fprintf(os.Stderr, "error: a mesh file must be specified\n")
			flag.Usage()
			os.Exit(1)
		}
	}

	mesh, err := amr.Open(path, amr.NewLogOutput(logger, uint32(verbosity)))
	if err != nil {
		level.Error(logger).Log("msg", "failed to load mesh", "path", path, "err", err)
		os.Exit(1)
	}

	var (
		h      = mesh.Header
		sum    = utils.Summarize(mesh)
		bounds = utils.BlockBounds(mesh)
	)

	fmt.Printf("网格: %s\n", path)
	fmt.Printf("  块总数=%d 最大层级=%d 块网格=%dx%dx%d\n",
		h.TotalBlockCount, h.MaxRefinementLevel, h.BlocksX, h.BlocksY, h.BlocksZ)
	fmt.Printf("  节点=%d 已读块=%d 每节点块数 min=%d max=%d mean=%.2f 均衡=%v\n",
		sum.Nodes, sum.Blocks, sum.MinBlocks, sum.MaxBlocks, sum.Mean, sum.Balanced(tolerance))
	for _, l := range sum.Levels() {
		fmt.Printf("  [层级 %d] %d 块\n", l, sum.PerLevel[l])
	}
	if !bounds.Empty {
		fmt.Printf("  范围 X[%d,%d] Y[%d,%d] Z[%d,%d]\n",
			bounds.X.Min, bounds.X.Max, bounds.Y.Min, bounds.Y.Max, bounds.Z.Min, bounds.Z.Max)
	}
	if uint32(sum.Blocks) != h.TotalBlockCount {
		level.Warn(logger).Log("msg", "block count differs from header", "header", h.TotalBlockCount, "read", sum.Blocks)
	}

	if csvPath == "-" {
		csvPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
	}
	if csvPath != "" {
		if err = writeCSV(csvPath, mesh); err != nil {
			level.Error(logger).Log("msg", "failed to write csv", "path", csvPath, "err", err)
			os.Exit(1)
		}
		fmt.Println("写入文件:", csvPath)
	}
}
