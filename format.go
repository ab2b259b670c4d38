package amr

import (
	"fmt"

	"github.com/zooyer/amr/core"
)

// MeshFile 是文本/二进制网格读取器的公共接口
type MeshFile interface {
	IsBinary() bool
	Header() core.MeshHeader
	ReadNodeMeshLine() (core.NodeMeshRecord, error)
	ReadNextMeshLine() (core.BlockMeshRecord, error)
	Close() error
}

// MeshFileFactory 根据路径打开一种格式的网格文件
type MeshFileFactory func(path string, out Output) (MeshFile, error)

var registry = map[string]MeshFileFactory{}

// Register 注册新的文件格式，同名覆盖
func Register(format string, factory MeshFileFactory) {
	registry[format] = factory
}

// OpenFile 按格式名打开网格文件
func OpenFile(format, path string, out Output) (MeshFile, error) {
	factory, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return factory(path, out)
}
