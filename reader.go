package amr

import (
	"fmt"
	"io"
	"os"

	"github.com/zooyer/amr/core"
)

// TextReader 读取文本格式的 AMR 网格文件。
// 构造时立即解析头部，之后按外层格式顺序调用 ReadNodeMeshLine / ReadNextMeshLine。
type TextReader struct {
	name    string
	file    io.Reader
	scanner *core.Scanner
	header  core.MeshHeader
	output  Output
	closed  bool
}

var _ MeshFile = (*TextReader)(nil)

func init() {
	Register("text", func(path string, out Output) (MeshFile, error) {
		r, err := NewTextReader(path, out)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}

// NewTextReader 打开 path 并解析头部，任何失败都会先关闭文件
func NewTextReader(path string, out Output) (*TextReader, error) {
	if out == nil {
		out = NopOutput()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fatal(out, CodeOpen, fmt.Errorf("%w: %s: %w", ErrOpen, path, err))
	}

	return NewTextReaderFrom(file, path, out)
}

// NewTextReaderFrom 从任意流读取，r 实现 io.Closer 时由 TextReader 负责关闭
func NewTextReaderFrom(r io.Reader, name string, out Output) (_ *TextReader, err error) {
	if out == nil {
		out = NopOutput()
	}

	reader := &TextReader{
		name:    name,
		file:    r,
		scanner: core.NewScanner(r),
		output:  out,
	}

	defer func() {
		if err != nil {
			_ = reader.Close()
		}
	}()

	line, err := reader.readLine()
	if err == io.EOF {
		return nil, fatal(out, CodeHeaderRead, fmt.Errorf("%w: %s: empty file", ErrHeaderRead, name))
	}
	if err != nil {
		return nil, fatal(out, CodeHeaderRead, fmt.Errorf("%w: %s: %w", ErrHeaderRead, name, err))
	}

	header, ok := core.ParseHeader(line)
	if !ok {
		return nil, fatal(out, CodeHeaderParse, fmt.Errorf("%w: %s: want %d fields, got %q",
			ErrHeaderParse, name, core.HeaderFields, line))
	}
	reader.header = header

	out.Verbose(VerboseHeader, "read mesh header info",
		"blocks", header.TotalBlockCount,
		"max_level", header.MaxRefinementLevel,
		"blk_x", header.BlocksX,
		"blk_y", header.BlocksY,
		"blk_z", header.BlocksZ,
	)

	return reader, nil
}

// fatal 交给 Output 处理，Output 返回 nil 时仍返回原错误
func fatal(out Output, code int, err error) error {
	if e := out.Fatal(code, err); e != nil {
		return e
	}
	return err
}

func (r *TextReader) IsBinary() bool { return false }

func (r *TextReader) Header() core.MeshHeader { return r.header }

func (r *TextReader) TotalBlockCount() uint32 { return r.header.TotalBlockCount }

func (r *TextReader) MaxRefinementLevel() uint32 { return r.header.MaxRefinementLevel }

func (r *TextReader) BlocksX() uint32 { return r.header.BlocksX }

func (r *TextReader) BlocksY() uint32 { return r.header.BlocksY }

func (r *TextReader) BlocksZ() uint32 { return r.header.BlocksZ }

// readLine 返回的切片在下一次读取前有效
func (r *TextReader) readLine() ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}

	line, err := r.scanner.ReadLine()
	if err != nil {
		return nil, err
	}

	r.output.Verbose(VerboseLine, "read line", "line", string(line))
	return line, nil
}

// ReadNodeMeshLine 读取一个节点分到的块数。
// 流结束时返回的错误同时满足 errors.Is(err, io.EOF)
func (r *TextReader) ReadNodeMeshLine() (core.NodeMeshRecord, error) {
	line, err := r.readLine()
	if err != nil {
		return core.NodeMeshRecord{}, r.lineError(ErrNodeLineParse, err)
	}

	rec, ok := core.ParseNode(line)
	if !ok {
		return rec, fmt.Errorf("%w: %s:%d: empty line", ErrNodeLineParse, r.name, r.scanner.LineNo())
	}
	return rec, nil
}

// ReadNextMeshLine 读取一个块记录
func (r *TextReader) ReadNextMeshLine() (core.BlockMeshRecord, error) {
	line, err := r.readLine()
	if err != nil {
		return core.BlockMeshRecord{}, r.lineError(ErrBlockLineParse, err)
	}

	rec, ok := core.ParseBlock(line)
	if !ok {
		return rec, fmt.Errorf("%w: %s:%d: want %d fields, got %q",
			ErrBlockLineParse, r.name, r.scanner.LineNo(), core.BlockFields, line)
	}
	return rec, nil
}

func (r *TextReader) lineError(kind, err error) error {
	if err == ErrClosed {
		return err
	}
	return fmt.Errorf("%w: %s:%d: %w", kind, r.name, r.scanner.LineNo()+1, err)
}

// Close 释放文件，重复调用无副作用
func (r *TextReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if c, ok := r.file.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
