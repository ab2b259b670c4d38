package core

import (
	"bufio"
	"bytes"
	"io"
)

// Scanner 按行读取网格文本，行缓冲区按需增长，无长度上限
type Scanner struct {
	reader *bufio.Reader
	line   []byte
	lineNo int
	eof    bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
		line:   make([]byte, 0, 64),
	}
}

// ReadLine 逐字节读取直到 '\n' 或流结束，返回的切片不含换行符(含 "\r\n")，
// 在下一次调用前有效。流结束且未读到任何字节时返回 io.EOF，
// 以便与真正的空行区分。
func (s *Scanner) ReadLine() ([]byte, error) {
	if s.eof {
		return nil, io.EOF
	}

	s.line = s.line[:0]
	for {
		c, err := s.reader.ReadByte()
		if err == io.EOF {
			s.eof = true
			if len(s.line) == 0 {
				return nil, io.EOF
			}
			break
		}
		if err != nil {
			return s.line, err
		}
		if c == '\n' {
			break
		}
		s.line = append(s.line, c)
	}

	s.line = bytes.TrimSuffix(s.line, []byte{'\r'})
	s.lineNo++
	return s.line, nil
}

// LineNo 返回最近一次读取的行号（从 1 开始）
func (s *Scanner) LineNo() int {
	return s.lineNo
}
