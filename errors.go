package amr

import "errors"

var (
	ErrOpen           = errors.New("amr: unable to open file")
	ErrHeaderRead     = errors.New("amr: error reading header")
	ErrHeaderParse    = errors.New("amr: malformed header")
	ErrNodeLineParse  = errors.New("amr: malformed node mesh line")
	ErrBlockLineParse = errors.New("amr: malformed block mesh line")
	ErrClosed         = errors.New("amr: reader closed")
	ErrUnknownFormat  = errors.New("amr: unknown mesh file format")
)

// 致命错误的退出码，传给 Output.Fatal
const (
	CodeOpen        = -1
	CodeHeaderRead  = -2
	CodeHeaderParse = -3
)
