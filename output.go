package amr

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// 诊断输出的详细级别
const (
	VerboseHeader uint32 = 8  // 头部摘要
	VerboseLine   uint32 = 32 // 每一行原始内容
)

// Output 诊断输出。Fatal 只负责记录并返回错误，是否终止进程由调用方决定
type Output interface {
	Verbose(verbosity uint32, msg string, keyvals ...any)
	Fatal(code int, err error) error
}

// LogOutput 基于 go-kit/log 的 Output 实现
type LogOutput struct {
	logger    log.Logger
	verbosity uint32
}

// NewLogOutput 只输出 verbosity 不超过 maxVerbosity 的信息
func NewLogOutput(logger log.Logger, maxVerbosity uint32) *LogOutput {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &LogOutput{logger: logger, verbosity: maxVerbosity}
}

// NopOutput 丢弃所有诊断信息
func NopOutput() *LogOutput {
	return NewLogOutput(log.NewNopLogger(), 0)
}

func (o *LogOutput) Verbose(verbosity uint32, msg string, keyvals ...any) {
	if verbosity > o.verbosity {
		return
	}
	kv := append([]any{"msg", msg, "verbosity", verbosity}, keyvals...)
	_ = level.Debug(o.logger).Log(kv...)
}

func (o *LogOutput) Fatal(code int, err error) error {
	_ = level.Error(o.logger).Log("msg", "fatal", "code", code, "err", err)
	return &FatalError{Code: code, Err: err}
}

// FatalError 携带退出码的致命错误
type FatalError struct {
	Code int
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%v (code %d)", e.Err, e.Code)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
