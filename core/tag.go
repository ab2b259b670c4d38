package core

import (
	"math"
	"strings"
)

// Field 是一行中以空白分隔的一个字段
type Field string

// Fields 按空白切分一行，连续空白视为一个分隔符
func Fields(line []byte) []Field {
	parts := strings.Fields(string(line))
	fields := make([]Field, len(parts))
	for i, p := range parts {
		fields[i] = Field(p)
	}
	return fields
}

// AsInt32 宽松解析：跳过前导空白，读取可选符号和连续数字，
// 遇到非数字即停止；没有数字时为 0。溢出按 32 位截断。
func (f Field) AsInt32() int32 {
	return Atoi(string(f))
}

// AsUint32 与 AsInt32 相同，负数按补码转换
func (f Field) AsUint32() uint32 {
	return uint32(Atoi(string(f)))
}

// Atoi 解析前导整数，非数字内容返回 0，不报错
func Atoi(s string) int32 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// 按负数累加，MinInt64 才能完整表示；溢出时饱和
	var v int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if v < (math.MinInt64+d)/10 {
			v = math.MinInt64
			continue
		}
		v = v*10 - d
	}
	if !neg {
		if v == math.MinInt64 {
			v = math.MaxInt64
		} else {
			v = -v
		}
	}

	return int32(v)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
