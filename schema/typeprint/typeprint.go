// Package typeprint 将字段的 Go 类型映射为存储类型名，以及该类型是否属于
// 文本类（文本类的默认值在 DDL 中需要加引号）。
package typeprint

import (
	"time"
)

// Printer 存储类型打印能力
type Printer interface {
	// Print 返回存储类型名，如 INTEGER、TEXT
	Print() string
	// IsText 是否文本类存储类型
	IsText() bool
}

type printer struct {
	name string
	text bool
}

func (p printer) Print() string { return p.name }

func (p printer) IsText() bool { return p.text }

var (
	integerPrinter = printer{name: "INTEGER"}
	realPrinter    = printer{name: "REAL"}
	textPrinter    = printer{name: "TEXT", text: true}
	blobPrinter    = printer{name: "BLOB"}
)

// For 返回字段类型 F 对应的打印器。整数与布尔映射为 INTEGER，浮点映射为
// REAL，字符串与时间映射为 TEXT，字节切片及其余类型映射为 BLOB。
// 指针类型按所指类型映射，用于可空字段。
func For[F any]() Printer {
	var zero F
	switch any(zero).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		bool:
		return integerPrinter
	case *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*bool:
		return integerPrinter
	case float32, float64, *float32, *float64:
		return realPrinter
	case string, *string:
		return textPrinter
	case time.Time, *time.Time:
		return textPrinter
	case []byte:
		return blobPrinter
	default:
		return blobPrinter
	}
}
