// Package schema 编译期表结构描述。一张表由宿主类型 T 和一组按声明顺序排列的
// 列描述组成，列描述通过直接字段、getter、setter 三种定位器之一绑定到 T 的
// 属性上，所有遍历和查找都是类型安全的，不依赖运行时反射解析 T 的布局。
// 表构建完成后不可变，唯一的例外是 WithoutRowID 标记，它以写时复制的方式
// 返回新表，原表不受影响，因此同一张表可以被多个 goroutine 并发读取。
package schema

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrNoColumns             = errors.New("table requires at least one column")
	ErrInvalidColumn         = errors.New("invalid column declaration")
	ErrDuplicateColumn       = errors.New("duplicate column name")
	ErrConflictingPrimaryKey = errors.New("conflicting primary key declarations")
	ErrMultipleCompositeKeys = errors.New("multiple composite primary keys")
	ErrUnknownKeyColumn      = errors.New("composite key references unknown column")
)

// Locator 定位宿主类型 T 上类型为 F 的一个属性，三种形态中有且仅有一种生效：
// 直接字段、getter、setter。
type Locator[T, F any] struct {
	field  func(*T) *F
	getter func(*T) F
	setter func(*T, F)
}

// Field 直接字段定位器
func Field[T, F any](field func(*T) *F) Locator[T, F] {
	return Locator[T, F]{field: field}
}

// Getter 读方法定位器
func Getter[T, F any](getter func(*T) F) Locator[T, F] {
	return Locator[T, F]{getter: getter}
}

// Setter 写方法定位器
func Setter[T, F any](setter func(*T, F)) Locator[T, F] {
	return Locator[T, F]{setter: setter}
}

// funcEqual 判断两个函数值是否指向同一个函数。Go 的函数值不支持 == 比较，
// 定位器的身份匹配通过函数指针完成，这是包内使用 reflect 的唯一场景。
func funcEqual(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// sameField 判断两个字段定位器是否指向 T 的同一个字段。即使是不同的闭包，
// 指向同一字段的定位器作用在同一实例上也会得到相同的地址。
func sameField[T, F any](a, b func(*T) *F) bool {
	var probe T
	return a(&probe) == b(&probe)
}
