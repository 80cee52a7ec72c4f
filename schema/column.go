package schema

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/sorm/schema/constraint"
	"github.com/hatlonely/sorm/schema/typeprint"
)

// Part 建表声明中的一个部件，列或表级约束
type Part[T any] interface {
	applyTo(t *Table[T]) error
}

// AnyColumn 绑定到宿主类型 T 的列描述的类型擦除视图。字段类型信息只能通过
// ForEachColumnWithFieldType 的类型断言恢复。
type AnyColumn[T any] interface {
	// Name 列名
	Name() string
	// Has 判断列上是否带有指定种类的约束
	Has(kind constraint.Kind) bool
	// NotNull 是否带非空约束
	NotNull() bool
	// DefaultValue 默认值的文本表示，未声明时 ok 为 false
	DefaultValue() (string, bool)
	// Constraints 列上的约束，调用方只读
	Constraints() []constraint.Constraint
	// StorageType 字段类型对应的存储类型打印器
	StorageType() typeprint.Printer
}

// Column 一个映射属性的不可变描述。访问方式在构造时二选一：直接字段定位器，
// 或 getter/setter 访问器对，不会同时存在。
type Column[T, F any] struct {
	name        string
	field       func(*T) *F
	getter      func(*T) F
	setter      func(*T, F)
	constraints []constraint.Constraint
}

// NewColumn 通过直接字段定位器声明一列
func NewColumn[T, F any](name string, field func(*T) *F, constraints ...constraint.Constraint) *Column[T, F] {
	return &Column[T, F]{
		name:        name,
		field:       field,
		constraints: constraints,
	}
}

// NewColumnWithAccessor 通过 getter/setter 访问器对声明一列
func NewColumnWithAccessor[T, F any](name string, getter func(*T) F, setter func(*T, F), constraints ...constraint.Constraint) *Column[T, F] {
	return &Column[T, F]{
		name:        name,
		getter:      getter,
		setter:      setter,
		constraints: constraints,
	}
}

func (c *Column[T, F]) Name() string {
	return c.name
}

func (c *Column[T, F]) Has(kind constraint.Kind) bool {
	return constraint.Has(c.constraints, kind)
}

func (c *Column[T, F]) NotNull() bool {
	return c.Has(constraint.KindNotNull)
}

func (c *Column[T, F]) DefaultValue() (string, bool) {
	return constraint.DefaultValue(c.constraints)
}

func (c *Column[T, F]) Constraints() []constraint.Constraint {
	return c.constraints
}

func (c *Column[T, F]) StorageType() typeprint.Printer {
	return typeprint.For[F]()
}

func (c *Column[T, F]) applyTo(t *Table[T]) error {
	if c.name == "" {
		return errors.Wrap(ErrInvalidColumn, "column name is empty")
	}
	if c.field == nil && (c.getter == nil || c.setter == nil) {
		return errors.Wrapf(ErrInvalidColumn, "column %s requires a field locator or a getter/setter pair", c.name)
	}
	if c.field != nil && (c.getter != nil || c.setter != nil) {
		return errors.Wrapf(ErrInvalidColumn, "column %s declares both a field locator and accessors", c.name)
	}
	t.columns = append(t.columns, c)
	return nil
}
