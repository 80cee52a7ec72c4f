package schema

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/sorm/schema/constraint"
)

// Table 将宿主类型 T 绑定到一组列描述上，提供遍历、查找和自省接口。
// 构建完成后不可变，WithoutRowID 以写时复制的方式返回新表。
type Table[T any] struct {
	name         string
	withoutRowID bool
	columns      columnList[T]
	key          *compositeKey[T]
}

// NewTable 以表名和按声明顺序排列的部件构建表。部件可以是列声明，也可以是
// 表级复合主键。构建时校验：至少一列、列名非空且不重复、单列主键与复合主键
// 不能同时声明、复合主键引用的列必须已声明。
func NewTable[T any](name string, parts ...Part[T]) (*Table[T], error) {
	t := &Table[T]{name: name}
	for _, p := range parts {
		if err := p.applyTo(t); err != nil {
			return nil, errors.Wrapf(err, "table %s", name)
		}
	}
	if t.columns.count() == 0 {
		return nil, errors.Wrapf(ErrNoColumns, "table %s", name)
	}
	seen := make(map[string]bool, t.columns.count())
	for _, c := range t.columns {
		if seen[c.Name()] {
			return nil, errors.Wrapf(ErrDuplicateColumn, "table %s column %s", name, c.Name())
		}
		seen[c.Name()] = true
	}
	if t.key != nil {
		for _, c := range t.columns {
			if c.Has(constraint.KindPrimaryKey) {
				return nil, errors.Wrapf(ErrConflictingPrimaryKey,
					"table %s declares a composite primary key but column %s is tagged primary key", name, c.Name())
			}
		}
		for i, part := range t.key.parts {
			if part.resolve(t) == "" {
				return nil, errors.Wrapf(ErrUnknownKeyColumn, "table %s composite key part %d", name, i)
			}
		}
	}
	return t, nil
}

// NewTableOf 与 NewTable 相同，宿主类型从第一列的声明推导
func NewTableOf[T, F any](name string, first *Column[T, F], rest ...Part[T]) (*Table[T], error) {
	parts := make([]Part[T], 0, len(rest)+1)
	parts = append(parts, first)
	parts = append(parts, rest...)
	return NewTable(name, parts...)
}

// MustNewTable 构建失败时 panic，用于包级表声明
func MustNewTable[T any](name string, parts ...Part[T]) *Table[T] {
	t, err := NewTable(name, parts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name 表名
func (t *Table[T]) Name() string {
	return t.name
}

// WithoutRowID 返回设置了 without rowid 标记的新表，原表不变
func (t *Table[T]) WithoutRowID() *Table[T] {
	res := *t
	res.withoutRowID = true
	return &res
}

// IsWithoutRowID 是否设置了 without rowid 标记
func (t *Table[T]) IsWithoutRowID() bool {
	return t.withoutRowID
}

// ColumnsCount 列数
func (t *Table[T]) ColumnsCount() int {
	return t.columns.count()
}

// ColumnNames 按声明顺序返回所有列名
func (t *Table[T]) ColumnNames() []string {
	res := make([]string, 0, t.columns.count())
	t.columns.forEach(func(c AnyColumn[T]) {
		res = append(res, c.Name())
	})
	return res
}

// ColumnNamesWith 返回同时带有所有指定种类约束的列名，顺序为声明顺序的逆序，
// 见 columnList.namesWith
func (t *Table[T]) ColumnNamesWith(kinds ...constraint.Kind) []string {
	return t.columns.namesWith(kinds...)
}

// ForEachColumn 按声明顺序遍历所有列
func (t *Table[T]) ForEachColumn(fn func(c AnyColumn[T])) {
	t.columns.forEach(fn)
}

// ForEachColumnWith 按声明顺序遍历带指定种类约束的列
func (t *Table[T]) ForEachColumnWith(kind constraint.Kind, fn func(c AnyColumn[T])) {
	t.columns.forEachWith(kind, fn)
}

// ForEachColumnExcept 按声明顺序遍历不带指定种类约束的列
func (t *Table[T]) ForEachColumnExcept(kind constraint.Kind, fn func(c AnyColumn[T])) {
	t.columns.forEachExcept(kind, fn)
}

// PrimaryKeyColumnNames 返回主键列名。优先收集带单列主键约束的列，没有时
// 回退到表级复合主键的解析结果
func (t *Table[T]) PrimaryKeyColumnNames() []string {
	var res []string
	t.columns.forEachWith(constraint.KindPrimaryKey, func(c AnyColumn[T]) {
		res = append(res, c.Name())
	})
	if len(res) == 0 {
		res = t.CompositeKeyColumnsNames()
	}
	return res
}

// CompositeKeyColumnsNames 返回复合主键引用的列名，顺序为主键声明中的次序，
// 与列的声明位置无关。未声明复合主键时返回 nil
func (t *Table[T]) CompositeKeyColumnsNames() []string {
	if t.key == nil {
		return nil
	}
	res := make([]string, 0, len(t.key.parts))
	for _, part := range t.key.parts {
		res = append(res, part.resolve(t))
	}
	return res
}

// ForEachColumnWithFieldType 按声明顺序遍历字段类型为 F 的列。定位器的身份
// 比较本身是带类型的，先按字段类型收窄再匹配
func ForEachColumnWithFieldType[F, T any](t *Table[T], fn func(c *Column[T, F])) {
	for _, c := range t.columns {
		if col, ok := c.(*Column[T, F]); ok {
			fn(col)
		}
	}
}

// FindColumnName 按定位器身份查找列名，找不到时返回空串。只在与定位器形态
// 一致的访问方式槽位上比较：getter 定位器不会与 setter 槽位比较。多个列
// 可能匹配同一定位器时（正常声明不会出现），声明顺序靠前的列优先
func FindColumnName[T, F any](t *Table[T], locator Locator[T, F]) string {
	res := ""
	ForEachColumnWithFieldType[F](t, func(c *Column[T, F]) {
		if res != "" {
			return
		}
		switch {
		case locator.field != nil:
			if c.field != nil && sameField(c.field, locator.field) {
				res = c.name
			}
		case locator.getter != nil:
			if c.getter != nil && funcEqual(c.getter, locator.getter) {
				res = c.name
			}
		case locator.setter != nil:
			if c.setter != nil && funcEqual(c.setter, locator.setter) {
				res = c.name
			}
		}
	})
	return res
}

// GetObjectField 按定位器取出 obj 中对应属性的只读值。先按字段类型收窄，再
// 对每个候选列依次尝试字段、getter、setter 三种匹配，命中即停。setter 没有
// 返回值，setter 命中后仍然通过该列的 getter 取值。没有任何列匹配时返回
// nil，不报错：泛型代码里同一个定位器可能被拿去探测不相关的表
func GetObjectField[T, F any](t *Table[T], obj *T, locator Locator[T, F]) *F {
	var res *F
	ForEachColumnWithFieldType[F](t, func(c *Column[T, F]) {
		if res != nil {
			return
		}
		if locator.field != nil && c.field != nil && sameField(c.field, locator.field) {
			res = c.field(obj)
			return
		}
		if locator.getter != nil && c.getter != nil && funcEqual(c.getter, locator.getter) {
			v := c.getter(obj)
			res = &v
			return
		}
		if locator.setter != nil && c.setter != nil && funcEqual(c.setter, locator.setter) {
			v := c.getter(obj)
			res = &v
			return
		}
	})
	return res
}
