package schema

// KeyPart 复合主键中对一列的引用。字段类型在构造时被闭包擦除，解析时按
// 定位器身份在列集合中匹配出列名。
type KeyPart[T any] struct {
	resolve func(t *Table[T]) string
}

// Key 通过直接字段定位器引用一列
func Key[T, F any](field func(*T) *F) KeyPart[T] {
	return KeyPart[T]{resolve: func(t *Table[T]) string {
		return FindColumnName(t, Field(field))
	}}
}

// KeyGetter 通过 getter 定位器引用一列
func KeyGetter[T, F any](getter func(*T) F) KeyPart[T] {
	return KeyPart[T]{resolve: func(t *Table[T]) string {
		return FindColumnName(t, Getter(getter))
	}}
}

// KeySetter 通过 setter 定位器引用一列
func KeySetter[T, F any](setter func(*T, F)) KeyPart[T] {
	return KeyPart[T]{resolve: func(t *Table[T]) string {
		return FindColumnName(t, Setter(setter))
	}}
}

// compositeKey 表级复合主键声明，成员顺序即主键中的列顺序
type compositeKey[T any] struct {
	parts []KeyPart[T]
}

func (k *compositeKey[T]) applyTo(t *Table[T]) error {
	if t.key != nil {
		return ErrMultipleCompositeKeys
	}
	t.key = k
	return nil
}

// PrimaryKeyOver 声明表级复合主键，parts 的顺序决定主键中各列的次序
func PrimaryKeyOver[T any](parts ...KeyPart[T]) Part[T] {
	return &compositeKey[T]{parts: parts}
}
