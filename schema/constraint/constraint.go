package constraint

// Kind 约束种类，成员判断按种类进行，不比较约束值
type Kind int

const (
	KindPrimaryKey Kind = iota + 1
	KindNotNull
	KindAutoIncrement
	KindUnique
	KindDefault
	KindCollate
)

func (k Kind) String() string {
	switch k {
	case KindPrimaryKey:
		return "primary_key"
	case KindNotNull:
		return "not_null"
	case KindAutoIncrement:
		return "autoincrement"
	case KindUnique:
		return "unique"
	case KindDefault:
		return "default"
	case KindCollate:
		return "collate"
	}
	return "unknown"
}

// Constraint 列级约束标记
type Constraint interface {
	Kind() Kind
}

type primaryKey struct{}

func (primaryKey) Kind() Kind { return KindPrimaryKey }

// PrimaryKey 单列主键约束
func PrimaryKey() Constraint { return primaryKey{} }

type notNull struct{}

func (notNull) Kind() Kind { return KindNotNull }

// NotNull 非空约束
func NotNull() Constraint { return notNull{} }

type autoIncrement struct{}

func (autoIncrement) Kind() Kind { return KindAutoIncrement }

// AutoIncrement 自增约束
func AutoIncrement() Constraint { return autoIncrement{} }

type unique struct{}

func (unique) Kind() Kind { return KindUnique }

// Unique 唯一约束
func Unique() Constraint { return unique{} }

type defaultValue struct {
	value string
}

func (defaultValue) Kind() Kind { return KindDefault }

func (d defaultValue) Value() string { return d.value }

// Default 默认值约束，value 为默认值的文本表示，不带引号
func Default(value string) Constraint { return defaultValue{value: value} }

type collate struct {
	name string
}

func (collate) Kind() Kind { return KindCollate }

func (c collate) Value() string { return c.name }

// Collate 排序规则约束
func Collate(name string) Constraint { return collate{name: name} }

// Valued 携带值的约束，如 Default、Collate
type Valued interface {
	Constraint
	Value() string
}

// Has 判断约束列表中是否包含指定种类的约束
func Has(constraints []Constraint, kind Kind) bool {
	for _, c := range constraints {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

// Find 返回约束列表中第一个指定种类的约束
func Find(constraints []Constraint, kind Kind) (Constraint, bool) {
	for _, c := range constraints {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

// DefaultValue 返回约束列表中默认值约束携带的文本表示
func DefaultValue(constraints []Constraint) (string, bool) {
	c, ok := Find(constraints, KindDefault)
	if !ok {
		return "", false
	}
	v, ok := c.(Valued)
	if !ok {
		return "", false
	}
	return v.Value(), true
}
