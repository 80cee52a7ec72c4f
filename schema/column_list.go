package schema

import (
	"github.com/hatlonely/sorm/schema/constraint"
)

// columnList 按声明顺序排列的列集合，声明顺序即 SQL 中的位置顺序，
// 表构建完成后不再变化。
type columnList[T any] []AnyColumn[T]

func (l columnList[T]) count() int {
	return len(l)
}

// forEach 按声明顺序遍历所有列，不会提前终止
func (l columnList[T]) forEach(fn func(c AnyColumn[T])) {
	for _, c := range l {
		fn(c)
	}
}

// forEachWith 按声明顺序遍历带指定种类约束的列
func (l columnList[T]) forEachWith(kind constraint.Kind, fn func(c AnyColumn[T])) {
	for _, c := range l {
		if c.Has(kind) {
			fn(c)
		}
	}
}

// forEachExcept 按声明顺序遍历不带指定种类约束的列
func (l columnList[T]) forEachExcept(kind constraint.Kind, fn func(c AnyColumn[T])) {
	for _, c := range l {
		if !c.Has(kind) {
			fn(c)
		}
	}
}

// namesWith 收集同时带有所有指定种类约束的列名。注意返回顺序是声明顺序的
// 逆序，这是沿袭下来的兼容行为，需要声明顺序的调用方要自行反转。
func (l columnList[T]) namesWith(kinds ...constraint.Kind) []string {
	var res []string
	for _, c := range l {
		matched := true
		for _, kind := range kinds {
			if !c.Has(kind) {
				matched = false
				break
			}
		}
		if matched {
			res = append(res, c.Name())
		}
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}
