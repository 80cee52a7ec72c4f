package inspect

import (
	"strings"

	"github.com/hatlonely/sorm/schema"
)

// ChangeKind 差异类型
type ChangeKind int

const (
	// ChangeAdded 声明中有而库中没有的列
	ChangeAdded ChangeKind = iota + 1
	// ChangeRemoved 库中有而声明中没有的列
	ChangeRemoved
	// ChangeModified 两边都有但类型、非空、默认值或主键序号不一致的列
	ChangeModified
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	}
	return "unknown"
}

// Change 一列的差异。Declared、Actual 在对应一侧缺失时为 nil
type Change struct {
	Kind     ChangeKind
	Name     string
	Declared *schema.TableInfo
	Actual   *schema.TableInfo
}

// Diff 比较声明的表结构与库中实际的表结构。Cid 不参与比较，声明侧的 Cid
// 是 -1 哨兵，实际位置只有库里才知道。存储类型名比较不区分大小写。
// 返回顺序：先按声明顺序给出 added 和 modified，再按库中顺序给出 removed
func Diff(declared, actual []schema.TableInfo) []Change {
	actualByName := make(map[string]*schema.TableInfo, len(actual))
	for i := range actual {
		actualByName[actual[i].Name] = &actual[i]
	}
	declaredByName := make(map[string]*schema.TableInfo, len(declared))
	for i := range declared {
		declaredByName[declared[i].Name] = &declared[i]
	}

	var res []Change
	for i := range declared {
		d := &declared[i]
		a, ok := actualByName[d.Name]
		if !ok {
			res = append(res, Change{Kind: ChangeAdded, Name: d.Name, Declared: d})
			continue
		}
		if !sameColumn(d, a) {
			res = append(res, Change{Kind: ChangeModified, Name: d.Name, Declared: d, Actual: a})
		}
	}
	for i := range actual {
		a := &actual[i]
		if _, ok := declaredByName[a.Name]; !ok {
			res = append(res, Change{Kind: ChangeRemoved, Name: a.Name, Actual: a})
		}
	}
	return res
}

func sameColumn(d, a *schema.TableInfo) bool {
	return strings.EqualFold(d.Type, a.Type) &&
		d.NotNull == a.NotNull &&
		d.DfltValue == a.DfltValue &&
		d.Pk == a.Pk
}
