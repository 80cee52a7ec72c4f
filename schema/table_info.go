package schema

import (
	"github.com/hatlonely/sorm/schema/constraint"
)

// TableInfo 一列的运行期快照，结构对应 sqlite PRAGMA table_info 的一行。
// Pk 为 0 表示不在主键中，单列主键为 1，复合主键为该列在主键声明中的
// 1 起始序号
type TableInfo struct {
	Cid       int    `yaml:"cid"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	NotNull   bool   `yaml:"notnull"`
	DfltValue string `yaml:"dflt_value"`
	Pk        int    `yaml:"pk"`
}

// GetTableInfo 按声明顺序为每一列生成一条 TableInfo。每次调用都基于当前列
// 集合重新生成，不缓存，表不变则多次调用的结果完全一致。Cid 保持 -1，列在
// 存储中的实际位置由调用方对账时填写。文本类存储类型的默认值会被单引号
// 包裹。复合主键在第二趟按主键声明中的次序覆写 Pk
func (t *Table[T]) GetTableInfo() []TableInfo {
	res := make([]TableInfo, 0, t.columns.count())
	t.columns.forEach(func(c AnyColumn[T]) {
		dft := ""
		if v, ok := c.DefaultValue(); ok {
			if c.StorageType().IsText() {
				dft = "'" + v + "'"
			} else {
				dft = v
			}
		}
		pk := 0
		if c.Has(constraint.KindPrimaryKey) {
			pk = 1
		}
		res = append(res, TableInfo{
			Cid:       -1,
			Name:      c.Name(),
			Type:      c.StorageType().Print(),
			NotNull:   c.NotNull(),
			DfltValue: dft,
			Pk:        pk,
		})
	})
	for i, name := range t.CompositeKeyColumnsNames() {
		for j := range res {
			if res[j].Name == name {
				res[j].Pk = i + 1
				break
			}
		}
	}
	return res
}
