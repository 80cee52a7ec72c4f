package constraint

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKindString(t *testing.T) {
	Convey("测试 Kind String 方法", t, func() {
		So(KindPrimaryKey.String(), ShouldEqual, "primary_key")
		So(KindNotNull.String(), ShouldEqual, "not_null")
		So(KindAutoIncrement.String(), ShouldEqual, "autoincrement")
		So(KindUnique.String(), ShouldEqual, "unique")
		So(KindDefault.String(), ShouldEqual, "default")
		So(KindCollate.String(), ShouldEqual, "collate")
		So(Kind(0).String(), ShouldEqual, "unknown")
	})
}

func TestHas(t *testing.T) {
	Convey("测试 Has 方法", t, func() {
		constraints := []Constraint{PrimaryKey(), AutoIncrement()}

		Convey("包含的种类", func() {
			So(Has(constraints, KindPrimaryKey), ShouldBeTrue)
			So(Has(constraints, KindAutoIncrement), ShouldBeTrue)
		})

		Convey("不包含的种类", func() {
			So(Has(constraints, KindNotNull), ShouldBeFalse)
			So(Has(nil, KindNotNull), ShouldBeFalse)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("测试 Find 方法", t, func() {
		constraints := []Constraint{NotNull(), Default("guest"), Collate("nocase")}

		Convey("按种类查找", func() {
			c, ok := Find(constraints, KindDefault)
			So(ok, ShouldBeTrue)
			So(c.Kind(), ShouldEqual, KindDefault)
		})

		Convey("查找不存在的种类", func() {
			_, ok := Find(constraints, KindUnique)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestDefaultValue(t *testing.T) {
	Convey("测试 DefaultValue 方法", t, func() {
		Convey("有默认值约束", func() {
			v, ok := DefaultValue([]Constraint{NotNull(), Default("guest")})
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "guest")
		})

		Convey("没有默认值约束", func() {
			_, ok := DefaultValue([]Constraint{NotNull()})
			So(ok, ShouldBeFalse)
		})
	})
}

func TestValued(t *testing.T) {
	Convey("测试携带值的约束", t, func() {
		Convey("Default 携带默认值文本", func() {
			v, ok := Default("0").(Valued)
			So(ok, ShouldBeTrue)
			So(v.Value(), ShouldEqual, "0")
		})

		Convey("Collate 携带排序规则名", func() {
			v, ok := Collate("nocase").(Valued)
			So(ok, ShouldBeTrue)
			So(v.Value(), ShouldEqual, "nocase")
		})

		Convey("标记约束不携带值", func() {
			_, ok := NotNull().(Valued)
			So(ok, ShouldBeFalse)
		})
	})
}
