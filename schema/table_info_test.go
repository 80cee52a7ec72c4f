package schema

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hatlonely/sorm/schema/constraint"
)

func TestGetTableInfo(t *testing.T) {
	Convey("测试 GetTableInfo 方法", t, func() {
		Convey("users 表", func() {
			tbl := newTestUserTable()
			infos := tbl.GetTableInfo()
			So(len(infos), ShouldEqual, 4)

			So(infos[0], ShouldResemble, TableInfo{
				Cid: -1, Name: "id", Type: "INTEGER", NotNull: false, DfltValue: "", Pk: 1,
			})
			So(infos[1], ShouldResemble, TableInfo{
				Cid: -1, Name: "name", Type: "TEXT", NotNull: true, DfltValue: "", Pk: 0,
			})
			So(infos[2], ShouldResemble, TableInfo{
				Cid: -1, Name: "email", Type: "TEXT", NotNull: true, DfltValue: "", Pk: 0,
			})
			So(infos[3], ShouldResemble, TableInfo{
				Cid: -1, Name: "age", Type: "INTEGER", NotNull: false, DfltValue: "", Pk: 0,
			})
		})

		Convey("文本类默认值带单引号，数值类不带", func() {
			tbl := MustNewTable[testUser]("users",
				NewColumn("name", userName, constraint.Default("guest")),
				NewColumn("age", userAge, constraint.Default("18")),
			)
			infos := tbl.GetTableInfo()
			So(infos[0].DfltValue, ShouldEqual, "'guest'")
			So(infos[1].DfltValue, ShouldEqual, "18")
		})

		Convey("复合主键按声明次序覆写 Pk，与列的声明位置无关", func() {
			// 列按 (a, b) 声明，复合主键按 (b, a) 声明
			tbl := MustNewTable[testGrade]("grades",
				NewColumn("a", studentID),
				NewColumn("b", courseID),
				PrimaryKeyOver(Key(courseID), Key(studentID)),
			)
			infos := tbl.GetTableInfo()
			So(infos[0].Name, ShouldEqual, "a")
			So(infos[0].Pk, ShouldEqual, 2)
			So(infos[1].Name, ShouldEqual, "b")
			So(infos[1].Pk, ShouldEqual, 1)
		})

		Convey("多次调用结果完全一致", func() {
			tbl := newTestGradeTable()
			So(tbl.GetTableInfo(), ShouldResemble, tbl.GetTableInfo())
		})
	})
}
