package schema

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFindColumnName(t *testing.T) {
	Convey("测试 FindColumnName 方法", t, func() {
		tbl := newTestUserTable()

		Convey("字段定位器", func() {
			So(FindColumnName(tbl, Field(userID)), ShouldEqual, "id")
			So(FindColumnName(tbl, Field(userName)), ShouldEqual, "name")
			So(FindColumnName(tbl, Field(userAge)), ShouldEqual, "age")
		})

		Convey("指向同一字段的新闭包也能匹配", func() {
			So(FindColumnName(tbl, Field(func(u *testUser) *int64 { return &u.id })), ShouldEqual, "id")
		})

		Convey("getter 定位器", func() {
			So(FindColumnName(tbl, Getter((*testUser).Email)), ShouldEqual, "email")
		})

		Convey("setter 定位器", func() {
			So(FindColumnName(tbl, Setter((*testUser).SetEmail)), ShouldEqual, "email")
		})

		Convey("不相关的定位器返回空串", func() {
			So(FindColumnName(tbl, Field(func(u *testUser) *string { return &u.email })), ShouldBeEmpty)
			So(FindColumnName(tbl, Getter(func(u *testUser) string { return u.name })), ShouldBeEmpty)
		})

		Convey("getter 定位器不会与 setter 槽位比较", func() {
			// email 列只有访问器对，用作 setter 的函数按 getter 形态传入时不匹配
			So(FindColumnName(tbl, Getter(func(u *testUser) string { return u.email })), ShouldBeEmpty)
		})
	})
}

func TestGetObjectField(t *testing.T) {
	Convey("测试 GetObjectField 方法", t, func() {
		tbl := newTestUserTable()
		obj := &testUser{id: 42, name: "hatlonely", email: "hatlonely@foxmail.com", age: 18}

		Convey("字段定位器取值", func() {
			res := GetObjectField(tbl, obj, Field(userID))
			So(res, ShouldNotBeNil)
			So(*res, ShouldEqual, int64(42))
		})

		Convey("字段定位器返回的是对象内的地址", func() {
			res := GetObjectField(tbl, obj, Field(userName))
			So(res, ShouldEqual, &obj.name)
		})

		Convey("getter 定位器取值", func() {
			res := GetObjectField(tbl, obj, Getter((*testUser).Email))
			So(res, ShouldNotBeNil)
			So(*res, ShouldEqual, "hatlonely@foxmail.com")
		})

		Convey("setter 定位器经由 getter 取值，结果与 getter 定位器一致", func() {
			bySetter := GetObjectField(tbl, obj, Setter((*testUser).SetEmail))
			byGetter := GetObjectField(tbl, obj, Getter((*testUser).Email))
			So(bySetter, ShouldNotBeNil)
			So(byGetter, ShouldNotBeNil)
			So(*bySetter, ShouldEqual, *byGetter)
		})

		Convey("不相关的定位器返回 nil", func() {
			So(GetObjectField(tbl, obj, Field(func(u *testUser) *string { return &u.email })), ShouldBeNil)
		})

		Convey("没有访问器对的表用 getter 定位器返回 nil", func() {
			grades := newTestGradeTable()
			g := &testGrade{studentID: 1, courseID: 2}
			So(GetObjectField(grades, g, Getter(func(g *testGrade) int64 { return g.studentID })), ShouldBeNil)
		})
	})
}
