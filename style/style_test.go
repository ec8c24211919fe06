package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlain(t *testing.T) {
	Convey("Disabled styles", t, func() {
		Disable()
		defer Enable()

		Convey("Should return text untouched", func() {
			So(Bold("x"), ShouldEqual, "x")
			So(Title("malkit"), ShouldEqual, "malkit")
			So(Status("dropped"), ShouldEqual, "dropped")
		})

		Convey("Should mark unscored entries", func() {
			So(Score(0), ShouldEqual, "-")
			So(Score(9), ShouldEqual, "9")
		})
	})
}
