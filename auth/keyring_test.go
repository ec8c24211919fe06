package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestPasswords(t *testing.T) {
	Convey("Stored passwords", t, func() {
		keyring.MockInit()

		Convey("Should round-trip per user", func() {
			So(SetPassword("alice", "s3cret"), ShouldBeNil)
			So(SetPassword("bob", "hunter2"), ShouldBeNil)

			password, err := Password("alice")
			So(err, ShouldBeNil)
			So(password, ShouldEqual, "s3cret")
		})

		Convey("Should report missing users", func() {
			_, err := Password("nobody")
			So(errors.Is(err, ErrNoPassword), ShouldBeTrue)
		})

		Convey("Should delete idempotently", func() {
			So(SetPassword("alice", "s3cret"), ShouldBeNil)
			So(DeletePassword("alice"), ShouldBeNil)
			So(DeletePassword("alice"), ShouldBeNil)

			_, err := Password("alice")
			So(errors.Is(err, ErrNoPassword), ShouldBeTrue)
		})
	})
}
