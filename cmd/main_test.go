package main

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/WhiCu/dstack"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Given a script that grows the stack", t, func() {
		var b strings.Builder
		err := run(&b, 2, 0, strings.Fields("1 2 3 peek pop pop pop"))

		Convey("Then every operation is reported in order", func() {
			So(err, ShouldBeNil)
			So(b.String(), ShouldEqual, strings.Join([]string{
				"push 1\tlen=1 cap=2 full=false",
				"push 2\tlen=2 cap=2 full=true",
				"push 3\tlen=3 cap=4 full=false",
				"peek 3\tlen=3 cap=4",
				"pop  3\tlen=2 cap=4",
				"pop  2\tlen=1 cap=4",
				"pop  1\tlen=0 cap=4",
				"stack: []",
				"",
			}, "\n"))
		})
	})

	Convey("Given a script that pops too often", t, func() {
		var b strings.Builder
		err := run(&b, 1, 0, []string{"4", "pop", "pop"})

		Convey("Then it stops with the underflow error", func() {
			So(errors.Is(err, dstack.ErrEmpty), ShouldBeTrue)
			So(b.String(), ShouldContainSubstring, "pop  4")
		})
	})

	Convey("Given a peek on an empty stack", t, func() {
		err := run(&strings.Builder{}, 0, 0, []string{"peek"})

		Convey("Then it fails with ErrEmpty", func() {
			So(errors.Is(err, dstack.ErrEmpty), ShouldBeTrue)
		})
	})

	Convey("Given a token that is not a number", t, func() {
		err := run(&strings.Builder{}, 0, 0, []string{"1", "two"})

		Convey("Then the parse error is returned", func() {
			So(errors.Is(err, strconv.ErrSyntax), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"two"`)
		})
	})

	Convey("Given a push past the maximum capacity", t, func() {
		err := run(&strings.Builder{}, 1, 1, []string{"1", "2"})

		Convey("Then the capacity error is returned", func() {
			So(errors.Is(err, dstack.ErrCapacityExceeded), ShouldBeTrue)
		})
	})

	Convey("Given a negative capacity", t, func() {
		err := run(&strings.Builder{}, -1, 0, nil)

		Convey("Then construction fails", func() {
			So(errors.Is(err, dstack.ErrNegativeCapacity), ShouldBeTrue)
		})
	})
}
