package model_test

import (
	"testing"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTier_Spread(t *testing.T) {
	Convey("Given a skirmish tier", t, func() {
		Convey("When the values are distinct", func() {
			tier := model.Tier{First: 43, Second: 32, Third: 21}

			Convey("Then the spread is first minus third", func() {
				So(tier.Spread(), ShouldEqual, 22)
			})
		})

		Convey("When all values are equal", func() {
			tier := model.Tier{First: 5, Second: 5, Third: 5}

			Convey("Then the spread is zero", func() {
				So(tier.Spread(), ShouldEqual, 0)
			})
		})
	})
}

func TestTier_Validate(t *testing.T) {
	Convey("Given tier validation", t, func() {
		Convey("When the triple is non-increasing and non-negative", func() {
			So(model.Tier{First: 19, Second: 16, Third: 13}.Validate(), ShouldBeNil)
			So(model.Tier{First: 0, Second: 0, Third: 0}.Validate(), ShouldBeNil)
		})

		Convey("When second exceeds first", func() {
			err := model.Tier{First: 16, Second: 19, Third: 13}.Validate()
			So(err, ShouldNotBeNil)
		})

		Convey("When third exceeds second", func() {
			err := model.Tier{First: 19, Second: 13, Third: 16}.Validate()
			So(err, ShouldNotBeNil)
		})

		Convey("When a value is negative", func() {
			err := model.Tier{First: 2, Second: 1, Third: -1}.Validate()
			So(err, ShouldNotBeNil)
		})
	})
}
