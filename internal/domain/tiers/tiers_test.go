package tiers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/tiers"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTable_Lookup(t *testing.T) {
	Convey("Given the default tier table", t, func() {
		table := tiers.NewTable()
		ctx := context.Background()

		Convey("When looking up NA prime time", func() {
			start := time.Date(2026, 8, 30, 1, 15, 0, 0, time.UTC)
			tier, err := table.Lookup(ctx, start, model.RegionNA)

			Convey("Then it returns the richest tier", func() {
				So(err, ShouldBeNil)
				So(tier, ShouldResemble, model.Tier{First: 43, Second: 32, Third: 21})
			})
		})

		Convey("When looking up the NA overnight trough", func() {
			start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
			tier, err := table.Lookup(ctx, start, model.RegionNA)

			Convey("Then it returns the leanest tier", func() {
				So(err, ShouldBeNil)
				So(tier, ShouldResemble, model.Tier{First: 19, Second: 16, Third: 13})
			})
		})

		Convey("When the same slot is queried at different minutes", func() {
			a, errA := table.Lookup(ctx, time.Date(2026, 8, 30, 16, 1, 0, 0, time.UTC), model.RegionEU)
			b, errB := table.Lookup(ctx, time.Date(2026, 8, 30, 17, 59, 0, 0, time.UTC), model.RegionEU)

			Convey("Then lookup is deterministic within the slot", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		})

		Convey("When the region is unknown", func() {
			_, err := table.Lookup(ctx, time.Now(), model.Region("mars"))

			Convey("Then it reports the unknown-region sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, tiers.ErrUnknownRegion), ShouldBeTrue)
			})
		})

		Convey("Then every default tier satisfies the tier invariant", func() {
			for hour := 0; hour < 24; hour += 2 {
				start := time.Date(2026, 8, 30, hour, 0, 0, 0, time.UTC)
				for _, region := range []model.Region{model.RegionNA, model.RegionEU} {
					tier, err := table.Lookup(ctx, start, region)
					So(err, ShouldBeNil)
					So(tier.Validate(), ShouldBeNil)
				}
			}
		})
	})
}

func TestTable_Options(t *testing.T) {
	Convey("Given a table with a region override", t, func() {
		flat := [tiers.SlotsPerDay]model.Tier{}
		for i := range flat {
			flat[i] = model.Tier{First: 5, Second: 4, Third: 3}
		}
		table := tiers.NewTable(tiers.WithRegionTable(model.RegionNA, flat))

		Convey("When looking up the overridden region", func() {
			tier, err := table.Lookup(context.Background(), time.Now(), model.RegionNA)

			Convey("Then the override applies", func() {
				So(err, ShouldBeNil)
				So(tier, ShouldResemble, model.Tier{First: 5, Second: 4, Third: 3})
			})
		})
	})

	Convey("Given an override that violates the tier invariant", t, func() {
		bad := [tiers.SlotsPerDay]model.Tier{}
		bad[3] = model.Tier{First: 1, Second: 9, Third: 0}
		table := tiers.NewTable(tiers.WithRegionTable(model.RegionEU, bad))

		Convey("When looking up that region", func() {
			start := time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC)
			tier, err := table.Lookup(context.Background(), start, model.RegionEU)

			Convey("Then the override was ignored and the default survives", func() {
				So(err, ShouldBeNil)
				So(tier, ShouldResemble, model.Tier{First: 43, Second: 32, Third: 21})
			})
		})
	})
}
