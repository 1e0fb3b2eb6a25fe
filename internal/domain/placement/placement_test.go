package placement_test

import (
	"testing"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlacement_Ranks(t *testing.T) {
	Convey("Given the six placements", t, func() {
		Convey("Then each is a bijection onto the three ranks", func() {
			for _, p := range placement.All {
				seen := map[int]bool{}
				for slot := 0; slot < model.TeamCount; slot++ {
					seen[p.Rank(slot)] = true
				}
				So(len(seen), ShouldEqual, model.TeamCount)
			}
		})

		Convey("Then no two placements assign ranks identically", func() {
			seen := map[string]bool{}
			for _, p := range placement.All {
				So(seen[p.String()], ShouldBeFalse)
				seen[p.String()] = true
			}
		})

		Convey("Then the max-catch-up placement sends the leader first and the runner-up last", func() {
			So(placement.MaxCatchUp.Rank(0), ShouldEqual, 0)
			So(placement.MaxCatchUp.Rank(1), ShouldEqual, 2)
		})
	})
}

func TestPlacement_Points(t *testing.T) {
	Convey("Given a tier of (43, 32, 21)", t, func() {
		tier := model.Tier{First: 43, Second: 32, Third: 21}

		Convey("When the desired order finishes as-is", func() {
			pts := placement.P123.Points(tier)

			Convey("Then points follow the tier directly", func() {
				So(pts, ShouldResemble, [3]int{43, 32, 21})
			})
		})

		Convey("When the desired order is fully reversed", func() {
			pts := placement.P321.Points(tier)

			Convey("Then points are mirrored", func() {
				So(pts, ShouldResemble, [3]int{21, 32, 43})
			})
		})

		Convey("Then every placement hands out the whole tier", func() {
			total := tier.First + tier.Second + tier.Third
			for _, p := range placement.All {
				pts := p.Points(tier)
				So(pts[0]+pts[1]+pts[2], ShouldEqual, total)
			}
		})

		Convey("Then max catch-up has the largest gain", func() {
			best := placement.MaxCatchUp.Gain(tier)
			So(best, ShouldEqual, tier.Spread())
			for _, p := range placement.All {
				So(p.Gain(tier), ShouldBeLessThanOrEqualTo, best)
			}
		})
	})
}

func TestSimulate(t *testing.T) {
	Convey("Given initial scores and two skirmishes", t, func() {
		scores := [3]int{1000, 950, 900}
		tiers := []model.Tier{
			{First: 43, Second: 32, Third: 21},
			{First: 19, Second: 16, Third: 13},
		}

		Convey("When simulating a mixed assignment", func() {
			final := placement.Simulate(scores, tiers, []placement.Placement{placement.P321, placement.P132})

			Convey("Then per-slot totals accumulate exactly", func() {
				So(final, ShouldResemble, [3]int{1000 + 21 + 19, 950 + 32 + 13, 900 + 43 + 16})
			})
		})

		Convey("When simulating an empty assignment", func() {
			final := placement.Simulate(scores, tiers, nil)

			Convey("Then scores are unchanged", func() {
				So(final, ShouldResemble, scores)
			})
		})
	})
}

func TestOrderedAndMargin(t *testing.T) {
	Convey("Given final scores", t, func() {
		Convey("When strictly ordered", func() {
			final := [3]int{1021, 982, 943}

			Convey("Then the ordering check passes and margin sums adjacent gaps", func() {
				So(placement.Ordered(final, 1), ShouldBeTrue)
				So(placement.Margin(final), ShouldEqual, 78)
			})
		})

		Convey("When two slots are tied", func() {
			final := [3]int{1000, 1000, 900}

			Convey("Then a minimum margin of 1 rejects the tie", func() {
				So(placement.Ordered(final, 1), ShouldBeFalse)
			})
		})

		Convey("When ordered but below a larger minimum margin", func() {
			final := [3]int{1002, 1000, 900}

			Convey("Then the check honors the configured margin", func() {
				So(placement.Ordered(final, 1), ShouldBeTrue)
				So(placement.Ordered(final, 3), ShouldBeFalse)
			})
		})
	})
}
