package search_test

import (
	"context"
	"testing"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/domain/placement"
	"github.com/adekau/wvwgg-solver/internal/solver/search"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine_Run_Feasible(t *testing.T) {
	Convey("Given a matchup already in the desired order", t, func() {
		scores := [3]int{1000, 950, 900}
		tiers := []model.Tier{{First: 43, Second: 32, Third: 21}}
		ctx := context.Background()

		Convey("When searching", func() {
			out := search.New().Run(ctx, scores, tiers)

			Convey("Then it finds a feasible assignment", func() {
				So(out.Status, ShouldEqual, search.StatusFound)
				So(len(out.Assignment), ShouldEqual, 1)
			})

			Convey("And re-simulating the assignment reproduces an ordered result", func() {
				final := placement.Simulate(scores, tiers, out.Assignment)
				So(placement.Ordered(final, 1), ShouldBeTrue)
			})

			Convey("And the branch heuristic tried the widest-gap placement first", func() {
				So(out.Assignment[0], ShouldEqual, placement.MaxCatchUp)
			})
		})
	})

	Convey("Given a deficit that only maximum catch-up closes", t, func() {
		// Slot 0 trails by 18 with ten skirmishes of spread 2 left, so
		// nearly every skirmish must go max catch-up.
		scores := [3]int{0, 18, 0}
		tiers := make([]model.Tier, 10)
		for i := range tiers {
			tiers[i] = model.Tier{First: 5, Second: 4, Third: 3}
		}

		Convey("When searching", func() {
			out := search.New().Run(context.Background(), scores, tiers)

			Convey("Then it still finds an assignment", func() {
				So(out.Status, ShouldEqual, search.StatusFound)
				final := placement.Simulate(scores, tiers, out.Assignment)
				So(placement.Ordered(final, 1), ShouldBeTrue)
			})
		})
	})
}

func TestEngine_Run_ProvenInfeasible(t *testing.T) {
	Convey("Given an 850-point deficit and a single 19-point skirmish", t, func() {
		scores := [3]int{100, 1000, 950}
		tiers := []model.Tier{{First: 19, Second: 16, Third: 13}}

		Convey("When searching", func() {
			out := search.New().Run(context.Background(), scores, tiers)

			Convey("Then infeasibility is proven at the root", func() {
				So(out.Status, ShouldEqual, search.StatusInfeasible)
				So(out.Iterations, ShouldEqual, 1)
				So(out.Assignment, ShouldBeNil)
			})

			Convey("And the bound agrees with direct simulation of max catch-up", func() {
				seed := []placement.Placement{placement.MaxCatchUp}
				final := placement.Simulate(scores, tiers, seed)
				So(placement.Ordered(final, 1), ShouldBeFalse)
			})
		})
	})

	Convey("Given a scenario the bound cannot prune at the root", t, func() {
		// The suffix bound passes for both adjacent pairs, yet no leaf
		// satisfies the ordering: the proof requires the full walk.
		scores := [3]int{0, 1, 2}
		tiers := []model.Tier{{First: 3, Second: 2, Third: 1}}

		Convey("When searching", func() {
			out := search.New().Run(context.Background(), scores, tiers)

			Convey("Then the exhaustive walk still proves infeasibility", func() {
				So(out.Status, ShouldEqual, search.StatusInfeasible)
				So(out.Iterations, ShouldBeGreaterThan, 1)
			})
		})
	})
}

func TestEngine_Run_Exhausted(t *testing.T) {
	Convey("Given a tiny iteration budget", t, func() {
		scores := [3]int{0, 18, 0}
		tiers := make([]model.Tier, 10)
		for i := range tiers {
			tiers[i] = model.Tier{First: 5, Second: 4, Third: 3}
		}

		Convey("When the budget runs out mid-search", func() {
			out := search.New(search.WithIterationCap(5)).Run(context.Background(), scores, tiers)

			Convey("Then the outcome is exhausted, not infeasible", func() {
				So(out.Status, ShouldEqual, search.StatusExhausted)
				So(out.Assignment, ShouldBeNil)
			})
		})

		Convey("When the budget is generous", func() {
			out := search.New().Run(context.Background(), scores, tiers)

			Convey("Then the same scenario resolves", func() {
				So(out.Status, ShouldEqual, search.StatusFound)
			})
		})
	})
}

func TestEngine_Run_Deterministic(t *testing.T) {
	Convey("Given a mid-sized scenario", t, func() {
		scores := [3]int{520, 500, 490}
		tiers := []model.Tier{
			{First: 43, Second: 32, Third: 21},
			{First: 19, Second: 16, Third: 13},
			{First: 31, Second: 24, Third: 17},
			{First: 25, Second: 20, Third: 15},
		}

		Convey("When running the search twice on identical input", func() {
			first := search.New().Run(context.Background(), scores, tiers)
			second := search.New().Run(context.Background(), scores, tiers)

			Convey("Then both runs agree exactly", func() {
				So(first.Status, ShouldEqual, second.Status)
				So(first.Iterations, ShouldEqual, second.Iterations)
				So(first.Assignment, ShouldResemble, second.Assignment)
			})
		})
	})
}

func TestEngine_Run_MinMargin(t *testing.T) {
	Convey("Given a near-tie that a wider margin forbids", t, func() {
		scores := [3]int{10, 10, 0}
		tiers := []model.Tier{{First: 3, Second: 2, Third: 1}}

		Convey("When the default margin of one applies", func() {
			out := search.New().Run(context.Background(), scores, tiers)

			Convey("Then an assignment exists", func() {
				So(out.Status, ShouldEqual, search.StatusFound)
			})
		})

		Convey("When a margin of three is demanded", func() {
			out := search.New(search.WithMinMargin(3)).Run(context.Background(), scores, tiers)

			Convey("Then the scenario is proven infeasible", func() {
				So(out.Status, ShouldEqual, search.StatusInfeasible)
			})
		})
	})
}
