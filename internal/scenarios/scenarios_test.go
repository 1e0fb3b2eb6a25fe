package scenarios_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/adekau/wvwgg-solver/internal/domain/model"
	"github.com/adekau/wvwgg-solver/internal/scenarios"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerator_Generate(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		start := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
		gen := scenarios.New(
			scenarios.WithSeed(7),
			scenarios.WithEventRange(4, 8),
			scenarios.WithScoreRange(100, 200),
			scenarios.WithStart(start),
		)
		ctx := context.Background()

		Convey("When generating one scenario", func() {
			req := gen.Generate(ctx)

			Convey("Then it is structurally complete", func() {
				So(len(req.Events), ShouldBeBetweenOrEqual, 4, 8)
				So(len(req.Scores), ShouldEqual, model.TeamCount)

				seen := map[model.TeamID]bool{}
				for _, team := range req.DesiredOrder {
					So(team, ShouldNotBeEmpty)
					So(seen[team], ShouldBeFalse)
					seen[team] = true
					_, hasScore := req.Scores[team]
					So(hasScore, ShouldBeTrue)
				}
			})

			Convey("And events are chronological at skirmish cadence", func() {
				for i, ev := range req.Events {
					So(ev.ID, ShouldNotBeEmpty)
					So(ev.StartTime.Equal(start.Add(time.Duration(i)*2*time.Hour)), ShouldBeTrue)
				}
			})

			Convey("And scores fall inside the configured range", func() {
				for _, score := range req.Scores {
					So(score, ShouldBeBetweenOrEqual, 100, 200)
				}
			})
		})

		Convey("When generating with the same seed twice", func() {
			again := scenarios.New(
				scenarios.WithSeed(7),
				scenarios.WithEventRange(4, 8),
				scenarios.WithScoreRange(100, 200),
				scenarios.WithStart(start),
			)
			a := gen.Generate(ctx)
			b := again.Generate(ctx)

			Convey("Then everything but the uuids matches", func() {
				So(b.Scores, ShouldResemble, a.Scores)
				So(b.DesiredOrder, ShouldResemble, a.DesiredOrder)
				So(len(b.Events), ShouldEqual, len(a.Events))
				for i := range a.Events {
					So(b.Events[i].Region, ShouldEqual, a.Events[i].Region)
					So(b.Events[i].StartTime.Equal(a.Events[i].StartTime), ShouldBeTrue)
				}
			})
		})

		Convey("When generating a batch", func() {
			batch := gen.GenerateBatch(ctx, 5)

			Convey("Then it has the requested size", func() {
				So(len(batch), ShouldEqual, 5)
			})
		})
	})
}

func TestSaveAndLoad(t *testing.T) {
	Convey("Given a generated scenario", t, func() {
		gen := scenarios.New(scenarios.WithSeed(11))
		req := gen.Generate(context.Background())
		path := filepath.Join(t.TempDir(), "scenario.json")

		Convey("When saving and loading it", func() {
			So(scenarios.Save(path, req), ShouldBeNil)
			loaded, err := scenarios.Load(path)

			Convey("Then the round trip preserves the request", func() {
				So(err, ShouldBeNil)
				So(loaded.Scores, ShouldResemble, req.Scores)
				So(loaded.DesiredOrder, ShouldResemble, req.DesiredOrder)
				So(len(loaded.Events), ShouldEqual, len(req.Events))
				for i := range req.Events {
					So(loaded.Events[i].ID, ShouldEqual, req.Events[i].ID)
					So(loaded.Events[i].Region, ShouldEqual, req.Events[i].Region)
					So(loaded.Events[i].StartTime.Equal(req.Events[i].StartTime), ShouldBeTrue)
				}
			})
		})

		Convey("When loading a missing file", func() {
			_, err := scenarios.Load(filepath.Join(t.TempDir(), "missing.json"))

			Convey("Then it reports an error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
