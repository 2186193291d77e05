package story_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/paddock/internal/domain/model"
	story "github.com/okian/paddock/internal/domain/story"
	. "github.com/smartystreets/goconvey/convey"
)

// mockView backs the reconstruction with fixed rows.
type mockView struct {
	results      map[int][]model.Result
	drivers      map[int]model.Driver
	constructors map[int]model.Constructor
	races        map[int]model.Race
}

func (m *mockView) ResultsForRace(_ context.Context, raceID int) ([]model.Result, error) {
	return m.results[raceID], nil
}

func (m *mockView) Driver(_ context.Context, driverID int) (model.Driver, error) {
	d, ok := m.drivers[driverID]
	if !ok {
		return model.Driver{}, errors.New("unknown driver")
	}
	return d, nil
}

func (m *mockView) Constructor(_ context.Context, constructorID int) (model.Constructor, error) {
	c, ok := m.constructors[constructorID]
	if !ok {
		return model.Constructor{}, errors.New("unknown constructor")
	}
	return c, nil
}

func (m *mockView) Race(_ context.Context, raceID int) (model.Race, error) {
	r, ok := m.races[raceID]
	if !ok {
		return model.Race{}, errors.New("unknown race")
	}
	return r, nil
}

func newMockView() *mockView {
	return &mockView{
		results: map[int][]model.Result{
			1: {
				{RaceID: 1, DriverID: 1, ConstructorID: 1, Grid: 3, PositionOrder: 1, StatusID: 1},
				{RaceID: 1, DriverID: 2, ConstructorID: 2, Grid: 18, PositionOrder: 12, StatusID: 5},
				{RaceID: 1, DriverID: 3, ConstructorID: 1, Grid: 0, PositionOrder: 5, StatusID: 1},
			},
		},
		drivers: map[int]model.Driver{
			1: {ID: 1, Forename: "Michael", Surname: "Schumacher"},
			2: {ID: 2, Forename: "Mick", Surname: "Schumacher"},
			3: {ID: 3, Forename: "Lewis", Surname: "Hamilton"},
		},
		constructors: map[int]model.Constructor{
			1: {ID: 1, Name: "Ferrari"},
			2: {ID: 2, Name: "Haas"},
		},
		races: map[int]model.Race{
			1: {ID: 1, Year: 2004, Round: 7, Name: "European Grand Prix", Date: "2004-05-30"},
		},
	}
}

func TestReconstruct(t *testing.T) {
	Convey("Given a race with two drivers sharing a surname", t, func() {
		ctx := context.Background()
		view := newMockView()

		Convey("When reconstructing by one full name", func() {
			fact, err := story.Reconstruct(ctx, view, 1, "Michael Schumacher")

			Convey("Then it should pick that driver's row, not the namesake's", func() {
				So(err, ShouldBeNil)
				So(fact.Driver, ShouldEqual, "Michael Schumacher")
				So(fact.Team, ShouldEqual, "Ferrari")
				So(fact.Grid, ShouldEqual, 3)
				So(fact.Finish, ShouldEqual, 1)
				So(fact.Status, ShouldEqual, "Finished")
				So(fact.Delta, ShouldEqual, 2)
			})

			Convey("Then race context should come from the race row", func() {
				So(fact.Year, ShouldEqual, 2004)
				So(fact.GPName, ShouldEqual, "European Grand Prix")
				So(fact.Date, ShouldEqual, "2004-05-30")
			})
		})

		Convey("When reconstructing by the namesake's full name", func() {
			fact, err := story.Reconstruct(ctx, view, 1, "Mick Schumacher")

			Convey("Then it should return the namesake's row", func() {
				So(err, ShouldBeNil)
				So(fact.Team, ShouldEqual, "Haas")
				So(fact.Grid, ShouldEqual, 18)
				So(fact.Finish, ShouldEqual, 12)
				So(fact.Status, ShouldEqual, "Engine")
				So(fact.Delta, ShouldEqual, 6)
			})
		})

		Convey("When the driver started from the pit lane", func() {
			fact, err := story.Reconstruct(ctx, view, 1, "Lewis Hamilton")

			Convey("Then the raw grid stays zero but the delta uses the back of the grid", func() {
				So(err, ShouldBeNil)
				So(fact.Grid, ShouldEqual, 0)
				So(fact.Finish, ShouldEqual, 5)
				So(fact.Delta, ShouldEqual, 15)
			})
		})

		Convey("When the driver did not start the race", func() {
			_, err := story.Reconstruct(ctx, view, 1, "Ayrton Senna")

			Convey("Then it should report not-found", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, story.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestDecodeStatus(t *testing.T) {
	Convey("Given the status code table", t, func() {
		Convey("When decoding known codes", func() {
			So(story.DecodeStatus(1), ShouldEqual, "Finished")
			So(story.DecodeStatus(3), ShouldEqual, "Accident")
			So(story.DecodeStatus(11), ShouldEqual, "+1 Lap")
			So(story.DecodeStatus(20), ShouldEqual, "Spun off")
			So(story.DecodeStatus(31), ShouldEqual, "Retired")
		})

		Convey("When decoding an unknown code", func() {
			Convey("Then it should fall back to the generic technical label", func() {
				So(story.DecodeStatus(999), ShouldEqual, "Technical Issue")
				So(story.DecodeStatus(0), ShouldEqual, "Technical Issue")
			})
		})
	})
}
