package identity_test

import (
	"context"
	"errors"
	"testing"

	identity "github.com/okian/paddock/internal/domain/identity"
	"github.com/okian/paddock/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type stubView struct {
	results []model.Result
	drivers map[int]model.Driver
	err     error
}

func (s *stubView) ResultsForRace(_ context.Context, _ int) ([]model.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubView) Driver(_ context.Context, driverID int) (model.Driver, error) {
	d, ok := s.drivers[driverID]
	if !ok {
		return model.Driver{}, errors.New("unknown driver")
	}
	return d, nil
}

func TestFullName(t *testing.T) {
	Convey("Given a driver record", t, func() {
		d := model.Driver{Forename: "Gilles", Surname: "Villeneuve"}

		Convey("Then the display identity joins forename and surname", func() {
			So(identity.FullName(d), ShouldEqual, "Gilles Villeneuve")
		})
	})
}

func TestDriversInRace(t *testing.T) {
	Convey("Given a race with several result rows", t, func() {
		ctx := context.Background()
		view := &stubView{
			results: []model.Result{
				{DriverID: 2},
				{DriverID: 1},
				{DriverID: 3},
				{DriverID: 2}, // duplicate row for the same driver
			},
			drivers: map[int]model.Driver{
				1: {Forename: "Jacques", Surname: "Villeneuve"},
				2: {Forename: "Gilles", Surname: "Villeneuve"},
				3: {Forename: "Niki", Surname: "Lauda"},
			},
		}

		Convey("When listing the drivers", func() {
			names, err := identity.DriversInRace(ctx, view, 1)

			Convey("Then names should be sorted and de-duplicated", func() {
				So(err, ShouldBeNil)
				So(names, ShouldResemble, []string{
					"Gilles Villeneuve",
					"Jacques Villeneuve",
					"Niki Lauda",
				})
			})
		})

		Convey("When the store fails", func() {
			view.err = errors.New("store down")
			names, err := identity.DriversInRace(ctx, view, 1)

			Convey("Then the error should propagate", func() {
				So(err, ShouldNotBeNil)
				So(names, ShouldBeNil)
			})
		})
	})
}
