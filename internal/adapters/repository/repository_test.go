package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/okian/paddock/internal/adapters/repository"
	"github.com/okian/paddock/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	resultsCSV = `raceId,driverId,constructorId,grid,positionOrder,points,laps,statusId
1,1,1,3,1,25,58,1
1,2,2,18,12,0,40,5
1,3,1,0,5,10,58,1
2,1,1,\N,2,18,56,11
`
	racesCSV = `raceId,year,round,name,date
1,2004,7,European Grand Prix,2004-05-30
2,2004,8,Canadian Grand Prix,2004-06-13
3,2003,1,Australian Grand Prix,2003-03-09
`
	driversCSV = `driverId,forename,surname,code,nationality
1,Michael,Schumacher,MSC,German
2,Mick,Schumacher,MSC,German
3,Lewis,Hamilton,HAM,British
`
	constructorsCSV = `constructorId,name
1,Ferrari
2,Haas
`
)

// writeDataDir lays out the four table files inside dir.
func writeDataDir(dir string) {
	files := map[string]string{
		"results.csv":      resultsCSV,
		"races.csv":        racesCSV,
		"drivers.csv":      driversCSV,
		"constructors.csv": constructorsCSV,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			panic(err)
		}
	}
}

func TestLoadDir(t *testing.T) {
	Convey("Given a directory with the four table files", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		writeDataDir(dir)

		Convey("When loading the tables", func() {
			store, err := repository.LoadDir(ctx, dir)

			Convey("Then all rows should be available", func() {
				So(err, ShouldBeNil)
				counts := store.Counts(ctx)
				So(counts["results"], ShouldEqual, 4)
				So(counts["races"], ShouldEqual, 3)
				So(counts["drivers"], ShouldEqual, 3)
				So(counts["constructors"], ShouldEqual, 2)
			})

			Convey("Then null markers should parse to zero", func() {
				So(err, ShouldBeNil)
				results, rerr := store.ResultsForRace(ctx, 2)
				So(rerr, ShouldBeNil)
				So(len(results), ShouldEqual, 1)
				So(results[0].Grid, ShouldEqual, 0)
				So(results[0].PositionOrder, ShouldEqual, 2)
			})

			Convey("Then typed columns should carry their values", func() {
				So(err, ShouldBeNil)
				results, rerr := store.ResultsForRace(ctx, 1)
				So(rerr, ShouldBeNil)
				So(len(results), ShouldEqual, 3)
				So(results[0].Points, ShouldEqual, 25.0)
				So(results[0].Laps, ShouldEqual, 58)
				So(results[1].StatusID, ShouldEqual, 5)
			})
		})

		Convey("When the directory does not exist", func() {
			_, err := repository.LoadDir(ctx, filepath.Join(dir, "missing"))

			Convey("Then it should fail with the unavailable sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When a table file is corrupt mid-file", func() {
			// One valid row, then an unterminated quote.
			corrupt := `raceId,driverId,constructorId,grid,positionOrder,points,laps,statusId
1,1,1,3,1,25,58,1
1,2,2,"18,12,0,40,5
`
			So(os.WriteFile(filepath.Join(dir, "results.csv"), []byte(corrupt), 0o644), ShouldBeNil)
			store, err := repository.LoadDir(ctx, dir)

			Convey("Then the load should fail instead of truncating the table", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrUnavailable), ShouldBeTrue)
				So(store, ShouldBeNil)
			})
		})

		Convey("When a table row has the wrong field count", func() {
			short := resultsCSV + "3,1,1\n"
			So(os.WriteFile(filepath.Join(dir, "results.csv"), []byte(short), 0o644), ShouldBeNil)
			_, err := repository.LoadDir(ctx, dir)

			Convey("Then the load should fail hard", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrUnavailable), ShouldBeTrue)
			})
		})

		Convey("When a table file is missing", func() {
			So(os.Remove(filepath.Join(dir, "drivers.csv")), ShouldBeNil)
			_, err := repository.LoadDir(ctx, dir)

			Convey("Then it should fail rather than fabricate rows", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrUnavailable), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(
			[]model.Result{
				{RaceID: 1, DriverID: 1, ConstructorID: 1, PositionOrder: 1},
				{RaceID: 1, DriverID: 2, ConstructorID: 2, PositionOrder: 2},
			},
			[]model.Race{
				{ID: 1, Year: 2004, Round: 7, Name: "European Grand Prix"},
				{ID: 2, Year: 2004, Round: 8, Name: "Canadian Grand Prix"},
				{ID: 3, Year: 2003, Round: 1, Name: "Australian Grand Prix"},
			},
			[]model.Driver{{ID: 1, Forename: "Michael", Surname: "Schumacher"}},
			[]model.Constructor{{ID: 1, Name: "Ferrari"}},
		)

		Convey("When looking up existing rows", func() {
			race, rerr := store.Race(ctx, 1)
			driver, derr := store.Driver(ctx, 1)
			constructor, cerr := store.Constructor(ctx, 1)

			Convey("Then each lookup should return its row", func() {
				So(rerr, ShouldBeNil)
				So(race.Name, ShouldEqual, "European Grand Prix")
				So(derr, ShouldBeNil)
				So(driver.Surname, ShouldEqual, "Schumacher")
				So(cerr, ShouldBeNil)
				So(constructor.Name, ShouldEqual, "Ferrari")
			})
		})

		Convey("When looking up absent rows", func() {
			_, rerr := store.Race(ctx, 99)
			_, derr := store.Driver(ctx, 99)
			_, cerr := store.Constructor(ctx, 99)

			Convey("Then each lookup should report not-found", func() {
				So(errors.Is(rerr, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(derr, repository.ErrNotFound), ShouldBeTrue)
				So(errors.Is(cerr, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When listing seasons", func() {
			years := store.Seasons(ctx)

			Convey("Then years should be de-duplicated, newest first", func() {
				So(years, ShouldResemble, []int{2004, 2003})
			})
		})

		Convey("When listing one season's races", func() {
			races := store.RacesForSeason(ctx, 2004)

			Convey("Then races should be ordered by round", func() {
				So(len(races), ShouldEqual, 2)
				So(races[0].Round, ShouldEqual, 7)
				So(races[1].Round, ShouldEqual, 8)
			})
		})

		Convey("When listing results for a race with no rows", func() {
			results, err := store.ResultsForRace(ctx, 42)

			Convey("Then the result should be empty, not an error", func() {
				So(err, ShouldBeNil)
				So(results, ShouldBeEmpty)
			})
		})
	})
}

func TestCache(t *testing.T) {
	Convey("Given a cache over a populated data directory", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		writeDataDir(dir)
		cache := repository.NewCache(dir)

		Convey("When getting the store twice without changes", func() {
			first, err1 := cache.Get(ctx)
			second, err2 := cache.Get(ctx)

			Convey("Then both calls should share one snapshot", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldPointTo, first)
			})
		})

		Convey("When invalidating between gets", func() {
			first, err1 := cache.Get(ctx)
			cache.Invalidate()
			second, err2 := cache.Get(ctx)

			Convey("Then the second get should load a fresh snapshot", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldNotBeNil)
				So(second, ShouldNotPointTo, first)
			})
		})

		Convey("When a table file changes on disk", func() {
			first, err1 := cache.Get(ctx)
			So(err1, ShouldBeNil)

			grown := constructorsCSV + "3,Mercedes\n"
			So(os.WriteFile(filepath.Join(dir, "constructors.csv"), []byte(grown), 0o644), ShouldBeNil)

			second, err2 := cache.Get(ctx)

			Convey("Then the change should be picked up", func() {
				So(err2, ShouldBeNil)
				So(second, ShouldNotPointTo, first)
				So(second.Counts(ctx)["constructors"], ShouldEqual, 3)
			})
		})

		Convey("When file watching is disabled", func() {
			static := repository.NewCache(dir, repository.WithModTimeWatch(false))
			first, err1 := static.Get(ctx)
			So(err1, ShouldBeNil)

			grown := constructorsCSV + "3,Mercedes\n"
			So(os.WriteFile(filepath.Join(dir, "constructors.csv"), []byte(grown), 0o644), ShouldBeNil)

			second, err2 := static.Get(ctx)

			Convey("Then the snapshot should stay pinned", func() {
				So(err2, ShouldBeNil)
				So(second, ShouldPointTo, first)
			})
		})

		Convey("When the directory is unreadable", func() {
			broken := repository.NewCache(filepath.Join(dir, "missing"))
			_, err := broken.Get(ctx)

			Convey("Then the load error should surface", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrUnavailable), ShouldBeTrue)
			})
		})
	})
}
