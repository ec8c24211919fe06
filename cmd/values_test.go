package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/malkit/malkit/model"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/pflag"
)

func animeFlags(args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("anime", pflag.ContinueOnError)
	addAnimeFlags(flags)
	lo.Must0(flags.Parse(args))
	return flags
}

func mangaFlags(args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("manga", pflag.ContinueOnError)
	addMangaFlags(flags)
	lo.Must0(flags.Parse(args))
	return flags
}

func TestReadAnimeValues(t *testing.T) {
	Convey("Anime values from flags", t, func() {
		Convey("Untouched flags should stay unset", func() {
			values, err := readAnimeValues(animeFlags(), model.AnimeListEntryValues{})
			So(err, ShouldBeNil)
			So(values.Episode.IsAbsent(), ShouldBeTrue)
			So(values.Status.IsAbsent(), ShouldBeTrue)
			So(values.Tags, ShouldBeNil)
			So(string(lo.Must(values.Marshal())), ShouldEqual, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<entry></entry>`)
		})

		Convey("Set flags should be copied", func() {
			values, err := readAnimeValues(animeFlags(
				"--episode", "14",
				"--status", "On Hold",
				"--storage-type", "retail-dvd",
				"--start", "2018-01-02",
				"--rewatching",
				"--tags", "AAA, BBB",
			), model.AnimeListEntryValues{})
			So(err, ShouldBeNil)
			So(values.Episode, ShouldResemble, mo.Some(14))
			So(values.Status, ShouldResemble, mo.Some(model.AnimeOnHold))
			So(values.StorageType, ShouldResemble, mo.Some(model.StorageRetailDVD))
			So(values.DateStart.MustGet().Equal(time.Date(2018, time.January, 2, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
			So(values.EnableRewatching, ShouldResemble, mo.Some(true))
			So(values.Tags, ShouldResemble, []string{"AAA", "BBB"})
		})

		Convey("Flags should override the base values", func() {
			base := model.AnimeValuesFromEntry(model.AnimeListEntry{
				WatchedEpisodes: 3,
				Score:           7,
				Status:          model.AnimeWatching,
				StartedWatching: mo.Some(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)),
				Tags:            []string{"kept"},
			})

			values, err := readAnimeValues(animeFlags("--episode", "4", "--start", "none"), base)
			So(err, ShouldBeNil)
			So(values.Episode, ShouldResemble, mo.Some(4))
			So(values.Score, ShouldResemble, mo.Some(7))
			So(values.Status, ShouldResemble, mo.Some(model.AnimeWatching))
			So(values.DateStart.IsAbsent(), ShouldBeTrue)
			So(values.Tags, ShouldResemble, []string{"kept"})
		})

		Convey("none should leave the date out of the request", func() {
			base := model.AnimeValuesFromEntry(model.AnimeListEntry{
				StartedWatching:  mo.Some(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)),
				FinishedWatching: mo.Some(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)),
			})

			values, err := readAnimeValues(animeFlags("--start", "none"), base)
			So(err, ShouldBeNil)

			data := string(lo.Must(values.Marshal()))
			So(data, ShouldNotContainSubstring, "<date_start>")
			So(data, ShouldContainSubstring, "<date_finish>06012020</date_finish>")
		})

		Convey("Bad input should be reported", func() {
			_, err := readAnimeValues(animeFlags("--status", "binging"), model.AnimeListEntryValues{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "plan-to-watch")

			_, err = readAnimeValues(animeFlags("--finish", "01022018"), model.AnimeListEntryValues{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "YYYY-MM-DD")
		})
	})
}

func TestReadMangaValues(t *testing.T) {
	Convey("Manga values from flags", t, func() {
		values, err := readMangaValues(mangaFlags(
			"--chapter", "120",
			"--volume", "12",
			"--status", "plan_to_read",
			"--reread-value", "very high",
			"--scan-group", "group",
			"--retail-volumes", "3",
		), model.MangaListEntryValues{})

		So(err, ShouldBeNil)
		So(values.Chapter, ShouldResemble, mo.Some(120))
		So(values.Volume, ShouldResemble, mo.Some(12))
		So(values.Status, ShouldResemble, mo.Some(model.MangaPlanToRead))
		So(values.RereadValue, ShouldResemble, mo.Some(model.VeryHigh))
		So(values.ScanGroup, ShouldResemble, mo.Some("group"))
		So(values.RetailVolumes, ShouldResemble, mo.Some(3))

		data := string(lo.Must(values.Marshal()))
		So(data, ShouldContainSubstring, "<chapter>120</chapter>")
		So(data, ShouldContainSubstring, "<status>6</status>")
		So(data, ShouldContainSubstring, "<reread_value>5</reread_value>")
	})
}

func TestParseMember(t *testing.T) {
	Convey("parseMember", t, func() {
		members := model.AnimeEntryStatusCodec.Members()

		So(lo.Must(parseMember("status", "", members)), ShouldEqual, model.AnimeEntryStatus(""))
		So(lo.Must(parseMember("status", "COMPLETED", members)), ShouldEqual, model.AnimeCompleted)
		So(lo.Must(parseMember("status", "plan to watch", members)), ShouldEqual, model.AnimePlanToWatch)

		_, err := parseMember("status", "reading", members)
		So(err, ShouldNotBeNil)
		_, allowed, found := strings.Cut(err.Error(), "expected one of: ")
		So(found, ShouldBeTrue)
		So(allowed, ShouldEqual, strings.Join(memberNames(members), ", "))
		So(strings.Split(allowed, ", "), ShouldHaveLength, len(members))
	})
}
