package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/malkit/malkit/malerr"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValuesDocuments(t *testing.T) {
	Convey("Given anime list entry values", t, func() {
		values, expected := animeValuesFixture()

		Convey("When marshalled", func() {
			data, err := values.Marshal()

			Convey("Then the document should match the service format exactly", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, expected)
			})
		})

		Convey("When every field is unset", func() {
			data, err := (&AnimeListEntryValues{}).Marshal()

			Convey("Then only the root element should be written", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, header+`<entry></entry>`)
			})
		})
	})

	Convey("Given manga list entry values", t, func() {
		values, expected := mangaValuesFixture()

		data, err := values.Marshal()
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, expected)
	})
}

func TestSearchDocuments(t *testing.T) {
	Convey("Anime search results", t, func() {
		expected, doc := animeSearchFixture()

		results, err := DecodeAnimeSearch([]byte(doc))
		So(err, ShouldBeNil)
		So(results, ShouldResemble, expected)
	})

	Convey("Manga search results", t, func() {
		expected, doc := mangaSearchFixture()

		results, err := DecodeMangaSearch([]byte(doc))
		So(err, ShouldBeNil)
		So(results, ShouldResemble, expected)
	})

	Convey("An empty search document", t, func() {
		results, err := DecodeAnimeSearch([]byte(`<anime></anime>`))
		So(err, ShouldBeNil)
		So(results, ShouldNotBeNil)
		So(results, ShouldBeEmpty)
	})

	Convey("An unknown series type", t, func() {
		_, doc := animeSearchFixture()
		doc = strings.Replace(doc, "<type>TV</type>", "<type>Hologram</type>", 1)

		_, err := DecodeAnimeSearch([]byte(doc))

		var enumErr *malerr.UnknownEnumValueError
		So(errors.As(err, &enumErr), ShouldBeTrue)
		So(enumErr.Field, ShouldEqual, "type")
		So(enumErr.Value, ShouldEqual, "Hologram")
	})

	Convey("A document that is not XML", t, func() {
		_, err := DecodeMangaSearch([]byte(`<html><body>Too many requests`))
		So(err, ShouldNotBeNil)
	})
}

func TestListDocuments(t *testing.T) {
	Convey("An anime list", t, func() {
		expected, doc := animeListFixture()

		list, err := DecodeAnimeList([]byte(doc))
		So(err, ShouldBeNil)
		So(list, ShouldNotBeNil)
		So(list.Info, ShouldResemble, expected.Info)
		So(list.Entries, ShouldResemble, expected.Entries)
	})

	Convey("A manga list", t, func() {
		expected, doc := mangaListFixture()

		list, err := DecodeMangaList([]byte(doc))
		So(err, ShouldBeNil)
		So(list, ShouldNotBeNil)
		So(*list, ShouldResemble, expected)
	})

	Convey("Manga list series types", t, func() {
		decode := func(wire string) (MangaType, error) {
			list, err := DecodeMangaList([]byte(`<myanimelist><myinfo/><manga><series_type>` + wire + `</series_type></manga></myanimelist>`))
			if err != nil {
				return "", err
			}
			return list.Entries[0].SeriesType, nil
		}

		for wire, expected := range map[string]MangaType{"1": MangaComic, "2": Novel, "3": Manhwa, "4": Doujinshi, "6": Manhua, "7": OEL} {
			decoded, err := decode(wire)
			So(err, ShouldBeNil)
			So(decoded, ShouldEqual, expected)
		}

		_, err := decode("5")
		So(malerr.KindOf(err), ShouldEqual, malerr.KindUnknownEnumValue)

		So(listMangaType.Encode(Manhwa).MustGet(), ShouldEqual, "3")
		So(listMangaType.Encode(OneShot).IsAbsent(), ShouldBeTrue)
	})

	Convey("A list document without myinfo", t, func() {
		anime, err := DecodeAnimeList([]byte(`<?xml version="1.0" encoding="UTF-8"?><myanimelist></myanimelist>`))
		So(err, ShouldBeNil)
		So(anime, ShouldBeNil)

		manga, err := DecodeMangaList([]byte(`<myanimelist><error>Invalid username</error></myanimelist>`))
		So(err, ShouldBeNil)
		So(manga, ShouldBeNil)
	})

	Convey("A list with an unknown entry status", t, func() {
		_, doc := animeListFixture()
		doc = strings.Replace(doc, "<my_status>1</my_status>", "<my_status>5</my_status>", 1)

		_, err := DecodeAnimeList([]byte(doc))
		So(malerr.KindOf(err), ShouldEqual, malerr.KindUnknownEnumValue)
	})

	Convey("A user document", t, func() {
		expected, doc := userFixture()

		user, err := DecodeUser([]byte(doc))
		So(err, ShouldBeNil)
		So(*user, ShouldResemble, expected)
	})
}

func TestValuesFromEntry(t *testing.T) {
	Convey("Given an anime list entry", t, func() {
		list, _ := animeListFixture()
		entry := list.Entries[0]
		entry.WatchedEpisodes = 8
		entry.Score = 7
		entry.Status = AnimeDropped
		entry.Tags = []string{"a", "b"}

		Convey("When projected to values", func() {
			values := AnimeValuesFromEntry(entry)

			Convey("Then the progress fields should be copied", func() {
				So(values.Episode, ShouldResemble, mo.Some(8))
				So(values.Score, ShouldResemble, mo.Some(7))
				So(values.Status, ShouldResemble, mo.Some(AnimeDropped))
				So(values.Tags, ShouldResemble, []string{"a", "b"})
				So(values.DateStart, ShouldResemble, mo.Some(date(2010, time.May, 1)))
				So(values.DateFinish.IsAbsent(), ShouldBeTrue)
				So(values.EnableRewatching, ShouldResemble, mo.Some(false))
			})

			Convey("Then everything else should stay unset", func() {
				So(values.StorageType.IsAbsent(), ShouldBeTrue)
				So(values.StorageValue.IsAbsent(), ShouldBeTrue)
				So(values.Priority.IsAbsent(), ShouldBeTrue)
				So(values.Comments.IsAbsent(), ShouldBeTrue)
				So(values.FansubGroup.IsAbsent(), ShouldBeTrue)
				So(values.TimesRewatched.IsAbsent(), ShouldBeTrue)
				So(values.RewatchValue.IsAbsent(), ShouldBeTrue)
				So(values.EnableDiscussion.IsAbsent(), ShouldBeTrue)
			})

			Convey("Then the tags should not alias the entry", func() {
				values.Tags[0] = "changed"
				So(entry.Tags[0], ShouldEqual, "a")
			})
		})
	})

	Convey("Given an empty anime list entry", t, func() {
		values := AnimeValuesFromEntry(AnimeListEntry{})

		So(values.Status.IsAbsent(), ShouldBeTrue)
		So(values.Tags, ShouldBeNil)

		data, err := values.Marshal()
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, header+
			`<entry><episode>0</episode><score>0</score><enable_rewatching>0</enable_rewatching></entry>`)
	})

	Convey("Given a manga list entry", t, func() {
		list, _ := mangaListFixture()
		values := MangaValuesFromEntry(list.Entries[0])

		So(values.Chapter, ShouldResemble, mo.Some(350))
		So(values.Volume, ShouldResemble, mo.Some(39))
		So(values.Score, ShouldResemble, mo.Some(10))
		So(values.Status, ShouldResemble, mo.Some(MangaReading))
		So(values.EnableRereading, ShouldResemble, mo.Some(true))
		So(values.Tags, ShouldResemble, []string{"dark"})
		So(values.ScanGroup.IsAbsent(), ShouldBeTrue)
		So(values.RetailVolumes.IsAbsent(), ShouldBeTrue)
	})
}

func TestRefs(t *testing.T) {
	Convey("Refs should resolve to the series id", t, func() {
		So(AnimeIDOf(AnimeID("42")), ShouldEqual, "42")
		So(AnimeIDOf(Anime{ID: "1"}), ShouldEqual, "1")
		So(AnimeIDOf(&AnimeListEntry{SeriesID: "21", EntryID: "0"}), ShouldEqual, "21")
		So(AnimeIDOf(nil), ShouldEqual, "")

		So(MangaIDOf(MangaID("7")), ShouldEqual, "7")
		So(MangaIDOf(Manga{ID: "2"}), ShouldEqual, "2")
		So(MangaIDOf(MangaListEntry{SeriesID: "3"}), ShouldEqual, "3")
	})
}
