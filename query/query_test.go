package query

import (
	"testing"

	"github.com/malkit/malkit/filesystem"
	"github.com/malkit/malkit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestSuggest(t *testing.T) {
	Convey("Given a search history", t, func() {
		So(Remember(Anime, "Cowboy Bebop"), ShouldBeNil)
		So(Remember(Anime, "cowboy  bebop"), ShouldBeNil)
		So(Remember(Anime, "Code Geass"), ShouldBeNil)
		So(Remember(Manga, "Berserk"), ShouldBeNil)

		Convey("Suggestions should rank frequent queries first", func() {
			So(Suggest(Anime, "co", 0), ShouldResemble, []string{"cowboy bebop", "code geass"})
		})

		Convey("Kinds should not leak into each other", func() {
			So(Suggest(Manga, "co", 0), ShouldBeEmpty)
			So(Suggest(Manga, "ber", 0), ShouldResemble, []string{"berserk"})
		})

		Convey("The limit should cut the tail", func() {
			So(Suggest(Anime, "c", 1), ShouldResemble, []string{"cowboy bebop"})
		})

		Convey("Blank queries should not be stored", func() {
			So(Remember(Anime, "   "), ShouldBeNil)
			So(Suggest(Anime, "", 0), ShouldNotContain, "")
		})

		Convey("Nothing should be suggested when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(Suggest(Anime, "co", 0), ShouldBeEmpty)
		})
	})
}
