package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/malkit/malkit/auth"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/mal"
	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/model"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestListFilter(t *testing.T) {
	Convey("List filter", t, func() {
		entries := []model.AnimeListEntry{
			{SeriesID: "1", SeriesTitle: "Cowboy Bebop", Score: 9, Status: model.AnimeCompleted, LastUpdated: time.Unix(100, 0)},
			{SeriesID: "2", SeriesTitle: "berserk", Score: 0, Status: model.AnimeDropped, LastUpdated: time.Unix(300, 0)},
			{SeriesID: "3", SeriesTitle: "Shingeki no Kyojin", SeriesSynonyms: []string{"Attack on Titan"}, Score: 8, Status: model.AnimeCompleted, LastUpdated: time.Unix(200, 0)},
		}
		ids := func(kept []model.AnimeListEntry) []string {
			return lo.Map(kept, func(e model.AnimeListEntry, _ int) string { return e.SeriesID })
		}

		Convey("Title order should ignore case", func() {
			So(ids(listFilter{order: "title"}.anime(entries, "")), ShouldResemble, []string{"2", "1", "3"})
		})

		Convey("Score and update order should put the highest first", func() {
			So(ids(listFilter{order: "score"}.anime(entries, "")), ShouldResemble, []string{"1", "3", "2"})
			So(ids(listFilter{order: "updated"}.anime(entries, "")), ShouldResemble, []string{"2", "3", "1"})
		})

		Convey("Status and text should narrow the list", func() {
			So(ids(listFilter{order: "title"}.anime(entries, model.AnimeCompleted)), ShouldResemble, []string{"1", "3"})
			So(ids(listFilter{order: "title", text: "titan"}.anime(entries, "")), ShouldResemble, []string{"3"})
			So(ids(listFilter{order: "title", text: "bbop"}.anime(entries, "")), ShouldResemble, []string{"1"})
		})

		Convey("The input slice should keep its order", func() {
			listFilter{order: "score"}.anime(entries, "")
			So(ids(entries), ShouldResemble, []string{"1", "2", "3"})
		})
	})
}

func TestHints(t *testing.T) {
	Convey("Error hints", t, func() {
		So(hintFor(errNoAccount), ShouldContainSubstring, "malkit login")
		So(hintFor(fmt.Errorf("alice: %w", auth.ErrNoPassword)), ShouldContainSubstring, "malkit login")
		So(hintFor(fmt.Errorf("search: %w", &malerr.UnauthorizedError{})), ShouldContainSubstring, "again")
		So(hintFor(&malerr.TimeoutError{}), ShouldContainSubstring, key.MalTimeout)
		So(hintFor(fmt.Errorf("find: %w", mal.ErrNoMatch)), ShouldNotBeEmpty)
		So(hintFor(&malerr.ClientError{Status: 404}), ShouldBeEmpty)
	})
}

func TestClientConfig(t *testing.T) {
	Convey("Client settings should follow the configuration", t, func() {
		viper.Set(key.MalBaseURL, "https://mal.example")
		viper.Set(key.MalTimeout, 7)
		viper.Set(key.MalReconnectOnNoContent, false)
		viper.Set(key.NetworkTLSFingerprint, true)
		defer viper.Reset()

		cfg := clientConfig("alice", "s3cret")
		So(cfg.BaseURL, ShouldEqual, "https://mal.example")
		So(cfg.Username, ShouldEqual, "alice")
		So(cfg.Password, ShouldEqual, "s3cret")
		So(cfg.Timeout, ShouldEqual, 7*time.Second)
		So(cfg.ReconnectOnNoContent, ShouldBeFalse)
		So(cfg.Fingerprint, ShouldBeTrue)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schemas", t, func() {
		Convey("Should exist for every subject", func() {
			for _, name := range schemaNames {
				var buf bytes.Buffer
				So(writeJSON(&buf, newReflector().Reflect(schemaSubjects[name])), ShouldBeNil)
				So(json.Valid(buf.Bytes()), ShouldBeTrue)
			}
		})

		Convey("Optional fields should allow null", func() {
			schema := newReflector().Reflect(&model.AnimeListEntryValues{})
			episode, ok := schema.Properties.Get("episode")
			So(ok, ShouldBeTrue)
			So(episode.OneOf, ShouldHaveLength, 2)
			So(episode.OneOf[0].Type, ShouldEqual, "integer")
			So(episode.OneOf[1].Type, ShouldEqual, "null")
		})
	})
}
