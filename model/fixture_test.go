package model

import (
	"time"

	"github.com/samber/mo"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func animeValuesFixture() (AnimeListEntryValues, string) {
	values := AnimeListEntryValues{
		Episode:          mo.Some(14),
		Status:           mo.Some(AnimeOnHold),
		Score:            mo.Some(10),
		StorageType:      mo.Some(StorageDVDCD),
		StorageValue:     mo.Some(5.0),
		TimesRewatched:   mo.Some(12),
		RewatchValue:     mo.Some(High),
		DateStart:        mo.Some(date(2018, time.January, 2)),
		DateFinish:       mo.Some(date(2018, time.February, 14)),
		Priority:         mo.Some(1),
		EnableDiscussion: mo.Some(true),
		EnableRewatching: mo.Some(true),
		Comments:         mo.Some("Test comments..."),
		FansubGroup:      mo.Some("Test Subgroup"),
		Tags:             []string{"AAA", "BBB"},
	}

	return values, header + `<entry>` +
		`<episode>14</episode>` +
		`<status>3</status>` +
		`<score>10</score>` +
		`<storage_type>2</storage_type>` +
		`<storage_value>5</storage_value>` +
		`<times_rewatched>12</times_rewatched>` +
		`<rewatch_value>4</rewatch_value>` +
		`<date_start>01022018</date_start>` +
		`<date_finish>02142018</date_finish>` +
		`<priority>1</priority>` +
		`<enable_discussion>1</enable_discussion>` +
		`<enable_rewatching>1</enable_rewatching>` +
		`<comments>Test comments...</comments>` +
		`<fansub_group>Test Subgroup</fansub_group>` +
		`<tags>AAA, BBB</tags>` +
		`</entry>`
}

func mangaValuesFixture() (MangaListEntryValues, string) {
	values := MangaListEntryValues{
		Chapter:          mo.Some(14),
		Volume:           mo.Some(2),
		Status:           mo.Some(MangaOnHold),
		Score:            mo.Some(10),
		TimesReread:      mo.Some(12),
		RereadValue:      mo.Some(VeryHigh),
		DateStart:        mo.Some(date(2018, time.January, 2)),
		DateFinish:       mo.Some(date(2018, time.February, 14)),
		Priority:         mo.Some(1),
		EnableDiscussion: mo.Some(false),
		EnableRereading:  mo.Some(true),
		Comments:         mo.Some("Test comments..."),
		ScanGroup:        mo.Some("Test Scangroup"),
		Tags:             []string{"AAA", "BBB"},
		RetailVolumes:    mo.Some(5),
	}

	return values, header + `<entry>` +
		`<chapter>14</chapter>` +
		`<volume>2</volume>` +
		`<status>3</status>` +
		`<score>10</score>` +
		`<times_reread>12</times_reread>` +
		`<reread_value>5</reread_value>` +
		`<date_start>01022018</date_start>` +
		`<date_finish>02142018</date_finish>` +
		`<priority>1</priority>` +
		`<enable_discussion>0</enable_discussion>` +
		`<enable_rereading>1</enable_rereading>` +
		`<comments>Test comments...</comments>` +
		`<scan_group>Test Scangroup</scan_group>` +
		`<tags>AAA, BBB</tags>` +
		`<retail_volumes>5</retail_volumes>` +
		`</entry>`
}

func animeSearchFixture() ([]Anime, string) {
	results := []Anime{
		{
			ID:        "1",
			Title:     "Cowboy Bebop",
			English:   "Cowboy Bebop",
			Synonyms:  []string{},
			Episodes:  26,
			Score:     8.78,
			Type:      TV,
			Status:    FinishedAiring,
			StartDate: mo.Some(date(1998, time.April, 3)),
			EndDate:   mo.Some(date(1999, time.April, 24)),
			Synopsis:  "In the year 2071, humanity has colonized the planets.(Source: ANN)",
			Image:     "https://myanimelist.cdn-dena.com/images/anime/4/19644.jpg",
		},
		{
			ID:        "5",
			Title:     "Cowboy Bebop: Tengoku no Tobira",
			English:   "Cowboy Bebop: The Movie",
			Synonyms:  []string{"Cowboy Bebop: Knockin' on Heaven's Door", "Bebop Movie"},
			Episodes:  1,
			Score:     8.41,
			Type:      Movie,
			Status:    FinishedAiring,
			StartDate: mo.Some(date(2001, time.September, 1)),
			EndDate:   mo.None[time.Time](),
			Synopsis:  "Another day, another bounty.",
			Image:     "https://myanimelist.cdn-dena.com/images/anime/6/14331.jpg",
		},
	}

	return results, `<?xml version="1.0" encoding="utf-8"?>
<anime>
  <entry>
    <id>1</id>
    <title>Cowboy Bebop</title>
    <english>Cowboy Bebop</english>
    <synonyms></synonyms>
    <episodes>26</episodes>
    <score>8.78</score>
    <type>TV</type>
    <status>Finished Airing</status>
    <start_date>1998-04-03</start_date>
    <end_date>1999-04-24</end_date>
    <synopsis>In the year 2071, humanity has colonized the planets.&lt;br /&gt;[i](Source: ANN)[/i]</synopsis>
    <image>https://myanimelist.cdn-dena.com/images/anime/4/19644.jpg</image>
  </entry>
  <entry>
    <id>5</id>
    <title>Cowboy Bebop: Tengoku no Tobira</title>
    <english>Cowboy Bebop: The Movie</english>
    <synonyms>Cowboy Bebop: Knockin' on Heaven's Door; Bebop Movie</synonyms>
    <episodes>1</episodes>
    <score>8.41</score>
    <type>Movie</type>
    <status>Finished Airing</status>
    <start_date>2001-09-01</start_date>
    <end_date>0000-00-00</end_date>
    <synopsis>Another day, another bounty.</synopsis>
    <image>https://myanimelist.cdn-dena.com/images/anime/6/14331.jpg</image>
  </entry>
</anime>`
}

func mangaSearchFixture() ([]Manga, string) {
	results := []Manga{
		{
			ID:        "2",
			Title:     "Berserk",
			English:   "Berserk",
			Synonyms:  []string{"Berserk: The Prototype"},
			Chapters:  0,
			Volumes:   0,
			Score:     9.32,
			Type:      MangaComic,
			Status:    Publishing,
			StartDate: mo.Some(date(1989, time.August, 25)),
			EndDate:   mo.None[time.Time](),
			Synopsis:  "Guts, a former mercenary.",
			Image:     "https://myanimelist.cdn-dena.com/images/manga/1/157931.jpg",
		},
	}

	return results, `<?xml version="1.0" encoding="utf-8"?>
<manga>
  <entry>
    <id>2</id>
    <title>Berserk</title>
    <english>Berserk</english>
    <synonyms>Berserk: The Prototype</synonyms>
    <chapters>0</chapters>
    <volumes>0</volumes>
    <score>9.32</score>
    <type>Manga</type>
    <status>Publishing</status>
    <start_date>1989-08-25</start_date>
    <end_date>0000-00-00</end_date>
    <synopsis>Guts, a &lt;b&gt;former&lt;/b&gt; mercenary.</synopsis>
    <image>https://myanimelist.cdn-dena.com/images/manga/1/157931.jpg</image>
  </entry>
</manga>`
}

func animeListFixture() (AnimeList, string) {
	list := AnimeList{
		Info: AnimeListInfo{
			UserID:      "4711",
			Username:    "testuser",
			Watching:    1,
			Completed:   1,
			OnHold:      0,
			Dropped:     0,
			PlanToWatch: 0,
			DaysSpent:   12.5,
		},
		Entries: []AnimeListEntry{
			{
				SeriesID:           "21",
				SeriesTitle:        "One Piece",
				SeriesSynonyms:     []string{"OP"},
				SeriesType:         TV,
				SeriesEpisodes:     0,
				SeriesStatus:       CurrentlyAiring,
				SeriesStart:        mo.Some(date(1999, time.October, 20)),
				SeriesEnd:          mo.None[time.Time](),
				SeriesImage:        "https://myanimelist.cdn-dena.com/images/anime/6/73245.jpg",
				EntryID:            "0",
				WatchedEpisodes:    800,
				StartedWatching:    mo.Some(date(2010, time.May, 1)),
				FinishedWatching:   mo.None[time.Time](),
				Score:              9,
				Status:             AnimeWatching,
				Rewatching:         false,
				RewatchingEpisodes: 0,
				LastUpdated:        time.Unix(1375033955, 0).UTC(),
				Tags:               []string{"pirates", "long"},
			},
			{
				SeriesID:           "1",
				SeriesTitle:        "Cowboy Bebop",
				SeriesSynonyms:     []string{},
				SeriesType:         TV,
				SeriesEpisodes:     26,
				SeriesStatus:       FinishedAiring,
				SeriesStart:        mo.Some(date(1998, time.April, 3)),
				SeriesEnd:          mo.Some(date(1999, time.April, 24)),
				SeriesImage:        "https://myanimelist.cdn-dena.com/images/anime/4/19644.jpg",
				EntryID:            "0",
				WatchedEpisodes:    26,
				StartedWatching:    mo.None[time.Time](),
				FinishedWatching:   mo.Some(date(2012, time.March, 9)),
				Score:              10,
				Status:             AnimeCompleted,
				Rewatching:         true,
				RewatchingEpisodes: 3,
				LastUpdated:        time.Unix(1375000000, 0).UTC(),
				Tags:               []string{},
			},
		},
	}

	return list, `<?xml version="1.0" encoding="UTF-8"?>
<myanimelist>
  <myinfo>
    <user_id>4711</user_id>
    <user_name>testuser</user_name>
    <user_watching>1</user_watching>
    <user_completed>1</user_completed>
    <user_onhold>0</user_onhold>
    <user_dropped>0</user_dropped>
    <user_plantowatch>0</user_plantowatch>
    <user_days_spent_watching>12.5</user_days_spent_watching>
  </myinfo>
  <anime>
    <series_animedb_id>21</series_animedb_id>
    <series_title>One Piece</series_title>
    <series_synonyms>; OP</series_synonyms>
    <series_type>1</series_type>
    <series_episodes>0</series_episodes>
    <series_status>1</series_status>
    <series_start>1999-10-20</series_start>
    <series_end>0000-00-00</series_end>
    <series_image>https://myanimelist.cdn-dena.com/images/anime/6/73245.jpg</series_image>
    <my_id>0</my_id>
    <my_watched_episodes>800</my_watched_episodes>
    <my_start_date>2010-05-01</my_start_date>
    <my_finish_date>0000-00-00</my_finish_date>
    <my_score>9</my_score>
    <my_status>1</my_status>
    <my_rewatching>0</my_rewatching>
    <my_rewatching_ep>0</my_rewatching_ep>
    <my_last_updated>1375033955</my_last_updated>
    <my_tags>pirates, long</my_tags>
  </anime>
  <anime>
    <my_tags></my_tags>
    <my_last_updated>1375000000</my_last_updated>
    <my_rewatching_ep>3</my_rewatching_ep>
    <my_rewatching>1</my_rewatching>
    <my_status>2</my_status>
    <my_score>10</my_score>
    <my_finish_date>2012-03-09</my_finish_date>
    <my_start_date>0000-00-00</my_start_date>
    <my_watched_episodes>26</my_watched_episodes>
    <my_id>0</my_id>
    <series_image>https://myanimelist.cdn-dena.com/images/anime/4/19644.jpg</series_image>
    <series_end>1999-04-24</series_end>
    <series_start>1998-04-03</series_start>
    <series_status>2</series_status>
    <series_episodes>26</series_episodes>
    <series_type>1</series_type>
    <series_synonyms></series_synonyms>
    <series_title>Cowboy Bebop</series_title>
    <series_animedb_id>1</series_animedb_id>
  </anime>
</myanimelist>`
}

func mangaListFixture() (MangaList, string) {
	list := MangaList{
		Info: MangaListInfo{
			UserID:     "4711",
			Username:   "testuser",
			Reading:    1,
			Completed:  0,
			OnHold:     0,
			Dropped:    0,
			PlanToRead: 0,
			DaysSpent:  3.25,
		},
		Entries: []MangaListEntry{
			{
				SeriesID:          "2",
				SeriesTitle:       "Berserk",
				SeriesSynonyms:    []string{"Berserk: The Prototype"},
				SeriesType:        MangaComic,
				SeriesChapters:    0,
				SeriesVolumes:     0,
				SeriesStatus:      Publishing,
				SeriesStart:       mo.Some(date(1989, time.August, 25)),
				SeriesEnd:         mo.None[time.Time](),
				SeriesImage:       "https://myanimelist.cdn-dena.com/images/manga/1/157931.jpg",
				EntryID:           "0",
				ReadChapters:      350,
				ReadVolumes:       39,
				StartedReading:    mo.Some(date(2015, time.June, 1)),
				FinishedReading:   mo.None[time.Time](),
				Score:             10,
				Status:            MangaReading,
				Rereading:         true,
				RereadingChapters: 12,
				LastUpdated:       time.Unix(1500000000, 0).UTC(),
				Tags:              []string{"dark"},
			},
		},
	}

	return list, `<?xml version="1.0" encoding="UTF-8"?>
<myanimelist>
  <myinfo>
    <user_id>4711</user_id>
    <user_name>testuser</user_name>
    <user_reading>1</user_reading>
    <user_completed>0</user_completed>
    <user_onhold>0</user_onhold>
    <user_dropped>0</user_dropped>
    <user_plantoread>0</user_plantoread>
    <user_days_spent_watching>3.25</user_days_spent_watching>
  </myinfo>
  <manga>
    <series_mangadb_id>2</series_mangadb_id>
    <series_title>Berserk</series_title>
    <series_synonyms>Berserk: The Prototype</series_synonyms>
    <series_type>1</series_type>
    <series_chapters>0</series_chapters>
    <series_volumes>0</series_volumes>
    <series_status>1</series_status>
    <series_start>1989-08-25</series_start>
    <series_end>0000-00-00</series_end>
    <series_image>https://myanimelist.cdn-dena.com/images/manga/1/157931.jpg</series_image>
    <my_id>0</my_id>
    <my_read_chapters>350</my_read_chapters>
    <my_read_volumes>39</my_read_volumes>
    <my_start_date>2015-06-01</my_start_date>
    <my_finish_date>0000-00-00</my_finish_date>
    <my_score>10</my_score>
    <my_status>1</my_status>
    <my_rereadingg>1</my_rereadingg>
    <my_rereading_chap>12</my_rereading_chap>
    <my_last_updated>1500000000</my_last_updated>
    <my_tags>dark</my_tags>
  </manga>
</myanimelist>`
}

func userFixture() (User, string) {
	return User{ID: "4711", Username: "testuser"},
		`<?xml version="1.0" encoding="utf-8"?><user><id>4711</id><username>testuser</username></user>`
}
