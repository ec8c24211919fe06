package model

import (
	"time"

	"github.com/malkit/malkit/codec"
	"github.com/malkit/malkit/xmlmap"
	"github.com/samber/mo"
)

// Anime is a title returned by an anime search.
type Anime struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	English   string               `json:"english"`
	Synonyms  []string             `json:"synonyms"`
	Episodes  int                  `json:"episodes"`
	Score     float64              `json:"score"`
	Type      AnimeType            `json:"type"`
	Status    AiringStatus         `json:"status"`
	StartDate mo.Option[time.Time] `json:"start_date"`
	EndDate   mo.Option[time.Time] `json:"end_date"`
	Synopsis  string               `json:"synopsis"`
	Image     string               `json:"image"`
}

var animeSchema = xmlmap.NewSchema("entry",
	xmlmap.Read("id", codec.Text, func(a *Anime) *string { return &a.ID }),
	xmlmap.Read("title", codec.Text, func(a *Anime) *string { return &a.Title }),
	xmlmap.Read("english", codec.Text, func(a *Anime) *string { return &a.English }),
	xmlmap.Read("synonyms", codec.SemicolonList, func(a *Anime) *[]string { return &a.Synonyms }),
	xmlmap.Read("episodes", codec.Int, func(a *Anime) *int { return &a.Episodes }),
	xmlmap.Read("score", codec.Float, func(a *Anime) *float64 { return &a.Score }),
	xmlmap.Read("type", searchAnimeType, func(a *Anime) *AnimeType { return &a.Type }),
	xmlmap.Read("status", searchAiringStatus, func(a *Anime) *AiringStatus { return &a.Status }),
	xmlmap.Read("start_date", codec.InboundDate, func(a *Anime) *mo.Option[time.Time] { return &a.StartDate }),
	xmlmap.Read("end_date", codec.InboundDate, func(a *Anime) *mo.Option[time.Time] { return &a.EndDate }),
	xmlmap.Read("synopsis", codec.Markup, func(a *Anime) *string { return &a.Synopsis }),
	xmlmap.Read("image", codec.Text, func(a *Anime) *string { return &a.Image }),
)

// AnimeListEntry is one title on a user's anime list.
type AnimeListEntry struct {
	SeriesID       string               `json:"series_id"`
	SeriesTitle    string               `json:"series_title"`
	SeriesSynonyms []string             `json:"series_synonyms"`
	SeriesType     AnimeType            `json:"series_type"`
	SeriesEpisodes int                  `json:"series_episodes"`
	SeriesStatus   AiringStatus         `json:"series_status"`
	SeriesStart    mo.Option[time.Time] `json:"series_start"`
	SeriesEnd      mo.Option[time.Time] `json:"series_end"`
	SeriesImage    string               `json:"series_image"`

	EntryID            string               `json:"entry_id"`
	WatchedEpisodes    int                  `json:"watched_episodes"`
	StartedWatching    mo.Option[time.Time] `json:"started_watching"`
	FinishedWatching   mo.Option[time.Time] `json:"finished_watching"`
	Score              int                  `json:"score"`
	Status             AnimeEntryStatus     `json:"status"`
	Rewatching         bool                 `json:"rewatching"`
	RewatchingEpisodes int                  `json:"rewatching_episodes"`
	LastUpdated        time.Time            `json:"last_updated"`
	Tags               []string             `json:"tags"`
}

var animeListEntrySchema = xmlmap.NewSchema("anime",
	xmlmap.Read("series_animedb_id", codec.Text, func(e *AnimeListEntry) *string { return &e.SeriesID }),
	xmlmap.Read("series_title", codec.Text, func(e *AnimeListEntry) *string { return &e.SeriesTitle }),
	xmlmap.Read("series_synonyms", codec.SemicolonList, func(e *AnimeListEntry) *[]string { return &e.SeriesSynonyms }),
	xmlmap.Read("series_type", listAnimeType, func(e *AnimeListEntry) *AnimeType { return &e.SeriesType }),
	xmlmap.Read("series_episodes", codec.Int, func(e *AnimeListEntry) *int { return &e.SeriesEpisodes }),
	xmlmap.Read("series_status", listAiringStatus, func(e *AnimeListEntry) *AiringStatus { return &e.SeriesStatus }),
	xmlmap.Read("series_start", codec.InboundDate, func(e *AnimeListEntry) *mo.Option[time.Time] { return &e.SeriesStart }),
	xmlmap.Read("series_end", codec.InboundDate, func(e *AnimeListEntry) *mo.Option[time.Time] { return &e.SeriesEnd }),
	xmlmap.Read("series_image", codec.Text, func(e *AnimeListEntry) *string { return &e.SeriesImage }),
	xmlmap.Read("my_id", codec.Text, func(e *AnimeListEntry) *string { return &e.EntryID }),
	xmlmap.Read("my_watched_episodes", codec.Int, func(e *AnimeListEntry) *int { return &e.WatchedEpisodes }),
	xmlmap.Read("my_start_date", codec.InboundDate, func(e *AnimeListEntry) *mo.Option[time.Time] { return &e.StartedWatching }),
	xmlmap.Read("my_finish_date", codec.InboundDate, func(e *AnimeListEntry) *mo.Option[time.Time] { return &e.FinishedWatching }),
	xmlmap.Read("my_score", codec.Int, func(e *AnimeListEntry) *int { return &e.Score }),
	xmlmap.Read("my_status", AnimeEntryStatusCodec, func(e *AnimeListEntry) *AnimeEntryStatus { return &e.Status }),
	xmlmap.Read("my_rewatching", codec.Flag, func(e *AnimeListEntry) *bool { return &e.Rewatching }),
	xmlmap.Read("my_rewatching_ep", codec.Int, func(e *AnimeListEntry) *int { return &e.RewatchingEpisodes }),
	xmlmap.Read("my_last_updated", codec.EpochSeconds, func(e *AnimeListEntry) *time.Time { return &e.LastUpdated }),
	xmlmap.Read("my_tags", codec.CommaList, func(e *AnimeListEntry) *[]string { return &e.Tags }),
)

// AnimeListEntryValues holds the fields accepted when adding or updating an anime list entry.
// Unset fields are left out of the request, so the service keeps their current value.
type AnimeListEntryValues struct {
	Episode          mo.Option[int]              `json:"episode"`
	Status           mo.Option[AnimeEntryStatus] `json:"status"`
	Score            mo.Option[int]              `json:"score"`
	StorageType      mo.Option[StorageType]      `json:"storage_type"`
	StorageValue     mo.Option[float64]          `json:"storage_value"`
	TimesRewatched   mo.Option[int]              `json:"times_rewatched"`
	RewatchValue     mo.Option[Intensity]        `json:"rewatch_value"`
	DateStart        mo.Option[time.Time]        `json:"date_start"`
	DateFinish       mo.Option[time.Time]        `json:"date_finish"`
	Priority         mo.Option[int]              `json:"priority"`
	EnableDiscussion mo.Option[bool]             `json:"enable_discussion"`
	EnableRewatching mo.Option[bool]             `json:"enable_rewatching"`
	Comments         mo.Option[string]           `json:"comments"`
	FansubGroup      mo.Option[string]           `json:"fansub_group"`
	Tags             []string                    `json:"tags"`
}

type animeValues = AnimeListEntryValues

var animeValuesSchema = xmlmap.NewSchema("entry",
	xmlmap.Bind("episode", codec.Optional(codec.Int), func(v *animeValues) *mo.Option[int] { return &v.Episode }),
	xmlmap.Bind("status", codec.Optional[AnimeEntryStatus](AnimeEntryStatusCodec), func(v *animeValues) *mo.Option[AnimeEntryStatus] { return &v.Status }),
	xmlmap.Bind("score", codec.Optional(codec.Int), func(v *animeValues) *mo.Option[int] { return &v.Score }),
	xmlmap.Bind("storage_type", codec.Optional[StorageType](StorageTypeCodec), func(v *animeValues) *mo.Option[StorageType] { return &v.StorageType }),
	xmlmap.Bind("storage_value", codec.Optional(codec.Float), func(v *animeValues) *mo.Option[float64] { return &v.StorageValue }),
	xmlmap.Bind("times_rewatched", codec.Optional(codec.Int), func(v *animeValues) *mo.Option[int] { return &v.TimesRewatched }),
	xmlmap.Bind("rewatch_value", codec.Optional[Intensity](IntensityCodec), func(v *animeValues) *mo.Option[Intensity] { return &v.RewatchValue }),
	xmlmap.Write("date_start", codec.OutboundDate, func(v *animeValues) *mo.Option[time.Time] { return &v.DateStart }),
	xmlmap.Write("date_finish", codec.OutboundDate, func(v *animeValues) *mo.Option[time.Time] { return &v.DateFinish }),
	xmlmap.Bind("priority", codec.Optional(codec.Int), func(v *animeValues) *mo.Option[int] { return &v.Priority }),
	xmlmap.Bind("enable_discussion", codec.Optional(codec.Flag), func(v *animeValues) *mo.Option[bool] { return &v.EnableDiscussion }),
	xmlmap.Bind("enable_rewatching", codec.Optional(codec.Flag), func(v *animeValues) *mo.Option[bool] { return &v.EnableRewatching }),
	xmlmap.Bind("comments", codec.Optional(codec.Text), func(v *animeValues) *mo.Option[string] { return &v.Comments }),
	xmlmap.Bind("fansub_group", codec.Optional(codec.Text), func(v *animeValues) *mo.Option[string] { return &v.FansubGroup }),
	xmlmap.Bind("tags", codec.CommaList, func(v *animeValues) *[]string { return &v.Tags }),
)

// AnimeValuesFromEntry copies the progress a user already recorded into a values
// record: watched episodes, score, status, tags, start and finish dates, and the
// rewatching toggle. Everything else stays unset.
func AnimeValuesFromEntry(entry AnimeListEntry) AnimeListEntryValues {
	values := AnimeListEntryValues{
		Episode:          mo.Some(entry.WatchedEpisodes),
		Score:            mo.Some(entry.Score),
		DateStart:        entry.StartedWatching,
		DateFinish:       entry.FinishedWatching,
		EnableRewatching: mo.Some(entry.Rewatching),
		Tags:             cloneTags(entry.Tags),
	}

	if entry.Status != "" {
		values.Status = mo.Some(entry.Status)
	}

	return values
}

// Marshal renders the values as the document sent in the "data" form field.
func (v *AnimeListEntryValues) Marshal() ([]byte, error) {
	return animeValuesSchema.Marshal(v)
}

// AnimeListInfo is the summary returned in front of a user's anime list.
type AnimeListInfo struct {
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Watching    int     `json:"watching"`
	Completed   int     `json:"completed"`
	OnHold      int     `json:"on_hold"`
	Dropped     int     `json:"dropped"`
	PlanToWatch int     `json:"plan_to_watch"`
	DaysSpent   float64 `json:"days_spent"`
}

var animeListInfoSchema = xmlmap.NewSchema("myinfo",
	xmlmap.Read("user_id", codec.Text, func(i *AnimeListInfo) *string { return &i.UserID }),
	xmlmap.Read("user_name", codec.Text, func(i *AnimeListInfo) *string { return &i.Username }),
	xmlmap.Read("user_watching", codec.Int, func(i *AnimeListInfo) *int { return &i.Watching }),
	xmlmap.Read("user_completed", codec.Int, func(i *AnimeListInfo) *int { return &i.Completed }),
	xmlmap.Read("user_onhold", codec.Int, func(i *AnimeListInfo) *int { return &i.OnHold }),
	xmlmap.Read("user_dropped", codec.Int, func(i *AnimeListInfo) *int { return &i.Dropped }),
	xmlmap.Read("user_plantowatch", codec.Int, func(i *AnimeListInfo) *int { return &i.PlanToWatch }),
	xmlmap.Read("user_days_spent_watching", codec.Float, func(i *AnimeListInfo) *float64 { return &i.DaysSpent }),
)

type AnimeList struct {
	Info    AnimeListInfo    `json:"info"`
	Entries []AnimeListEntry `json:"entries"`
}
