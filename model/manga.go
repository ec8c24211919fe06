package model

import (
	"time"

	"github.com/malkit/malkit/codec"
	"github.com/malkit/malkit/xmlmap"
	"github.com/samber/mo"
)

// Manga is a title returned by a manga search.
type Manga struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	English   string               `json:"english"`
	Synonyms  []string             `json:"synonyms"`
	Chapters  int                  `json:"chapters"`
	Volumes   int                  `json:"volumes"`
	Score     float64              `json:"score"`
	Type      MangaType            `json:"type"`
	Status    PublishingStatus     `json:"status"`
	StartDate mo.Option[time.Time] `json:"start_date"`
	EndDate   mo.Option[time.Time] `json:"end_date"`
	Synopsis  string               `json:"synopsis"`
	Image     string               `json:"image"`
}

var mangaSchema = xmlmap.NewSchema("entry",
	xmlmap.Read("id", codec.Text, func(m *Manga) *string { return &m.ID }),
	xmlmap.Read("title", codec.Text, func(m *Manga) *string { return &m.Title }),
	xmlmap.Read("english", codec.Text, func(m *Manga) *string { return &m.English }),
	xmlmap.Read("synonyms", codec.SemicolonList, func(m *Manga) *[]string { return &m.Synonyms }),
	xmlmap.Read("chapters", codec.Int, func(m *Manga) *int { return &m.Chapters }),
	xmlmap.Read("volumes", codec.Int, func(m *Manga) *int { return &m.Volumes }),
	xmlmap.Read("score", codec.Float, func(m *Manga) *float64 { return &m.Score }),
	xmlmap.Read("type", searchMangaType, func(m *Manga) *MangaType { return &m.Type }),
	xmlmap.Read("status", searchPublishingStatus, func(m *Manga) *PublishingStatus { return &m.Status }),
	xmlmap.Read("start_date", codec.InboundDate, func(m *Manga) *mo.Option[time.Time] { return &m.StartDate }),
	xmlmap.Read("end_date", codec.InboundDate, func(m *Manga) *mo.Option[time.Time] { return &m.EndDate }),
	xmlmap.Read("synopsis", codec.Markup, func(m *Manga) *string { return &m.Synopsis }),
	xmlmap.Read("image", codec.Text, func(m *Manga) *string { return &m.Image }),
)

// MangaListEntry is one title on a user's manga list.
type MangaListEntry struct {
	SeriesID       string               `json:"series_id"`
	SeriesTitle    string               `json:"series_title"`
	SeriesSynonyms []string             `json:"series_synonyms"`
	SeriesType     MangaType            `json:"series_type"`
	SeriesChapters int                  `json:"series_chapters"`
	SeriesVolumes  int                  `json:"series_volumes"`
	SeriesStatus   PublishingStatus     `json:"series_status"`
	SeriesStart    mo.Option[time.Time] `json:"series_start"`
	SeriesEnd      mo.Option[time.Time] `json:"series_end"`
	SeriesImage    string               `json:"series_image"`

	EntryID           string               `json:"entry_id"`
	ReadChapters      int                  `json:"read_chapters"`
	ReadVolumes       int                  `json:"read_volumes"`
	StartedReading    mo.Option[time.Time] `json:"started_reading"`
	FinishedReading   mo.Option[time.Time] `json:"finished_reading"`
	Score             int                  `json:"score"`
	Status            MangaEntryStatus     `json:"status"`
	Rereading         bool                 `json:"rereading"`
	RereadingChapters int                  `json:"rereading_chapters"`
	LastUpdated       time.Time            `json:"last_updated"`
	Tags              []string             `json:"tags"`
}

var mangaListEntrySchema = xmlmap.NewSchema("manga",
	xmlmap.Read("series_mangadb_id", codec.Text, func(e *MangaListEntry) *string { return &e.SeriesID }),
	xmlmap.Read("series_title", codec.Text, func(e *MangaListEntry) *string { return &e.SeriesTitle }),
	xmlmap.Read("series_synonyms", codec.SemicolonList, func(e *MangaListEntry) *[]string { return &e.SeriesSynonyms }),
	xmlmap.Read("series_type", listMangaType, func(e *MangaListEntry) *MangaType { return &e.SeriesType }),
	xmlmap.Read("series_chapters", codec.Int, func(e *MangaListEntry) *int { return &e.SeriesChapters }),
	xmlmap.Read("series_volumes", codec.Int, func(e *MangaListEntry) *int { return &e.SeriesVolumes }),
	xmlmap.Read("series_status", listPublishingStatus, func(e *MangaListEntry) *PublishingStatus { return &e.SeriesStatus }),
	xmlmap.Read("series_start", codec.InboundDate, func(e *MangaListEntry) *mo.Option[time.Time] { return &e.SeriesStart }),
	xmlmap.Read("series_end", codec.InboundDate, func(e *MangaListEntry) *mo.Option[time.Time] { return &e.SeriesEnd }),
	xmlmap.Read("series_image", codec.Text, func(e *MangaListEntry) *string { return &e.SeriesImage }),
	xmlmap.Read("my_id", codec.Text, func(e *MangaListEntry) *string { return &e.EntryID }),
	xmlmap.Read("my_read_chapters", codec.Int, func(e *MangaListEntry) *int { return &e.ReadChapters }),
	xmlmap.Read("my_read_volumes", codec.Int, func(e *MangaListEntry) *int { return &e.ReadVolumes }),
	xmlmap.Read("my_start_date", codec.InboundDate, func(e *MangaListEntry) *mo.Option[time.Time] { return &e.StartedReading }),
	xmlmap.Read("my_finish_date", codec.InboundDate, func(e *MangaListEntry) *mo.Option[time.Time] { return &e.FinishedReading }),
	xmlmap.Read("my_score", codec.Int, func(e *MangaListEntry) *int { return &e.Score }),
	xmlmap.Read("my_status", MangaEntryStatusCodec, func(e *MangaListEntry) *MangaEntryStatus { return &e.Status }),
	// the service spells this element with a double g
	xmlmap.Read("my_rereadingg", codec.Flag, func(e *MangaListEntry) *bool { return &e.Rereading }),
	xmlmap.Read("my_rereading_chap", codec.Int, func(e *MangaListEntry) *int { return &e.RereadingChapters }),
	xmlmap.Read("my_last_updated", codec.EpochSeconds, func(e *MangaListEntry) *time.Time { return &e.LastUpdated }),
	xmlmap.Read("my_tags", codec.CommaList, func(e *MangaListEntry) *[]string { return &e.Tags }),
)

// MangaListEntryValues holds the fields accepted when adding or updating a manga list entry.
type MangaListEntryValues struct {
	Chapter          mo.Option[int]              `json:"chapter"`
	Volume           mo.Option[int]              `json:"volume"`
	Status           mo.Option[MangaEntryStatus] `json:"status"`
	Score            mo.Option[int]              `json:"score"`
	TimesReread      mo.Option[int]              `json:"times_reread"`
	RereadValue      mo.Option[Intensity]        `json:"reread_value"`
	DateStart        mo.Option[time.Time]        `json:"date_start"`
	DateFinish       mo.Option[time.Time]        `json:"date_finish"`
	Priority         mo.Option[int]              `json:"priority"`
	EnableDiscussion mo.Option[bool]             `json:"enable_discussion"`
	EnableRereading  mo.Option[bool]             `json:"enable_rereading"`
	Comments         mo.Option[string]           `json:"comments"`
	ScanGroup        mo.Option[string]           `json:"scan_group"`
	Tags             []string                    `json:"tags"`
	RetailVolumes    mo.Option[int]              `json:"retail_volumes"`
}

type mangaValues = MangaListEntryValues

var mangaValuesSchema = xmlmap.NewSchema("entry",
	xmlmap.Bind("chapter", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.Chapter }),
	xmlmap.Bind("volume", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.Volume }),
	xmlmap.Bind("status", codec.Optional[MangaEntryStatus](MangaEntryStatusCodec), func(v *mangaValues) *mo.Option[MangaEntryStatus] { return &v.Status }),
	xmlmap.Bind("score", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.Score }),
	xmlmap.Bind("times_reread", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.TimesReread }),
	xmlmap.Bind("reread_value", codec.Optional[Intensity](IntensityCodec), func(v *mangaValues) *mo.Option[Intensity] { return &v.RereadValue }),
	xmlmap.Write("date_start", codec.OutboundDate, func(v *mangaValues) *mo.Option[time.Time] { return &v.DateStart }),
	xmlmap.Write("date_finish", codec.OutboundDate, func(v *mangaValues) *mo.Option[time.Time] { return &v.DateFinish }),
	xmlmap.Bind("priority", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.Priority }),
	xmlmap.Bind("enable_discussion", codec.Optional(codec.Flag), func(v *mangaValues) *mo.Option[bool] { return &v.EnableDiscussion }),
	xmlmap.Bind("enable_rereading", codec.Optional(codec.Flag), func(v *mangaValues) *mo.Option[bool] { return &v.EnableRereading }),
	xmlmap.Bind("comments", codec.Optional(codec.Text), func(v *mangaValues) *mo.Option[string] { return &v.Comments }),
	xmlmap.Bind("scan_group", codec.Optional(codec.Text), func(v *mangaValues) *mo.Option[string] { return &v.ScanGroup }),
	xmlmap.Bind("tags", codec.CommaList, func(v *mangaValues) *[]string { return &v.Tags }),
	xmlmap.Bind("retail_volumes", codec.Optional(codec.Int), func(v *mangaValues) *mo.Option[int] { return &v.RetailVolumes }),
)

// MangaValuesFromEntry is the manga counterpart of AnimeValuesFromEntry: read
// chapters and volumes, score, status, tags, dates and the rereading toggle.
func MangaValuesFromEntry(entry MangaListEntry) MangaListEntryValues {
	values := MangaListEntryValues{
		Chapter:         mo.Some(entry.ReadChapters),
		Volume:          mo.Some(entry.ReadVolumes),
		Score:           mo.Some(entry.Score),
		DateStart:       entry.StartedReading,
		DateFinish:      entry.FinishedReading,
		EnableRereading: mo.Some(entry.Rereading),
		Tags:            cloneTags(entry.Tags),
	}

	if entry.Status != "" {
		values.Status = mo.Some(entry.Status)
	}

	return values
}

func (v *MangaListEntryValues) Marshal() ([]byte, error) {
	return mangaValuesSchema.Marshal(v)
}

type MangaListInfo struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	Reading    int     `json:"reading"`
	Completed  int     `json:"completed"`
	OnHold     int     `json:"on_hold"`
	Dropped    int     `json:"dropped"`
	PlanToRead int     `json:"plan_to_read"`
	DaysSpent  float64 `json:"days_spent"`
}

var mangaListInfoSchema = xmlmap.NewSchema("myinfo",
	xmlmap.Read("user_id", codec.Text, func(i *MangaListInfo) *string { return &i.UserID }),
	xmlmap.Read("user_name", codec.Text, func(i *MangaListInfo) *string { return &i.Username }),
	xmlmap.Read("user_reading", codec.Int, func(i *MangaListInfo) *int { return &i.Reading }),
	xmlmap.Read("user_completed", codec.Int, func(i *MangaListInfo) *int { return &i.Completed }),
	xmlmap.Read("user_onhold", codec.Int, func(i *MangaListInfo) *int { return &i.OnHold }),
	xmlmap.Read("user_dropped", codec.Int, func(i *MangaListInfo) *int { return &i.Dropped }),
	xmlmap.Read("user_plantoread", codec.Int, func(i *MangaListInfo) *int { return &i.PlanToRead }),
	xmlmap.Read("user_days_spent_watching", codec.Float, func(i *MangaListInfo) *float64 { return &i.DaysSpent }),
)

type MangaList struct {
	Info    MangaListInfo    `json:"info"`
	Entries []MangaListEntry `json:"entries"`
}
