package model

import "github.com/malkit/malkit/codec"

// Every enum is a string type whose values are stable, human readable symbols.
// The empty string means "not set". Wire values live in the codec tables below
// because some enums travel with different wire values in different documents.

type AnimeEntryStatus string

const (
	AnimeWatching    AnimeEntryStatus = "watching"
	AnimeCompleted   AnimeEntryStatus = "completed"
	AnimeOnHold      AnimeEntryStatus = "on-hold"
	AnimeDropped     AnimeEntryStatus = "dropped"
	AnimePlanToWatch AnimeEntryStatus = "plan-to-watch"
)

type MangaEntryStatus string

const (
	MangaReading    MangaEntryStatus = "reading"
	MangaCompleted  MangaEntryStatus = "completed"
	MangaOnHold     MangaEntryStatus = "on-hold"
	MangaDropped    MangaEntryStatus = "dropped"
	MangaPlanToRead MangaEntryStatus = "plan-to-read"
)

// AiringStatus is the broadcast state of an anime series.
type AiringStatus string

const (
	CurrentlyAiring AiringStatus = "currently-airing"
	FinishedAiring  AiringStatus = "finished-airing"
	NotYetAired     AiringStatus = "not-yet-aired"
)

// PublishingStatus is the release state of a manga series.
type PublishingStatus string

const (
	Publishing      PublishingStatus = "publishing"
	Finished        PublishingStatus = "finished"
	NotYetPublished PublishingStatus = "not-yet-published"
)

type AnimeType string

const (
	TV      AnimeType = "tv"
	OVA     AnimeType = "ova"
	Movie   AnimeType = "movie"
	Special AnimeType = "special"
	ONA     AnimeType = "ona"
	Music   AnimeType = "music"
)

type MangaType string

const (
	MangaComic MangaType = "manga"
	Novel      MangaType = "novel"
	OneShot    MangaType = "one-shot"
	Doujinshi  MangaType = "doujinshi"
	Manhwa     MangaType = "manhwa"
	Manhua     MangaType = "manhua"
	OEL        MangaType = "oel"
)

// StorageType is the medium an anime is kept on.
type StorageType string

const (
	StorageHardDrive  StorageType = "hard-drive"
	StorageDVDCD      StorageType = "dvd-cd"
	StorageNone       StorageType = "none"
	StorageRetailDVD  StorageType = "retail-dvd"
	StorageVHS        StorageType = "vhs"
	StorageExternalHD StorageType = "external-hd"
	StorageNAS        StorageType = "nas"
)

// Intensity rates how much a user would enjoy rewatching or rereading a title.
type Intensity string

const (
	VeryLow  Intensity = "very-low"
	Low      Intensity = "low"
	Medium   Intensity = "medium"
	High     Intensity = "high"
	VeryHigh Intensity = "very-high"
)

var (
	AnimeEntryStatusCodec = codec.Enum(map[AnimeEntryStatus]string{
		AnimeWatching:    "1",
		AnimeCompleted:   "2",
		AnimeOnHold:      "3",
		AnimeDropped:     "4",
		AnimePlanToWatch: "6",
	})

	MangaEntryStatusCodec = codec.Enum(map[MangaEntryStatus]string{
		MangaReading:    "1",
		MangaCompleted:  "2",
		MangaOnHold:     "3",
		MangaDropped:    "4",
		MangaPlanToRead: "6",
	})

	StorageTypeCodec = codec.Enum(map[StorageType]string{
		StorageHardDrive:  "1",
		StorageDVDCD:      "2",
		StorageNone:       "3",
		StorageRetailDVD:  "4",
		StorageVHS:        "5",
		StorageExternalHD: "6",
		StorageNAS:        "7",
	})

	IntensityCodec = codec.Enum(map[Intensity]string{
		VeryLow:  "1",
		Low:      "2",
		Medium:   "3",
		High:     "4",
		VeryHigh: "5",
	})
)

// List documents carry numeric codes for series metadata.
var (
	listAiringStatus = codec.Enum(map[AiringStatus]string{
		CurrentlyAiring: "1",
		FinishedAiring:  "2",
		NotYetAired:     "3",
	})

	listPublishingStatus = codec.Enum(map[PublishingStatus]string{
		Publishing:      "1",
		Finished:        "2",
		NotYetPublished: "3",
	})

	listAnimeType = codec.Enum(map[AnimeType]string{
		TV:      "1",
		OVA:     "2",
		Movie:   "3",
		Special: "4",
		ONA:     "5",
		Music:   "6",
	})

	// One-shots have no list code; 3 is manhwa.
	listMangaType = codec.Enum(map[MangaType]string{
		MangaComic: "1",
		Novel:      "2",
		Manhwa:     "3",
		Doujinshi:  "4",
		Manhua:     "6",
		OEL:        "7",
	})
)

// Search documents carry display names instead.
var (
	searchAiringStatus = codec.Enum(map[AiringStatus]string{
		CurrentlyAiring: "Currently Airing",
		FinishedAiring:  "Finished Airing",
		NotYetAired:     "Not yet aired",
	})

	searchPublishingStatus = codec.Enum(map[PublishingStatus]string{
		Publishing:      "Publishing",
		Finished:        "Finished",
		NotYetPublished: "Not yet published",
	})

	searchAnimeType = codec.Enum(map[AnimeType]string{
		TV:      "TV",
		OVA:     "OVA",
		Movie:   "Movie",
		Special: "Special",
		ONA:     "ONA",
		Music:   "Music",
	})

	searchMangaType = codec.Enum(map[MangaType]string{
		MangaComic: "Manga",
		Novel:      "Novel",
		OneShot:    "One-shot",
		Doujinshi:  "Doujinshi",
		Manhwa:     "Manhwa",
		Manhua:     "Manhua",
		OEL:        "OEL",
	})
)
