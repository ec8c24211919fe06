package model

import "github.com/samber/lo"

// AnimeRef identifies an anime on the service.
// It is implemented by AnimeID, Anime and AnimeListEntry.
type AnimeRef interface {
	animeID() string
}

// MangaRef identifies a manga on the service.
// It is implemented by MangaID, Manga and MangaListEntry.
type MangaRef interface {
	mangaID() string
}

type AnimeID string

type MangaID string

func (id AnimeID) animeID() string { return string(id) }
func (a Anime) animeID() string { return a.ID }
func (e AnimeListEntry) animeID() string { return e.SeriesID }

func (id MangaID) mangaID() string { return string(id) }
func (m Manga) mangaID() string { return m.ID }
func (e MangaListEntry) mangaID() string { return e.SeriesID }

// AnimeIDOf returns the id behind ref, or "" for a nil ref.
func AnimeIDOf(ref AnimeRef) string {
	if ref == nil {
		return ""
	}
	return ref.animeID()
}

// MangaIDOf returns the id behind ref, or "" for a nil ref.
func MangaIDOf(ref MangaRef) string {
	if ref == nil {
		return ""
	}
	return ref.mangaID()
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return lo.Map(tags, func(tag string, _ int) string { return tag })
}
