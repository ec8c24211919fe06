// Package model holds the records exchanged with MyAnimeList and the field
// tables that map them to and from the service's XML documents.
package model

import (
	"bytes"

	"github.com/malkit/malkit/xmlmap"
	"gopkg.in/xmlpath.v2"
)

var (
	animeSearchEntries = xmlpath.MustCompile("/anime/entry")
	mangaSearchEntries = xmlpath.MustCompile("/manga/entry")
	listInfo           = xmlpath.MustCompile("/myanimelist/myinfo")
	animeListEntries   = xmlpath.MustCompile("/myanimelist/anime")
	mangaListEntries   = xmlpath.MustCompile("/myanimelist/manga")
)

// DecodeAnimeSearch reads the result of an anime search. The result is never nil.
func DecodeAnimeSearch(data []byte) ([]Anime, error) {
	doc, err := xmlmap.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return animeSchema.DecodeAll(doc, animeSearchEntries)
}

// DecodeMangaSearch reads the result of a manga search. The result is never nil.
func DecodeMangaSearch(data []byte) ([]Manga, error) {
	doc, err := xmlmap.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return mangaSchema.DecodeAll(doc, mangaSearchEntries)
}

// DecodeAnimeList reads a user's anime list. The service answers unknown users
// with a document that has no myinfo element, which decodes to nil.
func DecodeAnimeList(data []byte) (*AnimeList, error) {
	doc, err := xmlmap.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	info, ok := first(doc, listInfo)
	if !ok {
		return nil, nil
	}

	var list AnimeList
	if list.Info, err = animeListInfoSchema.Decode(info); err != nil {
		return nil, err
	}
	if list.Entries, err = animeListEntrySchema.DecodeAll(doc, animeListEntries); err != nil {
		return nil, err
	}

	return &list, nil
}

// DecodeMangaList is the manga counterpart of DecodeAnimeList.
func DecodeMangaList(data []byte) (*MangaList, error) {
	doc, err := xmlmap.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	info, ok := first(doc, listInfo)
	if !ok {
		return nil, nil
	}

	var list MangaList
	if list.Info, err = mangaListInfoSchema.Decode(info); err != nil {
		return nil, err
	}
	if list.Entries, err = mangaListEntrySchema.DecodeAll(doc, mangaListEntries); err != nil {
		return nil, err
	}

	return &list, nil
}

func DecodeUser(data []byte) (*User, error) {
	user, err := userSchema.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func first(node *xmlpath.Node, path *xmlpath.Path) (*xmlpath.Node, bool) {
	iter := path.Iter(node)
	if !iter.Next() {
		return nil, false
	}
	return iter.Node(), true
}
