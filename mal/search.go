package mal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/network"
)

// SearchAnime executes a title search. No match yields an empty slice, never nil.
func (c *Client) SearchAnime(ctx context.Context, query string) ([]model.Anime, error) {
	if blank(query) {
		return nil, malerr.InvalidArgument("query", "must not be blank")
	}

	payload, ok, err := c.exchange(ctx, searchRequest("anime", query))
	if err != nil {
		return nil, fmt.Errorf("search anime: %w", err)
	}
	if !ok {
		return []model.Anime{}, nil
	}

	results, err := model.DecodeAnimeSearch(payload)
	if err != nil {
		return nil, fmt.Errorf("search anime: %w", decodeError(err))
	}

	return results, nil
}

// SearchManga executes a title search. No match yields an empty slice, never nil.
func (c *Client) SearchManga(ctx context.Context, query string) ([]model.Manga, error) {
	if blank(query) {
		return nil, malerr.InvalidArgument("query", "must not be blank")
	}

	payload, ok, err := c.exchange(ctx, searchRequest("manga", query))
	if err != nil {
		return nil, fmt.Errorf("search manga: %w", err)
	}
	if !ok {
		return []model.Manga{}, nil
	}

	results, err := model.DecodeMangaSearch(payload)
	if err != nil {
		return nil, fmt.Errorf("search manga: %w", decodeError(err))
	}

	return results, nil
}

func searchRequest(kind, query string) network.Request {
	return network.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/%s/search.xml", kind),
		Query:  url.Values{"q": {query}},
	}
}
