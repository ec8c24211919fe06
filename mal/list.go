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

// AnimeList fetches the anime list of any user. It returns nil, without error,
// when the service knows no such user or list.
func (c *Client) AnimeList(ctx context.Context, username string) (*model.AnimeList, error) {
	if blank(username) {
		return nil, malerr.InvalidArgument("username", "must not be blank")
	}

	payload, ok, err := c.exchange(ctx, listRequest(username, "anime"))
	if err != nil {
		return nil, fmt.Errorf("anime list of %s: %w", username, err)
	}
	if !ok {
		return nil, nil
	}

	list, err := model.DecodeAnimeList(payload)
	if err != nil {
		return nil, fmt.Errorf("anime list of %s: %w", username, decodeError(err))
	}

	return list, nil
}

// MangaList fetches the manga list of any user, see AnimeList.
func (c *Client) MangaList(ctx context.Context, username string) (*model.MangaList, error) {
	if blank(username) {
		return nil, malerr.InvalidArgument("username", "must not be blank")
	}

	payload, ok, err := c.exchange(ctx, listRequest(username, "manga"))
	if err != nil {
		return nil, fmt.Errorf("manga list of %s: %w", username, err)
	}
	if !ok {
		return nil, nil
	}

	list, err := model.DecodeMangaList(payload)
	if err != nil {
		return nil, fmt.Errorf("manga list of %s: %w", username, decodeError(err))
	}

	return list, nil
}

// MyAnimeList fetches the anime list of the authenticated user.
func (c *Client) MyAnimeList(ctx context.Context) (*model.AnimeList, error) {
	return c.AnimeList(ctx, c.Username())
}

// MyMangaList fetches the manga list of the authenticated user.
func (c *Client) MyMangaList(ctx context.Context) (*model.MangaList, error) {
	return c.MangaList(ctx, c.Username())
}

func listRequest(username, kind string) network.Request {
	return network.Request{
		Method: http.MethodGet,
		Path:   "/malappinfo.php",
		Query: url.Values{
			"u":      {username},
			"type":   {kind},
			"status": {"all"},
		},
	}
}
