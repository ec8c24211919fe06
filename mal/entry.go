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

// AddAnime puts the anime on the authenticated user's list.
func (c *Client) AddAnime(ctx context.Context, ref model.AnimeRef, values *model.AnimeListEntryValues) error {
	return c.writeAnime(ctx, "add", ref, values)
}

// UpdateAnime changes an entry of the authenticated user's list. Unset values are left as they are.
func (c *Client) UpdateAnime(ctx context.Context, ref model.AnimeRef, values *model.AnimeListEntryValues) error {
	return c.writeAnime(ctx, "update", ref, values)
}

// RemoveAnime deletes an entry of the authenticated user's list.
func (c *Client) RemoveAnime(ctx context.Context, ref model.AnimeRef) error {
	id := model.AnimeIDOf(ref)
	if blank(id) {
		return malerr.InvalidArgument("id", "must not be blank")
	}

	_, _, err := c.exchange(ctx, entryRequest(http.MethodDelete, "animelist", "delete", id, nil))
	if err != nil {
		return fmt.Errorf("remove anime %s: %w", id, err)
	}

	return nil
}

// AddManga puts the manga on the authenticated user's list.
func (c *Client) AddManga(ctx context.Context, ref model.MangaRef, values *model.MangaListEntryValues) error {
	return c.writeManga(ctx, "add", ref, values)
}

// UpdateManga changes an entry of the authenticated user's list. Unset values are left as they are.
func (c *Client) UpdateManga(ctx context.Context, ref model.MangaRef, values *model.MangaListEntryValues) error {
	return c.writeManga(ctx, "update", ref, values)
}

// RemoveManga deletes an entry of the authenticated user's list.
func (c *Client) RemoveManga(ctx context.Context, ref model.MangaRef) error {
	id := model.MangaIDOf(ref)
	if blank(id) {
		return malerr.InvalidArgument("id", "must not be blank")
	}

	_, _, err := c.exchange(ctx, entryRequest(http.MethodDelete, "mangalist", "delete", id, nil))
	if err != nil {
		return fmt.Errorf("remove manga %s: %w", id, err)
	}

	return nil
}

func (c *Client) writeAnime(ctx context.Context, action string, ref model.AnimeRef, values *model.AnimeListEntryValues) error {
	id := model.AnimeIDOf(ref)
	if blank(id) {
		return malerr.InvalidArgument("id", "must not be blank")
	}
	if values == nil {
		return malerr.InvalidArgument("values", "must not be nil")
	}

	data, err := values.Marshal()
	if err != nil {
		return fmt.Errorf("%s anime %s: %w", action, id, err)
	}

	if _, _, err = c.exchange(ctx, entryRequest(http.MethodPost, "animelist", action, id, data)); err != nil {
		return fmt.Errorf("%s anime %s: %w", action, id, err)
	}

	return nil
}

func (c *Client) writeManga(ctx context.Context, action string, ref model.MangaRef, values *model.MangaListEntryValues) error {
	id := model.MangaIDOf(ref)
	if blank(id) {
		return malerr.InvalidArgument("id", "must not be blank")
	}
	if values == nil {
		return malerr.InvalidArgument("values", "must not be nil")
	}

	data, err := values.Marshal()
	if err != nil {
		return fmt.Errorf("%s manga %s: %w", action, id, err)
	}

	if _, _, err = c.exchange(ctx, entryRequest(http.MethodPost, "mangalist", action, id, data)); err != nil {
		return fmt.Errorf("%s manga %s: %w", action, id, err)
	}

	return nil
}

// entryRequest builds /api/{list}/{action}/{id}.xml. A non-nil document travels
// in the "data" form field.
func entryRequest(method, list, action, id string, document []byte) network.Request {
	request := network.Request{
		Method: method,
		Path:   fmt.Sprintf("/api/%s/%s/%s.xml", list, action, url.PathEscape(id)),
	}

	if document != nil {
		request.Form = url.Values{"data": {string(document)}}
	}

	return request
}
