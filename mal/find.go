package mal

import (
	"context"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/malkit/malkit/log"
	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/util"
	"github.com/samber/lo"
)

// ErrNoMatch is returned by the FindClosest functions when every search came back empty.
// malerr.KindOf reports it as malerr.KindNoMatch.
var ErrNoMatch = malerr.ErrNoMatch

// findAttempts bounds how many shortened queries are tried.
const findAttempts = 3

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindClosestAnime searches for name and returns the result whose title,
// english title or synonym is the closest to name by levenshtein distance.
// When nothing is found, the last word is dropped and the search repeated.
func (c *Client) FindClosestAnime(ctx context.Context, name string) (*model.Anime, error) {
	anime, err := findClosest(ctx, name, c.SearchAnime, func(a model.Anime) []string {
		return append([]string{a.Title, a.English}, a.Synonyms...)
	})
	if err != nil {
		return nil, err
	}
	return &anime, nil
}

// FindClosestManga is the manga counterpart of FindClosestAnime.
func (c *Client) FindClosestManga(ctx context.Context, name string) (*model.Manga, error) {
	manga, err := findClosest(ctx, name, c.SearchManga, func(m model.Manga) []string {
		return append([]string{m.Title, m.English}, m.Synonyms...)
	})
	if err != nil {
		return nil, err
	}
	return &manga, nil
}

func findClosest[T any](
	ctx context.Context,
	name string,
	search func(context.Context, string) ([]T, error),
	titles func(T) []string,
) (T, error) {
	var zero T

	wanted := normalizedName(name)
	if wanted == "" {
		return zero, malerr.InvalidArgument("name", "must not be blank")
	}

	distance := func(item T) int {
		known := lo.Filter(titles(item), func(title string, _ int) bool {
			return !blank(title)
		})
		if len(known) == 0 {
			return len(wanted)
		}
		return lo.Min(lo.Map(known, func(title string, _ int) int {
			return levenshtein.Distance(wanted, normalizedName(title))
		}))
	}

	query := wanted

	for try := 0; try < findAttempts; try++ {
		results, err := search(ctx, query)
		if err != nil {
			return zero, err
		}

		if len(results) > 0 {
			closest := lo.MinBy(results, func(a, b T) bool {
				return distance(a) < distance(b)
			})
			log.Info("Found closest match: " + titles(closest)[0])
			return closest, nil
		}

		words := strings.Fields(query)
		if len(words) <= 2 {
			break
		}

		// one word less
		alternate := strings.Join(words[:util.Max(len(words)-1, 1)], " ")
		log.Infof(`No results found on MAL for "%s", trying "%s"`, query, alternate)
		query = alternate
	}

	return zero, fmt.Errorf("%w for %q", ErrNoMatch, name)
}
