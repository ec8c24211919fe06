// Package query remembers past search queries and suggests them back for completion.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/malkit/malkit/filesystem"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Kind separates anime searches from manga searches.
type Kind string

const (
	Anime Kind = "anime"
	Manga Kind = "manga"
)

// history maps kind -> query -> number of times searched.
type history map[Kind]map[string]int

var (
	mu    sync.Mutex
	store = sync.OnceValue(func() *gache.Cache[history] {
		return gache.New[history](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})
)

func load() history {
	cached, expired, err := store().Get()
	if err != nil || expired || cached == nil {
		return make(history)
	}
	return cached
}

// Remember counts one more search for q.
func Remember(kind Kind, q string) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	h := load()
	if h[kind] == nil {
		h[kind] = make(map[string]int)
	}
	h[kind][q]++

	return store().Set(h)
}

// Suggest returns up to limit past queries of the given kind that fuzzily match
// the prefix, most frequent first. limit <= 0 means no limit.
func Suggest(kind Kind, prefix string, limit int) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	mu.Lock()
	ranks := load()[kind]
	mu.Unlock()

	prefix = normalize(prefix)
	matches := fuzzy.FindFold(prefix, lo.Keys(ranks))
	slices.SortFunc(matches, func(a, b string) int {
		if ranks[a] != ranks[b] {
			return ranks[b] - ranks[a]
		}
		return strings.Compare(a, b)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		return []string{}
	}
	return matches
}

func normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
