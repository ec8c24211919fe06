package cmd

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/malkit/malkit/mal"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listAnimeCmd, listMangaCmd)

	listCmd.PersistentFlags().StringP("filter", "f", "", "Keep only titles fuzzily matching this text")
	listCmd.PersistentFlags().StringP("sort", "s", "title", "Order by title, score or updated")
	listCmd.PersistentFlags().BoolP("json", "j", false, "Print the list as JSON")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"title", "score", "updated"}, cobra.ShellCompDirectiveNoFileComp
	}))

	listAnimeCmd.Flags().String("status", "", "Keep only entries with this status")
	lo.Must0(listAnimeCmd.RegisterFlagCompletionFunc("status", completeMembers(model.AnimeEntryStatusCodec.Members())))

	listMangaCmd.Flags().String("status", "", "Keep only entries with this status")
	lo.Must0(listMangaCmd.RegisterFlagCompletionFunc("status", completeMembers(model.MangaEntryStatusCodec.Members())))
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a user's anime or manga list",
}

// listFilter selects and orders list entries by the shared list flags.
type listFilter struct {
	text  string
	order string
}

func newListFilter(cmd *cobra.Command) (listFilter, error) {
	f := listFilter{
		text:  lo.Must(cmd.Flags().GetString("filter")),
		order: lo.Must(cmd.Flags().GetString("sort")),
	}
	if !lo.Contains([]string{"title", "score", "updated"}, f.order) {
		return f, invalidFlag("sort", f.order, []string{"title", "score", "updated"})
	}
	return f, nil
}

func (f listFilter) matches(title string, synonyms []string) bool {
	if f.text == "" {
		return true
	}
	return lo.SomeBy(append([]string{title}, synonyms...), func(name string) bool {
		return fuzzy.MatchNormalizedFold(f.text, name)
	})
}

func sortEntries[E any](entries []E, order string, title func(E) string, score func(E) int, updated func(E) int64) {
	slices.SortStableFunc(entries, func(a, b E) int {
		switch order {
		case "score":
			if d := score(b) - score(a); d != 0 {
				return d
			}
		case "updated":
			if ua, ub := updated(a), updated(b); ua != ub {
				if ua > ub {
					return -1
				}
				return 1
			}
		}
		return strings.Compare(strings.ToLower(title(a)), strings.ToLower(title(b)))
	})
}

func (f listFilter) anime(entries []model.AnimeListEntry, status model.AnimeEntryStatus) []model.AnimeListEntry {
	kept := lo.Filter(entries, func(e model.AnimeListEntry, _ int) bool {
		return (status == "" || e.Status == status) && f.matches(e.SeriesTitle, e.SeriesSynonyms)
	})
	sortEntries(kept, f.order,
		func(e model.AnimeListEntry) string { return e.SeriesTitle },
		func(e model.AnimeListEntry) int { return e.Score },
		func(e model.AnimeListEntry) int64 { return e.LastUpdated.Unix() },
	)
	return kept
}

func (f listFilter) manga(entries []model.MangaListEntry, status model.MangaEntryStatus) []model.MangaListEntry {
	kept := lo.Filter(entries, func(e model.MangaListEntry, _ int) bool {
		return (status == "" || e.Status == status) && f.matches(e.SeriesTitle, e.SeriesSynonyms)
	})
	sortEntries(kept, f.order,
		func(e model.MangaListEntry) string { return e.SeriesTitle },
		func(e model.MangaListEntry) int { return e.Score },
		func(e model.MangaListEntry) int64 { return e.LastUpdated.Unix() },
	)
	return kept
}

// listOwner is the username argument, or the signed in user when absent.
func listOwner(client *mal.Client, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return client.Username()
}

var listAnimeCmd = &cobra.Command{
	Use:   "anime [username]",
	Short: "Show an anime list, your own by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := newListFilter(cmd)
		if err != nil {
			return err
		}
		status, err := parseMember("status", lo.Must(cmd.Flags().GetString("status")), model.AnimeEntryStatusCodec.Members())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		list, err := client.AnimeList(cmd.Context(), listOwner(client, args))
		if err != nil {
			return err
		}
		if list == nil {
			cmd.Println(style.Faint("no such user or the list is empty"))
			return nil
		}

		list.Entries = filter.anime(list.Entries, status)
		if lo.Must(cmd.Flags().GetBool("json")) {
			return writeJSON(cmd.OutOrStdout(), list)
		}

		renderAnimeEntries(cmd.OutOrStdout(), list.Info, list.Entries)
		return nil
	},
}

var listMangaCmd = &cobra.Command{
	Use:   "manga [username]",
	Short: "Show a manga list, your own by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := newListFilter(cmd)
		if err != nil {
			return err
		}
		status, err := parseMember("status", lo.Must(cmd.Flags().GetString("status")), model.MangaEntryStatusCodec.Members())
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		list, err := client.MangaList(cmd.Context(), listOwner(client, args))
		if err != nil {
			return err
		}
		if list == nil {
			cmd.Println(style.Faint("no such user or the list is empty"))
			return nil
		}

		list.Entries = filter.manga(list.Entries, status)
		if lo.Must(cmd.Flags().GetBool("json")) {
			return writeJSON(cmd.OutOrStdout(), list)
		}

		renderMangaEntries(cmd.OutOrStdout(), list.Info, list.Entries)
		return nil
	},
}
