package cmd

import (
	"fmt"
	"strings"

	"github.com/malkit/malkit/log"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/query"
	"github.com/malkit/malkit/style"
	"github.com/malkit/malkit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchAnimeCmd, searchMangaCmd)

	for _, c := range []*cobra.Command{searchAnimeCmd, searchMangaCmd} {
		c.Flags().BoolP("json", "j", false, "Print the results as JSON")
		c.Flags().BoolP("closest", "c", false, "Print only the title that best matches the query")
		c.Flags().IntP("limit", "l", 0, "Print at most this many results")
	}
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search anime or manga titles",
}

// suggestQueries completes search arguments from past searches.
func suggestQueries(kind query.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := strings.TrimSpace(strings.Join(append(args, toComplete), " "))
		return query.Suggest(kind, prefix, 10), cobra.ShellCompDirectiveNoFileComp
	}
}

func remember(kind query.Kind, q string) {
	if err := query.Remember(kind, q); err != nil {
		log.Warnf("remember query: %s", err)
	}
}

var searchAnimeCmd = &cobra.Command{
	Use:               "anime <query>",
	Short:             "Search anime titles",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: suggestQueries(query.Anime),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := strings.Join(args, " ")
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		var results []model.Anime
		if lo.Must(cmd.Flags().GetBool("closest")) {
			closest, err := client.FindClosestAnime(cmd.Context(), q)
			if err != nil {
				return err
			}
			results = []model.Anime{*closest}
		} else if results, err = client.SearchAnime(cmd.Context(), q); err != nil {
			return err
		}
		remember(query.Anime, q)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			return writeJSON(cmd.OutOrStdout(), results)
		}

		if len(results) == 0 {
			cmd.Println(style.Faint("no anime found for " + q))
			return nil
		}

		for i, a := range results {
			if i > 0 {
				cmd.Println()
			}
			renderAnime(cmd.OutOrStdout(), a)
		}
		cmd.Println(style.Faint(fmt.Sprintf("\n%s", util.Quantify(len(results), "result", "results"))))
		return nil
	},
}

var searchMangaCmd = &cobra.Command{
	Use:               "manga <query>",
	Short:             "Search manga titles",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: suggestQueries(query.Manga),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := strings.Join(args, " ")
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		var results []model.Manga
		if lo.Must(cmd.Flags().GetBool("closest")) {
			closest, err := client.FindClosestManga(cmd.Context(), q)
			if err != nil {
				return err
			}
			results = []model.Manga{*closest}
		} else if results, err = client.SearchManga(cmd.Context(), q); err != nil {
			return err
		}
		remember(query.Manga, q)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			return writeJSON(cmd.OutOrStdout(), results)
		}

		if len(results) == 0 {
			cmd.Println(style.Faint("no manga found for " + q))
			return nil
		}

		for i, m := range results {
			if i > 0 {
				cmd.Println()
			}
			renderManga(cmd.OutOrStdout(), m)
		}
		cmd.Println(style.Faint(fmt.Sprintf("\n%s", util.Quantify(len(results), "result", "results"))))
		return nil
	},
}
