package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/malkit/malkit/mal"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, removeCmd)
	addCmd.AddCommand(addAnimeCmd, addMangaCmd)
	updateCmd.AddCommand(updateAnimeCmd, updateMangaCmd)
	removeCmd.AddCommand(removeAnimeCmd, removeMangaCmd)

	for _, c := range []*cobra.Command{addCmd, updateCmd, removeCmd} {
		c.PersistentFlags().StringP("find", "F", "", "Pick the title by name instead of by id")
		c.PersistentFlags().BoolP("yes", "y", false, "Do not ask for confirmation")
	}

	addAnimeFlags(addAnimeCmd.Flags())
	addAnimeFlags(updateAnimeCmd.Flags())
	addMangaFlags(addMangaCmd.Flags())
	addMangaFlags(updateMangaCmd.Flags())

	for _, c := range []*cobra.Command{updateAnimeCmd, updateMangaCmd} {
		c.Flags().Bool("from-list", false, "Start from the progress already on your list")
	}
	for _, c := range []*cobra.Command{addAnimeCmd, updateAnimeCmd} {
		lo.Must0(c.RegisterFlagCompletionFunc("status", completeMembers(model.AnimeEntryStatusCodec.Members())))
	}
	for _, c := range []*cobra.Command{addMangaCmd, updateMangaCmd} {
		lo.Must0(c.RegisterFlagCompletionFunc("status", completeMembers(model.MangaEntryStatusCodec.Members())))
	}
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a title to your list",
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change an entry on your list",
}

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove a title from your list",
}

func confirm(cmd *cobra.Command, message string) (bool, error) {
	if lo.Must(cmd.Flags().GetBool("yes")) {
		return true, nil
	}

	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &ok)
	return ok, err
}

var errCancelled = errors.New("cancelled")

// target is the title a list command acts on.
type target struct {
	id    string
	title string
}

func (t target) String() string {
	if t.title == "" {
		return "#" + t.id
	}
	return fmt.Sprintf("%s (#%s)", t.title, t.id)
}

func resolveTarget(cmd *cobra.Command, args []string, find func(context.Context, string) (target, error)) (target, error) {
	name := strings.TrimSpace(lo.Must(cmd.Flags().GetString("find")))
	switch {
	case name != "" && len(args) > 0:
		return target{}, errors.New("pass either an id or --find, not both")
	case name == "" && len(args) == 0:
		return target{}, errors.New("an id or --find is required")
	case name == "":
		return target{id: args[0]}, nil
	}

	t, err := find(cmd.Context(), name)
	if err != nil {
		return target{}, err
	}
	ok, err := confirm(cmd, "Use "+t.String()+"?")
	if err != nil {
		return target{}, err
	}
	if !ok {
		return target{}, errCancelled
	}
	return t, nil
}

func findAnime(client *mal.Client) func(context.Context, string) (target, error) {
	return func(ctx context.Context, name string) (target, error) {
		a, err := client.FindClosestAnime(ctx, name)
		if err != nil {
			return target{}, err
		}
		return target{id: a.ID, title: a.Title}, nil
	}
}

func findManga(client *mal.Client) func(context.Context, string) (target, error) {
	return func(ctx context.Context, name string) (target, error) {
		m, err := client.FindClosestManga(ctx, name)
		if err != nil {
			return target{}, err
		}
		return target{id: m.ID, title: m.Title}, nil
	}
}

func done(cmd *cobra.Command, verb string, t target) {
	cmd.Printf("%s %s %s\n", style.Fg(style.Green)("✓"), verb, style.Bold(t.String()))
}

var addAnimeCmd = &cobra.Command{
	Use:   "anime [id]",
	Short: "Add an anime to your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := readAnimeValues(cmd.Flags(), model.AnimeListEntryValues{})
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findAnime(client))
		if err != nil {
			return err
		}
		if err := client.AddAnime(cmd.Context(), model.AnimeID(t.id), &values); err != nil {
			return err
		}

		done(cmd, "added", t)
		return nil
	},
}

var updateAnimeCmd = &cobra.Command{
	Use:   "anime [id]",
	Short: "Change an anime entry on your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findAnime(client))
		if err != nil {
			return err
		}

		var base model.AnimeListEntryValues
		if lo.Must(cmd.Flags().GetBool("from-list")) {
			list, err := client.MyAnimeList(cmd.Context())
			if err != nil {
				return err
			}
			var entries []model.AnimeListEntry
			if list != nil {
				entries = list.Entries
			}
			entry, ok := lo.Find(entries, func(e model.AnimeListEntry) bool { return e.SeriesID == t.id })
			if !ok {
				return fmt.Errorf("%s is not on your anime list", t)
			}
			t.title = entry.SeriesTitle
			base = model.AnimeValuesFromEntry(entry)
		}

		values, err := readAnimeValues(cmd.Flags(), base)
		if err != nil {
			return err
		}
		if err := client.UpdateAnime(cmd.Context(), model.AnimeID(t.id), &values); err != nil {
			return err
		}

		done(cmd, "updated", t)
		return nil
	},
}

var removeAnimeCmd = &cobra.Command{
	Use:   "anime [id]",
	Short: "Remove an anime from your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findAnime(client))
		if err != nil {
			return err
		}
		if lo.Must(cmd.Flags().GetString("find")) == "" {
			ok, err := confirm(cmd, "Remove "+t.String()+" from your anime list?")
			if err != nil {
				return err
			}
			if !ok {
				return errCancelled
			}
		}
		if err := client.RemoveAnime(cmd.Context(), model.AnimeID(t.id)); err != nil {
			return err
		}

		done(cmd, "removed", t)
		return nil
	},
}

var addMangaCmd = &cobra.Command{
	Use:   "manga [id]",
	Short: "Add a manga to your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := readMangaValues(cmd.Flags(), model.MangaListEntryValues{})
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findManga(client))
		if err != nil {
			return err
		}
		if err := client.AddManga(cmd.Context(), model.MangaID(t.id), &values); err != nil {
			return err
		}

		done(cmd, "added", t)
		return nil
	},
}

var updateMangaCmd = &cobra.Command{
	Use:   "manga [id]",
	Short: "Change a manga entry on your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findManga(client))
		if err != nil {
			return err
		}

		var base model.MangaListEntryValues
		if lo.Must(cmd.Flags().GetBool("from-list")) {
			list, err := client.MyMangaList(cmd.Context())
			if err != nil {
				return err
			}
			var entries []model.MangaListEntry
			if list != nil {
				entries = list.Entries
			}
			entry, ok := lo.Find(entries, func(e model.MangaListEntry) bool { return e.SeriesID == t.id })
			if !ok {
				return fmt.Errorf("%s is not on your manga list", t)
			}
			t.title = entry.SeriesTitle
			base = model.MangaValuesFromEntry(entry)
		}

		values, err := readMangaValues(cmd.Flags(), base)
		if err != nil {
			return err
		}
		if err := client.UpdateManga(cmd.Context(), model.MangaID(t.id), &values); err != nil {
			return err
		}

		done(cmd, "updated", t)
		return nil
	},
}

var removeMangaCmd = &cobra.Command{
	Use:   "manga [id]",
	Short: "Remove a manga from your list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		t, err := resolveTarget(cmd, args, findManga(client))
		if err != nil {
			return err
		}
		if lo.Must(cmd.Flags().GetString("find")) == "" {
			ok, err := confirm(cmd, "Remove "+t.String()+" from your manga list?")
			if err != nil {
				return err
			}
			if !ok {
				return errCancelled
			}
		}
		if err := client.RemoveManga(cmd.Context(), model.MangaID(t.id)); err != nil {
			return err
		}

		done(cmd, "removed", t)
		return nil
	},
}
