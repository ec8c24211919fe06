package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/malkit/malkit/codec"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/model"
	"github.com/malkit/malkit/style"
	"github.com/malkit/malkit/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// label turns an enum symbol such as "plan-to-watch" into display text.
func label[E ~string](e E) string {
	if e == "" {
		return "unknown"
	}
	return strings.ReplaceAll(string(e), "-", " ")
}

func date(d mo.Option[time.Time]) string {
	t, ok := d.Get()
	if !ok {
		return "?"
	}
	return t.Format(codec.InboundLayout)
}

func wrapWidth() int {
	if width := viper.GetInt(key.SearchWrapWidth); width > 0 {
		return width
	}
	return util.Min(util.TerminalWidth(80), 100)
}

func count(n int, singular, plural string) string {
	if n == 0 {
		return "? " + plural
	}
	return util.Quantify(n, singular, plural)
}

func details(parts ...string) string {
	return style.Faint(strings.Join(lo.Compact(parts), " · "))
}

func renderAnime(w io.Writer, a model.Anime) {
	fmt.Fprintf(w, "%s %s\n", style.Title(a.Title), style.Faint("#"+a.ID))
	if a.English != "" && a.English != a.Title {
		fmt.Fprintln(w, style.Italic(a.English))
	}
	fmt.Fprintln(w, details(
		strings.ToUpper(string(a.Type)),
		count(a.Episodes, "episode", "episodes"),
		label(a.Status),
		fmt.Sprintf("%s → %s", date(a.StartDate), date(a.EndDate)),
		fmt.Sprintf("score %.2f", a.Score),
	))
	if a.Synopsis != "" {
		fmt.Fprintln(w, util.Wrap(a.Synopsis, wrapWidth()))
	}
}

func renderManga(w io.Writer, m model.Manga) {
	fmt.Fprintf(w, "%s %s\n", style.Title(m.Title), style.Faint("#"+m.ID))
	if m.English != "" && m.English != m.Title {
		fmt.Fprintln(w, style.Italic(m.English))
	}
	fmt.Fprintln(w, details(
		util.Capitalize(label(m.Type)),
		count(m.Chapters, "chapter", "chapters"),
		count(m.Volumes, "volume", "volumes"),
		label(m.Status),
		fmt.Sprintf("%s → %s", date(m.StartDate), date(m.EndDate)),
		fmt.Sprintf("score %.2f", m.Score),
	))
	if m.Synopsis != "" {
		fmt.Fprintln(w, util.Wrap(m.Synopsis, wrapWidth()))
	}
}

// titleWidth leaves room for the id, status, progress and score columns.
func titleWidth() int {
	return util.Max(util.TerminalWidth(100)-48, 20)
}

func renderAnimeEntries(w io.Writer, info model.AnimeListInfo, entries []model.AnimeListEntry) {
	fmt.Fprintf(w, "%s %s\n\n", style.Title(info.Username), details(
		fmt.Sprintf("%d watching", info.Watching),
		fmt.Sprintf("%d completed", info.Completed),
		fmt.Sprintf("%d on hold", info.OnHold),
		fmt.Sprintf("%d dropped", info.Dropped),
		fmt.Sprintf("%d planned", info.PlanToWatch),
		fmt.Sprintf("%.1f days", info.DaysSpent),
	))

	width := titleWidth()
	for _, e := range entries {
		progress := fmt.Sprintf("%d/%s", e.WatchedEpisodes, total(e.SeriesEpisodes))
		fmt.Fprintf(w, "%s  %-*s  %s  %9s  %s\n",
			style.Faint(fmt.Sprintf("%8s", e.SeriesID)),
			width, util.Shorten(e.SeriesTitle, width),
			statusColumn(string(e.Status)),
			progress,
			style.Score(e.Score),
		)
	}
}

func renderMangaEntries(w io.Writer, info model.MangaListInfo, entries []model.MangaListEntry) {
	fmt.Fprintf(w, "%s %s\n\n", style.Title(info.Username), details(
		fmt.Sprintf("%d reading", info.Reading),
		fmt.Sprintf("%d completed", info.Completed),
		fmt.Sprintf("%d on hold", info.OnHold),
		fmt.Sprintf("%d dropped", info.Dropped),
		fmt.Sprintf("%d planned", info.PlanToRead),
		fmt.Sprintf("%.1f days", info.DaysSpent),
	))

	width := titleWidth()
	for _, e := range entries {
		progress := fmt.Sprintf("%d/%s", e.ReadChapters, total(e.SeriesChapters))
		fmt.Fprintf(w, "%s  %-*s  %s  %9s  %s\n",
			style.Faint(fmt.Sprintf("%8s", e.SeriesID)),
			width, util.Shorten(e.SeriesTitle, width),
			statusColumn(string(e.Status)),
			progress,
			style.Score(e.Score),
		)
	}
}

func total(n int) string {
	if n == 0 {
		return "?"
	}
	return fmt.Sprint(n)
}

// statusColumn pads before styling so escape codes do not skew the column.
func statusColumn(status string) string {
	return style.Status(status) + strings.Repeat(" ", util.Max(13-len(status), 0))
}
