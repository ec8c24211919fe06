package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/malkit/malkit/codec"
	"github.com/malkit/malkit/model"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

func invalidFlag(name, value string, allowed []string) error {
	return fmt.Errorf("invalid --%s %q, expected one of: %s", name, value, strings.Join(allowed, ", "))
}

func memberNames[E ~string](members []E) []string {
	names := lo.Map(members, func(m E, _ int) string { return string(m) })
	slices.Sort(names)
	return names
}

// parseMember resolves user input to an enum member. Blank input is the zero member.
func parseMember[E ~string](flag, input string, members []E) (E, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", nil
	}
	input = strings.NewReplacer(" ", "-", "_", "-").Replace(input)

	if m, ok := lo.Find(members, func(m E) bool { return string(m) == input }); ok {
		return m, nil
	}
	return "", invalidFlag(flag, input, memberNames(members))
}

func completeMembers[E ~string](members []E) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := memberNames(members)
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// flagReader copies the flags the user actually set into optional fields.
// Flags left alone keep the destination untouched. The first failure sticks.
type flagReader struct {
	flags *pflag.FlagSet
	err   error
}

func (r *flagReader) set(name string) bool {
	return r.err == nil && r.flags.Changed(name)
}

func (r *flagReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *flagReader) intFlag(name string, dst *mo.Option[int]) {
	if r.set(name) {
		v, err := r.flags.GetInt(name)
		r.fail(err)
		*dst = mo.Some(v)
	}
}

func (r *flagReader) floatFlag(name string, dst *mo.Option[float64]) {
	if r.set(name) {
		v, err := r.flags.GetFloat64(name)
		r.fail(err)
		*dst = mo.Some(v)
	}
}

func (r *flagReader) boolFlag(name string, dst *mo.Option[bool]) {
	if r.set(name) {
		v, err := r.flags.GetBool(name)
		r.fail(err)
		*dst = mo.Some(v)
	}
}

func (r *flagReader) stringFlag(name string, dst *mo.Option[string]) {
	if r.set(name) {
		v, err := r.flags.GetString(name)
		r.fail(err)
		*dst = mo.Some(v)
	}
}

// dateFlag accepts YYYY-MM-DD. "none" drops the date from the request, so the
// service keeps whatever date it has stored.
func (r *flagReader) dateFlag(name string, dst *mo.Option[time.Time]) {
	if !r.set(name) {
		return
	}
	raw := strings.TrimSpace(lo.Must(r.flags.GetString(name)))
	if raw == "none" {
		*dst = mo.None[time.Time]()
		return
	}
	t, err := time.Parse(codec.InboundLayout, raw)
	if err != nil {
		r.fail(fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", name, raw))
		return
	}
	*dst = mo.Some(t)
}

func (r *flagReader) tagsFlag(name string, dst *[]string) {
	if r.set(name) {
		v, err := r.flags.GetStringSlice(name)
		r.fail(err)
		*dst = lo.Compact(lo.Map(v, func(t string, _ int) string { return strings.TrimSpace(t) }))
	}
}

func readMember[E ~string](r *flagReader, name string, members []E, dst *mo.Option[E]) {
	if !r.set(name) {
		return
	}
	m, err := parseMember(name, lo.Must(r.flags.GetString(name)), members)
	if err != nil {
		r.fail(err)
		return
	}
	if m == "" {
		*dst = mo.None[E]()
		return
	}
	*dst = mo.Some(m)
}

func addAnimeFlags(flags *pflag.FlagSet) {
	flags.Int("episode", 0, "Episodes watched")
	flags.String("status", "", "List status: "+strings.Join(memberNames(model.AnimeEntryStatusCodec.Members()), ", "))
	flags.Int("score", 0, "Score from 1 to 10, 0 clears it")
	flags.String("storage-type", "", "Storage medium: "+strings.Join(memberNames(model.StorageTypeCodec.Members()), ", "))
	flags.Float64("storage-value", 0, "Storage amount, for example size in GB")
	flags.Int("times-rewatched", 0, "How many times the title was rewatched")
	flags.String("rewatch-value", "", "Rewatch value: "+strings.Join(memberNames(model.IntensityCodec.Members()), ", "))
	flags.String("start", "", "Start date as YYYY-MM-DD, or none to leave it out of the request")
	flags.String("finish", "", "Finish date as YYYY-MM-DD, or none to leave it out of the request")
	flags.Int("priority", 0, "Priority")
	flags.Bool("discussion", false, "Enable the discussion thread")
	flags.Bool("rewatching", false, "Mark the title as being rewatched")
	flags.String("comments", "", "Free-form comments")
	flags.String("fansub-group", "", "Fansub group")
	flags.StringSlice("tags", nil, "Tags, comma separated")
}

// readAnimeValues applies the set flags on top of base.
func readAnimeValues(flags *pflag.FlagSet, base model.AnimeListEntryValues) (model.AnimeListEntryValues, error) {
	r := &flagReader{flags: flags}
	v := base

	r.intFlag("episode", &v.Episode)
	readMember(r, "status", model.AnimeEntryStatusCodec.Members(), &v.Status)
	r.intFlag("score", &v.Score)
	readMember(r, "storage-type", model.StorageTypeCodec.Members(), &v.StorageType)
	r.floatFlag("storage-value", &v.StorageValue)
	r.intFlag("times-rewatched", &v.TimesRewatched)
	readMember(r, "rewatch-value", model.IntensityCodec.Members(), &v.RewatchValue)
	r.dateFlag("start", &v.DateStart)
	r.dateFlag("finish", &v.DateFinish)
	r.intFlag("priority", &v.Priority)
	r.boolFlag("discussion", &v.EnableDiscussion)
	r.boolFlag("rewatching", &v.EnableRewatching)
	r.stringFlag("comments", &v.Comments)
	r.stringFlag("fansub-group", &v.FansubGroup)
	r.tagsFlag("tags", &v.Tags)

	return v, r.err
}

func addMangaFlags(flags *pflag.FlagSet) {
	flags.Int("chapter", 0, "Chapters read")
	flags.Int("volume", 0, "Volumes read")
	flags.String("status", "", "List status: "+strings.Join(memberNames(model.MangaEntryStatusCodec.Members()), ", "))
	flags.Int("score", 0, "Score from 1 to 10, 0 clears it")
	flags.Int("times-reread", 0, "How many times the title was reread")
	flags.String("reread-value", "", "Reread value: "+strings.Join(memberNames(model.IntensityCodec.Members()), ", "))
	flags.String("start", "", "Start date as YYYY-MM-DD, or none to leave it out of the request")
	flags.String("finish", "", "Finish date as YYYY-MM-DD, or none to leave it out of the request")
	flags.Int("priority", 0, "Priority")
	flags.Bool("discussion", false, "Enable the discussion thread")
	flags.Bool("rereading", false, "Mark the title as being reread")
	flags.String("comments", "", "Free-form comments")
	flags.String("scan-group", "", "Scanlation group")
	flags.StringSlice("tags", nil, "Tags, comma separated")
	flags.Int("retail-volumes", 0, "Volumes owned in print")
}

func readMangaValues(flags *pflag.FlagSet, base model.MangaListEntryValues) (model.MangaListEntryValues, error) {
	r := &flagReader{flags: flags}
	v := base

	r.intFlag("chapter", &v.Chapter)
	r.intFlag("volume", &v.Volume)
	readMember(r, "status", model.MangaEntryStatusCodec.Members(), &v.Status)
	r.intFlag("score", &v.Score)
	r.intFlag("times-reread", &v.TimesReread)
	readMember(r, "reread-value", model.IntensityCodec.Members(), &v.RereadValue)
	r.dateFlag("start", &v.DateStart)
	r.dateFlag("finish", &v.DateFinish)
	r.intFlag("priority", &v.Priority)
	r.boolFlag("discussion", &v.EnableDiscussion)
	r.boolFlag("rereading", &v.EnableRereading)
	r.stringFlag("comments", &v.Comments)
	r.stringFlag("scan-group", &v.ScanGroup)
	r.tagsFlag("tags", &v.Tags)
	r.intFlag("retail-volumes", &v.RetailVolumes)

	return v, r.err
}
