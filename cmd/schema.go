package cmd

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/malkit/malkit/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// schemaSubjects maps each --json producing command to the value it prints.
var schemaSubjects = map[string]any{
	"anime":        []model.Anime{},
	"manga":        []model.Manga{},
	"anime-list":   &model.AnimeList{},
	"manga-list":   &model.MangaList{},
	"anime-values": &model.AnimeListEntryValues{},
	"manga-values": &model.MangaListEntryValues{},
	"user":         &model.User{},
}

var schemaNames = func() []string {
	names := lo.Keys(schemaSubjects)
	sort.Strings(names)
	return names
}()

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// optionSchema describes mo.Option fields by the JSON they marshal to: the value or null.
func optionSchema(t reflect.Type) *jsonschema.Schema {
	if t.PkgPath() != "github.com/samber/mo" || !strings.HasPrefix(t.Name(), "Option[") {
		return nil
	}

	get, ok := t.MethodByName("MustGet")
	if !ok {
		return nil
	}

	inner := newReflector().ReflectFromType(get.Type.Out(0))
	inner.Version = ""
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{inner, {Type: "null"}},
	}
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		Mapper:         optionSchema,
	}
}

var schemaCmd = &cobra.Command{
	Use:       "schema <" + strings.Join(schemaNames, "|") + ">",
	Short:     "Print the JSON schema of --json output",
	Args:      cobra.ExactArgs(1),
	ValidArgs: schemaNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, ok := schemaSubjects[args[0]]
		if !ok {
			return fmt.Errorf("unknown schema %q", args[0])
		}

		return writeJSON(cmd.OutOrStdout(), newReflector().Reflect(subject))
	},
}
