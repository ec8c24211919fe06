package cmd

import (
	"github.com/malkit/malkit/style"
	"github.com/malkit/malkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name  string
	where func() string
	flag  string
	short string
}

var whereTargets = []whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Logs", where.Logs, "logs", "l"},
	{"Cache", where.Cache, "cache", "C"},
	{"Search history", where.Queries, "queries", "q"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.short, false, t.name+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where malkit keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(style.Purple).Render
		for i, t := range whereTargets {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(style.Yellow)("--"+t.flag))
			cmd.Println(t.where())
		}
	},
}
