// Package cmd implements the malkit command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/malkit/malkit/auth"
	"github.com/malkit/malkit/constant"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/log"
	"github.com/malkit/malkit/mal"
	"github.com/malkit/malkit/malerr"
	"github.com/malkit/malkit/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Manage MyAnimeList anime and manga lists from the terminal",
	Long: style.Title(constant.App) + "\n\n" +
		"Search titles, read lists and record progress on MyAnimeList.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !viper.GetBool(key.CliColored) {
			style.Disable()
		}
	},
}

func init() {
	rootCmd.SetOut(os.Stdout)
}

// Execute runs the command selected by os.Args. Interrupts cancel in-flight requests.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	handleErr(err)
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.ErrorTitle("error"), strings.TrimSpace(err.Error()))
	if hint := hintFor(err); hint != "" {
		_, _ = fmt.Fprintln(os.Stderr, style.Faint(hint))
	}
	os.Exit(1)
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoPassword), errors.Is(err, errNoAccount):
		return `run "malkit login" to sign in`
	case errors.Is(err, mal.ErrNoMatch):
		return "try a shorter or romanized title"
	}

	switch malerr.KindOf(err) {
	case malerr.KindUnauthorized:
		return `the service rejected the stored credentials, run "malkit login" again`
	case malerr.KindTimeout:
		return "raise mal.timeout if the service is slow"
	case malerr.KindServer:
		return "the service is having trouble, try again later"
	default:
		return ""
	}
}
