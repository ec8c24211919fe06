package cmd

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/malkit/malkit/auth"
	"github.com/malkit/malkit/config"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/mal"
	"github.com/malkit/malkit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, verifyCmd)
	loginCmd.Flags().StringP("username", "u", "", "Account name, asked for when omitted")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check your credentials and keep them in the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := strings.TrimSpace(lo.Must(cmd.Flags().GetString("username")))
		if username == "" {
			err := survey.AskOne(&survey.Input{
				Message: "MyAnimeList username",
				Default: viper.GetString(key.MalUsername),
			}, &username, survey.WithValidator(survey.Required))
			if err != nil {
				return err
			}
		}

		var password string
		err := survey.AskOne(&survey.Password{Message: "Password"}, &password, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}

		client, err := mal.New(clientConfig(username, password))
		if err != nil {
			return err
		}
		defer client.Close()

		user, err := client.VerifyCredentials(cmd.Context())
		if err != nil {
			return err
		}

		if user != nil && user.Username != "" {
			username = user.Username
		}

		if err := auth.SetPassword(username, password); err != nil {
			return err
		}
		viper.Set(key.MalUsername, username)
		if err := config.Write(); err != nil {
			return err
		}

		cmd.Printf("%s signed in as %s\n", style.Fg(style.Green)("✓"), style.Bold(username))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := viper.GetString(key.MalUsername)
		if username == "" {
			cmd.Println(style.Faint("not signed in"))
			return nil
		}

		if err := auth.DeletePassword(username); err != nil {
			return err
		}
		viper.Set(key.MalUsername, "")
		if err := config.Write(); err != nil {
			return err
		}

		cmd.Printf("%s signed out %s\n", style.Fg(style.Green)("✓"), style.Bold(username))
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the stored credentials are still accepted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		user, err := client.VerifyCredentials(cmd.Context())
		if err != nil {
			return err
		}
		if user == nil {
			cmd.Printf("%s credentials accepted for %s\n", style.Fg(style.Green)("✓"), style.Bold(client.Username()))
			return nil
		}

		cmd.Printf("%s %s %s\n", style.Fg(style.Green)("✓"), style.Bold(user.Username), style.Faint("#"+user.ID))
		return nil
	},
}
