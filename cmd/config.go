package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/malkit/malkit/config"
	"github.com/malkit/malkit/filesystem"
	"github.com/malkit/malkit/style"
	"github.com/malkit/malkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(style.Red)(key),
		style.Fg(style.Yellow)(config.Closest(key)),
	)
}

func lookupField(key string) (config.Field, error) {
	field, ok := config.Default[key]
	if !ok {
		return field, errUnknownKey(key)
	}
	return field, nil
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configDeleteCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the available settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				field, err := lookupField(k)
				if err != nil {
					return err
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields))
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := lookupField(args[0]); err != nil {
			return err
		}

		cmd.Println(viper.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Change a setting and save it",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := lookupField(args[0])
		if err != nil {
			return err
		}

		value, err := field.Parse(args[1:])
		if err != nil {
			return err
		}

		viper.Set(field.Key, value)
		if err := config.Write(); err != nil {
			return err
		}

		cmd.Printf(
			"%s set %s to %s\n",
			style.Fg(style.Green)("✓"),
			style.Fg(style.Purple)(field.Key),
			style.Fg(style.Yellow)(fmt.Sprint(value)),
		)
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a setting to its default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) == 1) {
			return fmt.Errorf("pass either a key or --all")
		}

		fields := lo.Values(config.Default)
		if !all {
			field, err := lookupField(args[0])
			if err != nil {
				return err
			}
			fields = []config.Field{field}
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		if err := config.Write(); err != nil {
			return err
		}

		if all {
			cmd.Printf("%s reset all settings\n", style.Fg(style.Green)("✓"))
			return nil
		}
		cmd.Printf(
			"%s reset %s to %s\n",
			style.Fg(style.Green)("✓"),
			style.Fg(style.Purple)(fields[0].Key),
			style.Fg(style.Yellow)(fmt.Sprint(fields[0].Value)),
		)
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"rm"},
	Short:   "Delete the config file",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := filesystem.RemoveIfExists(where.ConfigFile())
		if err != nil {
			return err
		}
		if !removed {
			cmd.Println(style.Faint("no config file at " + where.ConfigFile()))
			return nil
		}

		cmd.Printf("%s deleted %s\n", style.Fg(style.Green)("✓"), where.ConfigFile())
		return nil
	},
}
