package main

import (
	"fmt"
	"langtrainer/internal/config"
	"langtrainer/internal/logging"
	"langtrainer/internal/session"
	"langtrainer/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:          "trainer",
		Short:        "Practice vocabulary words and phrases from a numbered menu",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)

			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			c, err := openCatalog(cmd.Context(), cfg.Catalog, logger)

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Language trainer (%s)\n", c.Languages())

			return ui.Run(cmd.InOrStdin(), cmd.OutOrStdout(), session.New(c, logger), logger)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")
	rootCmd.Flags().String("source", "", "catalog source (builtin, xlsx, sqlite)")
	rootCmd.Flags().String("path", "", "catalog file for the xlsx and sqlite sources")

	bindFlagToViper(v, "log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlagToViper(v, "log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlagToViper(v, "catalog.source", rootCmd.Flags().Lookup("source"))
	bindFlagToViper(v, "catalog.path", rootCmd.Flags().Lookup("path"))

	rootCmd.AddCommand(newExportCmd(v))

	return rootCmd
}

func bindFlagToViper(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}

	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}
