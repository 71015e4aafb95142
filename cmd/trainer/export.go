package main

import (
	"fmt"
	"langtrainer/internal/catalog"
	"langtrainer/internal/config"
	"langtrainer/internal/logging"
	"langtrainer/internal/storage"
	"langtrainer/internal/workbook"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Writes the built-in sample catalog to a file that the xlsx or sqlite
// source can read back.
func newExportCmd(v *viper.Viper) *cobra.Command {
	var format, path string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in sample catalog to an xlsx or sqlite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("--path: %w", config.ErrPathRequired)
			}

			cfg, err := config.Load(v)

			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())

			if err != nil {
				return err
			}

			c, err := catalog.New(catalog.SampleLanguages)

			if err != nil {
				return err
			}

			catalog.Sample(c)

			vocabulary, phrases := c.Entries()

			switch format {
			case config.SourceXLSX:
				err = workbook.Write(path, vocabulary, phrases)
			case config.SourceSQLite:
				var file *storage.File

				file, err = storage.Open(cmd.Context(), path)

				if err != nil {
					return err
				}

				defer file.Close()

				err = file.SaveCatalog(cmd.Context(), vocabulary, phrases)
			default:
				return fmt.Errorf("%q: %w", format, config.ErrUnknownSource)
			}

			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			logger.WithField("path", path).Info("catalog exported")

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words and %d phrases to %s\n", len(vocabulary), len(phrases), path)

			return nil
		},
	}

	exportCmd.Flags().StringVar(&format, "format", config.SourceXLSX, "output format (xlsx, sqlite)")
	exportCmd.Flags().StringVar(&path, "path", "", "output file")

	return exportCmd
}
