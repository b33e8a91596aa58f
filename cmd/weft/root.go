package main

import (
	"github.com/spf13/cobra"

	"github.com/weftui/weft/internal/logger"
)

type rootFlags struct {
	themeName string
	verbose   bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "weft",
		Short:         "weft is an accessible, themeable terminal component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running weft with no subcommand launches the gallery.
			return runGallery(flags, log)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.themeName, "theme", "t", "default", "Theme to render with")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newThemesCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
