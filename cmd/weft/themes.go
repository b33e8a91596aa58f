package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/weftui/weft/internal/logger"
	"github.com/weftui/weft/internal/registry"
)

func newThemesCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Manage registered themes",
	}

	cmd.AddCommand(newThemesListCmd(log))
	cmd.AddCommand(newThemesAddCmd(log))
	cmd.AddCommand(newThemesRemoveCmd(log))
	cmd.AddCommand(newThemesImportCmd(log))

	return cmd
}

func openRegistry() (*registry.Registry, error) {
	path, err := defaultRegistryPath()
	if err != nil {
		return nil, fmt.Errorf("determine registry path: %w", err)
	}
	return registry.New(path)
}

func newThemesListCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}

			entries := reg.List()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No themes registered. Built-in themes: default, dark.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tDESCRIPTION")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, entry.Source, entry.Description)
			}
			return w.Flush()
		},
	}
}

func newThemesAddCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "add <theme-file>",
		Short: "Register a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := openRegistry()
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			entry, err := reg.Add(path, "local")
			if err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			log.WithTheme(entry.Name).Debug("theme registered")
			fmt.Fprintf(cmd.OutOrStdout(), "Registered theme %q from %s\n", entry.Name, entry.Path)
			return nil
		},
	}
}

func newThemesRemoveCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a registered theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := registry.ValidateThemeName(name); err != nil {
				return err
			}

			reg, err := openRegistry()
			if err != nil {
				return err
			}

			if err := reg.Remove(name); err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			log.WithTheme(name).Debug("theme removed")
			fmt.Fprintf(cmd.OutOrStdout(), "Removed theme %q\n", name)
			return nil
		},
	}
}

func newThemesImportCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "import <git-url>",
		Short: "Import every theme from a git repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]

			reg, err := openRegistry()
			if err != nil {
				return err
			}

			packsDir, err := defaultPacksDir()
			if err != nil {
				return fmt.Errorf("determine packs directory: %w", err)
			}
			if err := os.MkdirAll(packsDir, 0o755); err != nil {
				return fmt.Errorf("create packs directory: %w", err)
			}
			destination := filepath.Join(packsDir, registry.NameFromPath(url))

			added, skipped, err := reg.ImportPack(cmd.Context(), url, destination)
			if err != nil {
				return err
			}
			if err := reg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d theme(s) from %s\n", len(added), url)
			for _, entry := range added {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", entry.Name)
			}
			for _, skip := range skipped {
				log.Warn(skip.Error())
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", skip)
			}
			return nil
		},
	}
}
