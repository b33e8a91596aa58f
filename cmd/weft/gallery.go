package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/weftui/weft/interaction"
	"github.com/weftui/weft/internal/gallery"
	"github.com/weftui/weft/internal/logger"
	"github.com/weftui/weft/internal/registry"
	"github.com/weftui/weft/theme"
)

type galleryOptions struct {
	keyboardOnly bool
}

func newGalleryCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse every component interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGalleryWithOptions(rootFlags, opts, log)
		},
	}

	cmd.Flags().BoolVar(&opts.keyboardOnly, "keyboard-only", false, "Disable mouse support")

	return cmd
}

func runGallery(rootFlags *rootFlags, log *logger.Logger) error {
	return runGalleryWithOptions(rootFlags, &galleryOptions{}, log)
}

func runGalleryWithOptions(rootFlags *rootFlags, opts *galleryOptions, log *logger.Logger) error {
	if !gallery.Interactive() {
		return fmt.Errorf("the gallery needs an interactive terminal")
	}

	selected, err := loadTheme(rootFlags.themeName, log)
	if err != nil {
		return err
	}

	target := interaction.PointerTarget
	if opts.keyboardOnly {
		target = interaction.KeyTarget
	}

	if rootFlags.verbose {
		log.WithTheme(selected.Name).Info("starting gallery")
	}

	model := gallery.NewModel(gallery.Options{
		Theme:  selected,
		Target: target,
		Logger: log,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if target == interaction.PointerTarget {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	_, err = tea.NewProgram(model, programOpts...).Run()
	return err
}

func loadTheme(name string, log *logger.Logger) (theme.Theme, error) {
	registryPath, err := defaultRegistryPath()
	if err != nil {
		return theme.Theme{}, fmt.Errorf("determine registry path: %w", err)
	}

	reg, err := registry.New(registryPath)
	if err != nil {
		return theme.Theme{}, err
	}

	loaded, err := reg.LoadTheme(name)
	if err != nil {
		log.Error(err, "theme lookup failed")
		return theme.Theme{}, err
	}
	return loaded, nil
}
