package registry

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	wefterrors "github.com/weftui/weft/pkg/errors"
)

// ImportPack clones a theme pack repository into destination and registers
// every valid theme file it contains. Files that fail validation are skipped
// and reported; a pack with no loadable theme is an error.
func (r *Registry) ImportPack(ctx context.Context, url, destination string) ([]Entry, []error, error) {
	if _, err := os.Stat(destination); err == nil {
		return nil, nil, wefterrors.NewRegistryError("", fmt.Errorf("destination %s already exists", destination))
	}

	if _, err := git.PlainCloneContext(ctx, destination, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}); err != nil {
		return nil, nil, wefterrors.NewRegistryError("", fmt.Errorf("clone %s: %w", url, err))
	}

	return r.ImportDir(destination, url)
}

// ImportDir registers every valid theme file under dir. It returns the added
// entries alongside per-file errors for files that could not be registered.
func (r *Registry) ImportDir(dir, source string) ([]Entry, []error, error) {
	var added []Entry
	var skipped []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsThemeFile(path) {
			return nil
		}

		entry, addErr := r.Add(path, source)
		if addErr != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", path, addErr))
			return nil
		}
		added = append(added, entry)
		return nil
	})
	if walkErr != nil {
		return added, skipped, wefterrors.NewRegistryError("", fmt.Errorf("scan %s: %w", dir, walkErr))
	}

	if len(added) == 0 {
		return nil, skipped, wefterrors.NewRegistryError("", fmt.Errorf("no loadable themes found in %s", dir))
	}

	return added, skipped, nil
}
