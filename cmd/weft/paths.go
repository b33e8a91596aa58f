package main

import (
	"os"
	"path/filepath"
)

func weftHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".weft"), nil
}

func defaultRegistryPath() (string, error) {
	home, err := weftHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "registry.json"), nil
}

func defaultPacksDir() (string, error) {
	home, err := weftHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "packs"), nil
}
