// Package static ships the assets used by desktop notifications
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/marathon/internal/osutil"
	"github.com/ayoisaiah/marathon/internal/pathutil"
)

const iconFile = "static/icon.svg"

//go:embed files/*
var embedded embed.FS

// Install writes the notification assets into the marathon data directory.
// Files the user already has are left alone.
func Install() error {
	return copyTo(filepath.Join(xdg.DataHome, pathutil.Dir()))
}

// IconPath returns the location of the installed notification icon, or an
// empty string if it is missing.
func IconPath() string {
	p, err := xdg.SearchDataFile(filepath.Join(pathutil.Dir(), iconFile))
	if err != nil {
		return ""
	}

	return p
}

func copyTo(root string) error {
	assets, err := fs.Sub(embedded, "files")
	if err != nil {
		return err
	}

	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dest := filepath.Join(root, filepath.FromSlash(name))

		_, err = os.Stat(dest)
		if !errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		b, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}

		if err = os.MkdirAll(filepath.Dir(dest), osutil.DirPermission); err != nil {
			return err
		}

		return os.WriteFile(dest, b, 0o644)
	})
}
