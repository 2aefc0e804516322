// Package pathutil resolves where marathon keeps its files
package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir      = "marathon"
	envMarathon = "MARATHON_ENV"
)

type fileKind int

const (
	configFile fileKind = iota
	boltFile
	sqliteFile
	statusFile
	logFile
)

// file describes one application file as a base name and extension. The
// MARATHON_ENV suffix is inserted between the two.
type file struct {
	base string
	ext  string
	// sub is a directory below the data directory
	sub string
}

var files = map[fileKind]file{
	configFile: {base: "config", ext: ".yml"},
	boltFile:   {base: "marathon", ext: ".db"},
	sqliteFile: {base: "marathon", ext: ".sqlite"},
	statusFile: {base: "status", ext: ".json"},
	logFile:    {base: "marathon", ext: ".log", sub: "log"},
}

var (
	resolved map[fileKind]string
	once     sync.Once
)

var errNotInitialized = errors.New(
	"pathutil.Initialize() must be called before accessing paths",
)

// Initialize resolves every application path. It must be called once at
// program startup.
func Initialize() error {
	var err error

	once.Do(func() {
		resolved, err = resolve(strings.TrimSpace(os.Getenv(envMarathon)))
	})

	return err
}

func resolve(env string) (map[fileKind]string, error) {
	name := func(f file) string {
		if env == "" {
			return f.base + f.ext
		}

		return f.base + "_" + env + f.ext
	}

	out := make(map[fileKind]string, len(files))

	cfg, err := xdg.ConfigFile(filepath.Join(appDir, name(files[configFile])))
	if err != nil {
		return nil, err
	}

	out[configFile] = cfg

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return nil, err
	}

	for kind, f := range files {
		if kind == configFile {
			continue
		}

		out[kind] = filepath.Join(dataDir, f.sub, name(f))
	}

	return out, nil
}

func lookup(kind fileKind) string {
	if resolved == nil {
		panic(errNotInitialized)
	}

	return resolved[kind]
}

// Dir is the directory name used below the XDG base directories.
func Dir() string {
	return appDir
}

func ConfigFilePath() string {
	return lookup(configFile)
}

func DBFilePath() string {
	return lookup(boltFile)
}

func SQLiteFilePath() string {
	return lookup(sqliteFile)
}

// StatusFilePath is where a running timer publishes its state for the other
// commands.
func StatusFilePath() string {
	return lookup(statusFile)
}

func LogFilePath() string {
	return lookup(logFile)
}
