package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/leeforge/logtree/envmode"
)

// searchPaths returns the directories probed for a logging properties
// file: current working directory, executable directory, then the
// executable's parent directory.
func searchPaths() []string {
	paths := []string{"."}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths, exeDir, filepath.Dir(exeDir))
	}
	return paths
}

// Discover locates the logging properties file for the current env mode
// (logging-debug.properties in debug mode, logging.properties in release)
// across the search paths. A missing file is not an error; the second
// return value reports whether one was found.
func Discover() (string, bool) {
	fileName := envmode.ConfigFileName()

	v := viper.New()
	v.SetConfigType("properties")
	v.SetConfigName(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	for _, p := range searchPaths() {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed(), true
	}

	// Viper refuses files its properties parser chokes on; our own parser
	// is line-resilient, so fall back to a plain stat sweep.
	for _, dir := range searchPaths() {
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadDiscovered finds and loads the properties file for the current env
// mode. When none exists the store is left untouched and ok is false.
func (s *Store) LoadDiscovered() (res LoadResult, ok bool) {
	path, found := Discover()
	if !found {
		return LoadResult{}, false
	}
	res, err := s.LoadFile(path)
	if err != nil {
		return LoadResult{}, false
	}
	return res, true
}
