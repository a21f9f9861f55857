// Package hotload watches theme source files and triggers a debounced rebuild hook.
package hotload

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/utils/log"
)

// Func defines the type for the hot-reloading hook function.
type Func func()

// fileState stores the essential metadata and content hash of a file to detect real changes.
type fileState struct {
	modTime time.Time
	size    int64
	hash    string
}

// stateCache is a map from file path to its last known state.
type stateCache map[string]fileState

// WatchContext carries runtime state for the watcher.
type WatchContext struct {
	rootPath string
	watcher  *fsnotify.Watcher
	config   configs.HotloadConfig
	logger   log.Logger

	mu               sync.Mutex
	cache            stateCache
	debounceDuration time.Duration
	timer            *time.Timer
	changed          []string

	hookMu sync.Mutex
	hook   Func
}

// hashFile computes an MD5 of a theme source. Theme files are small, so the whole
// content is hashed.
func hashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func statFile(path string) (fileState, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fileState{}, false
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), hash: hashFile(path)}, true
}

// scan walks the root and records every file that passes the filters.
func scan(rootPath string, config configs.HotloadConfig) (stateCache, []string, error) {
	cache := make(stateCache)
	dirs := []string{rootPath}
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == rootPath {
				return nil
			}
			if !config.Recursive || ignoredDir(path, config.IgnorePatterns) {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		}
		if ignoredFile(path, config.Filter, config.IgnorePatterns) {
			return nil
		}
		if st, ok := statFile(path); ok {
			cache[path] = st
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan %s: %w", rootPath, err)
	}
	return cache, dirs, nil
}

func matchAny(patterns []string, path string) bool {
	name := filepath.Base(path)
	slash := filepath.ToSlash(path)
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimPrefix(p, "./"))
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
		if strings.Contains(p, "/") {
			if ok, _ := filepath.Match(p, slash); ok {
				return true
			}
			if prefix, found := strings.CutSuffix(p, "*"); found && strings.Contains(slash, prefix) {
				return true
			}
		}
	}
	return false
}

// ignoredFile reports whether a file is excluded by the ignore patterns or not
// selected by the filters. An empty filter list selects every file.
func ignoredFile(path string, filters, ignorePatterns []string) bool {
	if strings.Contains(filepath.ToSlash(path), ".git/") || matchAny(ignorePatterns, path) {
		return true
	}
	return len(filters) > 0 && !matchAny(filters, path)
}

func ignoredDir(path string, ignorePatterns []string) bool {
	name := filepath.Base(path)
	if name == ".git" || name == "node_modules" {
		return true
	}
	return matchAny(ignorePatterns, path) || matchAny(ignorePatterns, path+"/")
}

// Watch monitors dir (or config.Dir when dir is empty) and calls hook after
// changes settle. It returns when ctx is cancelled.
func Watch(ctx context.Context, config configs.HotloadConfig, dir string, hook Func) error {
	logger := log.GetLogger()
	if !config.Enabled {
		logger.Warn().Msg("hot reload is disabled in configuration")
		return nil
	}
	if dir == "" {
		dir = config.Dir
	}
	if dir == "" {
		dir = "."
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close watcher")
		}
	}()

	cache, dirs, err := scan(dir, config)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}

	debounce := time.Duration(config.Debounce) * time.Millisecond
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	wc := &WatchContext{
		rootPath:         dir,
		watcher:          w,
		config:           config,
		logger:           logger,
		cache:            cache,
		debounceDuration: debounce,
		hook:             hook,
	}
	logger.Info().
		Str("dir", dir).
		Int("files", len(cache)).
		Dur("debounce", debounce).
		Msg("watching theme sources")

	return runEventLoop(ctx, wc)
}
