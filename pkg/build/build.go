// Package build validates the theme variants and writes the theme documents the
// editor loads, once or on every source change.
package build

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/theme"
	"github.com/yeisme/vivid/pkg/utils/hotload"
	"github.com/yeisme/vivid/pkg/utils/log"
)

// ErrValidation is returned when a variant fails validation.
var ErrValidation = errors.New("theme validation failed")

// Options 构建选项
type Options struct {
	// SourceDir overlays theme documents from a directory on the builtin variants.
	SourceDir string
	OutputDir string
	Format    theme.Format
	// Variants restricts the build; empty builds every registered variant.
	Variants []theme.Variant
	Validate theme.ValidateOptions
	// Strict fails the build on warnings too.
	Strict bool
}

// OptionsFromConfig 从主题配置构造构建选项
func OptionsFromConfig(c configs.ThemeConfig) Options {
	return Options{
		SourceDir: c.SourceDir,
		OutputDir: c.OutputDir,
		Format:    c.OutputFormat(),
		Validate:  theme.ValidateOptions{MinContrast: c.MinContrast},
		Strict:    c.Strict,
	}
}

// Artifact is one written theme document.
type Artifact struct {
	Variant  theme.Variant `json:"variant" yaml:"variant" toml:"variant"`
	Name     string        `json:"name" yaml:"name" toml:"name"`
	Source   string        `json:"source" yaml:"source" toml:"source"`
	Path     string        `json:"path" yaml:"path" toml:"path"`
	Bytes    int           `json:"bytes" yaml:"bytes" toml:"bytes"`
	Warnings []theme.Issue `json:"warnings,omitempty" yaml:"warnings,omitempty" toml:"warnings,omitempty"`
}

// FileName returns "<slug>-color-theme<ext>".
func FileName(t *theme.Theme, f theme.Format) string {
	return t.Slug() + "-color-theme" + f.Ext()
}

// Build loads, validates and writes every selected variant. Nothing is written
// when any variant fails validation.
func Build(ctx context.Context, opts Options) ([]Artifact, error) {
	logger := log.GetLogger()
	start := time.Now()

	if opts.Format == "" {
		opts.Format = theme.FormatJSON
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	reg := theme.BuiltinRegistry()
	if opts.SourceDir != "" {
		paths, err := reg.LoadDir(opts.SourceDir)
		if err != nil {
			return nil, err
		}
		logger.Debug().Strs("files", paths).Msg("theme sources loaded")
	}

	variants := opts.Variants
	if len(variants) == 0 {
		variants = reg.Variants()
	}

	type pending struct {
		theme    *theme.Theme
		source   string
		warnings []theme.Issue
	}
	var (
		todo []pending
		errs []error
	)
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := reg.Get(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		report := theme.Validate(t, opts.Validate)
		for _, is := range report.Issues {
			ev := logger.Warn()
			if is.Severity == theme.SeverityError {
				ev = logger.Error()
			}
			ev.Str("theme", t.Name).Str("path", is.Path).Msg(is.Message)
		}
		if err := report.Err(opts.Strict); err != nil {
			errs = append(errs, err)
			continue
		}
		todo = append(todo, pending{theme: t, source: reg.Source(v), warnings: report.Warnings()})
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}

	artifacts := make([]Artifact, 0, len(todo))
	for _, p := range todo {
		data, err := theme.Marshal(p.theme, opts.Format)
		if err != nil {
			return artifacts, fmt.Errorf("%s: %w", p.theme.Name, err)
		}
		path := filepath.Join(opts.OutputDir, FileName(p.theme, opts.Format))
		if err := writeFile(path, data); err != nil {
			return artifacts, err
		}
		a := Artifact{
			Variant:  p.theme.Type,
			Name:     p.theme.Name,
			Source:   p.source,
			Path:     path,
			Bytes:    len(data),
			Warnings: p.warnings,
		}
		logger.Info().
			Str("theme", a.Name).
			Str("path", a.Path).
			Int("bytes", a.Bytes).
			Int("warnings", len(a.Warnings)).
			Msg("theme written")
		artifacts = append(artifacts, a)
	}
	logger.Debug().Dur("took", time.Since(start)).Int("artifacts", len(artifacts)).Msg("build finished")
	return artifacts, nil
}

// Watch builds once, then rebuilds on every change in the source directory until
// ctx is cancelled. onBuild receives the result of each build.
func Watch(ctx context.Context, hc configs.HotloadConfig, opts Options, onBuild func([]Artifact, error)) error {
	if opts.SourceDir == "" {
		return errors.New("watch requires a theme source directory")
	}
	if onBuild == nil {
		onBuild = func([]Artifact, error) {}
	}
	hc.Enabled = true

	onBuild(Build(ctx, opts))
	return hotload.Watch(ctx, hc, opts.SourceDir, func() {
		onBuild(Build(ctx, opts))
	})
}
