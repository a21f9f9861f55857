package cmd

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"
	"github.com/yeisme/vivid/pkg/configs"
	vcontext "github.com/yeisme/vivid/pkg/context"
	"github.com/yeisme/vivid/pkg/theme"
)

func TestExpandFixtures(t *testing.T) {
	glob := filepath.Join("..", "pkg", "highlight", "testdata", "sample.*")
	got, err := expandFixtures(nil, []string{glob, glob})
	if err != nil {
		t.Fatalf("expandFixtures() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d files, want 3 (duplicates removed): %v", len(got), got)
	}

	if _, err := expandFixtures(nil, nil); err == nil {
		t.Error("expected error without patterns")
	}
	if _, err := expandFixtures([]string{filepath.Join(t.TempDir(), "*.go")}, nil); err == nil {
		t.Error("expected error when nothing matches")
	}
}

func TestBuildPalette(t *testing.T) {
	dark := theme.MustBuiltin(theme.Dark)

	p := buildPalette(dark, false, true)
	if len(p.Entries) == 0 {
		t.Fatal("no token entries")
	}
	for _, e := range p.Entries {
		if e.Kind != "token" {
			t.Errorf("unexpected %s entry with --tokens", e.Kind)
		}
		if e.Contrast < 1 || e.Contrast > 21 {
			t.Errorf("%s: contrast %v out of range", e.Name, e.Contrast)
		}
	}

	ui := buildPalette(dark, true, false)
	if len(ui.Entries) != len(dark.Colors) {
		t.Errorf("got %d ui entries, want %d", len(ui.Entries), len(dark.Colors))
	}
}

func TestCandidateScopes(t *testing.T) {
	r := theme.MustResolver(theme.MustBuiltin(theme.Dark))
	got := candidateScopes([]*theme.Resolver{r})
	if !slices.IsSorted(got) {
		t.Error("candidates not sorted")
	}
	for _, want := range []string{"keyword.control", "string.quoted", "comment"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing candidate %q", want)
		}
	}
}

func TestSelectVariantsList(t *testing.T) {
	reg := theme.BuiltinRegistry()
	got, err := selectVariants(reg, "light, dark")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []theme.Variant{theme.Light, theme.Dark}) {
		t.Errorf("selectVariants() = %v", got)
	}
	all, err := selectVariants(reg, "all")
	if err != nil || len(all) != 2 {
		t.Errorf("selectVariants(all) = %v, %v", all, err)
	}
	if _, err := selectVariants(reg, "sepia"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestBuildOptionsFlags(t *testing.T) {
	prev := vividCtx
	t.Cleanup(func() {
		vividCtx = prev
		addBuildFlags(&cobra.Command{}) // restores flag defaults
	})
	vividCtx = &vcontext.VividContext{Config: &configs.Config{Theme: configs.ThemeConfig{
		OutputDir:      "themes",
		Format:         "json",
		DefaultVariant: "dark",
		MinContrast:    3,
	}}}

	c := &cobra.Command{Use: "build"}
	addBuildFlags(c)
	opts, err := buildOptions(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Validate.MinContrast != 3 || opts.Validate.AllowUnknownKeys {
		t.Errorf("default checks = %+v", opts.Validate)
	}

	for name, value := range map[string]string{"no-checks": "true", "theme-format": "toml", "out": "dist"} {
		if err := c.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	opts, err = buildOptions(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Validate.MinContrast != 0 || !opts.Validate.AllowUnknownKeys {
		t.Errorf("--no-checks left checks on: %+v", opts.Validate)
	}
	if opts.Format != theme.FormatTOML || opts.OutputDir != "dist" {
		t.Errorf("opts = %+v", opts)
	}
}
