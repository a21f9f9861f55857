package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/vivid/pkg/configs"
	"github.com/yeisme/vivid/pkg/theme"
)

func TestBuildBuiltin(t *testing.T) {
	out := t.TempDir()
	arts, err := Build(context.Background(), Options{OutputDir: out})
	require.NoError(t, err)
	require.Len(t, arts, 2)

	for _, a := range arts {
		assert.Equal(t, "builtin", a.Source)
		assert.Empty(t, a.Warnings)
		got, err := theme.LoadFile(a.Path)
		require.NoError(t, err)
		assert.True(t, got.Equal(theme.MustBuiltin(a.Variant)), a.Path)
	}
	assert.FileExists(t, filepath.Join(out, "vivid-dark-color-theme.json"))
	assert.FileExists(t, filepath.Join(out, "vivid-light-color-theme.json"))

	// no temp files left behind
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestBuildFormatsAndVariants(t *testing.T) {
	out := t.TempDir()
	arts, err := Build(context.Background(), Options{
		OutputDir: out,
		Format:    theme.FormatTOML,
		Variants:  []theme.Variant{theme.Light},
	})
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, filepath.Join(out, "vivid-light-color-theme.toml"), arts[0].Path)
	got, err := theme.LoadFile(arts[0].Path)
	require.NoError(t, err)
	assert.True(t, got.Equal(theme.MustBuiltin(theme.Light)))
}

func TestBuildFromSourceDir(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	dark := theme.MustBuiltin(theme.Dark)
	dark.Colors["editor.selectionBackground"] = "#3B0764"
	require.NoError(t, theme.WriteFile(filepath.Join(src, "dark.yaml"), dark))

	arts, err := Build(context.Background(), Options{SourceDir: src, OutputDir: out})
	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.Equal(t, filepath.Join(src, "dark.yaml"), arts[0].Source)

	got, err := theme.LoadFile(arts[0].Path)
	require.NoError(t, err)
	assert.Equal(t, "#3B0764", got.Colors["editor.selectionBackground"])
}

func TestBuildRejectsInvalid(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "themes")
	bad := theme.MustBuiltin(theme.Dark)
	bad.Colors["editor.foreground"] = "#GGG"
	require.NoError(t, theme.WriteFile(filepath.Join(src, "dark.json"), bad))

	_, err := Build(context.Background(), Options{SourceDir: src, OutputDir: out})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoDirExists(t, out)
}

func TestBuildStrictWarnings(t *testing.T) {
	src := t.TempDir()
	light := theme.MustBuiltin(theme.Light)
	light.Colors["editor.backgroud"] = "#FFFFFF"
	require.NoError(t, theme.WriteFile(filepath.Join(src, "light.json"), light))

	arts, err := Build(context.Background(), Options{SourceDir: src, OutputDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.NotEmpty(t, arts[1].Warnings)

	_, err = Build(context.Background(), Options{SourceDir: src, OutputDir: t.TempDir(), Strict: true})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, Options{OutputDir: t.TempDir()})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(configs.ThemeConfig{OutputDir: "dist", Format: "yml", MinContrast: 4.5, Strict: true})
	assert.Equal(t, theme.FormatYAML, opts.Format)
	assert.Equal(t, 4.5, opts.Validate.MinContrast)
	assert.True(t, opts.Strict)
}

func TestWatchRebuilds(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	dark := theme.MustBuiltin(theme.Dark)
	require.NoError(t, theme.WriteFile(filepath.Join(src, "dark.yaml"), dark))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu     sync.Mutex
		builds int
	)
	rebuilt := make(chan struct{}, 8)
	done := make(chan error, 1)
	hc := configs.HotloadConfig{Filter: []string{"*.yaml"}, Debounce: 50}
	go func() {
		done <- Watch(ctx, hc, Options{SourceDir: src, OutputDir: out}, func(_ []Artifact, err error) {
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("build error: %v", err)
			}
			mu.Lock()
			builds++
			mu.Unlock()
			rebuilt <- struct{}{}
		})
	}()

	// initial build
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("initial build did not run")
	}

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	color := 0
loop:
	for {
		select {
		case <-rebuilt:
			break loop
		case <-tick.C:
			color++
			dark.Colors["editor.selectionBackground"] = []string{"#3B0764", "#4C1D95", "#581C87"}[color%3]
			require.NoError(t, theme.WriteFile(filepath.Join(src, "dark.yaml"), dark))
		case <-deadline:
			t.Fatal("no rebuild after source change")
		}
	}
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, builds, 2)

	got, err := theme.LoadFile(filepath.Join(out, "vivid-dark-color-theme.json"))
	require.NoError(t, err)
	assert.True(t, theme.IsHexColor(got.Colors["editor.selectionBackground"]))
}

func TestWatchNeedsSourceDir(t *testing.T) {
	err := Watch(context.Background(), configs.HotloadConfig{}, Options{}, nil)
	assert.Error(t, err)
}
