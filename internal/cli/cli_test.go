package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
)

// execute runs the root command with args and returns its output and the
// session handed to the window, if any.
func execute(t *testing.T, args ...string) (string, *Session, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var got *Session
	cmd := NewRootCommand(func(_ context.Context, s Session) error {
		got = &s
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), got, err
}

func TestInitialColor(t *testing.T) {
	c, err := InitialColor([]string{"#FF0000"}, nil)
	require.NoError(t, err)
	assert.Equal(t, colorval.RGB(255, 0, 0), c)

	a, err := InitialColor(nil, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	b, _ := InitialColor(nil, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
	assert.Equal(t, colorval.FormatHSL, a.Format())

	_, err = InitialColor([]string{"#12"}, nil)
	var perr *colorval.ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, colorval.ErrHexLength)
}

func TestRunOpensWindow(t *testing.T) {
	_, s, err := execute(t, "--seed", "42", "--hue-shift", "0.1", "#4095bf")
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, colorval.RGB(0x40, 0x95, 0xbf), s.Color)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, 0.1, s.Config.Palette.HueShift)
	assert.Equal(t, 19, s.Library.Len())
}

func TestRunWithoutColorIsSeeded(t *testing.T) {
	_, a, err := execute(t, "--seed", "7")
	require.NoError(t, err)
	_, b, err := execute(t, "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a.Color, b.Color)
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"bad color", []string{"not-a-color"}, "initial color"},
		{"too many args", []string{"#000000", "#ffffff"}, "accepts at most 1 arg"},
		{"missing library", []string{"--library", "/nonexistent/colors.json"}, "loading library"},
		{"missing config", []string{"--config", "/nonexistent/uicolors.yaml"}, "reading config"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, s, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Nil(t, s)
		})
	}
}

func TestPrint(t *testing.T) {
	out, s, err := execute(t, "--print", "200,50,50")
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.Contains(t, out, "#4095bf  hsl(200, 50%, 50%)")
	for _, stop := range []string{"  50  ", " 500  ", " 950  "} {
		assert.Contains(t, out, stop)
	}
	assert.Contains(t, out, "accent")
}

func TestRenderRamp(t *testing.T) {
	out := RenderRamp(colorval.HSL(0, 100, 50), 0)
	// Stop 500 of a pure red ramp is pure red.
	assert.Contains(t, out, " 500  #ff0000  0,100,50")
}

func TestSearch(t *testing.T) {
	out, _, err := execute(t, "--search", "emr", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Emerald")
	assert.Contains(t, out, "#10b981")

	out, _, err = execute(t, "--search", "zzzz", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "no colors")
}

func TestFavorites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"color": "#112233", "name": "Ink", "favorite": true},
		{"color": "#445566", "name": "Slate"}
	]`), 0o600))

	out, _, err := execute(t, "--library", path, "--favorites", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "* #112233")
	assert.Contains(t, out, "Ink")
	assert.NotContains(t, out, "Slate")
}

func TestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.png")
	out, s, err := execute(t, "--snapshot", path, "#4095bf")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Contains(t, out, "wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// Default panel (300x210) plus a margin on every side.
	assert.Equal(t, 300+2*snapshotMargin, img.Bounds().Dx())
	assert.Equal(t, 210+2*snapshotMargin, img.Bounds().Dy())

	r, g, b, _ := img.At(snapshotMargin+10, snapshotMargin+10).RGBA()
	assert.Equal(t, [3]uint32{0x40, 0x95, 0xbf}, [3]uint32{r >> 8, g >> 8, b >> 8})
}
