package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iOliverNguyen/rustapps/internal/app"
	"github.com/iOliverNguyen/rustapps/internal/canvas"
	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/library"
	"github.com/iOliverNguyen/rustapps/internal/palette"
	"github.com/iOliverNguyen/rustapps/internal/panel"
)

// snapshotMargin surrounds the panel in snapshots, in layout units.
const snapshotMargin = 16

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	swatchStyle = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
)

// swatch renders label on a background of c with a readable foreground.
func swatch(c colorval.Hsla, label string) string {
	fg := lipgloss.Color("#000000")
	if c.L < 0.55 {
		fg = lipgloss.Color("#ffffff")
	}
	return swatchStyle.
		Background(lipgloss.Color(c.ToRGB().String())).
		Foreground(fg).
		Render(label)
}

// RenderRamp renders the tonal palette of c: a strip of swatches followed by
// one line per stop.
func RenderRamp(c colorval.Color, hueShift float32) string {
	p := palette.From(c.Hsla()).WithHueShift(hueShift)
	colors := p.Colors()

	h, s, l := c.HSL()
	readout := panel.Readout{Hex: c.ToRGB().String(), H: h, S: s, L: l}

	var strip []string
	for i, stop := range palette.Stops {
		strip = append(strip, swatch(colors[i], fmt.Sprint(stop)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(readout.String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strip...))
	b.WriteString("\n")
	for i, stop := range palette.Stops {
		rgb := colors[i].ToRGB()
		hsl := colors[i].ToHSL()
		line := fmt.Sprintf("%4d  %s  %s", stop, rgb, hsl)
		if stop == panel.AccentStop {
			line += mutedStyle.Render("  accent")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderItems renders library items one per line, favorites marked with a
// star.
func RenderItems(items []library.Item) string {
	if len(items) == 0 {
		return mutedStyle.Render("no colors") + "\n"
	}
	var b strings.Builder
	for _, it := range items {
		mark := " "
		if it.Favorite {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s %-10s %s\n",
			swatch(it.Color.Hsla(), ""), mark, it.Color.ToRGB(), it.Label())
	}
	return b.String()
}

// WriteSnapshot renders the panel for s offscreen and saves it as a PNG.
func WriteSnapshot(path string, s Session) error {
	a := app.New(s.Config, s.Color, s.Library, s.Seed)
	defer a.Close()

	w, h := a.Panel.Size()
	a.Resize(w+2*snapshotMargin, h+2*snapshotMargin, 1)

	fw, fh := a.View.FramebufferSize()
	c := canvas.New(fw, fh, a.View.Scale)
	a.Paint(c)
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
