// Package cli implements the uicolors command line: configuration, the
// initial color argument and the headless outputs. Opening the window is
// delegated to a WindowFunc supplied by the binary.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/config"
	"github.com/iOliverNguyen/rustapps/internal/library"
)

// Session is everything the window needs to start.
type Session struct {
	Config  *config.Config
	Color   colorval.Color
	Library *library.Library
	Seed    int64
}

// WindowFunc opens the interactive window and blocks until it closes.
type WindowFunc func(ctx context.Context, s Session) error

type flags struct {
	configFile string
	print      bool
	snapshot   string
	search     string
	favorites  bool
}

// NewRootCommand returns the root command. run is called when no headless
// output was requested.
func NewRootCommand(run WindowFunc) *cobra.Command {
	var f flags
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "uicolors [color]",
		Short: "Pick colors and derive tonal palettes",
		Long: `uicolors edits a color with hue, saturation and lightness sliders and
derives an 11-shade tonal palette from it.

The optional argument sets the initial color, either as "#rrggbb" or as
an HSL triple "h,s,l". Without it a random color is picked.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(v, f.configFile, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case f.print:
				_, err := fmt.Fprintln(out, RenderRamp(s.Color, float32(s.Config.Palette.HueShift)))
				return err
			case f.search != "":
				_, err := fmt.Fprint(out, RenderItems(s.Library.Search(f.search)))
				return err
			case f.favorites:
				_, err := fmt.Fprint(out, RenderItems(s.Library.Favorites()))
				return err
			case f.snapshot != "":
				if err := WriteSnapshot(f.snapshot, s); err != nil {
					return err
				}
				_, err := fmt.Fprintf(out, "wrote %s\n", f.snapshot)
				return err
			}
			return run(cmd.Context(), s)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configFile, "config", "", "config file (default: .uicolors.yaml)")
	fs.String("library", "", "color library JSON file (default: built-in library)")
	fs.Bool("watch", false, "reload the library file when it changes")
	fs.Int64("seed", 0, "random seed (default: time-based)")
	fs.Float64("hue-shift", 0, "hue shift applied across the tonal palette")
	fs.BoolVar(&f.print, "print", false, "print the tonal palette and exit")
	fs.StringVar(&f.snapshot, "snapshot", "", "render the panel into a PNG file and exit")
	fs.StringVar(&f.search, "search", "", "print library colors matching a fuzzy query and exit")
	fs.BoolVar(&f.favorites, "favorites", false, "print favorite library colors and exit")

	// Bind flags to viper (errors are nil when flag exists)
	_ = v.BindPFlag("library.path", fs.Lookup("library"))
	_ = v.BindPFlag("library.watch", fs.Lookup("watch"))
	_ = v.BindPFlag("seed", fs.Lookup("seed"))
	_ = v.BindPFlag("palette.hue_shift", fs.Lookup("hue-shift"))

	return cmd
}

func newSession(v *viper.Viper, configFile string, args []string) (Session, error) {
	cfg, err := config.NewLoaderWithViper(v).WithConfigFile(configFile).Load()
	if err != nil {
		return Session{}, err
	}

	lib := library.Default()
	if cfg.Library.Path != "" {
		if lib, err = library.Load(cfg.Library.Path); err != nil {
			return Session{}, fmt.Errorf("loading library: %w", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c, err := InitialColor(args, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Session{}, err
	}

	return Session{Config: cfg, Color: c, Library: lib, Seed: seed}, nil
}

// InitialColor parses the optional color argument, picking a random HSL
// color when there is none.
func InitialColor(args []string, rng *rand.Rand) (colorval.Color, error) {
	if len(args) == 0 {
		return colorval.RandomHSL(rng), nil
	}
	c, err := colorval.Parse(args[0])
	if err != nil {
		return colorval.Color{}, fmt.Errorf("initial color: %w", err)
	}
	return c, nil
}
