package colorval

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr error
	}{
		{"hex lower", "#ee00ff", RGB(238, 0, 255), nil},
		{"hex upper", "#EE00FF", RGB(238, 0, 255), nil},
		{"hex mixed", "#1A2b3C", RGB(26, 43, 60), nil},
		{"hex surrounding space", "  #000000 ", RGB(0, 0, 0), nil},
		{"hsl", "200,50,50", HSL(200, 50, 50), nil},
		{"hsl spaces", " 12 , 3 ,4 ", HSL(12, 3, 4), nil},
		{"hsl out of range", "400,120,120", HSL(40, 100, 100), nil},
		{"hsl negative hue", "-30,50,50", HSL(330, 50, 50), nil},
		{"hsl negative saturation", "10,-5,50", HSL(10, 0, 50), nil},
		{"hex short form", "#abc", Color{}, ErrHexLength},
		{"hex too long", "#aabbccdd", Color{}, ErrHexLength},
		{"hex bare hash", "#", Color{}, ErrHexLength},
		{"hex bad digit", "#gg0000", Color{}, ErrNotNumeric},
		{"hex signed", "#+10000", Color{}, ErrNotNumeric},
		{"hsl two fields", "1,2", Color{}, ErrFieldCount},
		{"hsl four fields", "1,2,3,4", Color{}, ErrFieldCount},
		{"empty", "", Color{}, ErrFieldCount},
		{"hsl word", "a,b,c", Color{}, ErrNotNumeric},
		{"hsl decimal", "1.5,2,3", Color{}, ErrNotNumeric},
		{"hsl empty field", "1,,3", Color{}, ErrNotNumeric},
		{"hsl overflow", "99999999999999999999,1,1", Color{}, ErrNotNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				var pe *ParseError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, tt.input, pe.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "#ee00ff", RGB(238, 0, 255).String())
	assert.Equal(t, "#000000", Color{}.String())
	assert.Equal(t, "200,50,5", HSL(200, 50, 5).String())
	assert.Equal(t, "0,0,0", HSL(360, 0, 0).String())
}

func TestCanonicalize(t *testing.T) {
	raw := Color{format: FormatHSL, a: 400, b: 120, c: 120}
	once := raw.Canonical()
	assert.Equal(t, HSL(40, 100, 100), once)
	assert.Equal(t, once, once.Canonical())
	// The raw value is untouched.
	assert.Equal(t, Color{format: FormatHSL, a: 400, b: 120, c: 120}, raw)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := Color{
			format: Format(rng.Intn(2)),
			a:      rng.Intn(4000) - 2000,
			b:      rng.Intn(800) - 400,
			c:      rng.Intn(800) - 400,
		}
		once := c.Canonical()
		require.Equal(t, once, once.Canonical(), "input %+v", c)
		require.Equal(t, c.format, once.format)
	}

	assert.Equal(t, RGB(255, 0, 128), RGB(300, -4, 128))
}

func TestParseFormatInverse(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 5 {
				c := RGB(r, g, b)
				got, err := Parse(c.String())
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	}
	for h := 0; h < 360; h++ {
		for s := 0; s <= 100; s += 9 {
			for l := 0; l <= 100; l += 11 {
				c := HSL(h, s, l)
				got, err := Parse(c.String())
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	}
}

func TestConversionIdempotent(t *testing.T) {
	c := RGB(10, 20, 30)
	assert.Equal(t, c, c.ToRGB())
	h := HSL(10, 20, 30)
	assert.Equal(t, h, h.ToHSL())
	assert.Equal(t, c.ToHSL(), c.ToHSL().ToHSL())
}

func TestKnownConversions(t *testing.T) {
	tests := []struct {
		rgb Color
		hsl Color
	}{
		{RGB(255, 0, 0), HSL(0, 100, 50)},
		{RGB(0, 255, 0), HSL(120, 100, 50)},
		{RGB(0, 0, 255), HSL(240, 100, 50)},
		{RGB(255, 255, 255), HSL(0, 0, 100)},
		{RGB(0, 0, 0), HSL(0, 0, 0)},
		{RGB(128, 128, 128), HSL(0, 0, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.rgb.String(), func(t *testing.T) {
			assert.Equal(t, tt.hsl, tt.rgb.ToHSL())
			assert.Equal(t, tt.rgb, tt.hsl.ToRGB())
		})
	}
}

// RGB sourced values lose precision in integer percent HSL; one percent of
// lightness alone spans ~2.5 bytes.
const rgbRoundTripTolerance = 5

func TestRGBRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				c := RGB(r, g, b)
				r2, g2, b2 := c.ToHSL().RGB()
				require.LessOrEqual(t, absInt(int(r2)-r), rgbRoundTripTolerance, "%s", c)
				require.LessOrEqual(t, absInt(int(g2)-g), rgbRoundTripTolerance, "%s", c)
				require.LessOrEqual(t, absInt(int(b2)-b), rgbRoundTripTolerance, "%s", c)
			}
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	// Lightness survives the trip exactly for every input.
	for h := 0; h < 360; h += 7 {
		for s := 0; s <= 100; s++ {
			for l := 0; l <= 100; l++ {
				_, _, l2 := HSL(h, s, l).ToRGB().HSL()
				require.Equal(t, l, l2, "hsl(%d,%d,%d)", h, s, l)
			}
		}
	}

	// Hue and saturation are within one unit wherever they are well defined.
	for h := 0; h < 360; h++ {
		for s := 40; s <= 100; s += 3 {
			for l := 20; l <= 80; l += 3 {
				h2, s2, _ := HSL(h, s, l).ToRGB().HSL()
				dh := absInt(h2 - h)
				if dh > 180 {
					dh = 360 - dh
				}
				require.LessOrEqual(t, dh, 1, "hsl(%d,%d,%d)", h, s, l)
				require.LessOrEqual(t, absInt(s2-s), 1, "hsl(%d,%d,%d)", h, s, l)
			}
		}
	}
}

func TestEqualPerVariant(t *testing.T) {
	red := RGB(255, 0, 0)
	assert.False(t, red.Equal(HSL(0, 100, 50)))
	assert.True(t, red.Equal(HSL(0, 100, 50).ToRGB()))
	assert.True(t, red.ToHSL().Equal(HSL(0, 100, 50)))
}

func TestWithChannel(t *testing.T) {
	base := HSL(200, 50, 50)

	c := base.WithSaturation(0.243)
	assert.Equal(t, HSL(200, 24, 50), c)

	assert.Equal(t, HSL(90, 50, 50), base.WithHue(0.25))
	assert.Equal(t, HSL(0, 50, 50), base.WithHue(1))
	assert.Equal(t, HSL(200, 50, 100), base.WithLightness(1.7))
	assert.Equal(t, HSL(200, 50, 0), base.WithLightness(-1))

	// RGB colors are converted to HSL before the channel is replaced.
	got := RGB(255, 0, 0).WithLightness(0.25)
	assert.Equal(t, FormatHSL, got.Format())
	assert.Equal(t, HSL(0, 100, 25), got)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		c := RandomHSL(rng)
		assert.Equal(t, FormatHSL, c.Format())
		assert.Equal(t, c, c.Canonical())
		h, _, _ := c.Channels()
		assert.Less(t, h, 360)

		c = RandomRGB(rng)
		assert.Equal(t, FormatRGB, c.Format())
		assert.Equal(t, c, c.Canonical())
	}
}

func TestHsla(t *testing.T) {
	h := HSL(180, 50, 25).Hsla()
	assert.InDelta(t, 0.5, h.H, 1e-6)
	assert.InDelta(t, 0.5, h.S, 1e-6)
	assert.InDelta(t, 0.25, h.L, 1e-6)
	assert.Equal(t, float32(1), h.A)

	assert.Equal(t, HSL(0, 100, 50), Hsla{H: 1.0, S: 1, L: 0.5, A: 1}.ToHSL())
	assert.Equal(t, HSL(324, 100, 50), Hsla{H: -0.1, S: 1, L: 0.5, A: 1}.ToHSL())
	assert.Equal(t, RGB(255, 0, 0).RGBA(), Hsla{H: 0, S: 1, L: 0.5, A: 1}.RGBA())
}

func TestWrapUnit(t *testing.T) {
	assert.Equal(t, float32(0), WrapUnit(0))
	assert.Equal(t, float32(0), WrapUnit(1))
	assert.InDelta(t, 0.25, WrapUnit(1.25), 1e-6)
	assert.InDelta(t, 0.75, WrapUnit(-0.25), 1e-6)
	assert.Equal(t, float32(0), WrapUnit(-1e-9))
}

func TestTextMarshaling(t *testing.T) {
	b, err := HSL(1, 2, 3).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", string(b))

	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#0a0b0c")))
	assert.Equal(t, RGB(10, 11, 12), c)
	assert.Error(t, c.UnmarshalText([]byte("nope")))
	assert.Equal(t, RGB(10, 11, 12), c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
