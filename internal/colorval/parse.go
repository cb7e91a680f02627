package colorval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrHexLength is returned for "#..." input without exactly six hex digits.
	ErrHexLength = errors.New("hex color must have exactly 6 digits")
	// ErrNotNumeric is returned when a hex pair or an HSL field is not a number.
	ErrNotNumeric = errors.New("non-numeric color field")
	// ErrFieldCount is returned when HSL input does not have exactly 3 fields.
	ErrFieldCount = errors.New("hsl color must have exactly 3 comma-separated fields")
)

// ParseError describes malformed color text.
type ParseError struct {
	Input string
	Err   error // one of ErrHexLength, ErrNotNumeric, ErrFieldCount
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads "#rrggbb" (hex, case-insensitive) as RGB and "h,s,l" (three
// comma-separated integers) as HSL. Numerically valid but out-of-range input
// is canonicalized, not rejected.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return Color{}, &ParseError{Input: text, Err: ErrHexLength}
		}
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, &ParseError{Input: text, Err: ErrNotNumeric}
		}
		r, g, b := cf.RGB255()
		return RGB(int(r), int(g), int(b)), nil
	}

	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Color{}, &ParseError{Input: text, Err: ErrFieldCount}
	}
	var v [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Color{}, &ParseError{Input: text, Err: ErrNotNumeric}
		}
		v[i] = n
	}
	return HSL(v[0], v[1], v[2]), nil
}

// String formats RGB colors as lower-case "#rrggbb" and HSL colors as
// "h,s,l".
func (c Color) String() string {
	c = c.Canonical()
	switch c.format {
	case FormatHSL:
		return fmt.Sprintf("%d,%d,%d", c.a, c.b, c.c)
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.a, c.b, c.c)
	}
}

// MarshalText implements encoding.TextMarshaler using String.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
