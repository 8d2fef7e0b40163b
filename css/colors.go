// Package css parses the small subset of CSS used by inline style
// attributes: colors and declaration lists.
package css

import (
	"image/color"
	"strconv"
	"strings"
)

// NamedColors maps CSS color names to their RGBA values.
var NamedColors = map[string]color.RGBA{
	// Basic colors
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"silver":  {R: 192, G: 192, B: 192, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"maroon":  {R: 128, G: 0, B: 0, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"fuchsia": {R: 255, G: 0, B: 255, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"lime":    {R: 0, G: 255, B: 0, A: 255},
	"olive":   {R: 128, G: 128, B: 0, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"navy":    {R: 0, G: 0, B: 128, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"teal":    {R: 0, G: 128, B: 128, A: 255},
	"aqua":    {R: 0, G: 255, B: 255, A: 255},

	// Extended colors offered by the editor palette
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"brown":     {R: 165, G: 42, B: 42, A: 255},
	"pink":      {R: 255, G: 192, B: 203, A: 255},
	"gold":      {R: 255, G: 215, B: 0, A: 255},
	"crimson":   {R: 220, G: 20, B: 60, A: 255},
	"darkgreen": {R: 0, G: 100, B: 0, A: 255},
	"darkblue":  {R: 0, G: 0, B: 139, A: 255},
	"darkred":   {R: 139, G: 0, B: 0, A: 255},
	"lightgray": {R: 211, G: 211, B: 211, A: 255},
	"lightgrey": {R: 211, G: 211, B: 211, A: 255},
	"cyan":      {R: 0, G: 255, B: 255, A: 255},
	"magenta":   {R: 255, G: 0, B: 255, A: 255},

	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// PaletteNames lists the named colors in the order the editor offers them.
var PaletteNames = []string{
	"black", "gray", "silver", "white", "red", "crimson", "darkred", "orange",
	"gold", "yellow", "olive", "lime", "green", "darkgreen", "teal", "aqua",
	"blue", "navy", "darkblue", "purple", "fuchsia", "pink", "brown",
}

// ParseColor parses a CSS color: a name, #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(r, g, b) or rgba(r, g, b, a).
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Try named colors first
	if c, ok := NamedColors[s]; ok {
		return c, true
	}

	if strings.HasPrefix(s, "#") {
		return parseHashColor(s[1:])
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunction(s)
	}

	return color.RGBA{}, false
}

func parseHashColor(hex string) (color.RGBA, bool) {
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.RGBA{}, false
		}
		digits[i] = d
	}
	switch len(digits) {
	case 3, 4:
		c := color.RGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
		return c, true
	case 6, 8:
		c := color.RGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, true
	}
	return color.RGBA{}, false
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

// parseRGBFunction parses rgb() and rgba() with comma or space separated
// arguments. Channels may be integers or percentages; alpha is a number in
// [0, 1] or a percentage.
func parseRGBFunction(s string) (color.RGBA, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return color.RGBA{}, false
	}
	args := strings.FieldsFunc(s[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(args[i], 255)
		if !ok {
			return color.RGBA{}, false
		}
		channels[i] = v
	}
	c := color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}
	if len(args) == 4 {
		a, ok := parseChannel(args[3], 1)
		if !ok {
			return color.RGBA{}, false
		}
		c.A = a
	}
	return c, true
}

// parseChannel parses a number in [0, scale] or a percentage and maps it
// onto [0, 255].
func parseChannel(s string, scale float64) (uint8, bool) {
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f = f / 100 * 255
	} else {
		f = f / scale * 255
	}
	f = max(0, min(255, f))
	return uint8(f + 0.5), true
}

// ColorToString converts a color to a CSS hex string.
func ColorToString(c color.RGBA) string {
	if c.A == 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}
