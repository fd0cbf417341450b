package theme

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/pexeso/internal/game"
)

// Theme is the full set of colours for one frame.
type Theme struct {
	Name       string
	Background color.Color
	Cards      game.Palette
	HUD        color.Color
	Banner     color.Color
}

// Classic matches the original look: green cards with a white outline on black.
var Classic = Theme{
	Name:       "Classic",
	Background: color.Black,
	Cards: game.Palette{
		CardFace:    rgb(0, 255, 0),
		CardOutline: color.White,
		Label:       color.Black,
		Matched:     rgb(0, 255, 0),
	},
	HUD:    color.White,
	Banner: rgb(0, 255, 0),
}

var Dark = Theme{
	Name:       "Dark",
	Background: rgb(34, 36, 42),
	Cards: game.Palette{
		CardFace:    rgb(62, 66, 78),
		CardOutline: rgb(120, 125, 140),
		Label:       rgb(242, 242, 245),
		Matched:     rgb(46, 90, 60),
	},
	HUD:    rgb(215, 215, 225),
	Banner: rgb(107, 199, 255),
}

// Builtin returns the themes that are always available, Classic first.
func Builtin() []Theme {
	return []Theme{Classic, Dark}
}

// Load returns the built-in themes followed by those in the YAML file at
// path. An empty path yields only the built-ins. Colours left out of a file
// theme are taken from Classic.
func Load(path string) ([]Theme, error) {
	themes := Builtin()
	if path == "" {
		return themes, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("theme: decode %s: %w", path, err)
	}

	for i, yt := range dto.Themes {
		t, err := mapTheme(yt)
		if err != nil {
			return nil, fmt.Errorf("theme: %s: themes[%d]: %w", path, i, err)
		}
		themes = append(themes, t)
	}
	return themes, nil
}

func mapTheme(yt YAMLTheme) (Theme, error) {
	name := strings.TrimSpace(yt.Name)
	if name == "" {
		return Theme{}, fmt.Errorf("name is required")
	}

	t := Classic
	t.Name = name
	for _, f := range []struct {
		field string
		raw   string
		dst   *color.Color
	}{
		{"background", yt.Background, &t.Background},
		{"card", yt.Card, &t.Cards.CardFace},
		{"outline", yt.Outline, &t.Cards.CardOutline},
		{"label", yt.Label, &t.Cards.Label},
		{"matched", yt.Matched, &t.Cards.Matched},
		{"hud", yt.HUD, &t.HUD},
		{"banner", yt.Banner, &t.Banner},
	} {
		if f.raw == "" {
			continue
		}
		c, err := ParseHex(f.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.field, err)
		}
		*f.dst = c
	}
	return t, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.Color, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(h) != 6 && len(h) != 8) {
		return nil, fmt.Errorf("invalid colour %q, want #rrggbb or #rrggbbaa", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
