// internal/assets/fonts.go
//
// Font loading for the game window.
//
// Load order:
//   1. If a path is given (PEXESO_FONT), read that TrueType/OpenType file.
//   2. Otherwise use the bundled Go Regular font.
//
// Faces are built once at startup and shared by every draw call.
// A missing or unparsable font is a fatal startup condition for the caller.

package assets

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Point sizes of the faces the game draws with.
const (
	LabelSize  = 32
	BannerSize = 48
	HUDSize    = 18

	dpi = 72
)

// BundledSource is reported as the font source when no path is configured.
const BundledSource = "bundled:goregular"

// ErrNoFont is returned when the font file exists but is empty.
var ErrNoFont = errors.New("assets: font file is empty")

// Fonts is the set of faces created from one font file.
type Fonts struct {
	Source string    // file path or BundledSource
	Label  font.Face // card values
	Banner font.Face // win text
	HUD    font.Face // score overlay
}

// LoadFonts parses the font at path, or the bundled font when path is empty.
func LoadFonts(path string) (*Fonts, error) {
	data, source := goregular.TTF, BundledSource
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: read font %s: %w", path, err)
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFont, path)
		}
		data, source = b, path
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: parse font %s: %w", source, err)
	}

	fonts := &Fonts{Source: source}
	for _, f := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.Label, LabelSize},
		{&fonts.Banner, BannerSize},
		{&fonts.HUD, HUDSize},
	} {
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			_ = fonts.Close()
			return nil, fmt.Errorf("assets: face %.0fpt from %s: %w", f.size, source, err)
		}
		*f.dst = face
	}
	return fonts, nil
}

// Close releases every face. It is safe to call on a partially built set.
func (f *Fonts) Close() error {
	var errs []error
	for _, face := range []font.Face{f.Label, f.Banner, f.HUD} {
		if face != nil {
			errs = append(errs, face.Close())
		}
	}
	return errors.Join(errs...)
}
