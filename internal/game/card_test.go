package game

import (
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// recordingSurface captures draw calls so rendering can be asserted on.
type recordingSurface struct {
	fills   int
	strokes int
	texts   []string
}

func (r *recordingSurface) FillRect(_, _, _, _ float64, _ color.Color)      { r.fills++ }
func (r *recordingSurface) StrokeRect(_, _, _, _, _ float64, _ color.Color) { r.strokes++ }
func (r *recordingSurface) Text(s string, _ font.Face, _, _ int, _ color.Color) {
	r.texts = append(r.texts, s)
}

var testPalette = Palette{
	CardFace:    color.RGBA{0, 255, 0, 255},
	CardOutline: color.White,
	Label:       color.Black,
	Matched:     color.RGBA{0, 128, 0, 255},
}

func TestCardContains(t *testing.T) {
	c := NewCard(50, 50, 1)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{50, 50}, true},
		{Point{100, 100}, true},
		{Point{149.9, 149.9}, true},
		{Point{150, 100}, false},
		{Point{100, 150}, false},
		{Point{49.9, 100}, false},
		{Point{0, 0}, false},
	}
	for _, tc := range cases {
		if got := c.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCardToggle(t *testing.T) {
	c := NewCard(0, 0, 4)
	if c.Visible() {
		t.Fatal("new card should be hidden")
	}
	c.Toggle()
	if !c.Visible() {
		t.Fatal("expected revealed after toggle")
	}
	c.Toggle()
	if c.Visible() {
		t.Fatal("expected hidden after second toggle")
	}
}

func TestCardMatchedIsInert(t *testing.T) {
	c := NewCard(0, 0, 4)
	c.Toggle()
	c.SetMatched()
	c.SetMatched()
	c.Toggle()
	if !c.Visible() || !c.Matched() {
		t.Fatalf("matched card changed: visible=%v matched=%v", c.Visible(), c.Matched())
	}
}

func TestCardValueEquals(t *testing.T) {
	a, b, other := NewCard(0, 0, 3), NewCard(120, 0, 3), NewCard(240, 0, 5)
	if !a.ValueEquals(b) {
		t.Error("cards with equal values should compare equal")
	}
	if a.ValueEquals(other) {
		t.Error("cards with different values should not compare equal")
	}
}

func TestCardRenderLabelOnlyWhenVisible(t *testing.T) {
	face := basicfont.Face7x13

	hidden := NewCard(0, 0, 7)
	var s recordingSurface
	hidden.Render(&s, face, testPalette)
	if s.strokes != 1 || s.fills != 1 {
		t.Fatalf("expected one fill and one outline, got fills=%d strokes=%d", s.fills, s.strokes)
	}
	if len(s.texts) != 0 {
		t.Fatalf("hidden card drew label %v", s.texts)
	}

	shown := NewCard(0, 0, 7)
	shown.Toggle()
	s = recordingSurface{}
	shown.Render(&s, face, testPalette)
	if len(s.texts) != 1 || s.texts[0] != "7" {
		t.Fatalf("revealed card labels = %v, want [7]", s.texts)
	}

	matched := NewCard(0, 0, 2)
	matched.Toggle()
	matched.SetMatched()
	s = recordingSurface{}
	matched.Render(&s, face, testPalette)
	if len(s.texts) != 1 || s.texts[0] != "2" {
		t.Fatalf("matched card labels = %v, want [2]", s.texts)
	}
}
