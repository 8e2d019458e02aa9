package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorCyan)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "▶ ok")

	if s.Get(8, 1) != '▶' {
		t.Errorf("centered multibyte text misplaced, row = %q", s.Row(1))
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectColor(NewRect(-3, 8, 5, 5), '#', ColorGreen)

	if c := s.GetCell(0, 9); c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("expected clipped fill at (0, 9), got %+v", c)
	}
	if s.Get(2, 9) != ' ' {
		t.Error("fill should stop at the rect's right edge")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("colour should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(99), ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.want)
		}
	}
	if n := len(Colors()); n != int(colorCount) {
		t.Errorf("Colors() has %d entries, expected %d", n, colorCount)
	}
}
