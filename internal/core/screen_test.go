package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("dimensions = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	// All cells should be blank spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '●')
	if s.Get(3, 2) != '●' {
		t.Errorf("Get(3, 2) = %q, expected '●'", s.Get(3, 2))
	}

	s.SetColored(4, 2, '=', ColorCyan)
	cell := s.GetCell(4, 2)
	if cell.Rune != '=' || cell.Color != ColorCyan {
		t.Errorf("GetCell(4, 2) = %+v, expected '=' in cyan", cell)
	}

	// Out-of-bounds writes are silently ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds reads return a blank
	if s.Get(-1, 0) != ' ' || s.Get(99, 99) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "Score: 40", ColorDefault)
	if !strings.Contains(s.Row(1), "Score: 40") {
		t.Errorf("row 1 = %q, expected to contain text", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(17, 0, "long", ColorDefault)
	if s.Get(17, 0) != 'l' || s.Get(19, 0) != 'n' {
		t.Error("DrawText should clip at screen edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawTextCentered(1, "GAME", ColorBrightWhite)
	// (20-4)/2 = 8
	if s.Get(8, 1) != 'G' {
		t.Errorf("centered text should start at x=8, got %q there", s.Get(8, 1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawRect(NewRect(2, 1, 4, 3), '#', ColorRed)

	for y := 1; y < 4; y++ {
		for x := 2; x < 6; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("cell (%d, %d) should be filled", x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(6, 1) != ' ' {
		t.Error("fill should not bleed outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawBox(NewRect(1, 1, 6, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges not drawn")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("dimensions after resize = %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'x' {
		t.Error("content should be preserved after growing")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'x' {
		t.Error("content within bounds should survive shrinking")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}
