package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds reads should return space")
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, 'F', ColorBrightCyan)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'F' {
		t.Errorf("GetCell rune = %q, expected 'F'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell color = %d, expected ColorBrightCyan", cell.Color)
	}

	// Clear resets color too
	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors to default")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "abc")
	if s.Row(1) != "  abc     " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  abc     ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "xyz")
	if s.Get(8, 0) != 'x' || s.Get(9, 0) != 'y' {
		t.Error("DrawText should clip at screen bounds")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(0, 0, "ok", ColorGreen)
	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(1, 0).Color != ColorGreen {
		t.Error("DrawTextColored should set the color for every rune")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'K')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'K' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking drops out-of-range content without panicking
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("content outside the new bounds should read as space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 2) != '└' || s.Get(4, 2) != '┘' {
		t.Error("DrawBox should draw corners")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("DrawBox should draw edges")
	}
}
