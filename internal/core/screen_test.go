package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'T', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != 'T' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected T/cyan", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %+v", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(s.Bounds(), '#', ColorRed)
	s.Clear()

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("after Clear expected only spaces, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorYellow)

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("row 1 = %q, expected Hello at column 2", got)
	}
	if s.GetCell(4, 1).Color != ColorYellow {
		t.Error("text should keep its color")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "★ok", ColorDefault)

	x := (20 - 3) / 2
	if s.Get(x, 1) != '★' || s.Get(x+1, 1) != 'o' || s.Get(x+2, 1) != 'k' {
		t.Errorf("centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	tests := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{3, 1, '─'},
		{3, 4, '─'},
		{1, 2, '│'},
		{5, 3, '│'},
		{3, 2, ' '},
	}

	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.r)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q, expected %q", got, "abc\nde ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorGreen)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("content inside the new bounds should survive, got %+v", c)
	}

	s.Resize(6, 4)
	if s.Get(2, 2) != 'X' || s.Get(5, 3) != ' ' {
		t.Errorf("growing should keep content and blank new cells: %q", s.String())
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "test")

	if s.Row(1) != "test" {
		t.Errorf("Row(1) = %q, expected test", s.Row(1))
	}
	if s.Row(5) != "    " {
		t.Errorf("out of range Row should be spaces, got %q", s.Row(5))
	}
}
