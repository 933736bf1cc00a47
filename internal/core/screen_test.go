package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, '@', ColorPlayer)

	if c := s.GetCell(3, 4); c.Rune != '@' || c.Color != ColorPlayer {
		t.Errorf("GetCell(3, 4) = %+v, expected @ in player color", c)
	}

	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set() color = %v, expected default", c.Color)
	}

	// Out of bounds is silent.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColored(p[0], p[1], '!', ColorHit)
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should be space", p[0], p[1])
		}
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.Fill('~', ColorWater)
	if c := s.GetCell(4, 2); c.Rune != '~' || c.Color != ColorWater {
		t.Errorf("after Fill, GetCell(4, 2) = %+v", c)
	}

	s.Clear()
	if s.String() != "     \n     \n     " {
		t.Errorf("after Clear, String() = %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"inside", 2, "otter", "  otter   "},
		{"clipped right", 7, "otter", "       ott"},
		{"clipped left", -2, "otter", "ter       "},
		{"multibyte", 0, "≈≈≈", "≈≈≈       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColored(tc.x, 0, tc.text, ColorHUD)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "PAUSED", ColorWarning)

	if got := s.Row(1); got != "       PAUSED       " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(7, 1); c.Color != ColorWarning {
		t.Errorf("centered text color = %v, expected warning", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDim)

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox() =\n%s\nexpected\n%s", s.String(), expected)
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(1, 1, 1, 3), ColorDim)
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("1-wide box should draw nothing, got %q", s.String())
	}
}

func TestScreenDrawRectAndLines(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(1, 0, 2, 2), '#', ColorRock)
	s.DrawHLine(0, 2, 6, '=', ColorBank)
	s.DrawVLine(5, 0, 2, '|', ColorBank)

	expected := " ##  |\n ##  |\n======"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "River")
	s.DrawText(0, 5, "Rush")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "Rive" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "Rive")
	}

	s.Resize(12, 8)
	if !strings.HasPrefix(s.Row(0), "Rive ") {
		t.Errorf("Row(0) after growing = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("rows dropped by shrinking should come back blank, got %q", s.Row(5))
	}
	if len(s.Row(-1)) != 12 {
		t.Errorf("Row(-1) length = %d, expected 12", len(s.Row(-1)))
	}
}
