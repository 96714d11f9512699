package views

import (
	"strings"
	"testing"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 10, "(empty)"},
		{"fits", "Go", 10, "Go"},
		{"cut", "Senior Backend Engineer", 10, "Senior Ba…"},
		{"multi-line", "First\nSecond", 20, "First …"},
		{"no width", "Senior Backend Engineer", 0, "Senior Backend Engineer"},
		{"runes", "Intern → Programmer", 8, "Intern …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.text, tt.width); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.TotalPages() != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages())
	}

	p.SetCursor(4)
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("expected range 3-6, got %d-%d", start, end)
	}

	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("cursor should clamp to 1, got %d", p.Cursor())
	}

	p.SetTotal(7)
	p.SetCursor(5)
	p.SetPageSize(10)
	if start, end := p.VisibleRange(); start != 0 || end != 7 {
		t.Errorf("expected range 0-7 after resize, got %d-%d", start, end)
	}
}
