package nestscroll

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80)
		if buf.Width() != 80 || buf.Height() != 0 {
			t.Errorf("expected 80x0, got %dx%d", buf.Width(), buf.Height())
		}
	})

	t.Run("AppendLine clips to width", func(t *testing.T) {
		buf := NewBuffer(5)
		buf.AppendLine("abcdefgh")
		buf.AppendLine("ab")
		if got := buf.GetLine(0); got != "abcde" {
			t.Errorf("line 0: got %q, want %q", got, "abcde")
		}
		if got := buf.GetLine(1); got != "ab" {
			t.Errorf("line 1: got %q, want %q", got, "ab")
		}
	})

	t.Run("wide runes are not split", func(t *testing.T) {
		buf := NewBuffer(5)
		buf.AppendLine("日本語")
		if got := buf.GetLine(0); got != "日本" {
			t.Errorf("got %q, want %q", got, "日本")
		}
	})

	t.Run("SetLine grows the buffer", func(t *testing.T) {
		buf := NewBuffer(10)
		buf.SetLine(2, "third")
		if buf.Height() != 3 {
			t.Fatalf("expected height 3, got %d", buf.Height())
		}
		if got := buf.GetLine(0); got != "" {
			t.Errorf("line 0: got %q, want empty", got)
		}
		if got := buf.String(); got != "\n\nthird" {
			t.Errorf("got %q", got)
		}
		buf.SetLine(-1, "ignored")
		if buf.Height() != 3 {
			t.Errorf("negative row must be ignored")
		}
	})

	t.Run("GetLine out of bounds", func(t *testing.T) {
		buf := NewBufferFromLines(10, []string{"a"})
		for _, y := range []int{-1, 1, 100} {
			if got := buf.GetLine(y); got != "" {
				t.Errorf("GetLine(%d): got %q, want empty", y, got)
			}
		}
	})
}

func TestPadLine(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcdef", 4, "abcd"},
		{"日本語", 5, "日本 "},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := padLine(tt.in, tt.width); got != tt.want {
			t.Errorf("padLine(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
