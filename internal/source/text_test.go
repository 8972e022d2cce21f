package source

import "testing"

func TestTextOffsets(t *testing.T) {
	txt := NewText("", "wé#?")
	if txt.Name != "<spec>" {
		t.Fatalf("Name = %q", txt.Name)
	}
	if txt.Len() != 4 {
		t.Fatalf("Len = %d, want 4", txt.Len())
	}
	cases := []struct {
		index int
		off   uint32
	}{
		{0, 0}, {1, 1}, {2, 3}, {3, 4}, {4, 5}, {10, 5},
	}
	for _, tc := range cases {
		if got := txt.ByteOffset(tc.index); got != tc.off {
			t.Errorf("ByteOffset(%d) = %d, want %d", tc.index, got, tc.off)
		}
	}
	if got := txt.Column(3); got != 2 {
		t.Errorf("Column(3) = %d, want 2", got)
	}
}

func TestSpanAt(t *testing.T) {
	txt := NewText("x", "aé")
	sp := txt.SpanAt(1)
	if sp.Start != 1 || sp.End != 3 {
		t.Fatalf("SpanAt(1) = %v", sp)
	}
	if got := txt.Slice(sp); got != "é" {
		t.Fatalf("Slice = %q", got)
	}
	end := txt.SpanAt(2)
	if !end.Empty() || end.Start != 3 {
		t.Fatalf("SpanAt(end) = %v", end)
	}
}

func TestSpanString(t *testing.T) {
	sp := Span{Start: 1, End: 4}
	if sp.Len() != 3 || sp.Empty() {
		t.Fatalf("Len = %d, Empty = %v", sp.Len(), sp.Empty())
	}
	if sp.String() != "1-4" {
		t.Fatalf("String = %q", sp.String())
	}
}
