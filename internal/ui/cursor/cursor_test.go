package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		from       int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down without scroll", 2, 0, 1, 10, 5, 1, 0},
		{"down into margin scrolls", 2, 0, 3, 10, 5, 3, 1},
		{"up clamps to first", 2, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 2, 5, 15, 10, 5, 9, 5},
		{"scroll follows cursor", 2, 2, 3, 10, 5, 5, 3},
		{"list shorter than viewport", 2, 0, 4, 3, 5, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.from
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("Move() = pos %d offset %d, want pos %d offset %d",
					c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestMove_EmptyList(t *testing.T) {
	c := New(2)
	c.pos = 5
	c.Move(1, 0, 5)
	if c.Pos() != 5 {
		t.Errorf("Move() on empty list changed pos to %d", c.Pos())
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		to   int
		want int
	}{
		{5, 5},
		{100, 9},
		{-5, 0},
	}
	for _, tt := range tests {
		c := New(2)
		c.Jump(tt.to, 10, 5)
		if c.Pos() != tt.want {
			t.Errorf("Jump(%d) pos = %d, want %d", tt.to, c.Pos(), tt.want)
		}
	}
}

func TestJumpStartEnd(t *testing.T) {
	c := New(2)

	c.JumpEnd(20, 5)
	if c.Pos() != 19 || c.Offset() != 15 {
		t.Errorf("JumpEnd() = pos %d offset %d, want 19/15", c.Pos(), c.Offset())
	}

	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart() = pos %d offset %d, want 0/0", c.Pos(), c.Offset())
	}

	c.JumpEnd(0, 5)
	if c.Pos() != 0 {
		t.Errorf("JumpEnd() on empty list = %d", c.Pos())
	}
}

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name       string
		pos        int
		offset     int
		wantOffset int
	}{
		{"already visible", 2, 0, 0},
		{"above viewport", 2, 6, 0},
		{"below viewport", 15, 0, 13},
		{"offset past end", 19, 18, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.pos, c.offset = tt.pos, tt.offset
			c.EnsureVisible(20, 5)
			if c.Offset() != tt.wantOffset {
				t.Errorf("EnsureVisible() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	tests := []struct {
		name        string
		pos         int
		len         int
		wantPos     int
		wantChanged bool
	}{
		{"in bounds", 3, 10, 3, false},
		{"past the end", 8, 5, 4, true},
		{"empty list", 3, 0, 0, true},
		{"empty list at top", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.pos = tt.pos
			changed := c.ClampToBounds(tt.len)
			if c.Pos() != tt.wantPos || changed != tt.wantChanged {
				t.Errorf("ClampToBounds() = pos %d changed %v, want %d %v",
					c.Pos(), changed, tt.wantPos, tt.wantChanged)
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"full viewport", 0, 10, 5, 0, 5},
		{"scrolled", 3, 10, 5, 3, 8},
		{"short list", 0, 3, 5, 0, 3},
		{"empty list", 0, 0, 5, 0, 0},
		{"no height", 0, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.offset = tt.offset
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		from    int
		wantPos int
	}{
		{"j", 4, 5},
		{"down", 4, 5},
		{"k", 4, 3},
		{"up", 4, 3},
		{"g", 4, 0},
		{"home", 4, 0},
		{"G", 4, 19},
		{"end", 4, 19},
		{"ctrl+d", 4, 9},
		{"ctrl+u", 14, 9},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(0)
			c.pos = tt.from
			if !c.HandleKey(tt.key, 20, 10) {
				t.Fatalf("HandleKey(%q) not handled", tt.key)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("HandleKey(%q) pos = %d, want %d", tt.key, c.Pos(), tt.wantPos)
			}
		})
	}

	c := New(0)
	if c.HandleKey("x", 20, 10) {
		t.Error("HandleKey(x) should not be handled")
	}
}
