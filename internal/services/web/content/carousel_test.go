package content

import "testing"

func TestCarouselNextPrevWrap(t *testing.T) {
	t.Parallel()

	c := Carousel{Len: 3}
	tests := []struct {
		index    int
		wantNext int
		wantPrev int
	}{
		{index: 0, wantNext: 1, wantPrev: 2},
		{index: 1, wantNext: 2, wantPrev: 0},
		{index: 2, wantNext: 0, wantPrev: 1},
		{index: 5, wantNext: 0, wantPrev: 1},
		{index: -1, wantNext: 0, wantPrev: 1},
		{index: -7, wantNext: 0, wantPrev: 1},
	}
	for _, tc := range tests {
		if got := c.Next(tc.index); got != tc.wantNext {
			t.Fatalf("Next(%d) = %d, want %d", tc.index, got, tc.wantNext)
		}
		if got := c.Prev(tc.index); got != tc.wantPrev {
			t.Fatalf("Prev(%d) = %d, want %d", tc.index, got, tc.wantPrev)
		}
	}
}

func TestCarouselClampStaysInRange(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		c := Carousel{Len: n}
		for i := -20; i <= 20; i++ {
			if got := c.Clamp(i); got < 0 || got >= n {
				t.Fatalf("Len=%d Clamp(%d) = %d out of range", n, i, got)
			}
			if c.Prev(c.Next(i)) != c.Clamp(i) {
				t.Fatalf("Len=%d Prev(Next(%d)) != Clamp(%d)", n, i, i)
			}
		}
	}
}

func TestCarouselEmpty(t *testing.T) {
	t.Parallel()

	c := Carousel{}
	if c.Next(4) != 0 || c.Prev(-2) != 0 || c.Clamp(9) != 0 {
		t.Fatal("empty carousel should always yield 0")
	}
}

func TestCarouselStep(t *testing.T) {
	t.Parallel()

	c := Carousel{Len: 2}
	if got := c.Step(0, "next"); got != 1 {
		t.Fatalf("Step(next) = %d, want 1", got)
	}
	if got := c.Step(0, "prev"); got != 1 {
		t.Fatalf("Step(prev) = %d, want 1", got)
	}
	if got := c.Step(3, ""); got != 1 {
		t.Fatalf("Step(\"\") = %d, want 1", got)
	}
}
