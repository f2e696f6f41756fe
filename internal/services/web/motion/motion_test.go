package motion

import (
	"strings"
	"testing"
	"time"
)

func TestStylesheetDefinesEveryPreset(t *testing.T) {
	t.Parallel()

	css := Stylesheet()
	for _, preset := range Presets() {
		if !strings.Contains(css, "@keyframes "+preset.Name+" {") {
			t.Fatalf("missing keyframes for %s", preset.Name)
		}
		if !strings.Contains(css, "."+preset.Class()+" { animation: "+preset.Name+" ") {
			t.Fatalf("missing class for %s", preset.Name)
		}
	}
	if !strings.Contains(css, "prefers-reduced-motion") {
		t.Fatal("expected reduced motion rule")
	}
}

func TestFadeInUpKeyframes(t *testing.T) {
	t.Parallel()

	want := "@keyframes fadeInUp {\n  from { opacity: 0; transform: translate3d(0, 30px, 0); }\n  to { opacity: 1; transform: none; }\n}\n" +
		".motion-fadeInUp { animation: fadeInUp 0.4s " + EaseOutQuad + " both; }\n"
	if !strings.Contains(Stylesheet(), want) {
		t.Fatalf("stylesheet missing fadeInUp block:\n%s", want)
	}
}

func TestScaleInUsesScaleTransform(t *testing.T) {
	t.Parallel()

	if got := ScaleIn.From.declarations(); got != "opacity: 0; transform: scale(0.9);" {
		t.Fatalf("declarations() = %q", got)
	}
}

func TestStaggerChildDelay(t *testing.T) {
	t.Parallel()

	s := Stagger{Step: 100 * time.Millisecond, Delay: 200 * time.Millisecond}
	tests := []struct {
		index int
		want  time.Duration
	}{
		{index: -3, want: 200 * time.Millisecond},
		{index: 0, want: 200 * time.Millisecond},
		{index: 3, want: 500 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := s.ChildDelay(tc.index); got != tc.want {
			t.Fatalf("ChildDelay(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
	if got := string(s.DelayStyle(1)); got != "animation-delay: 0.3s" {
		t.Fatalf("DelayStyle(1) = %q", got)
	}
}

func TestStaggerRulesIncreaseMonotonically(t *testing.T) {
	t.Parallel()

	css := Stylesheet()
	for _, rule := range []string{
		".motion-stagger > :nth-child(1) { animation-delay: 0s; }",
		".motion-stagger > :nth-child(2) { animation-delay: 0.03s; }",
		".motion-stagger-fast > :nth-child(3) { animation-delay: 0.02s; }",
	} {
		if !strings.Contains(css, rule) {
			t.Fatalf("stylesheet missing %q", rule)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if preset, ok := Lookup("notificationSlide"); !ok || preset.From.X != 300 {
		t.Fatalf("Lookup(notificationSlide) = %+v, %v", preset, ok)
	}
	if _, ok := Lookup("spin"); ok {
		t.Fatal("expected unknown preset to miss")
	}
}
