// Package motion defines the site's entrance animation presets and renders
// them as a stylesheet of keyframes and utility classes.
package motion

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"
)

// Easing curves shared by the presets.
const (
	EaseOutQuad = "cubic-bezier(0.25, 0.46, 0.45, 0.94)"
	EaseOutBack = "cubic-bezier(0.6, -0.05, 0.01, 0.99)"
	// EaseSpring approximates a damped spring with a slight overshoot.
	EaseSpring = "cubic-bezier(0.34, 1.56, 0.64, 1)"
)

// Frame is one end of a transition. Zero offsets and a zero Scale mean
// identity.
type Frame struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
}

// Preset is a named entrance transition.
type Preset struct {
	Name     string
	From     Frame
	To       Frame
	Duration time.Duration
	Easing   string
}

// Class returns the utility class applying the preset.
func (p Preset) Class() string {
	return "motion-" + p.Name
}

var (
	FadeInUp = Preset{
		Name: "fadeInUp", From: Frame{Opacity: 0, Y: 30}, To: Frame{Opacity: 1},
		Duration: 400 * time.Millisecond, Easing: EaseOutQuad,
	}
	FadeInDown = Preset{
		Name: "fadeInDown", From: Frame{Opacity: 0, Y: -20, Scale: 0.98}, To: Frame{Opacity: 1, Scale: 1},
		Duration: 450 * time.Millisecond, Easing: EaseSpring,
	}
	FadeInLeft = Preset{
		Name: "fadeInLeft", From: Frame{Opacity: 0, X: -30}, To: Frame{Opacity: 1},
		Duration: 400 * time.Millisecond, Easing: EaseOutQuad,
	}
	FadeInRight = Preset{
		Name: "fadeInRight", From: Frame{Opacity: 0, X: 30}, To: Frame{Opacity: 1},
		Duration: 400 * time.Millisecond, Easing: EaseOutQuad,
	}
	ScaleIn = Preset{
		Name: "scaleIn", From: Frame{Opacity: 0, Scale: 0.9}, To: Frame{Opacity: 1, Scale: 1},
		Duration: 300 * time.Millisecond, Easing: EaseOutQuad,
	}
	PageTransition = Preset{
		Name: "pageTransition", From: Frame{Opacity: 0, Y: 20}, To: Frame{Opacity: 1},
		Duration: 300 * time.Millisecond, Easing: EaseOutQuad,
	}
	NotificationSlide = Preset{
		Name: "notificationSlide", From: Frame{Opacity: 0, X: 300}, To: Frame{Opacity: 1},
		Duration: 500 * time.Millisecond, Easing: EaseOutBack,
	}
)

// Presets lists every preset in stylesheet order.
func Presets() []Preset {
	return []Preset{FadeInUp, FadeInDown, FadeInLeft, FadeInRight, ScaleIn, PageTransition, NotificationSlide}
}

// Lookup finds a preset by name.
func Lookup(name string) (Preset, bool) {
	for _, preset := range Presets() {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}

// Stagger delays each child of a container by Step after Delay.
type Stagger struct {
	Name     string
	Step     time.Duration
	Delay    time.Duration
	Children int
}

var (
	StaggerContainer     = Stagger{Name: "stagger", Step: 30 * time.Millisecond, Children: 12}
	FastStaggerContainer = Stagger{Name: "stagger-fast", Step: 10 * time.Millisecond, Children: 12}
)

// Class returns the container class.
func (s Stagger) Class() string {
	return "motion-" + s.Name
}

// ChildDelay returns the animation delay of the zero-based child index.
// Negative indexes are treated as the first child.
func (s Stagger) ChildDelay(index int) time.Duration {
	return s.Delay + time.Duration(max(index, 0))*s.Step
}

// DelayStyle is an inline style setting ChildDelay, for lists longer than
// the generated nth-child rules.
func (s Stagger) DelayStyle(index int) template.CSS {
	return template.CSS("animation-delay: " + seconds(s.ChildDelay(index)))
}

// Stylesheet renders keyframes, preset classes and stagger rules. Users that
// prefer reduced motion get the end state without animation.
func Stylesheet() string {
	var b strings.Builder
	for _, preset := range Presets() {
		fmt.Fprintf(&b, "@keyframes %s {\n  from { %s }\n  to { %s }\n}\n", preset.Name, preset.From.declarations(), preset.To.declarations())
		fmt.Fprintf(&b, ".%s { animation: %s %s %s both; }\n", preset.Class(), preset.Name, seconds(preset.Duration), preset.Easing)
	}
	for _, stagger := range []Stagger{StaggerContainer, FastStaggerContainer} {
		for i := 0; i < stagger.Children; i++ {
			fmt.Fprintf(&b, ".%s > :nth-child(%d) { animation-delay: %s; }\n", stagger.Class(), i+1, seconds(stagger.ChildDelay(i)))
		}
	}
	b.WriteString("@media (prefers-reduced-motion: reduce) {\n  [class*=\"motion-\"], [class*=\"motion-\"] > * { animation: none !important; }\n}\n")
	return b.String()
}

func (f Frame) declarations() string {
	transform := make([]string, 0, 2)
	if f.X != 0 || f.Y != 0 {
		transform = append(transform, "translate3d("+px(f.X)+", "+px(f.Y)+", 0)")
	}
	if f.Scale != 0 && f.Scale != 1 {
		transform = append(transform, "scale("+number(f.Scale)+")")
	}
	value := "none"
	if len(transform) > 0 {
		value = strings.Join(transform, " ")
	}
	return "opacity: " + number(f.Opacity) + "; transform: " + value + ";"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	if v == 0 {
		return "0"
	}
	return number(v) + "px"
}

func seconds(d time.Duration) string {
	return number(d.Seconds()) + "s"
}
