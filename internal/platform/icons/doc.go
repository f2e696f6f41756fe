// Package icons defines the icon identifiers used by site content.
//
// Content names icons by stable identifiers ("github", "code") rather than
// markup; the web layer maps each identifier to a Lucide symbol in an inline
// SVG sprite.
package icons
