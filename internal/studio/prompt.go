package studio

import "strings"

// stylePreamble sets the scene for the image model. Constant text, never
// derived from input.
const stylePreamble = `A warmly lit retro television news studio, drawn as a flat illustrated cartoon.
Wide straight-on camera framing, slight fisheye, the whole set visible.
Muted palette of teal, cream and warm orange, soft grain, clean outlines.
A long anchor desk in front, a wall of illustrated news panels behind it.
Each panel on the wall shows one story:`

// closingConstraint pins down what the model must not invent.
const closingConstraint = `No photorealism, no real broadcaster logos, no legible text anywhere except the given headline and caption words.`

// Build runs the whole pipeline: titles in, final prompt text out. The call
// is deterministic and self-contained; two calls on the same list produce
// byte-identical output.
func Build(titles []string) string {
	normalized := make([]string, len(titles))
	for i, t := range titles {
		normalized[i] = NormalizeTitle(t)
	}

	var b strings.Builder
	b.WriteString(stylePreamble)
	b.WriteString("\n")
	for _, p := range Panels(titles) {
		b.WriteString("- ")
		b.WriteString(p.Compose())
		b.WriteString("\n")
	}
	for _, egg := range EasterEggs(normalized) {
		b.WriteString("- background detail: ")
		b.WriteString(egg)
		b.WriteString("\n")
	}
	b.WriteString(closingConstraint)
	b.WriteString("\n")
	return b.String()
}
