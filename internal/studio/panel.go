package studio

import (
	"fmt"
	"strings"
)

// Panel is one illustrated segment of the composite image: an invented
// headline, a short caption and one or two icons.
type Panel struct {
	Headline string
	Subtitle string
	Icons    []string
}

// Compose renders the panel as one descriptive line with the fixed layout
// wording. Pure formatting, no decisions.
func (p Panel) Compose() string {
	return fmt.Sprintf(
		`panel with TOP headline %q in bold block letters (one or two words), MIDDLE pictogram(s): %s as simple flat icons, BOTTOM caption %q in small lettering (three to six words)`,
		p.Headline, strings.Join(p.Icons, " and "), p.Subtitle,
	)
}

// maxPanels caps how many items become panels; later items still feed the
// easter-egg scan.
const maxPanels = 6

// Panels runs the per-item half of the pipeline over the raw titles, in
// input order, carrying the icon dedup state forward between items.
func Panels(titles []string) []Panel {
	used := newIconSet()

	n := len(titles)
	if n > maxPanels {
		n = maxPanels
	}

	panels := make([]Panel, 0, n)
	for _, raw := range titles[:n] {
		title := NormalizeTitle(raw)
		lower := strings.ToLower(title)

		head := Headline(title)
		panels = append(panels, Panel{
			Headline: head,
			Subtitle: Subtitle(title, head),
			Icons:    assignIcons(lower, used),
		})
	}
	return panels
}
