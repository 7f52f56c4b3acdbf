package studio

import (
	"regexp"
	"strings"
)

// Baseline easter eggs open every run; the closing egg ends it unless the
// four-entry cap pushes it out.
var (
	baselineEggs = []string{
		"a steaming coffee mug on the anchor desk",
		"a wall clock stuck at eight o'clock",
	}
	politicsEgg = "a tiny ballot box on a side shelf"
	worldEgg    = "a small globe with little flag pins"
	closingEgg  = "a studio cat asleep beside a camera"
)

var (
	politicsKeywords = regexp.MustCompile(`bundestag|regierung|kanzler|minister|koalition|parlament|opposition|\bwahl\b|wahlen|partei`)
	worldKeywords    = regexp.MustCompile(`\beu\b|\bnato\b|\buno\b|vereinte nationen|ukraine|gaza|israel|russland|\bchina\b|\biran\b|frankreich|grönland|gipfel|allianz|bündnis`)
)

// EasterEggs derives 2-4 background details from the full title set. All
// titles count here, including ones past the six-panel cap.
func EasterEggs(titles []string) []string {
	all := strings.ToLower(strings.Join(titles, " "))

	eggs := make([]string, 0, 5)
	eggs = append(eggs, baselineEggs...)
	if politicsKeywords.MatchString(all) {
		eggs = append(eggs, politicsEgg)
	}
	if worldKeywords.MatchString(all) {
		eggs = append(eggs, worldEgg)
	}
	eggs = append(eggs, closingEgg)

	if len(eggs) > 4 {
		eggs = eggs[:4]
	}
	return eggs
}
