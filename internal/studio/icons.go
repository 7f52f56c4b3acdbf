package studio

import "strings"

// iconSet is the run-scoped record of icon pairs already handed out. It is
// created empty at the start of Build and threaded through the per-item fold;
// nothing outside one Build call ever sees it.
type iconSet map[string]bool

func newIconSet() iconSet { return make(iconSet) }

func (s iconSet) has(pair []string) bool { return s[strings.Join(pair, "+")] }
func (s iconSet) add(pair []string)      { s[strings.Join(pair, "+")] = true }

// iconTable maps a topic tag to its thematic icon pair. Checked before any
// dedup logic: a fitting icon beats variety.
var iconTable = map[Tag][]string{
	TagMaritimeBoarding: {"navy ship", "anchor"},
	TagTanker:           {"oil tanker", "barrel"},
	TagMaritime:         {"anchor", "lifebuoy"},
	TagTrade:            {"cargo container", "percent sign"},
	TagTradeDeal:        {"handshake", "cargo crane"},
	TagDiplomacy:        {"handshake", "round table"},
	TagAttack:           {"warning sign", "smoke cloud"},
	TagUkraine:          {"sunflower", "blue-yellow flag"},
	TagGaza:             {"olive branch", "crescent moon"},
	TagIsrael:           {"dove", "six-pointed star"},
	TagEU:               {"circle of stars", "blue flag"},
	TagNATO:             {"compass rose", "shield"},
	TagFrance:           {"Eiffel tower", "tricolor flag"},
	TagRussia:           {"Kremlin tower", "bear"},
	TagChina:            {"red lantern", "dragon"},
	TagIran:             {"oil derrick", "mosque dome"},
	TagGreenland:        {"iceberg", "polar bear"},
}

// iconPool holds generic pairs for unclassified items and for substitution
// when a thematic pair has already been used this run. Order matters: the
// first unused entry is always taken.
var iconPool = [][]string{
	{"globe", "newspaper"},
	{"microphone", "TV screen"},
	{"megaphone", "stack of papers"},
	{"clipboard", "pencil"},
	{"magnifying glass", "folder"},
	{"coffee mug", "calendar"},
}

// iconPairForTitle resolves the thematic pair for a lower-cased title via the
// classifier. The classifier's rule order applies here unchanged, so trade
// keywords outrank institution keywords for icon choice even though headline
// labeling ranks them the other way round.
func iconPairForTitle(lower string) ([]string, bool) {
	pair, ok := iconTable[Classify(lower)]
	return pair, ok
}

// assignIcons picks one or two icon names for an item and records the choice
// in used. A pair already handed out this run is swapped for the first unused
// pool entry; only when the whole pool is spent is a repeat tolerated.
func assignIcons(lower string, used iconSet) []string {
	pair, ok := iconPairForTitle(lower)
	if !ok {
		pair = firstUnusedPoolPair(used)
	}
	if used.has(pair) {
		if sub, ok := poolSubstitute(used); ok {
			pair = sub
		}
	}
	used.add(pair)
	return pair
}

// firstUnusedPoolPair returns the first pool entry not yet used, or the first
// pool entry when everything is spent.
func firstUnusedPoolPair(used iconSet) []string {
	if sub, ok := poolSubstitute(used); ok {
		return sub
	}
	return iconPool[0]
}

func poolSubstitute(used iconSet) ([]string, bool) {
	for _, p := range iconPool {
		if !used.has(p) {
			return p, true
		}
	}
	return nil, false
}
