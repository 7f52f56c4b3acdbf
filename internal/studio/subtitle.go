package studio

import (
	"regexp"
	"strings"
)

// subtitleTemplate rewrites a title that hits a known keyword combination
// into a fixed phrase. Patterns combine at least two keyword groups so a
// single stray word never triggers a template.
type subtitleTemplate struct {
	pattern *regexp.Regexp
	phrase  string
}

// subtitleTemplates is evaluated top to bottom, first match wins.
var subtitleTemplates = []subtitleTemplate{
	{regexp.MustCompile(`tanker.*mittelmeer|mittelmeer.*tanker`), "Einsatzkräfte stoppen einen Tanker im Mittelmeer"},
	{regexp.MustCompile(`(marine|entert|entern|geentert|boarding).*tanker|tanker.*(marine|entert|entern|geentert|boarding)`), "Soldaten durchsuchen einen verdächtigen Tanker"},
	{regexp.MustCompile(`(zoll|zölle|zöllen|strafzöll).*china|china.*(zoll|zölle|zöllen|strafzöll)`), "Neue Zölle treffen Handel mit China"},
	{regexp.MustCompile(`(sanktion).*(russland|moskau)|(russland|moskau).*(sanktion)`), "Weitere Sanktionen gegen Moskau beschlossen"},
	{regexp.MustCompile(`(\beu\b|brüssel).*(gipfel|treffen)|(gipfel|treffen).*(\beu\b|brüssel)`), "Spitzentreffen der Staaten in Brüssel"},
	{regexp.MustCompile(`ukraine.*(angriff|raketen|drohnen)|(angriff|raketen|drohnen).*ukraine`), "Schwere Angriffe in der Ukraine gemeldet"},
	{regexp.MustCompile(`gaza.*(hilfe|hilfsgüter|lieferung)|(hilfe|hilfsgüter|lieferung).*gaza`), "Hilfslieferungen erreichen den Gazastreifen kaum"},
	{regexp.MustCompile(`nato.*(übung|manöver)|(übung|manöver).*nato`), "Großes Manöver an der Ostflanke"},
	{regexp.MustCompile(`(wahl|wahlen).*(partei|umfrage)|(partei|umfrage).*(wahl|wahlen)`), "Parteien kämpfen um jede Stimme"},
}

// subtitleStopwords is a second, wider stopword list for the subtitle token
// fallback; it also covers modal and auxiliary forms the headline list keeps.
var subtitleStopwords = map[string]bool{
	"der": true, "die": true, "das": true, "den": true, "dem": true, "des": true,
	"ein": true, "eine": true, "einen": true, "einem": true, "einer": true, "eines": true,
	"und": true, "oder": true, "aber": true, "doch": true, "denn": true, "dass": true,
	"im": true, "in": true, "am": true, "an": true, "auf": true, "aus": true,
	"bei": true, "mit": true, "nach": true, "von": true, "vom": true, "vor": true,
	"zu": true, "zum": true, "zur": true, "über": true, "unter": true, "ums": true,
	"gegen": true, "für": true, "um": true, "als": true, "wie": true, "wegen": true,
	"ist": true, "sind": true, "war": true, "waren": true, "wird": true, "werden": true,
	"wurde": true, "wurden": true, "hat": true, "haben": true, "hatte": true, "hatten": true,
	"kann": true, "können": true, "konnte": true, "muss": true, "müssen": true, "musste": true,
	"soll": true, "sollen": true, "sollte": true, "will": true, "wollen": true, "wollte": true,
	"darf": true, "dürfen": true, "mag": true, "möchte": true,
	"sich": true, "nicht": true, "auch": true, "noch": true, "nur": true,
	"schon": true, "mehr": true, "sein": true, "seine": true, "ihre": true, "ihr": true,
	"es": true, "er": true, "sie": true, "wir": true, "man": true,
}

var subtitleTokenStrip = regexp.MustCompile(`[^0-9A-Za-zÄÖÜäöüß]+`)

// subtitleFiller keeps degenerate inputs (fewer than three raw words) inside
// the three-to-six word contract.
const subtitleFiller = "Neue Entwicklungen im Überblick"

// Subtitle produces a 3-6 word phrase for a normalized title. The headline
// already chosen for the item is passed in so its vocabulary can be excluded,
// which keeps headline and subtitle from reading as one sentence.
func Subtitle(title, headline string) string {
	lower := strings.ToLower(title)
	for _, t := range subtitleTemplates {
		if t.pattern.MatchString(lower) {
			return firstWords(t.phrase, 6)
		}
	}

	used := make(map[string]bool)
	for _, h := range strings.Fields(headline) {
		used[strings.ToLower(h)] = true
	}

	var filtered []string
	for _, f := range strings.Fields(title) {
		tok := subtitleTokenStrip.ReplaceAllString(f, "")
		if tok == "" {
			continue
		}
		low := strings.ToLower(tok)
		if subtitleStopwords[low] || used[low] {
			continue
		}
		filtered = append(filtered, tok)
		if len(filtered) == 6 {
			break
		}
	}
	if len(filtered) >= 3 {
		return strings.Join(filtered, " ")
	}

	// Filtering ate too much; fall back to the raw words of the title.
	raw := strings.Fields(title)
	if len(raw) >= 3 {
		return firstWords(title, 6)
	}
	return subtitleFiller
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
