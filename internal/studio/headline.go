package studio

import (
	"regexp"
	"strings"
)

// labelRule pairs a keyword pattern with the literal headline label it
// produces. Separate from classifyRules on purpose: headline labeling puts
// institutions and countries ahead of thematic rules, so "EU kündigt neue
// Zölle" labels as EU even though the icon pass treats it as trade news.
type labelRule struct {
	pattern *regexp.Regexp
	label   string
}

// labelRules is evaluated top to bottom, first match wins. Do not re-order.
var labelRules = []labelRule{
	{regexp.MustCompile(`(marine|entert|entern|geentert|boarding|kaperung)\b.*\btanker|\btanker\b.*(marine|entert|entern|geentert|boarding|kaperung)`), "MARINE"},
	{regexp.MustCompile(`\btanker`), "TANKER"},
	{regexp.MustCompile(`\bmarine\b|\bfregatte\b|entert|entern|geentert|boarding|kaperung|\bkriegsschiff`), "MARINE"},
	{regexp.MustCompile(`\beu\b|europäische union|europäischen union|brüssel|europaparlament`), "EU"},
	{regexp.MustCompile(`\bnato\b|nordatlantik`), "NATO"},
	{regexp.MustCompile(`ukraine|ukrainisch|kiew|selenskyj`), "UKRAINE"},
	{regexp.MustCompile(`\bgaza|gazastreifen`), "GAZA"},
	{regexp.MustCompile(`israel|israelisch|netanjahu`), "ISRAEL"},
	{regexp.MustCompile(`frankreich|französisch|macron|\bparis\b`), "FRANKREICH"},
	{regexp.MustCompile(`russland|russisch|moskau|kreml|putin`), "RUSSLAND"},
	{regexp.MustCompile(`\bchina\b|chinesisch|peking`), "CHINA"},
	{regexp.MustCompile(`\biran\b|iranisch|teheran`), "IRAN"},
	{regexp.MustCompile(`grönland|groenland|\bnuuk\b`), "GRÖNLAND"},
	{regexp.MustCompile(`\bzoll\b|zölle|zöllen|\btarif|sanktion|handelsstreit|handelskrieg|strafzöll`), "ZÖLLE"},
	{regexp.MustCompile(`handelsabkommen|freihandel|handelsdeal|trade.deal`), "ABKOMMEN"},
	{regexp.MustCompile(`\bgipfel|\btreffen\b|\bgespräche\b|staatsbesuch|verhandlung|diplomat`), "GIPFEL"},
	{regexp.MustCompile(`\bangriff|anschlag|attacke|explosion|luftschlag|raketen|drohnenangriff`), "ANGRIFF"},
}

// headlineStopwords are dropped before picking fallback tokens: articles,
// prepositions, conjunctions and the usual auxiliary/modal verbs.
var headlineStopwords = map[string]bool{
	"der": true, "die": true, "das": true, "den": true, "dem": true, "des": true,
	"ein": true, "eine": true, "einen": true, "einem": true, "einer": true, "eines": true,
	"und": true, "oder": true, "aber": true, "doch": true, "denn": true,
	"im": true, "in": true, "am": true, "an": true, "auf": true, "aus": true,
	"bei": true, "mit": true, "nach": true, "von": true, "vom": true, "vor": true,
	"zu": true, "zum": true, "zur": true, "über": true, "unter": true, "ums": true,
	"gegen": true, "für": true, "um": true, "als": true, "wie": true, "wegen": true,
	"ist": true, "sind": true, "war": true, "waren": true, "wird": true, "werden": true,
	"hat": true, "haben": true, "hatte": true, "hatten": true,
	"kann": true, "können": true, "muss": true, "müssen": true,
	"soll": true, "sollen": true, "will": true, "wollen": true,
	"sich": true, "nicht": true, "auch": true, "noch": true, "nur": true,
	"schon": true, "mehr": true, "sein": true, "seine": true, "ihre": true, "ihr": true,
}

var (
	headlineTokenStrip = regexp.MustCompile(`[^0-9A-Za-zÄÖÜäöüß-]+`)
	collapsedNumeric   = regexp.MustCompile(`^[A-Za-z]\d+$`)
	allDigits          = regexp.MustCompile(`^\d+$`)
	shortAcronym       = regexp.MustCompile(`^[A-ZÄÖÜ]{2,4}$`)
)

// Headline invents a 1-2 word uppercase label for a normalized title. The
// label rules fire first; otherwise the first meaningful tokens of the main
// clause are used. Never returns an empty string.
func Headline(title string) string {
	lower := strings.ToLower(title)
	for _, r := range labelRules {
		if r.pattern.MatchString(lower) {
			return r.label
		}
	}

	// Token fallback works on the clause after the first colon, if any.
	main := title
	if i := strings.Index(title, ":"); i >= 0 {
		main = title[i+1:]
	}

	tokens := headlineTokens(main)
	if len(tokens) == 0 {
		return "NEWS"
	}

	first := tokens[0]
	// "G" "20" collapses to "G20"; the merged token then counts as an
	// acronym-like first token below.
	if len(tokens) > 1 && isSingleLetter(first) && allDigits.MatchString(tokens[1]) {
		first = first + tokens[1]
		tokens = append([]string{first}, tokens[2:]...)
	}

	if len(tokens) > 1 && (shortAcronym.MatchString(first) || collapsedNumeric.MatchString(first)) {
		return strings.ToUpper(first + " " + tokens[1])
	}
	return strings.ToUpper(first)
}

// headlineTokens splits text into candidate label tokens: punctuation except
// hyphens stripped, stopwords dropped.
func headlineTokens(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		tok := strings.Trim(headlineTokenStrip.ReplaceAllString(f, ""), "-")
		if tok == "" {
			continue
		}
		if headlineStopwords[strings.ToLower(tok)] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func isSingleLetter(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && !allDigits.MatchString(s)
}
