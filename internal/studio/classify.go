package studio

import "regexp"

// Tag is the topic category a title is assigned to.
type Tag string

const (
	TagMaritimeBoarding Tag = "maritime_boarding"
	TagTanker           Tag = "tanker"
	TagMaritime         Tag = "maritime"
	TagTrade            Tag = "trade"
	TagTradeDeal        Tag = "trade_deal"
	TagDiplomacy        Tag = "diplomacy"
	TagAttack           Tag = "attack"
	TagUkraine          Tag = "ukraine"
	TagGaza             Tag = "gaza"
	TagIsrael           Tag = "israel"
	TagEU               Tag = "eu"
	TagNATO             Tag = "nato"
	TagFrance           Tag = "france"
	TagRussia           Tag = "russia"
	TagChina            Tag = "china"
	TagIran             Tag = "iran"
	TagGreenland        Tag = "greenland"
	TagNone             Tag = ""
)

// classifyRule pairs a compiled keyword pattern with the tag it yields.
type classifyRule struct {
	pattern *regexp.Regexp
	tag     Tag
}

// classifyRules is evaluated top to bottom; the first match wins. The order
// is part of the contract: combined rules sit above the single keywords they
// contain (a boarded tanker must not fall through to the plain tanker rule),
// and thematic trade keywords sit above the country and institution rules.
// Do not re-order.
var classifyRules = []classifyRule{
	{regexp.MustCompile(`(marine|entert|entern|geentert|boarding|kaperung)\b.*\btanker|\btanker\b.*(marine|entert|entern|geentert|boarding|kaperung)`), TagMaritimeBoarding},
	{regexp.MustCompile(`\btanker`), TagTanker},
	{regexp.MustCompile(`\bmarine\b|\bfregatte\b|entert|entern|geentert|boarding|kaperung|\bkriegsschiff`), TagMaritime},
	{regexp.MustCompile(`\bzoll\b|zölle|zöllen|\btarif|sanktion|handelsstreit|handelskrieg|strafzöll`), TagTrade},
	{regexp.MustCompile(`handelsabkommen|freihandel|handelsdeal|trade.deal`), TagTradeDeal},
	{regexp.MustCompile(`\bgipfel|\btreffen\b|\bgespräche\b|staatsbesuch|verhandlung|diplomat`), TagDiplomacy},
	{regexp.MustCompile(`\bangriff|anschlag|attacke|explosion|luftschlag|raketen|drohnenangriff`), TagAttack},
	{regexp.MustCompile(`ukraine|ukrainisch|kiew|selenskyj`), TagUkraine},
	{regexp.MustCompile(`\bgaza|gazastreifen`), TagGaza},
	{regexp.MustCompile(`israel|israelisch|netanjahu`), TagIsrael},
	{regexp.MustCompile(`\beu\b|europäische union|europäischen union|brüssel|europaparlament`), TagEU},
	{regexp.MustCompile(`\bnato\b|nordatlantik`), TagNATO},
	{regexp.MustCompile(`frankreich|französisch|macron|\bparis\b`), TagFrance},
	{regexp.MustCompile(`russland|russisch|moskau|kreml|putin`), TagRussia},
	{regexp.MustCompile(`\bchina\b|chinesisch|peking`), TagChina},
	{regexp.MustCompile(`\biran\b|iranisch|teheran`), TagIran},
	{regexp.MustCompile(`grönland|groenland|\bnuuk\b`), TagGreenland},
}

// Classify maps a lower-cased title to its topic tag, or TagNone when no
// rule matches. Callers must lower-case the input; rules are written for
// lower-case text only.
func Classify(lower string) Tag {
	for _, r := range classifyRules {
		if r.pattern.MatchString(lower) {
			return r.tag
		}
	}
	return TagNone
}
